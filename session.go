package docbot

import "context"

// Session is the per-user record of an in-progress, not-yet-resolved
// multi-turn command. A session exists only between the moment a user picks
// a topic (or subcategory) and the moment they supply the question; it is
// consumed exactly once and never outlives the process.
type Session struct {
	// Topic is the selected topic key. Always set.
	Topic string

	// Subcategory is the selected subcategory key, if the topic required
	// one. Empty otherwise.
	Subcategory string
}

// SessionStore manages per-user session state. Implementations must
// guarantee that each user's state is read, transitioned, and cleared in a
// single atomic step: two concurrent messages from the same user must not
// both observe and act on the same pre-resolution state.
type SessionStore interface {
	// Get returns the user's current session.
	// Returns ENOTFOUND if the user has no pending session.
	Get(ctx context.Context, userID int64) (*Session, error)

	// Put creates or replaces the user's session.
	Put(ctx context.Context, userID int64, sess Session) error

	// Take atomically returns and clears the user's session, so that
	// exactly one caller can consume any given pending state.
	// Returns ENOTFOUND if the user has no pending session.
	Take(ctx context.Context, userID int64) (*Session, error)

	// Clear removes the user's session. Clearing an absent session is a
	// no-op.
	Clear(ctx context.Context, userID int64) error
}

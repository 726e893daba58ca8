package mock

import (
	"context"

	"github.com/fwojciec/docbot"
)

var _ docbot.SessionStore = (*SessionStore)(nil)

// SessionStore is a mock implementation of docbot.SessionStore.
type SessionStore struct {
	GetFn   func(ctx context.Context, userID int64) (*docbot.Session, error)
	PutFn   func(ctx context.Context, userID int64, sess docbot.Session) error
	TakeFn  func(ctx context.Context, userID int64) (*docbot.Session, error)
	ClearFn func(ctx context.Context, userID int64) error
}

func (s *SessionStore) Get(ctx context.Context, userID int64) (*docbot.Session, error) {
	return s.GetFn(ctx, userID)
}

func (s *SessionStore) Put(ctx context.Context, userID int64, sess docbot.Session) error {
	return s.PutFn(ctx, userID, sess)
}

func (s *SessionStore) Take(ctx context.Context, userID int64) (*docbot.Session, error) {
	return s.TakeFn(ctx, userID)
}

func (s *SessionStore) Clear(ctx context.Context, userID int64) error {
	return s.ClearFn(ctx, userID)
}

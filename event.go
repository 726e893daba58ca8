package docbot

// MessageEvent is an inbound free-text chat message. The text may carry a
// leading command token (e.g. "/vm how does it work?") or be a freestanding
// reply to a previous prompt.
type MessageEvent struct {
	UserID  int64  `json:"user_id"`
	ChatID  int64  `json:"chat_id"`
	Private bool   `json:"is_private"`
	Text    string `json:"text"`
}

// SelectionEvent is an inbound button press carrying an opaque key.
// Keys follow the selection-key convention: "cmd_<topic>" for top-level
// topics, "<topic>_<subcategory>" for subcategories, and "back_to_commands"
// to clear session state.
type SelectionEvent struct {
	UserID int64  `json:"user_id"`
	ChatID int64  `json:"chat_id"`
	Key    string `json:"selection_key"`
}

// Button is one keyboard option: a display label and the selection key the
// transport sends back when it is pressed.
type Button struct {
	Label string `json:"label"`
	Key   string `json:"selection_key"`
}

// Reply is what the transport renders in response to an inbound event.
// The core produces exactly one reply per event; whether the transport
// edits a placeholder message in place or sends a new message is the
// transport's concern.
type Reply struct {
	Text     string     `json:"reply_text"`
	Keyboard [][]Button `json:"keyboard,omitempty"`
}

// ResolvedQuery is a fully-specified question ready for context gathering
// and completion. By construction Question is non-empty and Topic (and
// Subcategory, when present) resolve to existing catalog entries at the
// time of resolution.
type ResolvedQuery struct {
	Topic       string
	Subcategory string
	Question    string
}

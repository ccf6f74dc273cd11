package domain

// Note is owner-gated: every read and create is scoped to the user behind
// the presented session token. Another user's notes are invisible and
// uncreatable regardless of session validity.
type Note struct {
	ID          int64
	UserID      int64
	Title       string
	TextContent string
}

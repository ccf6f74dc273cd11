package domain

import "time"

// SessionTTL is the fixed lifetime of a session from the moment it is
// created. Validity is re-checked against the database clock on every use.
const SessionTTL = 24 * time.Hour

// Session ties an opaque high-entropy token to a user for a bounded time
// window. Multiple concurrent sessions per user are allowed; a session is
// never revoked explicitly, it simply expires.
type Session struct {
	ID              int64
	Token           string
	UserID          int64
	ExpiryTimestamp time.Time
}

package domain

// User represents a registered account as exposed to callers. The password
// hash is deliberately absent; read paths that feed API responses never
// carry it.
type User struct {
	ID       int64
	Username string
}

// UserWithHash is the credential-store shape consumed only by login.
type UserWithHash struct {
	ID           int64
	Username     string
	PasswordHash string
}

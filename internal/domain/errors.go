package domain

import "errors"

// ErrorKind classifies API-visible failures. Every kind maps onto a stable
// machine-readable code surfaced in GraphQL error extensions.
type ErrorKind string

const (
	// KindValidation flags a missing or malformed required field.
	KindValidation ErrorKind = "VALIDATION"
	// KindAuthorization flags a missing session credential on an
	// operation that requires one.
	KindAuthorization ErrorKind = "UNAUTHORIZED"
	// KindAuthentication flags a failed login. The message never reveals
	// whether the username or the password was wrong.
	KindAuthentication ErrorKind = "AUTHENTICATION"
	// KindConflict flags a duplicate username at registration.
	KindConflict ErrorKind = "CONFLICT"
	// KindOperationFailed flags a store that returned nothing after all
	// checks passed, e.g. the session expired between the presence check
	// and statement execution, or the target row vanished.
	KindOperationFailed ErrorKind = "OPERATION_FAILED"
	// KindPersistence flags an unreachable backing store or an
	// unclassified constraint violation.
	KindPersistence ErrorKind = "PERSISTENCE"
)

// Error is a typed, user-displayable failure. Supports errors.As.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions satisfies the graphql-go extended-error interface so responses
// carry the kind as a "code" extension next to the display message.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Kind)}
}

// NewError builds a typed error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of err if it is a *Error, or "" otherwise.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// Shared messages reused across operations. Operation-specific messages
// live with the operation that emits them.
var (
	ErrRequiredFieldMissing = NewError(KindValidation, "Required field missing")
	ErrUnauthorized         = NewError(KindAuthorization, "Unauthorized operation")
	ErrInvalidCredentials   = NewError(KindAuthentication, "username or password not valid")
	ErrUsernameTaken        = NewError(KindConflict, "Username already taken")
)

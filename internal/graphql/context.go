package graphql

import (
	"context"

	"critterbook/internal/service"
)

type contextKey int

const (
	sessionTokenKey contextKey = iota
	credentialRecorderKey
	requestCacheKey
)

// WithSessionToken attaches the caller's opaque session token. The
// transport only attaches non-empty tokens, so absence means "no
// credential supplied".
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey, token)
}

func sessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey).(string)
	return token, ok && token != ""
}

// CredentialRecorder collects the set-credential side-effect instruction
// emitted by login/register so the transport can apply it after execution.
// Resolution of a single mutation is sequential, so no locking is needed.
type CredentialRecorder struct {
	Credential *service.SetCredential
}

// WithCredentialRecorder attaches a recorder for this request.
func WithCredentialRecorder(ctx context.Context, rec *CredentialRecorder) context.Context {
	return context.WithValue(ctx, credentialRecorderKey, rec)
}

func recordCredential(ctx context.Context, cred *service.SetCredential) {
	if rec, ok := ctx.Value(credentialRecorderKey).(*CredentialRecorder); ok {
		rec.Credential = cred
	}
}

package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critterbook/internal/domain"
	"critterbook/internal/repository/sqlite"
)

func newAuthFixture(t *testing.T) (AuthService, *sql.DB) {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	return NewAuthService(sqlite.NewUserRepository(db), sqlite.NewSessionRepository(db)), db
}

func TestRegister_CreatesUserAndSession(t *testing.T) {
	auth, db := newAuthFixture(t)
	ctx := context.Background()

	user, cred, err := auth.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, cred)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 86400, cred.MaxAge)
	// 100 bytes of entropy base64-encode to 136 characters
	assert.GreaterOrEqual(t, len(cred.Token), 136)

	session, err := sqlite.NewSessionRepository(db).Validate(ctx, cred.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)

	// hash must be bcrypt, never the raw password
	var hash string
	require.NoError(t, db.QueryRow(`SELECT password_hash FROM users WHERE username = ?`, "alice").Scan(&hash))
	assert.NotEqual(t, "pw1", hash)
	assert.Contains(t, hash, "$2a$12$")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	user, cred, err := auth.Register(ctx, "alice", "pw2")
	assert.Nil(t, user)
	assert.Nil(t, cred)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, "Username already taken", err.Error())
}

func TestLogin_Scenario(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	user, cred, err := auth.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, cred)
	assert.Equal(t, "alice", user.Username)

	_, _, wrongPassword := auth.Login(ctx, "alice", "wrong")
	require.Error(t, wrongPassword)
	assert.Equal(t, domain.KindAuthentication, domain.KindOf(wrongPassword))

	_, _, unknownUser := auth.Login(ctx, "mallory", "pw1")
	require.Error(t, unknownUser)
	assert.Equal(t, domain.KindAuthentication, domain.KindOf(unknownUser))

	// neither failure mode reveals which part was wrong
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.Equal(t, "username or password not valid", wrongPassword.Error())
}

func TestLogin_IssuesDistinctConcurrentSessions(t *testing.T) {
	auth, db := newAuthFixture(t)
	ctx := context.Background()

	_, first, err := auth.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	_, second, err := auth.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	sessions := sqlite.NewSessionRepository(db)
	for _, cred := range []*SetCredential{first, second} {
		session, err := sessions.Validate(ctx, cred.Token)
		require.NoError(t, err)
		assert.NotNil(t, session)
	}
}

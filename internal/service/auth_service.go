package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"critterbook/internal/domain"
	"critterbook/internal/repository"
)

const (
	// bcryptCost matches the registration work factor the data was
	// originally hashed with. Lowering it would silently weaken new
	// accounts relative to existing ones.
	bcryptCost = 12
	// tokenEntropyBytes of raw entropy go into each session token before
	// base64 encoding.
	tokenEntropyBytes = 100
)

// SetCredential instructs the transport layer to store the opaque session
// token as the caller's session credential. The service knows nothing about
// cookies; whatever transport sits above decides how to honor this.
type SetCredential struct {
	Token  string
	MaxAge int // seconds
}

// AuthService handles registration and login, minting a session on success.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, *SetCredential, error)
	Login(ctx context.Context, username, password string) (*domain.User, *SetCredential, error)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) AuthService {
	return &authService{users: users, sessions: sessions}
}

// Register creates the user, then a session for it. The username uniqueness
// pre-check races with the insert by design; the insert's silent-nil on a
// uniqueness violation catches the loser of that race.
func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, *SetCredential, error) {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.NewError(domain.KindOperationFailed, "Registration failed")
	}

	cred, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, cred, nil
}

// Login verifies credentials and mints a session. Unknown username and
// wrong password both yield the identical authentication error so the
// response never reveals which one was wrong.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, *SetCredential, error) {
	user, err := s.users.GetWithHashByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	cred, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return &domain.User{ID: user.ID, Username: user.Username}, cred, nil
}

func (s *authService) issueSession(ctx context.Context, userID int64) (*SetCredential, error) {
	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Create(ctx, token, userID)
	if err != nil {
		return nil, domain.NewError(domain.KindPersistence, "Sessions creation failed")
	}

	return &SetCredential{
		Token:  session.Token,
		MaxAge: int(domain.SessionTTL.Seconds()),
	}, nil
}

// generateSessionToken returns a base64-encoded token carrying 100 bytes of
// cryptographic entropy.
func generateSessionToken() (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

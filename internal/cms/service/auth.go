package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/cryptox"
	"github.com/odonlab/cms/pkg/idx"
	"github.com/odonlab/cms/pkg/jwtx"
	"github.com/odonlab/cms/pkg/slogx"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnknownUser        = errors.New("unknown user")
)

// AuthService owns registration, login, and the token-subject-to-user
// resolution used by the middleware.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string

	// TokenTTL defaults to jwtx.AccessTokenTTL when zero.
	TokenTTL time.Duration
}

// Register creates a new (non-admin) user. A duplicate username fails with
// ErrUsernameTaken; the UNIQUE constraint backs the check so concurrent
// registrations cannot both win.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "username", username)
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// usernames and wrong passwords both fail with ErrInvalidCredentials so the
// response does not leak which half was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = jwtx.AccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.Username, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	slogx.FromContext(ctx).Info("user logged in", "username", username)
	return token, nil
}

// ResolveUser maps a verified token subject back to a directory record.
// A subject with no matching user fails with ErrUnknownUser.
func (s *AuthService) ResolveUser(ctx context.Context, username string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnknownUser
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

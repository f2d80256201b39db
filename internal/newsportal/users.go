package newsportal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/K-u-n-i-n/ya-news/internal/db"
)

// Signup creates a user from the form. A taken username is reported as a
// *ValidationError on the username field that unwraps to ErrUsernameTaken.
func (m *Manager) Signup(ctx context.Context, form SignupForm) (*User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	dbUser := &db.User{
		Username:     form.Username,
		PasswordHash: string(hash),
	}
	err = m.db.CreateUser(ctx, dbUser)
	if errors.Is(err, db.ErrUniqueViolation) {
		ve := newValidationError()
		ve.Add("username", msgUsernameTaken)
		ve.err = ErrUsernameTaken
		return nil, ve
	} else if err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	m.log.Info("user signed up", "userID", dbUser.ID, "username", dbUser.Username)

	user := NewUser(dbUser)
	return &user, nil
}

// Authenticate checks the credentials of the form. Unknown users and wrong
// passwords are both reported as a *ValidationError unwrapping to ErrInvalidCredentials.
func (m *Manager) Authenticate(ctx context.Context, form LoginForm) (*User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	dbUser, err := m.db.UserByUsername(ctx, form.Username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	}

	if dbUser == nil || bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(form.Password)) != nil {
		m.log.Info("login failed", "username", form.Username)
		ve := newValidationError()
		ve.NonField = append(ve.NonField, msgBadCredentials)
		ve.err = ErrInvalidCredentials
		return nil, ve
	}

	user := NewUser(dbUser)
	return &user, nil
}

// StartSession opens a session for user valid for the configured TTL.
func (m *Manager) StartSession(ctx context.Context, user *User) (*Session, error) {
	dbSession := &db.Session{
		Key:       strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserID:    user.ID,
		ExpiresAt: m.now().Add(m.cfg.SessionTTL),
	}
	if err := m.db.CreateSession(ctx, dbSession); err != nil {
		return nil, fmt.Errorf("db create session: %w", err)
	}

	session := NewSession(dbSession)
	session.User = *user
	return &session, nil
}

// UserBySession resolves a session key into its user. Empty, unknown and
// expired keys yield nil, nil: the requester is anonymous.
func (m *Manager) UserBySession(ctx context.Context, key string) (*User, error) {
	if key == "" {
		return nil, nil
	}

	dbSession, err := m.db.ActiveSession(ctx, key, m.now())
	if err != nil {
		return nil, fmt.Errorf("db get session: %w", err)
	} else if dbSession == nil || dbSession.User == nil {
		return nil, nil
	}

	user := NewUser(dbSession.User)
	return &user, nil
}

func (m *Manager) EndSession(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := m.db.DeleteSession(ctx, key); err != nil {
		return fmt.Errorf("db delete session: %w", err)
	}

	return nil
}

// CleanupExpiredSessions purges expired sessions and returns how many were removed.
func (m *Manager) CleanupExpiredSessions(ctx context.Context) (int, error) {
	n, err := m.db.DeleteExpiredSessions(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("db delete expired sessions: %w", err)
	}

	return n, nil
}

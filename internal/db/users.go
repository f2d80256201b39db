package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// UserByUsername returns nil, nil when no such user exists.
func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// CreateUser returns ErrUniqueViolation when the username is taken.
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.db.ModelContext(ctx, user).
		Returning(`"userId", "dateJoined"`).
		Insert()
	if isUniqueViolation(err) {
		return fmt.Errorf("insert user %q: %w", user.Username, ErrUniqueViolation)
	} else if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *Repository) CreateSession(ctx context.Context, session *Session) error {
	_, err := r.db.ModelContext(ctx, session).
		Returning(`"createdAt"`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// ActiveSession returns the session with its user if it has not expired at now.
// Missing and expired sessions both yield nil, nil.
func (r *Repository) ActiveSession(ctx context.Context, key string, now time.Time) (*Session, error) {
	session := &Session{}
	err := r.db.ModelContext(ctx, session).
		Relation(Columns.Session.User).
		Where(`"t"."sessionKey" = ?`, key).
		Where(`"t"."expiresAt" > ?`, now).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (r *Repository) DeleteSession(ctx context.Context, key string) error {
	_, err := r.db.ModelContext(ctx, (*Session)(nil)).
		Where(`"t"."sessionKey" = ?`, key).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteExpiredSessions purges sessions that expired before now and returns
// how many were removed.
func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Session)(nil)).
		Where(`"t"."expiresAt" <= ?`, now).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return res.RowsAffected(), nil
}

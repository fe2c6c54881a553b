package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"usersvc/internal/app/user"
)

// UserStore is the PostgreSQL implementation of user.Store.
type UserStore struct {
	q *Queries
}

// NewUserStore returns a UserStore running its statements on db.
func NewUserStore(db DBTX) *UserStore {
	return &UserStore{q: New(db)}
}

// Create implements user.Store. The unique index on email turns a concurrent
// duplicate into user.ErrDuplicateEmail.
func (s *UserStore) Create(ctx context.Context, nu user.NewUser) (*user.User, error) {
	row, err := s.q.CreateUser(ctx, CreateUserParams{
		Name:         nu.Name,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		Avatar:       nu.Avatar,
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return toUser(row), nil
}

// FindByEmail implements user.Store.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := s.q.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return toUser(row), nil
}

// FindByID implements user.Store.
func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	return toUser(row), nil
}

func mapLookupErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return user.ErrNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func toUser(row UserRow) *user.User {
	return &user.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Avatar:       row.Avatar,
		Date:         row.CreatedAt.UTC(),
	}
}

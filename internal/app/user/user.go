/*
Package user contains the user identity record and the credential store contract.

A User is created once by registration and never mutated afterwards. Stores must
enforce email uniqueness themselves so that concurrent registrations of the same
address cannot both succeed.
*/
package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by a Store when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned by Store.Create when the email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

// User is a registered account.
type User struct {
	// ID is assigned by the store on creation.
	ID uuid.UUID `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email is the unique, case-sensitive login key.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. It is never serialized.
	PasswordHash string `json:"-"`

	// Avatar is the avatar URL derived from Email at registration.
	Avatar string `json:"avatar"`

	// Date is the creation time.
	Date time.Time `json:"date"`
}

// NewUser holds the fields of a user about to be created.
type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
}

// Store persists users.
type Store interface {
	// Create inserts u and returns the stored record. ErrDuplicateEmail if the email exists.
	Create(ctx context.Context, u NewUser) (*User, error)

	// FindByEmail returns the user with exactly this email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with this id, or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying the authenticated user.
func WithContext(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the authenticated user stored in ctx, or nil.
func FromContext(ctx context.Context) *User {
	u, _ := ctx.Value(contextKey{}).(*User)
	return u
}

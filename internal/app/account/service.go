/*
Package account implements the user account flows: registration, login and the
resolution of a presented bearer token back to a stored user.
*/
package account

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"usersvc/internal/app/user"
	"usersvc/internal/pkg/auth/jwt"
	"usersvc/internal/pkg/errs"
	"usersvc/internal/pkg/logx"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) (bool, error)
}

// TokenIssuer signs and verifies identity tokens.
type TokenIssuer interface {
	Issue(payload jwt.Payload) (string, error)
	Parse(token string) (*jwt.Payload, error)
}

// AvatarSource derives an avatar URL from an email address.
type AvatarSource interface {
	URL(email string) string
}

// ErrUnauthenticated is returned by Authenticate for any token that does not
// resolve to an existing user. Callers treat the request as anonymous.
var ErrUnauthenticated = errors.New("unauthenticated")

// Service runs the account flows against a user.Store.
type Service struct {
	store   user.Store
	hasher  PasswordHasher
	tokens  TokenIssuer
	avatars AvatarSource
}

// NewService wires a Service.
func NewService(store user.Store, hasher PasswordHasher, tokens TokenIssuer, avatars AvatarSource) *Service {
	return &Service{
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
		avatars: avatars,
	}
}

// Register validates in, creates the user and returns the stored record.
// Errors are *errs.CustomError values: ErrInvalidParams with per-field messages,
// ErrEmailAlreadyExists, or ErrUnknown for hashing and store failures.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	if err := validationError(in.Validate()); err != nil {
		return nil, errs.From(err)
	}

	_, err := s.store.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, errs.NewError(errs.ErrEmailAlreadyExists)
	case !errors.Is(err, user.ErrNotFound):
		return nil, errs.NewError(errs.ErrUnknown, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, errs.NewError(errs.ErrUnknown, err)
	}

	created, err := s.store.Create(ctx, user.NewUser{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       s.avatars.URL(in.Email),
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			logx.Warn("registration conflict: email inserted concurrently", "email", in.Email)
			return nil, errs.NewError(errs.ErrEmailAlreadyExists)
		}
		return nil, errs.NewError(errs.ErrUnknown, err)
	}

	logx.Info("user registered", "user_id", created.ID.String())
	return created, nil
}

// Login verifies the credentials in in and returns a bearer token value
// ("Bearer <jwt>") valid for jwt.UserIdentityExpiration.
func (s *Service) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := validationError(in.Validate()); err != nil {
		return "", errs.From(err)
	}

	u, err := s.store.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", errs.NewError(errs.ErrUserNotFound)
		}
		return "", errs.NewError(errs.ErrUnknown, err)
	}

	ok, err := s.hasher.Compare(u.PasswordHash, in.Password)
	if err != nil {
		return "", errs.NewError(errs.ErrUnknown, err)
	}
	if !ok {
		logx.Warn("login: password mismatch", "user_id", u.ID.String())
		return "", errs.NewError(errs.ErrPasswordIncorrect)
	}

	token, err := s.tokens.Issue(jwt.Payload{
		ID:     u.ID.String(),
		Name:   u.Name,
		Avatar: u.Avatar,
	})
	if err != nil {
		return "", errs.NewError(errs.ErrUnknown, err)
	}

	return jwt.FormatBearer(token), nil
}

// Authenticate verifies token and loads the user it names. Every failure,
// including store errors, is reported as ErrUnauthenticated; store errors are
// logged.
func (s *Service) Authenticate(ctx context.Context, token string) (*user.User, error) {
	payload, err := s.tokens.Parse(token)
	if err != nil {
		logx.Debug("rejected bearer token", "reason", err.Error())
		return nil, ErrUnauthenticated
	}

	id, err := uuid.Parse(payload.ID)
	if err != nil {
		logx.Warn("bearer token carries a malformed user id", "id", payload.ID)
		return nil, ErrUnauthenticated
	}

	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			logx.Error(err, "authenticate: user lookup failed", "user_id", id.String())
		}
		return nil, ErrUnauthenticated
	}

	return u, nil
}

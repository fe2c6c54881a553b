/*
Package jwt issues and verifies the HS256 bearer tokens that identify users.
*/
package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// UserIdentityExpiration is the lifetime of a user identity token.
	UserIdentityExpiration = time.Hour

	// BearerScheme is the Authorization scheme tokens are presented with.
	BearerScheme = "Bearer"
)

var (
	// ErrInvalidToken is returned for tokens that fail signature, algorithm or claims checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for well-signed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingBearer is returned when an Authorization value is not "Bearer <token>".
	ErrMissingBearer = errors.New("missing bearer token")
)

// Issuer signs and verifies identity tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// Option customizes an Issuer.
type Option func(*Issuer)

// WithClock replaces the time source used for iat/exp and for verification.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer returns an Issuer signing with secret.
func NewIssuer(secret string, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("jwt: empty signing secret")
	}

	i := &Issuer{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// Issue signs payload with fresh iat and exp claims. The payload is copied.
func (i *Issuer) Issue(payload Payload) (string, error) {
	now := i.now()

	payload.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(UserIdentityExpiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &payload)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies tokenString and returns its payload. Expired tokens yield
// ErrTokenExpired; every other failure yields ErrInvalidToken.
func (i *Issuer) Parse(tokenString string) (*Payload, error) {
	payload := &Payload{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		payload,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || payload.ID == "" {
		return nil, ErrInvalidToken
	}

	return payload, nil
}

// FormatBearer renders token as an Authorization header value.
func FormatBearer(token string) string {
	return BearerScheme + " " + token
}

// ExtractBearer returns the token of a "Bearer <token>" Authorization value.
// The scheme is matched case-insensitively.
func ExtractBearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, BearerScheme) {
		return "", ErrMissingBearer
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}

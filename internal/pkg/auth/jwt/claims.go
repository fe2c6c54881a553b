package jwt

import "github.com/golang-jwt/jwt/v5"

// Payload is the claims set carried by a user identity token.
// The custom fields mirror what a client needs to render the signed-in user
// without another round trip; exp and iat live in RegisteredClaims.
type Payload struct {
	jwt.RegisteredClaims

	// ID is the user's store-assigned identifier.
	ID string `json:"id"`

	// Name is the display name at the time the token was issued.
	Name string `json:"name"`

	// Avatar is the avatar URL at the time the token was issued.
	Avatar string `json:"avatar"`
}

// Package avatar derives a user's avatar URL from their email address.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

const gravatarBase = "https://www.gravatar.com/avatar/"

// Gravatar builds Gravatar image URLs. The zero value is not usable; use NewGravatar.
type Gravatar struct {
	query string
}

// NewGravatar returns a Gravatar for size px images with the given rating and
// default-image fallback (e.g. "pg", "mm").
func NewGravatar(size int, rating, fallback string) *Gravatar {
	q := url.Values{}
	q.Set("s", strconv.Itoa(size))
	q.Set("r", rating)
	q.Set("d", fallback)
	return &Gravatar{query: q.Encode()}
}

// Default is the 200px, pg-rated, mystery-person configuration.
func Default() *Gravatar {
	return NewGravatar(200, "pg", "mm")
}

// URL returns the avatar URL for email. Gravatar hashes the trimmed, lowercased
// address. A blank email yields the placeholder image.
func (g *Gravatar) URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return g.Placeholder()
	}

	sum := md5.Sum([]byte(normalized))
	return gravatarBase + hex.EncodeToString(sum[:]) + "?" + g.query
}

// Placeholder is the URL of the default image, independent of any email.
func (g *Gravatar) Placeholder() string {
	return gravatarBase + "?" + g.query
}

package domain

import (
	"errors"
	"time"
)

// Organization is a tenant. The slug is the sole external routing key: it is
// unique, immutable after creation, and appears as the first path segment of
// every tenant-scoped URL.
type Organization struct {
	ID        string
	Slug      string
	Name      string
	Metadata  map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	slugMinLen = 1
	slugMaxLen = 63
)

// ErrInvalidSlug reports a slug that does not match the allowed form.
var ErrInvalidSlug = errors.New("domain: invalid organization slug")

// reservedSlugs are names claimed by top-level routes; they can never name a
// tenant, so organization creation rejects them. Every routing bypass prefix
// that is also a well-formed slug must appear here, or the tenant's portal
// paths would be shadowed by the bypass.
var reservedSlugs = map[string]struct{}{
	"login":               {},
	"signup":              {},
	"forgot-password":     {},
	"select-organization": {},
	"organizations":       {},
	"assets":              {},
	"static":              {},
	"api":                 {},
	"v1":                  {},
	"swagger":             {},
	"livez":               {},
	"readyz":              {},
}

// ReservedSlug reports whether s collides with a top-level route name.
func ReservedSlug(s string) bool {
	_, ok := reservedSlugs[s]
	return ok
}

// ValidSlug reports whether s is a well-formed tenant slug: lowercase
// alphanumerics separated by single hyphens, 1-63 chars. Path segments that
// are not valid slugs never resolve to a tenant.
func ValidSlug(s string) bool {
	if len(s) < slugMinLen || len(s) > slugMaxLen {
		return false
	}
	prevHyphen := true // leading hyphen disallowed
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			prevHyphen = false
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return !prevHyphen // trailing hyphen disallowed
}

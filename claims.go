package appclient

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// AuthClaims is the claim contract consumed from the server: a subject
// identifier, one of the historical role claim shapes, optional timestamps,
// and display fields the UI binds to.
type AuthClaims struct {
	jwt.RegisteredClaims
	RoleList    []string         `json:"roles,omitempty"`
	SingleRole  string           `json:"role,omitempty"`
	Authorities []authorityClaim `json:"authorities,omitempty"`
	FirstName   string           `json:"firstname,omitempty"`
	LastName    string           `json:"lastname,omitempty"`
}

type authorityClaim struct {
	Authority string `json:"authority"`
}

// Subject returns the subject claim, usually the account email.
func (c *AuthClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// Roles extracts the normalized role set. Precedence, first present shape
// wins: roles array, singular role, authorities objects, then empty.
func (c *AuthClaims) Roles() RoleSet {
	switch {
	case len(c.RoleList) > 0:
		return NewRoleSet(c.RoleList...)
	case c.SingleRole != "":
		return NewRoleSet(c.SingleRole)
	case len(c.Authorities) > 0:
		raw := make([]string, 0, len(c.Authorities))
		for _, a := range c.Authorities {
			raw = append(raw, a.Authority)
		}
		return NewRoleSet(raw...)
	default:
		return RoleSet{}
	}
}

// Expires returns the expiration time, or the zero time when the claim is
// absent.
func (c *AuthClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// Issued returns the issued at time, or the zero time when the claim is
// absent.
func (c *AuthClaims) Issued() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// DisplayName joins the passthrough name fields, falling back to the
// subject.
func (c *AuthClaims) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if name == "" {
		return c.Subject()
	}
	return name
}

// DecodeToken performs a structural parse of the token and returns its
// claims. The signature is not verified; that trust decision belongs to
// the server, the client only reads the payload for UI and authorization
// hinting. A structurally valid token with missing optional fields decodes
// fine and degrades to empty roles and blank display fields.
//
// Pure and idempotent: same input, same output, no side effects.
func DecodeToken(token string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}
	return claims, nil
}

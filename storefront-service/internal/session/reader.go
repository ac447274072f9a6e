package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

var (
	ErrNoToken        = errors.New("no token")
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token expired")
)

const defaultName = "User"

// Claims mirrors the payload the REST backend signs into its tokens.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Identity is what the pages may show about the signed-in account. It comes
// from an unverified token and must never be used to authorize anything;
// the REST backend does that with its own copy of the key.
type Identity struct {
	Name      string
	UserID    string
	Role      models.Role
	ExpiresAt time.Time
}

func (i Identity) Anonymous() bool {
	return i.UserID == "" && i.Role == models.RoleUnknown
}

type Reader struct {
	parser *jwt.Parser
	now    func() time.Time
}

func NewReader(now func() time.Time) *Reader {
	if now == nil {
		now = time.Now
	}
	return &Reader{parser: jwt.NewParser(), now: now}
}

// Decode reads the claims of token without checking its signature. A token
// without an exp claim never expires.
func (r *Reader) Decode(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoToken
	}
	claims := &Claims{}
	if _, _, err := r.parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	id := Identity{
		Name:   claims.Name,
		UserID: claims.ID,
		Role:   models.ParseRole(claims.Role),
	}
	if id.Name == "" {
		id.Name = defaultName
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
		if id.ExpiresAt.Before(r.now()) {
			return Identity{}, ErrExpiredToken
		}
	}
	return id, nil
}

package ports

import (
	"time"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// TokenClaims is the identity payload carried by a session token.
type TokenClaims struct {
	UserID    string
	Username  string
	Email     string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer creates signed, time-boxed session tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier validates a session token and extracts its claims.
// Failures map to domain.ErrTokenExpired, domain.ErrTokenMalformed or
// domain.ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

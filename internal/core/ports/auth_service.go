package ports

import (
	"context"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// AuthService covers self-service account flows: registration and login.
type AuthService interface {
	// Register creates a guest account and returns a fresh session token.
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	// Login validates credentials (username or email) and returns a
	// session token on success.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}

package ports

import (
	"context"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// CreateUserInput is the DTO for admin-provisioned account creation.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
	// ActorID is the id of the admin performing the creation.
	ActorID string
}

// UpdateUserInput is the DTO for admin account updates. Empty strings
// leave the corresponding field untouched; Password is re-hashed.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// UserService covers admin user management and startup provisioning.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes an account. Deleting the actor's own account fails
	// with domain.ErrSelfDeletion.
	Delete(ctx context.Context, actorID, id string) error
	// EnsureDefaultAdmin provisions the default admin account when no
	// admin exists yet. Idempotent.
	EnsureDefaultAdmin(ctx context.Context, username, email, password string) error
}

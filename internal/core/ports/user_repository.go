package ports

import (
	"context"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
)

// UserUpdate carries the partial fields of an admin user update.
// Nil pointers leave the corresponding field untouched.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
}

// UserRepository defines persistence operations for user accounts.
// Uniqueness of username and email is enforced by the store's own
// constraints; violations surface as domain.ErrUserExists.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIdentifier resolves a user by username or normalized email.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

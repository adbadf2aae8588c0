package ports

import (
	"context"

	"github.com/household-store/admin-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email is the natural key and is unique across all users.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindByID returns domain.ErrUserNotFound for absent or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Save inserts the user when ID is empty and replaces the stored
	// document otherwise. Inserting a taken email returns domain.ErrEmailExists.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, user *domain.User) error
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Search matches a case-insensitive substring against email, first
	// name, or last name and returns the union of matches.
	Search(ctx context.Context, term string) ([]*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}

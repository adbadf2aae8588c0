package ports

import (
	"context"
	"time"

	"github.com/household-store/admin-api/internal/core/domain"
)

// CreateUserInput carries the data for admin-initiated account creation.
// Unlike RegisterInput the role is caller-supplied.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Surname   string
	Telephone string
	BirthDate time.Time
	Role      domain.Role
}

// UserService defines the role-gated user management operations. Every
// method takes the acting identity explicitly as actorEmail; nothing is
// resolved from ambient state.
type UserService interface {
	List(ctx context.Context, actorEmail string) ([]*domain.User, error)
	// Search matches a case-insensitive substring against email, first
	// name, or last name (logical OR).
	Search(ctx context.Context, actorEmail, term string) ([]*domain.User, error)
	ListByRole(ctx context.Context, actorEmail string, role domain.Role) ([]*domain.User, error)
	CreateWithRole(ctx context.Context, actorEmail string, input CreateUserInput) (*domain.User, error)
	ChangeRole(ctx context.Context, actorEmail, targetID string, newRole domain.Role) (*domain.User, error)
	SetActive(ctx context.Context, actorEmail, targetID string, active bool) (*domain.User, error)
	Delete(ctx context.Context, actorEmail, targetID string) error
	ManageableRoles(ctx context.Context, actorEmail string) ([]domain.Role, error)
}

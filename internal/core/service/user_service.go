package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
)

// adultAge is the fallback age, in years, used when an admin creates an
// account without a birth date.
const adultAge = 18

// UserService implements the role-gated user management operations. All
// checks go through the access gate in access_gate.go; there is no second
// authorization path.
type UserService struct {
	repo      ports.UserRepository
	hasher    ports.PasswordHasher
	logger    zerolog.Logger
	preDelete func(*domain.User)
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// WithPreDeleteHook registers a hook invoked with the target account just
// before it is removed from the store.
func (s *UserService) WithPreDeleteHook(hook func(*domain.User)) *UserService {
	s.preDelete = hook
	return s
}

// requireActor resolves the acting identity from the store. An empty email
// or an unknown account means the request is not authenticated.
func (s *UserService) requireActor(ctx context.Context, actorEmail string) (*domain.User, error) {
	if actorEmail == "" {
		return nil, domain.ErrUnauthenticated
	}
	actor, err := s.repo.FindByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return actor, nil
}

func (s *UserService) requireManager(ctx context.Context, actorEmail string) (*domain.User, error) {
	actor, err := s.requireActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if err := requireManagement(actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *UserService) List(ctx context.Context, actorEmail string) ([]*domain.User, error) {
	if _, err := s.requireManager(ctx, actorEmail); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

// Search matches a case-insensitive substring against email, first name,
// or last name and returns the union of matches.
func (s *UserService) Search(ctx context.Context, actorEmail, term string) ([]*domain.User, error) {
	if _, err := s.requireManager(ctx, actorEmail); err != nil {
		return nil, err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.FindAll(ctx)
	}
	return s.repo.Search(ctx, term)
}

func (s *UserService) ListByRole(ctx context.Context, actorEmail string, role domain.Role) ([]*domain.User, error) {
	if _, err := s.requireManager(ctx, actorEmail); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.repo.FindByRole(ctx, role)
}

// CreateWithRole creates an account with a caller-supplied role. The actor
// cannot grant a role it could not manage. A missing birth date defaults to
// adultAge years before today.
func (s *UserService) CreateWithRole(ctx context.Context, actorEmail string, input ports.CreateUserInput) (*domain.User, error) {
	actor, err := s.requireManager(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if err := requireCanGrant(actor, input.Role); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	birthDate := input.BirthDate
	if birthDate.IsZero() {
		birthDate = now.AddDate(-adultAge, 0, 0)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Surname:      input.Surname,
		Telephone:    input.Telephone,
		BirthDate:    birthDate,
		Role:         input.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("actor_email", actor.Email).
		Str("target_email", created.Email).
		Str("role", string(created.Role)).
		Msg("user created")

	return created, nil
}

// ChangeRole assigns a new role to the target account. The actor must
// manage both the target's current role and the requested one, and can
// never change its own role.
func (s *UserService) ChangeRole(ctx context.Context, actorEmail, targetID string, newRole domain.Role) (*domain.User, error) {
	actor, err := s.requireManager(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if !newRole.Valid() {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := requireCanManage(actor, target); err != nil {
		return nil, err
	}
	if err := requireCanGrant(actor, newRole); err != nil {
		return nil, err
	}
	if isSelf(actor, target) {
		return nil, domain.ErrSelfRoleChange
	}

	oldRole := target.Role
	target.Role = newRole
	target.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Save(ctx, target)
	if err != nil {
		return nil, err
	}

	// Audit line: who changed whom, from what, to what.
	s.logger.Info().
		Str("actor_email", actor.Email).
		Str("target_email", updated.Email).
		Str("old_role", string(oldRole)).
		Str("new_role", string(newRole)).
		Msg("user role changed")

	return updated, nil
}

// SetActive activates or deactivates the target account. Deactivating the
// acting account is forbidden; re-activating it is allowed.
func (s *UserService) SetActive(ctx context.Context, actorEmail, targetID string, active bool) (*domain.User, error) {
	actor, err := s.requireManager(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := requireCanManage(actor, target); err != nil {
		return nil, err
	}
	if isSelf(actor, target) && !active {
		return nil, domain.ErrSelfDeactivation
	}

	target.Active = active
	target.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Save(ctx, target)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("actor_email", actor.Email).
		Str("target_email", updated.Email).
		Bool("active", active).
		Msg("user status changed")

	return updated, nil
}

// Delete removes the target account. Deleting the acting account is always
// forbidden, active or not.
func (s *UserService) Delete(ctx context.Context, actorEmail, targetID string) error {
	actor, err := s.requireManager(ctx, actorEmail)
	if err != nil {
		return err
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if err := requireCanManage(actor, target); err != nil {
		return err
	}
	if isSelf(actor, target) {
		return domain.ErrSelfDeletion
	}

	if s.preDelete != nil {
		s.preDelete(target)
	}

	if err := s.repo.Delete(ctx, target); err != nil {
		return err
	}

	s.logger.Info().
		Str("actor_email", actor.Email).
		Str("target_email", target.Email).
		Msg("user deleted")

	return nil
}

// ManageableRoles returns the roles the actor may assign or manage, in
// descending privilege order.
func (s *UserService) ManageableRoles(ctx context.Context, actorEmail string) ([]domain.Role, error) {
	actor, err := s.requireManager(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	return actor.Role.ManageableRoles(), nil
}

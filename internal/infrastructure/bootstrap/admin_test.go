package bootstrap

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/infrastructure/config"
)

type fakeRepo struct {
	byEmail map[string]*domain.User
	saves   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*domain.User{}}
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrEmailExists
	}
	r.saves++
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *fakeRepo) Delete(context.Context, *domain.User) error { return nil }

func (r *fakeRepo) FindAll(context.Context) ([]*domain.User, error) { return nil, nil }

func (r *fakeRepo) Search(context.Context, string) ([]*domain.User, error) { return nil, nil }

func (r *fakeRepo) FindByRole(context.Context, domain.Role) ([]*domain.User, error) {
	return nil, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (fakeHasher) Matches(plaintext, hash string) bool   { return hash == "hashed:"+plaintext }

func testBootstrapConfig() config.BootstrapConfig {
	return config.BootstrapConfig{
		AdminEmail:      "admin@household.store",
		AdminPassword:   "Admin123!",
		ManagerEmail:    "manager@household.store",
		ManagerPassword: "Manager123!",
	}
}

func TestSeedDefaultAccounts_FreshStore(t *testing.T) {
	repo := newFakeRepo()

	if err := SeedDefaultAccounts(context.Background(), repo, fakeHasher{}, testBootstrapConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	admin, err := repo.FindByEmail(context.Background(), "admin@household.store")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleAdmin || !admin.Active {
		t.Fatalf("unexpected admin account: %+v", admin)
	}
	if admin.PasswordHash != "hashed:Admin123!" {
		t.Fatalf("admin password must be stored hashed, got %q", admin.PasswordHash)
	}

	manager, err := repo.FindByEmail(context.Background(), "manager@household.store")
	if err != nil {
		t.Fatalf("manager not seeded: %v", err)
	}
	if manager.Role != domain.RoleManager {
		t.Fatalf("unexpected manager role: %s", manager.Role)
	}
}

func TestSeedDefaultAccounts_ExistingAccountsUntouched(t *testing.T) {
	repo := newFakeRepo()
	repo.byEmail["admin@household.store"] = &domain.User{
		Email:        "admin@household.store",
		PasswordHash: "hashed:rotated-password",
		Role:         domain.RoleAdmin,
		Active:       true,
	}

	if err := SeedDefaultAccounts(context.Background(), repo, fakeHasher{}, testBootstrapConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	admin, _ := repo.FindByEmail(context.Background(), "admin@household.store")
	if admin.PasswordHash != "hashed:rotated-password" {
		t.Fatal("existing admin account must not be overwritten")
	}
	if repo.saves != 1 {
		t.Fatalf("expected only the manager to be created, saves = %d", repo.saves)
	}
}

func TestSeedDefaultAccounts_EmptyConfigSkipsSeeding(t *testing.T) {
	repo := newFakeRepo()

	if err := SeedDefaultAccounts(context.Background(), repo, fakeHasher{}, config.BootstrapConfig{}, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("expected no accounts created, saves = %d", repo.saves)
	}
}

func TestSeedDefaultAccounts_LosingTheRaceIsNotAnError(t *testing.T) {
	repo := newFakeRepo()
	raced := &racedRepo{fakeRepo: repo}

	if err := SeedDefaultAccounts(context.Background(), raced, fakeHasher{}, testBootstrapConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

// racedRepo reports emails as absent but rejects every insert, mimicking a
// replica that seeded the accounts between the check and the write.
type racedRepo struct {
	*fakeRepo
}

func (r *racedRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (r *racedRepo) Save(context.Context, *domain.User) (*domain.User, error) {
	return nil, domain.ErrEmailExists
}

// Package bootstrap seeds the default administrative accounts at startup so
// a fresh deployment is manageable without manual database edits.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
	"github.com/household-store/admin-api/internal/infrastructure/config"
)

// SeedDefaultAccounts creates the default ADMIN and MANAGER accounts when
// they do not exist yet. Existing accounts are left untouched, so rotated
// passwords or demoted roles survive restarts.
func SeedDefaultAccounts(ctx context.Context, repo ports.UserRepository, hasher ports.PasswordHasher, cfg config.BootstrapConfig, log zerolog.Logger) error {
	accounts := []struct {
		email     string
		password  string
		firstName string
		role      domain.Role
	}{
		{cfg.AdminEmail, cfg.AdminPassword, "Admin", domain.RoleAdmin},
		{cfg.ManagerEmail, cfg.ManagerPassword, "Manager", domain.RoleManager},
	}

	for _, a := range accounts {
		if a.email == "" || a.password == "" {
			continue
		}
		created, err := seedAccount(ctx, repo, hasher, a.email, a.password, a.firstName, a.role)
		if err != nil {
			return fmt.Errorf("seed %s account: %w", a.role, err)
		}
		if created {
			log.Info().
				Str("email", a.email).
				Str("role", string(a.role)).
				Msg("default account created")
		}
	}
	return nil
}

func seedAccount(ctx context.Context, repo ports.UserRepository, hasher ports.PasswordHasher, email, password, firstName string, role domain.Role) (bool, error) {
	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	_, err = repo.Save(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     "Account",
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Another replica may have won the race for the same email.
		if errors.Is(err, domain.ErrEmailExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

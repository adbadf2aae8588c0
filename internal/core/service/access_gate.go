package service

import "github.com/household-store/admin-api/internal/core/domain"

// The access gate is the single authorization path for every mutating user
// management operation. Checks run in a fixed order and any failure aborts
// the operation before persistence:
//
//  1. the actor must resolve to a stored account (requireActor)
//  2. the actor must hold ADMIN or MANAGER (requireManagement)
//  3. the actor's role must manage the target's current role (requireCanManage)
//  4. role changes only: the actor's role must also manage the requested
//     role (requireCanGrant)
//  5. self-target prohibitions, enforced per operation on top of the
//     hierarchy: role changes never target the actor; deactivation and
//     deletion never target the actor (self-activation is allowed)

func requireManagement(actor *domain.User) error {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleManager {
		return domain.ErrForbidden
	}
	return nil
}

func requireCanManage(actor, target *domain.User) error {
	if !actor.Role.CanManage(target.Role) {
		return domain.ErrInsufficientRights
	}
	return nil
}

func requireCanGrant(actor *domain.User, role domain.Role) error {
	if !actor.Role.CanManage(role) {
		return domain.ErrInsufficientRights
	}
	return nil
}

func isSelf(actor, target *domain.User) bool {
	if actor.ID != "" && target.ID != "" {
		return actor.ID == target.ID
	}
	return actor.Email == target.Email
}

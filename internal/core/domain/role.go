package domain

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleUser     Role = "USER"
	RoleCustomer Role = "CUSTOMER"
)

// roleRank orders roles by privilege. Higher rank manages lower.
var roleRank = map[Role]int{
	RoleAdmin:    3,
	RoleManager:  2,
	RoleUser:     1,
	RoleCustomer: 0,
}

// AllRoles lists every defined role in descending privilege order.
var AllRoles = []Role{RoleAdmin, RoleManager, RoleUser, RoleCustomer}

// ParseRole converts a string into a Role. The match is exact; unknown
// values return ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// CanManage reports whether accounts holding r may manage accounts holding
// target. ADMIN manages every role including other admins; all other roles
// manage only strictly lower roles. Operations that must never target the
// acting account enforce that separately, on top of this relation.
func (r Role) CanManage(target Role) bool {
	sr, ok := roleRank[r]
	if !ok {
		return false
	}
	tr, ok := roleRank[target]
	if !ok {
		return false
	}
	if r == RoleAdmin {
		return true
	}
	return sr > tr
}

// ManageableRoles returns the roles r may manage, in descending privilege
// order. The order is deterministic across calls.
func (r Role) ManageableRoles() []Role {
	out := make([]Role, 0, len(AllRoles))
	for _, target := range AllRoles {
		if r.CanManage(target) {
			out = append(out, target)
		}
	}
	return out
}

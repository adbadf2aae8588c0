package domain

import (
	"errors"
	"testing"
)

func TestRole_CanManage(t *testing.T) {
	cases := []struct {
		actor  Role
		target Role
		want   bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleCustomer, true},

		{RoleManager, RoleAdmin, false},
		{RoleManager, RoleManager, false},
		{RoleManager, RoleUser, true},
		{RoleManager, RoleCustomer, true},

		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleManager, false},
		{RoleUser, RoleUser, false},
		{RoleUser, RoleCustomer, true},

		{RoleCustomer, RoleAdmin, false},
		{RoleCustomer, RoleManager, false},
		{RoleCustomer, RoleUser, false},
		{RoleCustomer, RoleCustomer, false},
	}

	for _, tc := range cases {
		if got := tc.actor.CanManage(tc.target); got != tc.want {
			t.Errorf("%s.CanManage(%s) = %v, want %v", tc.actor, tc.target, got, tc.want)
		}
	}
}

func TestRole_CanManage_UnknownRoles(t *testing.T) {
	if Role("SUPERUSER").CanManage(RoleUser) {
		t.Error("unknown actor role must not manage anyone")
	}
	if RoleAdmin.CanManage(Role("SUPERUSER")) {
		t.Error("no role manages an unknown target role")
	}
}

func TestRole_ManageableRoles(t *testing.T) {
	cases := []struct {
		actor Role
		want  []Role
	}{
		{RoleAdmin, []Role{RoleAdmin, RoleManager, RoleUser, RoleCustomer}},
		{RoleManager, []Role{RoleUser, RoleCustomer}},
		{RoleUser, []Role{RoleCustomer}},
		{RoleCustomer, nil},
	}

	for _, tc := range cases {
		got := tc.actor.ManageableRoles()
		if len(got) != len(tc.want) {
			t.Errorf("%s.ManageableRoles() = %v, want %v", tc.actor, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s.ManageableRoles()[%d] = %s, want %s", tc.actor, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		parsed, err := ParseRole(string(r))
		if err != nil {
			t.Fatalf("ParseRole(%s): %v", r, err)
		}
		if parsed != r {
			t.Fatalf("ParseRole(%s) = %s", r, parsed)
		}
	}

	for _, s := range []string{"", "admin", "Admin", "ROOT"} {
		if _, err := ParseRole(s); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("ParseRole(%q) = %v, want ErrInvalidRole", s, err)
		}
	}
}

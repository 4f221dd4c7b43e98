package domain

import "testing"

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Errorf("pending should not be terminal")
	}
	if !StatusApproved.Terminal() {
		t.Errorf("approved should be terminal")
	}
	if !StatusRejected.Terminal() {
		t.Errorf("rejected should be terminal")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleDesigner, RoleVisitor} {
		if !r.Valid() {
			t.Errorf("role %s should be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Errorf("unknown role should be invalid")
	}
}

package authorization

import "fmt"

// Role is the closed set of platform roles, ascending in privilege.
type Role string

const (
	RoleViewer  Role = "viewer"
	RoleAnalyst Role = "analyst"
	RoleAdmin   Role = "admin"
)

var validRoles = map[Role]bool{
	RoleViewer:  true,
	RoleAnalyst: true,
	RoleAdmin:   true,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// AllRoles returns the roles in ascending privilege order.
func AllRoles() []Role {
	return []Role{RoleViewer, RoleAnalyst, RoleAdmin}
}

// Inherits returns the role whose permission set this role is a strict
// superset of, or empty for the base role.
func (r Role) Inherits() Role {
	switch r {
	case RoleAnalyst:
		return RoleViewer
	case RoleAdmin:
		return RoleAnalyst
	}
	return ""
}

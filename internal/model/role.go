package model

import "fmt"

// Role is the closed set of account roles. Every authenticated user has
// exactly one role and is confined to the matching path prefix.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// AllRoles lists every valid role.
var AllRoles = []Role{RoleGuest, RoleOperator, RoleAdmin}

// ParseRole converts a raw string into a Role or fails.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleOperator, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleOperator, RoleAdmin:
		return true
	}
	return false
}

// HomePath returns the dashboard prefix a role is confined to.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleOperator:
		return "/operator"
	default:
		return "/guest"
	}
}

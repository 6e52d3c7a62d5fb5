// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is what a signed-in caller may do. Anonymous shoppers have none.
type Role string

const (
	// RoleCustomer indicates a signed-in shopper.
	RoleCustomer Role = "customer"
	// RoleOperator indicates store staff allowed to manage orders.
	RoleOperator Role = "operator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOperator:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings renders the roles as JWT claim values.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings parses token claims into Roles. Unknown roles are dropped,
// matching ignores case and surrounding space, and duplicates collapse.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(strings.ToLower(strings.TrimSpace(s)))
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}

package entities

import (
	"fmt"
	"strings"
)

// Role is the view mode a client picks. It is not a security boundary.
type Role string

const (
	RoleServiceManager   Role = "service_manager"
	RoleTechnician       Role = "technician"
	RolePartsManager     Role = "parts_manager"
	RoleInventoryManager Role = "inventory_manager"
	RoleBilling          Role = "billing"
)

var roles = []Role{
	RoleServiceManager,
	RoleTechnician,
	RolePartsManager,
	RoleInventoryManager,
	RoleBilling,
}

// Roles returns every known role in display order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

func ParseRole(v string) (Role, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, r := range roles {
		if string(r) == v {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", v)
}

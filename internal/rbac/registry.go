package rbac

import "jybooking/internal/domain"

// Wildcard grants every permission unconditionally. It is the only
// reserved token; everything else is matched as an exact string.
const Wildcard = "*"

// rolePermissions is the process-wide role → capability table. It is
// fixed at compile time and only readable through the functions below.
var rolePermissions = map[domain.UserRole][]string{
	domain.RoleAdmin: {Wildcard},

	domain.RoleHost: {
		"homestay:create",
		"homestay:read",
		"homestay:update",
		"homestay:delete",
		"booking:read",
		"booking:update",
		"profile:read",
		"profile:update",
	},

	domain.RoleGuide: {
		"guide:read",
		"guide:update",
		"booking:read",
		"profile:read",
		"profile:update",
	},

	domain.RoleCustomer: {
		"homestay:read",
		"guide:read",
		"booking:create",
		"booking:read",
		"booking:cancel",
		"profile:read",
		"profile:update",
	},
}

// HasPermission reports whether the role is granted the permission.
// Unknown roles have no permissions.
func HasPermission(role domain.UserRole, permission string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == Wildcard || p == permission {
			return true
		}
	}
	return false
}

// PermissionsFor returns a copy of the role's permission set, empty for
// unknown roles.
func PermissionsFor(role domain.UserRole) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// IsValidRole reports whether the candidate names one of the closed set
// of roles.
func IsValidRole(candidate string) bool {
	_, ok := rolePermissions[domain.UserRole(candidate)]
	return ok
}

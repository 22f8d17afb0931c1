package constants

type Role int

const (
	RoleUser Role = iota
	RoleBranchManager
	RoleAdmin
	RoleSuperAdmin
	RoleUnknown
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleBranchManager:
		return "branch_manager"
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "superadmin"
	default:
		return "unknown"
	}
}

var roleMap = map[string]Role{
	"user":           RoleUser,
	"branch_manager": RoleBranchManager,
	"admin":          RoleAdmin,
	"superadmin":     RoleSuperAdmin,
}

func ParseRole(s string) Role {
	if role, ok := roleMap[s]; ok {
		return role
	}
	return RoleUnknown
}

// IsAssignable reports whether r is a role that can be granted to an account.
func (r Role) IsAssignable() bool {
	return r == RoleUser || r == RoleBranchManager || r == RoleAdmin || r == RoleSuperAdmin
}

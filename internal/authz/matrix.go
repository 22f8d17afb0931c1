// Package authz is the single authorization decision point for member
// mutations. Every mutating operation calls Decide (or DecideRoleChange)
// exactly once before proceeding; no handler re-derives ad hoc role checks.
// Decisions are deterministic and side-effect-free: no I/O, no clock.
package authz

import (
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
)

// Action is a mutating operation class the matrix rules on.
type Action int

const (
	ActionUpdateMember Action = iota
	ActionCompleteDetails
	ActionReview
	ActionDeleteMember
	ActionActivateMember
	ActionDeactivateMember
	ActionManagePosts
)

func (a Action) String() string {
	switch a {
	case ActionUpdateMember:
		return "update_member"
	case ActionCompleteDetails:
		return "complete_details"
	case ActionReview:
		return "review"
	case ActionDeleteMember:
		return "delete_member"
	case ActionActivateMember:
		return "activate_member"
	case ActionDeactivateMember:
		return "deactivate_member"
	case ActionManagePosts:
		return "manage_posts"
	default:
		return "unknown"
	}
}

// Subject is the actor or target of a decision: just enough of an account to
// rule on, never the full record.
type Subject struct {
	UID      string
	Role     constants.Role
	BranchID string
}

// Decision is the matrix verdict. Reason is for logs and tests only; the HTTP
// boundary always responds with a generic denial so role topology never leaks.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Decide rules on actor performing action on target. A nil target means the
// action has no target account (not used by member actions today, but posts
// management passes nil).
func Decide(actor Subject, target *Subject, action Action) Decision {
	if target == nil {
		return decideUntargeted(actor, action)
	}

	if actor.UID == target.UID {
		// The only self-targeting mutation allowed through the matrix is
		// completing one's own registration details. Everything else goes
		// through the self-service path, which is not ruled here.
		if action == ActionCompleteDetails {
			return allow()
		}
		return deny("self-targeting mutation")
	}

	switch actor.Role {
	case constants.RoleSuperAdmin:
		return allow()

	case constants.RoleAdmin:
		if target.Role == constants.RoleAdmin || target.Role == constants.RoleSuperAdmin {
			return deny("admin cannot act on admin or superadmin accounts")
		}
		return allow()

	case constants.RoleBranchManager:
		if target.Role != constants.RoleUser {
			return deny("branch manager can act on user accounts only")
		}
		if actor.BranchID == "" {
			return deny("branch manager has no branch assigned")
		}
		// During details completion the target may not have a branch yet;
		// the transition validates the submitted branch against the actor's.
		if target.BranchID == "" && action == ActionCompleteDetails {
			return allow()
		}
		if target.BranchID != actor.BranchID {
			return deny("target belongs to a different branch")
		}
		return allow()

	default:
		return deny("role has no administrative authority")
	}
}

func decideUntargeted(actor Subject, action Action) Decision {
	if action != ActionManagePosts {
		return deny("action requires a target account")
	}
	switch actor.Role {
	case constants.RoleSuperAdmin, constants.RoleAdmin, constants.RoleBranchManager:
		return allow()
	default:
		return deny("role has no administrative authority")
	}
}

// DecideRoleChange rules on actor assigning newRole to target. branchID is
// the branch submitted with the request; assigning branch_manager without one
// is denied regardless of the actor's rank. Role assignment is an admin-level
// power: branch managers administer accounts, not roles.
func DecideRoleChange(actor, target Subject, newRole constants.Role, branchID string) Decision {
	if actor.UID == target.UID {
		return deny("self-targeting role change")
	}
	if !newRole.IsAssignable() {
		return deny("unknown role")
	}
	if newRole == constants.RoleBranchManager && branchID == "" {
		return deny("branch_manager role requires a branch")
	}

	switch actor.Role {
	case constants.RoleSuperAdmin:
		return allow()

	case constants.RoleAdmin:
		if target.Role == constants.RoleAdmin || target.Role == constants.RoleSuperAdmin {
			return deny("admin cannot act on admin or superadmin accounts")
		}
		if newRole == constants.RoleAdmin || newRole == constants.RoleSuperAdmin {
			return deny("admin cannot grant admin or superadmin")
		}
		return allow()

	default:
		return deny("role cannot assign roles")
	}
}

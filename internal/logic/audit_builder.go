package logic

import (
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogOption defines a function that configures an AuditLog object.
type AuditLogOption func(*models.AuditLog)

// WithStatusChange records the prior and new status on the entry.
func WithStatusChange(previous, next constants.MembershipStatus) AuditLogOption {
	return func(entry *models.AuditLog) {
		entry.PreviousStatus = previous.String()
		entry.NewStatus = next.String()
	}
}

// WithMetadata attaches one action-specific metadata entry.
func WithMetadata(key string, value interface{}) AuditLogOption {
	return func(entry *models.AuditLog) {
		if entry.Metadata == nil {
			entry.Metadata = make(map[string]interface{})
		}
		entry.Metadata[key] = value
	}
}

// WithNote records an optional free-form note, typically a rejection reason.
func WithNote(note string) AuditLogOption {
	return func(entry *models.AuditLog) {
		if note != "" {
			if entry.Metadata == nil {
				entry.Metadata = make(map[string]interface{})
			}
			entry.Metadata["note"] = note
		}
	}
}

// NewAuditLog is the shared constructor for audit entries using the Option
// Pattern. Timestamp stays zero here; the store stamps it with its own clock
// on insert.
func NewAuditLog(targetUID string, action constants.AuditAction, actor *models.Member, opts ...AuditLogOption) *models.AuditLog {
	entry := &models.AuditLog{
		ID:              primitive.NewObjectID(),
		UserID:          targetUID,
		Action:          action.String(),
		PerformedBy:     actor.UID,
		PerformedByRole: actor.Role,
	}

	for _, opt := range opts {
		opt(entry)
	}

	return entry
}

// buildRegisterBasicAuditLog creates the entry for the initial registration.
// The subject is its own actor at this point.
func buildRegisterBasicAuditLog(member *models.Member) *models.AuditLog {
	return NewAuditLog(member.UID, constants.AuditRegisterBasic, member,
		WithMetadata("email", member.Email))
}

// buildRegisterDetailsAuditLog creates the entry for the details-completion
// transition, capturing the assigned branch.
func buildRegisterDetailsAuditLog(actor *models.Member, targetUID string, branchID primitive.ObjectID) *models.AuditLog {
	return NewAuditLog(targetUID, constants.AuditRegisterDetails, actor,
		WithStatusChange(constants.StatusPendingDetails, constants.StatusPendingBranchReview),
		WithMetadata("branch_id", branchID.Hex()))
}

// buildReviewAuditLog picks the action from the reviewer's role and verdict.
func buildReviewAuditLog(actor *models.Member, targetUID string, approve bool, note string) *models.AuditLog {
	var action constants.AuditAction
	newStatus := constants.StatusActive
	if !approve {
		newStatus = constants.StatusRejected
	}

	if constants.ParseRole(actor.Role) == constants.RoleBranchManager {
		if approve {
			action = constants.AuditBranchManagerApproval
		} else {
			action = constants.AuditBranchManagerRejection
		}
	} else {
		if approve {
			action = constants.AuditAdminApproval
		} else {
			action = constants.AuditAdminRejection
		}
	}

	return NewAuditLog(targetUID, action, actor,
		WithStatusChange(constants.StatusPendingBranchReview, newStatus),
		WithNote(note))
}

// buildRoleUpdateAuditLog records a role grant with before and after roles.
func buildRoleUpdateAuditLog(actor *models.Member, targetUID, previousRole string, newRole constants.Role) *models.AuditLog {
	return NewAuditLog(targetUID, constants.AuditRoleUpdate, actor,
		WithMetadata("previous_role", previousRole),
		WithMetadata("new_role", newRole.String()))
}

// buildSetActiveAuditLog records an isActive flip.
func buildSetActiveAuditLog(actor *models.Member, targetUID string, active bool) *models.AuditLog {
	return NewAuditLog(targetUID, constants.AuditStatusUpdate, actor,
		WithMetadata("is_active", active))
}

// buildUserUpdateAuditLog records an administrative profile edit with the
// names of the changed fields.
func buildUserUpdateAuditLog(actor *models.Member, targetUID string, changedFields []string) *models.AuditLog {
	return NewAuditLog(targetUID, constants.AuditUserUpdate, actor,
		WithMetadata("changed_fields", changedFields))
}

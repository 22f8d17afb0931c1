package constants

// AuditAction identifies the operation an audit log entry was recorded for.
type AuditAction string

const (
	AuditRegisterBasic           AuditAction = "register_basic"
	AuditRegisterDetails         AuditAction = "register_details"
	AuditBranchManagerApproval   AuditAction = "branch_manager_approval"
	AuditBranchManagerRejection  AuditAction = "branch_manager_rejection"
	AuditAdminApproval           AuditAction = "admin_approval"
	AuditAdminRejection          AuditAction = "admin_rejection"
	AuditRoleUpdate              AuditAction = "role_update"
	AuditStatusUpdate            AuditAction = "status_update"
	AuditUserUpdate              AuditAction = "user_update"
)

func (a AuditAction) String() string {
	return string(a)
}

package fields

const (
	FieldObjectId  = "_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldStatus    = "status"
	FieldOrder     = "order"

	FieldMemberEmail          = "email"
	FieldMemberRole           = "role"
	FieldMemberBranch         = "branch_id"
	FieldMemberFirstName      = "first_name"
	FieldMemberLastName       = "last_name"
	FieldMemberNationalID     = "national_id"
	FieldMemberFatherName     = "father_name"
	FieldMemberMotherName     = "mother_name"
	FieldMemberBirthplace     = "birthplace"
	FieldMemberEducation      = "education"
	FieldMemberRegistryNumber = "registry_number"
	FieldMemberTitle          = "title"
	FieldMemberTitleCode      = "title_code"
	FieldMemberPhone          = "phone"
	FieldMemberIsActive       = "is_active"
	FieldMemberSerial         = "member_serial"
	FieldMemberRejectionNote  = "rejection_note"

	FieldBranchIsActive = "is_active"

	FieldAuditUserID    = "user_id"
	FieldAuditTimestamp = "timestamp"

	FieldPostBranch    = "branch_id"
	FieldPostPublished = "published"
	FieldPostOrder     = "order"
	FieldPostTitle     = "title"
	FieldPostBody      = "body"

	FieldIdentityEmail    = "email"
	FieldIdentityDisabled = "disabled"
)

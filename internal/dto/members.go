package dto

import (
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func NewRegisterBasicRequest(uid, email, firstName, lastName string) *RegisterBasicRequest {
	return &RegisterBasicRequest{
		uid:       uid,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
	}
}

type RegisterBasicRequest struct {
	uid       string
	email     string
	firstName string
	lastName  string
}

func (r RegisterBasicRequest) UID() string       { return r.uid }
func (r RegisterBasicRequest) Email() string     { return r.email }
func (r RegisterBasicRequest) FirstName() string { return r.firstName }
func (r RegisterBasicRequest) LastName() string  { return r.lastName }

// MemberDetails carries the step-2 registration fields. Every field is
// mandatory for the pending_details to pending_branch_review transition.
type MemberDetails struct {
	NationalID     string `json:"national_id"`
	FatherName     string `json:"father_name"`
	MotherName     string `json:"mother_name"`
	Birthplace     string `json:"birthplace"`
	Education      string `json:"education"`
	RegistryNumber string `json:"registry_number"`
	Title          string `json:"title"`
	TitleCode      string `json:"title_code"`
	Phone          string `json:"phone"`
	BranchID       string `json:"branch_id"`
}

func NewCompleteDetailsRequest(actor *models.Member, targetUID string, details *MemberDetails) *CompleteDetailsRequest {
	return &CompleteDetailsRequest{
		actor:     actor,
		targetUID: targetUID,
		details:   details,
	}
}

type CompleteDetailsRequest struct {
	actor     *models.Member
	targetUID string
	details   *MemberDetails
}

func (r CompleteDetailsRequest) Actor() *models.Member   { return r.actor }
func (r CompleteDetailsRequest) TargetUID() string       { return r.targetUID }
func (r CompleteDetailsRequest) Details() *MemberDetails { return r.details }

func NewReviewRequest(actor *models.Member, targetUID string, approve bool, note string) *ReviewRequest {
	return &ReviewRequest{
		actor:     actor,
		targetUID: targetUID,
		approve:   approve,
		note:      note,
	}
}

type ReviewRequest struct {
	actor     *models.Member
	targetUID string
	approve   bool
	note      string
}

func (r ReviewRequest) Actor() *models.Member { return r.actor }
func (r ReviewRequest) TargetUID() string     { return r.targetUID }
func (r ReviewRequest) Approve() bool         { return r.approve }
func (r ReviewRequest) Note() string          { return r.note }

// MemberUpdate carries the editable profile fields of an administrative edit.
// Nil pointers mean "leave unchanged".
type MemberUpdate struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	FatherName     *string `json:"father_name,omitempty"`
	MotherName     *string `json:"mother_name,omitempty"`
	Birthplace     *string `json:"birthplace,omitempty"`
	Education      *string `json:"education,omitempty"`
	RegistryNumber *string `json:"registry_number,omitempty"`
	Title          *string `json:"title,omitempty"`
	TitleCode      *string `json:"title_code,omitempty"`
	Phone          *string `json:"phone,omitempty"`
}

func NewUpdateMemberRequest(actor *models.Member, targetUID string, update *MemberUpdate) *UpdateMemberRequest {
	return &UpdateMemberRequest{
		actor:     actor,
		targetUID: targetUID,
		update:    update,
	}
}

type UpdateMemberRequest struct {
	actor     *models.Member
	targetUID string
	update    *MemberUpdate
}

func (r UpdateMemberRequest) Actor() *models.Member { return r.actor }
func (r UpdateMemberRequest) TargetUID() string     { return r.targetUID }
func (r UpdateMemberRequest) Update() *MemberUpdate { return r.update }

func NewUpdateRoleRequest(actor *models.Member, targetUID string, newRole constants.Role, branchID string) *UpdateRoleRequest {
	return &UpdateRoleRequest{
		actor:     actor,
		targetUID: targetUID,
		newRole:   newRole,
		branchID:  branchID,
	}
}

type UpdateRoleRequest struct {
	actor     *models.Member
	targetUID string
	newRole   constants.Role
	branchID  string
}

func (r UpdateRoleRequest) Actor() *models.Member    { return r.actor }
func (r UpdateRoleRequest) TargetUID() string        { return r.targetUID }
func (r UpdateRoleRequest) NewRole() constants.Role  { return r.newRole }
func (r UpdateRoleRequest) BranchID() string         { return r.branchID }

// MemberList is a paginated member listing.
type MemberList struct {
	Members []*models.Member `json:"members"`
	Total   int64            `json:"total"`
}

func NewListMembersFilter(role, status string, branchID *primitive.ObjectID) *ListMembersFilter {
	return &ListMembersFilter{
		role:     role,
		status:   status,
		branchID: branchID,
	}
}

type ListMembersFilter struct {
	role     string
	status   string
	branchID *primitive.ObjectID
}

func (f ListMembersFilter) Role() string                   { return f.role }
func (f ListMembersFilter) Status() string                 { return f.status }
func (f ListMembersFilter) BranchID() *primitive.ObjectID  { return f.branchID }

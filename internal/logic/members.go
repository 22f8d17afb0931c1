package logic

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/authz"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/mongodb"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/identity"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
	"github.com/EmreNP/sendikaapp-sub000/pkg/pagination"
	"github.com/EmreNP/sendikaapp-sub000/pkg/snowflake"
)

// MemberLogic defines the interface for member lifecycle business logic.
type MemberLogic interface {
	RegisterBasic(ctx context.Context, d *dto.RegisterBasicRequest) (*models.Member, error)
	CompleteDetails(ctx context.Context, d *dto.CompleteDetailsRequest) (*models.Member, error)
	Review(ctx context.Context, d *dto.ReviewRequest) (*models.Member, error)
	UpdateMember(ctx context.Context, d *dto.UpdateMemberRequest) (*models.Member, error)
	UpdateRole(ctx context.Context, d *dto.UpdateRoleRequest) error
	SetActive(ctx context.Context, actor *models.Member, targetUID string, active bool) error
	DeleteMember(ctx context.Context, actor *models.Member, targetUID string) error
	GetMember(ctx context.Context, actor *models.Member, uid string) (*models.Member, error)
	ListMembers(ctx context.Context, actor *models.Member, filter *dto.ListMembersFilter, pageReq *pagination.PageRequest) (*pagination.PageResult, error)
	ListAuditLogs(ctx context.Context, actor *models.Member, userID string, token pagination.PageToken, limit int64) ([]*models.AuditLog, pagination.PageToken, error)
}

var _ MemberLogic = (*memberLogic)(nil)

type memberLogic struct {
	memberRepo   repository.MemberRepository
	branchRepo   repository.BranchRepository
	auditLogRepo repository.AuditLogRepository
	identities   identity.Provider
	serials      *snowflake.Generator
	logger       *zap.Logger
}

func NewMemberLogic(memberRepo repository.MemberRepository, branchRepo repository.BranchRepository, auditLogRepo repository.AuditLogRepository, identities identity.Provider, serials *snowflake.Generator, logger *zap.Logger) *memberLogic {
	return &memberLogic{
		memberRepo:   memberRepo,
		branchRepo:   branchRepo,
		auditLogRepo: auditLogRepo,
		identities:   identities,
		serials:      serials,
		logger:       logger.Named("MemberLogic"),
	}
}

func (l *memberLogic) subject(m *models.Member) authz.Subject {
	return authz.Subject{
		UID:      m.UID,
		Role:     constants.ParseRole(m.Role),
		BranchID: m.BranchHex(),
	}
}

// authorize runs the matrix once and converts a denial into the generic
// authorization error. The denial reason goes to the log only.
func (l *memberLogic) authorize(actor, target *models.Member, action authz.Action) error {
	ts := l.subject(target)
	decision := authz.Decide(l.subject(actor), &ts, action)
	if !decision.Allowed {
		l.logger.Warn("authorization denied",
			zap.String("actor", actor.UID),
			zap.String("target", target.UID),
			zap.String("action", action.String()),
			zap.String("reason", decision.Reason))
		return apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}
	return nil
}

// RegisterBasic creates the member document for a freshly verified identity.
// The account starts as a plain user in pending_details with only the step-1
// fields filled in.
func (l *memberLogic) RegisterBasic(ctx context.Context, d *dto.RegisterBasicRequest) (*models.Member, error) {
	if d.FirstName() == "" || d.LastName() == "" {
		return nil, apperrors.Validation("MISSING_NAME", "first name and last name are required")
	}

	now := time.Now()
	member := &models.Member{
		UID:       d.UID(),
		Email:     d.Email(),
		Role:      constants.RoleUser.String(),
		Status:    constants.StatusPendingDetails.String(),
		FirstName: d.FirstName(),
		LastName:  d.LastName(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := l.memberRepo.CreateMember(ctx, member); err != nil {
		if errors.Is(err, mongodb.ErrDuplicate) {
			return nil, apperrors.Conflict("ALREADY_REGISTERED", "account is already registered").WithCause(ErrDuplicateMember)
		}
		return nil, apperrors.BadGateway("STORE_UNAVAILABLE", "could not create member").WithCause(err)
	}

	if err := l.auditLogRepo.Append(ctx, buildRegisterBasicAuditLog(member)); err != nil {
		return nil, apperrors.FromError(err)
	}

	return member, nil
}

// CompleteDetails runs the pending_details to pending_branch_review
// transition. Branch validity and national-id uniqueness are re-checked here,
// at transition time, because the store enforces neither.
func (l *memberLogic) CompleteDetails(ctx context.Context, d *dto.CompleteDetailsRequest) (*models.Member, error) {
	target, err := l.getMember(ctx, d.TargetUID())
	if err != nil {
		return nil, err
	}

	if err := l.authorize(d.Actor(), target, authz.ActionCompleteDetails); err != nil {
		return nil, err
	}

	if err := checkTransition(constants.ParseMembershipStatus(target.Status), constants.StatusPendingBranchReview); err != nil {
		return nil, err
	}

	if target.FirstName == "" || target.LastName == "" {
		return nil, apperrors.Validation("INCOMPLETE_REGISTRATION", "basic registration fields are missing")
	}

	details := d.Details()
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	branchID, err := primitive.ObjectIDFromHex(details.BranchID)
	if err != nil {
		return nil, apperrors.Validation("INVALID_BRANCH_ID", "branch id is not valid")
	}

	// A branch manager may only register members into their own branch.
	if constants.ParseRole(d.Actor().Role) == constants.RoleBranchManager && d.Actor().BranchHex() != details.BranchID {
		return nil, apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		branch, err := l.branchRepo.GetBranchByID(gctx, branchID)
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				return apperrors.Validation("BRANCH_NOT_FOUND", "branch does not exist").WithCause(ErrBranchNotFound)
			}
			return err
		}
		if !branch.IsActive {
			return apperrors.Validation("BRANCH_INACTIVE", "branch is not active").WithCause(ErrBranchInactive)
		}
		return nil
	})
	g.Go(func() error {
		count, err := l.memberRepo.CountByNationalID(gctx, details.NationalID, target.UID)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.Conflict("NATIONAL_ID_TAKEN", "national id is already registered").WithCause(ErrNationalIDTaken)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.FromError(err)
	}

	opts := []repository.UpdateOption{
		repository.WithStatus(constants.StatusPendingBranchReview.String()),
		repository.WithBranch(branchID),
		repository.WithField(fields.FieldMemberNationalID, details.NationalID),
		repository.WithField(fields.FieldMemberFatherName, details.FatherName),
		repository.WithField(fields.FieldMemberMotherName, details.MotherName),
		repository.WithField(fields.FieldMemberBirthplace, details.Birthplace),
		repository.WithField(fields.FieldMemberEducation, details.Education),
		repository.WithField(fields.FieldMemberRegistryNumber, details.RegistryNumber),
		repository.WithField(fields.FieldMemberTitle, details.Title),
		repository.WithField(fields.FieldMemberTitleCode, details.TitleCode),
		repository.WithField(fields.FieldMemberPhone, details.Phone),
		repository.WithServerTimestamp(),
	}
	if err := l.memberRepo.UpdateMember(ctx, target.UID, opts...); err != nil {
		return nil, apperrors.FromError(err)
	}

	if err := l.auditLogRepo.Append(ctx, buildRegisterDetailsAuditLog(d.Actor(), target.UID, branchID)); err != nil {
		return nil, apperrors.FromError(err)
	}

	return l.getMember(ctx, target.UID)
}

// Review settles a pending_branch_review account. Approval assigns the
// membership serial; rejection records the reviewer's note.
func (l *memberLogic) Review(ctx context.Context, d *dto.ReviewRequest) (*models.Member, error) {
	target, err := l.getMember(ctx, d.TargetUID())
	if err != nil {
		return nil, err
	}

	if err := l.authorize(d.Actor(), target, authz.ActionReview); err != nil {
		return nil, err
	}

	newStatus := constants.StatusActive
	if !d.Approve() {
		newStatus = constants.StatusRejected
	}
	if err := checkTransition(constants.ParseMembershipStatus(target.Status), newStatus); err != nil {
		return nil, err
	}

	opts := []repository.UpdateOption{
		repository.WithStatus(newStatus.String()),
		repository.WithServerTimestamp(),
	}
	if d.Approve() {
		serial, err := l.serials.GetID()
		if err != nil {
			return nil, apperrors.Internal("SERIAL_GENERATION", "could not assign member serial").WithCause(err)
		}
		opts = append(opts, repository.WithMemberSerial(serial))
	} else if d.Note() != "" {
		opts = append(opts, repository.WithRejectionNote(d.Note()))
	}

	if err := l.memberRepo.UpdateMember(ctx, target.UID, opts...); err != nil {
		return nil, apperrors.FromError(err)
	}

	if err := l.auditLogRepo.Append(ctx, buildReviewAuditLog(d.Actor(), target.UID, d.Approve(), d.Note())); err != nil {
		return nil, apperrors.FromError(err)
	}

	return l.getMember(ctx, target.UID)
}

// UpdateMember applies an administrative profile edit.
func (l *memberLogic) UpdateMember(ctx context.Context, d *dto.UpdateMemberRequest) (*models.Member, error) {
	target, err := l.getMember(ctx, d.TargetUID())
	if err != nil {
		return nil, err
	}

	if err := l.authorize(d.Actor(), target, authz.ActionUpdateMember); err != nil {
		return nil, err
	}

	opts, changed := buildMemberUpdateOptions(d.Update())
	if len(changed) == 0 {
		return nil, apperrors.Validation("EMPTY_UPDATE", "no fields to update")
	}
	opts = append(opts, repository.WithServerTimestamp())

	if err := l.memberRepo.UpdateMember(ctx, target.UID, opts...); err != nil {
		return nil, apperrors.FromError(err)
	}

	if err := l.auditLogRepo.Append(ctx, buildUserUpdateAuditLog(d.Actor(), target.UID, changed)); err != nil {
		return nil, apperrors.FromError(err)
	}

	return l.getMember(ctx, target.UID)
}

// UpdateRole grants a new role. Granting branch_manager rebinds the member to
// the submitted branch.
func (l *memberLogic) UpdateRole(ctx context.Context, d *dto.UpdateRoleRequest) error {
	target, err := l.getMember(ctx, d.TargetUID())
	if err != nil {
		return err
	}

	decision := authz.DecideRoleChange(l.subject(d.Actor()), l.subject(target), d.NewRole(), d.BranchID())
	if !decision.Allowed {
		l.logger.Warn("role change denied",
			zap.String("actor", d.Actor().UID),
			zap.String("target", target.UID),
			zap.String("new_role", d.NewRole().String()),
			zap.String("reason", decision.Reason))
		return apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}

	opts := []repository.UpdateOption{
		repository.WithRole(d.NewRole().String()),
		repository.WithServerTimestamp(),
	}
	if d.NewRole() == constants.RoleBranchManager {
		branchID, err := primitive.ObjectIDFromHex(d.BranchID())
		if err != nil {
			return apperrors.Validation("INVALID_BRANCH_ID", "branch id is not valid")
		}
		branch, err := l.branchRepo.GetBranchByID(ctx, branchID)
		if err != nil {
			if errors.Is(err, mongodb.ErrNotFound) {
				return apperrors.Validation("BRANCH_NOT_FOUND", "branch does not exist").WithCause(ErrBranchNotFound)
			}
			return apperrors.FromError(err)
		}
		if !branch.IsActive {
			return apperrors.Validation("BRANCH_INACTIVE", "branch is not active").WithCause(ErrBranchInactive)
		}
		opts = append(opts, repository.WithBranch(branchID))
	}

	if err := l.memberRepo.UpdateMember(ctx, target.UID, opts...); err != nil {
		return apperrors.FromError(err)
	}

	return l.auditLogRepo.Append(ctx, buildRoleUpdateAuditLog(d.Actor(), target.UID, target.Role, d.NewRole()))
}

// SetActive flips the soft-disable flag and mirrors it onto the identity so a
// disabled member cannot authenticate either.
func (l *memberLogic) SetActive(ctx context.Context, actor *models.Member, targetUID string, active bool) error {
	target, err := l.getMember(ctx, targetUID)
	if err != nil {
		return err
	}

	action := authz.ActionDeactivateMember
	if active {
		action = authz.ActionActivateMember
	}
	if err := l.authorize(actor, target, action); err != nil {
		return err
	}

	if err := l.memberRepo.UpdateMember(ctx, target.UID,
		repository.WithIsActive(active),
		repository.WithServerTimestamp(),
	); err != nil {
		return apperrors.FromError(err)
	}

	if err := l.identities.SetDisabled(ctx, target.UID, !active); err != nil && !errors.Is(err, identity.ErrIdentityNotFound) {
		l.logger.Error("SetActive: identity flag update failed", zap.Error(err), zap.String("uid", target.UID))
	}

	return l.auditLogRepo.Append(ctx, buildSetActiveAuditLog(actor, target.UID, active))
}

// DeleteMember removes the account for good. The identity record goes first,
// best-effort: an identity that is already gone never blocks the document
// deletion.
func (l *memberLogic) DeleteMember(ctx context.Context, actor *models.Member, targetUID string) error {
	target, err := l.getMember(ctx, targetUID)
	if err != nil {
		return err
	}

	if err := l.authorize(actor, target, authz.ActionDeleteMember); err != nil {
		return err
	}

	if err := l.identities.Delete(ctx, target.UID); err != nil && !errors.Is(err, identity.ErrIdentityNotFound) {
		l.logger.Error("DeleteMember: identity deletion failed", zap.Error(err), zap.String("uid", target.UID))
	}

	if err := l.memberRepo.DeleteMember(ctx, target.UID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return apperrors.NotFound("MEMBER_NOT_FOUND", "member not found").WithCause(ErrMemberNotFound)
		}
		return apperrors.FromError(err)
	}

	return nil
}

// GetMember returns one account. Reads follow the same scoping as mutations:
// plain users see only themselves, branch managers their own branch, admin
// and above everything.
func (l *memberLogic) GetMember(ctx context.Context, actor *models.Member, uid string) (*models.Member, error) {
	target, err := l.getMember(ctx, uid)
	if err != nil {
		return nil, err
	}
	if actor.UID == target.UID {
		return target, nil
	}
	switch constants.ParseRole(actor.Role) {
	case constants.RoleAdmin, constants.RoleSuperAdmin:
		return target, nil
	case constants.RoleBranchManager:
		if actor.BranchHex() != target.BranchHex() {
			return nil, apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
		}
		return target, nil
	default:
		return nil, apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}
}

// ListMembers pages the directory. Only management roles may list; branch
// managers are confined to their own branch regardless of the submitted
// filter.
func (l *memberLogic) ListMembers(ctx context.Context, actor *models.Member, filter *dto.ListMembersFilter, pageReq *pagination.PageRequest) (*pagination.PageResult, error) {
	branchID := filter.BranchID()
	switch constants.ParseRole(actor.Role) {
	case constants.RoleAdmin, constants.RoleSuperAdmin:
	case constants.RoleBranchManager:
		branchID = actor.BranchID
	default:
		return nil, apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}

	params := &repository.ListMembersParams{
		Role:     filter.Role(),
		Status:   filter.Status(),
		BranchID: branchID,
		Limit:    pageReq.GetLimit(),
		Offset:   pageReq.GetOffset(),
	}
	members, total, err := l.memberRepo.ListMembers(ctx, params)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return pagination.NewPageResult(members, total, pageReq), nil
}

// ListAuditLogs pages through a member's audit trail newest-first with a
// cursor token. The trail is scoped like the member record itself: plain
// users read only their own, branch managers their branch, admin and above
// anyone's.
func (l *memberLogic) ListAuditLogs(ctx context.Context, actor *models.Member, userID string, token pagination.PageToken, limit int64) ([]*models.AuditLog, pagination.PageToken, error) {
	if actor.UID != userID {
		switch constants.ParseRole(actor.Role) {
		case constants.RoleAdmin, constants.RoleSuperAdmin:
		case constants.RoleBranchManager:
			target, err := l.getMember(ctx, userID)
			if err != nil {
				return nil, "", err
			}
			if actor.BranchHex() != target.BranchHex() {
				return nil, "", apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
			}
		default:
			return nil, "", apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
		}
	}

	params := &repository.ListAuditLogsParams{
		UserID: userID,
		Limit:  limit,
	}

	page, err := token.Decode()
	if err != nil {
		return nil, "", apperrors.Validation("INVALID_PAGE_TOKEN", "page token is not valid").WithCause(err)
	}
	if page != nil {
		cursorID, err := primitive.ObjectIDFromHex(page.CursorID)
		if err != nil {
			return nil, "", apperrors.Validation("INVALID_PAGE_TOKEN", "page token is not valid")
		}
		params.CursorID = cursorID
		params.CursorTimestamp = time.UnixMilli(page.CursorTimestamp)
	}

	entries, err := l.auditLogRepo.ListByUser(ctx, params)
	if err != nil {
		return nil, "", apperrors.FromError(err)
	}

	var nextToken pagination.PageToken
	if int64(len(entries)) == limit && len(entries) > 0 {
		last := entries[len(entries)-1]
		nextToken, err = pagination.GenerateToken(last.ID, last.Timestamp)
		if err != nil {
			return nil, "", apperrors.FromError(err)
		}
	}

	return entries, nextToken, nil
}

func (l *memberLogic) getMember(ctx context.Context, uid string) (*models.Member, error) {
	member, err := l.memberRepo.GetMemberByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, apperrors.NotFound("MEMBER_NOT_FOUND", "member not found").WithCause(ErrMemberNotFound)
		}
		return nil, apperrors.FromError(err)
	}
	return member, nil
}

// validateDetails checks every step-2 field individually so the caller gets
// the first concrete gap, not a generic failure.
func validateDetails(d *dto.MemberDetails) error {
	if d == nil {
		return apperrors.Validation("MISSING_DETAILS", "registration details are required")
	}
	required := []struct {
		value string
		code  string
		label string
	}{
		{d.NationalID, "MISSING_NATIONAL_ID", "national id"},
		{d.FatherName, "MISSING_FATHER_NAME", "father name"},
		{d.MotherName, "MISSING_MOTHER_NAME", "mother name"},
		{d.Birthplace, "MISSING_BIRTHPLACE", "birthplace"},
		{d.Education, "MISSING_EDUCATION", "education"},
		{d.RegistryNumber, "MISSING_REGISTRY_NUMBER", "registry number"},
		{d.Title, "MISSING_TITLE", "title"},
		{d.TitleCode, "MISSING_TITLE_CODE", "title code"},
		{d.Phone, "MISSING_PHONE", "phone"},
		{d.BranchID, "MISSING_BRANCH_ID", "branch id"},
	}
	for _, f := range required {
		if f.value == "" {
			return apperrors.Validation(f.code, f.label+" is required")
		}
	}
	if !isValidNationalID(d.NationalID) {
		return apperrors.Validation("INVALID_NATIONAL_ID", "national id must be 11 digits")
	}
	return nil
}

func isValidNationalID(id string) bool {
	if len(id) != 11 || id[0] == '0' {
		return false
	}
	for _, r := range id {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// buildMemberUpdateOptions turns the non-nil request fields into update
// options and returns the changed field names for the audit entry.
func buildMemberUpdateOptions(u *dto.MemberUpdate) ([]repository.UpdateOption, []string) {
	if u == nil {
		return nil, nil
	}

	var opts []repository.UpdateOption
	var changed []string
	set := func(name string, value *string) {
		if value != nil {
			opts = append(opts, repository.WithField(name, *value))
			changed = append(changed, name)
		}
	}

	set(fields.FieldMemberFirstName, u.FirstName)
	set(fields.FieldMemberLastName, u.LastName)
	set(fields.FieldMemberFatherName, u.FatherName)
	set(fields.FieldMemberMotherName, u.MotherName)
	set(fields.FieldMemberBirthplace, u.Birthplace)
	set(fields.FieldMemberEducation, u.Education)
	set(fields.FieldMemberRegistryNumber, u.RegistryNumber)
	set(fields.FieldMemberTitle, u.Title)
	set(fields.FieldMemberTitleCode, u.TitleCode)
	set(fields.FieldMemberPhone, u.Phone)

	return opts, changed
}

var MemberLogicProviderSet = wire.NewSet(NewMemberLogic, wire.Bind(new(MemberLogic), new(*memberLogic)))

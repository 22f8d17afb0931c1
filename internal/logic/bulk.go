package logic

import (
	"context"
	"errors"
	"sync"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
)

// BulkLogic executes one action against many targets with per-item
// isolation: each target succeeds or fails on its own, and one failure never
// aborts the rest. Preconditions on the request as a whole (size, action,
// privilege for destructive actions) still reject everything up front.
type BulkLogic interface {
	ExecuteMembers(ctx context.Context, d *dto.BulkMemberRequest) (*dto.BulkResult, error)
	ExecutePosts(ctx context.Context, d *dto.BulkPostRequest) (*dto.BulkResult, error)
}

var _ BulkLogic = (*bulkLogic)(nil)

type bulkLogic struct {
	members MemberLogic
	posts   PostLogic
	logger  *zap.Logger
}

func NewBulkLogic(members MemberLogic, posts PostLogic, logger *zap.Logger) *bulkLogic {
	return &bulkLogic{
		members: members,
		posts:   posts,
		logger:  logger.Named("BulkLogic"),
	}
}

func (l *bulkLogic) ExecuteMembers(ctx context.Context, d *dto.BulkMemberRequest) (*dto.BulkResult, error) {
	if err := checkBulkSize(len(d.TargetUIDs())); err != nil {
		return nil, err
	}
	action := constants.ParseBulkMemberAction(d.Action())
	if action == constants.BulkMemberActionUnknown {
		return nil, apperrors.Validation("UNKNOWN_ACTION", "unknown bulk action: "+d.Action())
	}
	if action.IsDestructive() && !hasManagementRole(d.Actor()) {
		return nil, apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}

	return l.fanOut(ctx, d.TargetUIDs(), func(ctx context.Context, uid string) error {
		// Self-exclusion fails as its own class, before any authorization
		// check, so the response distinguishes it from a scoped denial.
		if uid == d.Actor().UID {
			return apperrors.Validation("SELF_TARGET", "cannot target self")
		}
		switch action {
		case constants.BulkMemberDelete:
			return l.members.DeleteMember(ctx, d.Actor(), uid)
		case constants.BulkMemberActivate:
			return l.members.SetActive(ctx, d.Actor(), uid, true)
		default:
			return l.members.SetActive(ctx, d.Actor(), uid, false)
		}
	})
}

func (l *bulkLogic) ExecutePosts(ctx context.Context, d *dto.BulkPostRequest) (*dto.BulkResult, error) {
	if err := checkBulkSize(len(d.TargetIDs())); err != nil {
		return nil, err
	}
	action := constants.ParseBulkPostAction(d.Action())
	if action == constants.BulkPostActionUnknown {
		return nil, apperrors.Validation("UNKNOWN_ACTION", "unknown bulk action: "+d.Action())
	}
	if action == constants.BulkPostDelete && !hasManagementRole(d.Actor()) {
		return nil, apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}

	return l.fanOut(ctx, d.TargetIDs(), func(ctx context.Context, id string) error {
		postID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return apperrors.Validation("INVALID_POST_ID", "post id is not valid")
		}
		switch action {
		case constants.BulkPostDelete:
			return l.posts.DeletePost(ctx, d.Actor(), postID)
		case constants.BulkPostPublish:
			return l.posts.SetPublished(ctx, d.Actor(), postID, true)
		default:
			return l.posts.SetPublished(ctx, d.Actor(), postID, false)
		}
	})
}

// fanOut runs one item function per target concurrently and joins all of
// them. errgroup is deliberately not used here: it cancels siblings on the
// first failure, and bulk semantics require every item to run to completion.
// A panic in one item is contained to that item's slot.
func (l *bulkLogic) fanOut(ctx context.Context, ids []string, item func(ctx context.Context, id string) error) (*dto.BulkResult, error) {
	itemErrs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(slot int, targetID string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					l.logger.Error("bulk item panicked",
						zap.Any("panic", r),
						zap.String("target", targetID))
					itemErrs[slot] = apperrors.Internal("ITEM_PANIC", "item processing failed")
				}
			}()
			itemErrs[slot] = item(ctx, targetID)
		}(i, id)
	}
	wg.Wait()

	result := &dto.BulkResult{}
	for i, err := range itemErrs {
		if err == nil {
			result.SuccessCount++
			continue
		}
		result.FailureCount++
		result.Errors = append(result.Errors, dto.BulkItemError{
			ID:      ids[i],
			Message: bulkItemMessage(err),
		})
	}
	return result, nil
}

func checkBulkSize(n int) error {
	if n == 0 {
		return apperrors.Validation("EMPTY_TARGETS", "target ids are required")
	}
	if n > constants.MaxBulkTargets {
		return apperrors.Validation("TOO_MANY_TARGETS", "a bulk request cannot exceed 100 targets")
	}
	return nil
}

func hasManagementRole(actor *models.Member) bool {
	switch constants.ParseRole(actor.Role) {
	case constants.RoleBranchManager, constants.RoleAdmin, constants.RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// bulkItemMessage flattens an item failure into the response entry. An
// authorization denial keeps its generic wording so bulk responses leak no
// more than single-item ones.
func bulkItemMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindAuthorization {
			return "access denied for this account"
		}
		return appErr.Message
	}
	return "item processing failed"
}

var BulkLogicProviderSet = wire.NewSet(NewBulkLogic, wire.Bind(new(BulkLogic), new(*bulkLogic)))

package logic

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/mongodb"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
)

func newTestBulkLogic(t *testing.T) (*bulkLogic, *memberLogicMocks) {
	t.Helper()
	members, mocks := newTestMemberLogic(t)
	return &bulkLogic{
		members: members,
		posts:   nil,
		logger:  zap.NewNop(),
	}, mocks
}

func activeUser(uid string, branchID *primitive.ObjectID) *models.Member {
	return &models.Member{
		UID:      uid,
		Role:     constants.RoleUser.String(),
		Status:   constants.StatusActive.String(),
		BranchID: branchID,
		IsActive: true,
	}
}

func TestBulkLogic_ExecuteMembers(t *testing.T) {
	t.Run("MixedOutcome", func(t *testing.T) {
		// 100 targets, one missing. 99 succeed, 1 fails, and the failure
		// names the missing account without disturbing the rest.
		l, mocks := newTestBulkLogic(t)
		actor := testAdmin()

		var ids []string
		for i := 0; i < 100; i++ {
			ids = append(ids, fmt.Sprintf("uid-%03d", i))
		}

		for _, id := range ids {
			if id == "uid-050" {
				mocks.memberRepo.On("GetMemberByUID", mock.Anything, id).Return(nil, mongodb.ErrNotFound).Once()
				continue
			}
			mocks.memberRepo.On("GetMemberByUID", mock.Anything, id).Return(activeUser(id, nil), nil).Once()
			mocks.memberRepo.On("UpdateMember", mock.Anything, id, mock.Anything).Return(nil).Once()
			mocks.identities.On("SetDisabled", mock.Anything, id, true).Return(nil).Once()
			mocks.auditLogRepo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()
		}

		result, err := l.ExecuteMembers(context.Background(), dto.NewBulkMemberRequest(actor, "deactivate", ids))
		require.NoError(t, err)
		assert.Equal(t, 99, result.SuccessCount)
		assert.Equal(t, 1, result.FailureCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "uid-050", result.Errors[0].ID)
		assert.Equal(t, len(ids), result.SuccessCount+result.FailureCount)
	})

	t.Run("CrossBranchDeleteFailsPerItem", func(t *testing.T) {
		// A branch manager hitting a foreign-branch target gets a per-item
		// denial, not a whole-request rejection.
		l, mocks := newTestBulkLogic(t)
		branchA := primitive.NewObjectID()
		branchB := primitive.NewObjectID()
		manager := &models.Member{
			UID:      "bm-1",
			Role:     constants.RoleBranchManager.String(),
			BranchID: &branchA,
		}

		mocks.memberRepo.On("GetMemberByUID", mock.Anything, "own").Return(activeUser("own", &branchA), nil).Once()
		mocks.identities.On("Delete", mock.Anything, "own").Return(nil).Once()
		mocks.memberRepo.On("DeleteMember", mock.Anything, "own").Return(nil).Once()
		mocks.memberRepo.On("GetMemberByUID", mock.Anything, "foreign").Return(activeUser("foreign", &branchB), nil).Once()

		result, err := l.ExecuteMembers(context.Background(), dto.NewBulkMemberRequest(manager, "delete", []string{"own", "foreign"}))
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.FailureCount)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "foreign", result.Errors[0].ID)
		assert.Equal(t, "access denied for this account", result.Errors[0].Message)
	})

	t.Run("SelfTargetingFailsPerItem", func(t *testing.T) {
		l, mocks := newTestBulkLogic(t)
		actor := testAdmin()

		mocks.memberRepo.On("GetMemberByUID", mock.Anything, "uid-1").Return(activeUser("uid-1", nil), nil).Once()
		mocks.identities.On("Delete", mock.Anything, "uid-1").Return(nil).Once()
		mocks.memberRepo.On("DeleteMember", mock.Anything, "uid-1").Return(nil).Once()

		result, err := l.ExecuteMembers(context.Background(), dto.NewBulkMemberRequest(actor, "delete", []string{actor.UID, "uid-1"}))
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.FailureCount)
		assert.Equal(t, actor.UID, result.Errors[0].ID)
		assert.Equal(t, "cannot target self", result.Errors[0].Message)
		// The target document is never even loaded for the self entry.
		mocks.memberRepo.AssertNotCalled(t, "GetMemberByUID", mock.Anything, actor.UID)
	})

	t.Run("EmptyTargetsRejected", func(t *testing.T) {
		l, _ := newTestBulkLogic(t)
		_, err := l.ExecuteMembers(context.Background(), dto.NewBulkMemberRequest(testAdmin(), "delete", nil))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.FromError(err).Kind)
	})

	t.Run("OversizedRequestRejected", func(t *testing.T) {
		l, _ := newTestBulkLogic(t)
		ids := make([]string, constants.MaxBulkTargets+1)
		for i := range ids {
			ids[i] = fmt.Sprintf("uid-%d", i)
		}
		_, err := l.ExecuteMembers(context.Background(), dto.NewBulkMemberRequest(testAdmin(), "deactivate", ids))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.FromError(err).Kind)
	})

	t.Run("UnknownActionRejected", func(t *testing.T) {
		l, _ := newTestBulkLogic(t)
		_, err := l.ExecuteMembers(context.Background(), dto.NewBulkMemberRequest(testAdmin(), "promote", []string{"uid-1"}))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.FromError(err).Kind)
	})

	t.Run("DestructiveActionNeedsManagementRole", func(t *testing.T) {
		l, _ := newTestBulkLogic(t)
		plain := activeUser("uid-9", nil)
		_, err := l.ExecuteMembers(context.Background(), dto.NewBulkMemberRequest(plain, "delete", []string{"uid-1"}))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindAuthorization, apperrors.FromError(err).Kind)
	})
}

func TestBulkLogic_FanOutContainsPanic(t *testing.T) {
	l := &bulkLogic{logger: zap.NewNop()}

	result, err := l.fanOut(context.Background(), []string{"a", "b", "c"}, func(ctx context.Context, id string) error {
		if id == "b" {
			panic("boom")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "b", result.Errors[0].ID)
}

func TestBulkResultCounts(t *testing.T) {
	r := &dto.BulkResult{SuccessCount: 3, FailureCount: 2}
	assert.True(t, r.Partial())
	assert.False(t, r.AllFailed())

	r = &dto.BulkResult{FailureCount: 5}
	assert.False(t, r.Partial())
	assert.True(t, r.AllFailed())
}

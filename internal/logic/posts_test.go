package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
)

func newTestPostLogic() (*postLogic, *mockPostRepository, *mockOrderedRepository) {
	postRepo := newMockPostRepository()
	orderedRepo := newMockOrderedRepository()
	l := &postLogic{
		postRepo: postRepo,
		ordering: NewOrderingEngine(orderedRepo, zap.NewNop()),
		logger:   zap.NewNop(),
	}
	return l, postRepo, orderedRepo
}

func branchManager(branchID primitive.ObjectID) *models.Member {
	return &models.Member{
		UID:      "bm-1",
		Role:     constants.RoleBranchManager.String(),
		Status:   constants.StatusActive.String(),
		BranchID: &branchID,
	}
}

func TestPostLogic_CreatePost(t *testing.T) {
	branchID := primitive.NewObjectID()

	t.Run("AppendsAtEndWithoutExplicitOrder", func(t *testing.T) {
		l, postRepo, orderedRepo := newTestPostLogic()

		postRepo.On("NextPostOrder", mock.Anything, branchID).Return(7, nil).Once()
		postRepo.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			assert.Equal(t, 7, p.Order)
			assert.False(t, p.Published)
			return true
		})).Return(primitive.NewObjectID(), nil).Once()

		post, err := l.CreatePost(context.Background(),
			dto.NewCreatePostRequest(branchManager(branchID), branchID, "Duyuru", "icerik", nil))
		require.NoError(t, err)
		assert.Equal(t, 7, post.Order)
		orderedRepo.AssertNotCalled(t, "ListSiblingsFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ExplicitOrderOpensGapFirst", func(t *testing.T) {
		l, postRepo, orderedRepo := newTestPostLogic()
		order := 2
		siblings := makeSiblings(3, 2)

		orderedRepo.On("ListSiblingsFrom", mock.Anything, mock.Anything, 2, primitive.NilObjectID).Return(siblings, nil).Once()
		orderedRepo.On("ApplyOrderBatch", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		postRepo.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			return p.Order == 2
		})).Return(primitive.NewObjectID(), nil).Once()

		_, err := l.CreatePost(context.Background(),
			dto.NewCreatePostRequest(branchManager(branchID), branchID, "Duyuru", "icerik", &order))
		require.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("ForeignBranchDenied", func(t *testing.T) {
		l, _, _ := newTestPostLogic()
		other := primitive.NewObjectID()

		_, err := l.CreatePost(context.Background(),
			dto.NewCreatePostRequest(branchManager(other), branchID, "Duyuru", "icerik", nil))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindAuthorization, apperrors.FromError(err).Kind)
	})

	t.Run("PlainUserDenied", func(t *testing.T) {
		l, _, _ := newTestPostLogic()
		user := activeUser("u-1", &branchID)

		_, err := l.CreatePost(context.Background(),
			dto.NewCreatePostRequest(user, branchID, "Duyuru", "icerik", nil))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindAuthorization, apperrors.FromError(err).Kind)
	})
}

func TestPostLogic_UpdatePost(t *testing.T) {
	branchID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	t.Run("ChangesOnlySubmittedFields", func(t *testing.T) {
		l, postRepo, _ := newTestPostLogic()
		post := &models.Post{ID: postID, BranchID: branchID, Title: "Duyuru", Body: "icerik"}

		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()
		postRepo.On("UpdatePost", mock.Anything, postID, mock.MatchedBy(func(opts []repository.UpdateOption) bool {
			applied := repository.NewUpdateOptions()
			for _, opt := range opts {
				opt(applied)
			}
			assert.Equal(t, "Guncel duyuru", applied.SetFields["title"])
			assert.NotContains(t, applied.SetFields, "body")
			return true
		})).Return(nil).Once()
		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()

		title := "Guncel duyuru"
		_, err := l.UpdatePost(context.Background(),
			dto.NewUpdatePostRequest(branchManager(branchID), postID, &title, nil))
		require.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("EmptyTitleRejected", func(t *testing.T) {
		l, postRepo, _ := newTestPostLogic()
		post := &models.Post{ID: postID, BranchID: branchID, Title: "Duyuru"}
		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()

		empty := ""
		_, err := l.UpdatePost(context.Background(),
			dto.NewUpdatePostRequest(branchManager(branchID), postID, &empty, nil))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.FromError(err).Kind)
		postRepo.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyUpdateRejected", func(t *testing.T) {
		l, postRepo, _ := newTestPostLogic()
		post := &models.Post{ID: postID, BranchID: branchID, Title: "Duyuru"}
		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()

		_, err := l.UpdatePost(context.Background(),
			dto.NewUpdatePostRequest(branchManager(branchID), postID, nil, nil))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.FromError(err).Kind)
	})

	t.Run("ForeignBranchDenied", func(t *testing.T) {
		l, postRepo, _ := newTestPostLogic()
		other := primitive.NewObjectID()
		post := &models.Post{ID: postID, BranchID: branchID, Title: "Duyuru"}
		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()

		title := "Guncel duyuru"
		_, err := l.UpdatePost(context.Background(),
			dto.NewUpdatePostRequest(branchManager(other), postID, &title, nil))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindAuthorization, apperrors.FromError(err).Kind)
	})
}

func TestPostLogic_MovePost(t *testing.T) {
	branchID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	t.Run("ExcludesItselfFromShift", func(t *testing.T) {
		l, postRepo, orderedRepo := newTestPostLogic()
		post := &models.Post{ID: postID, BranchID: branchID, Order: 6}

		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()
		orderedRepo.On("ListSiblingsFrom", mock.Anything, mock.Anything, 1, postID).Return(makeSiblings(2, 1), nil).Once()
		orderedRepo.On("ApplyOrderBatch", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		postRepo.On("UpdatePost", mock.Anything, postID, mock.MatchedBy(func(opts []repository.UpdateOption) bool {
			applied := repository.NewUpdateOptions()
			for _, opt := range opts {
				opt(applied)
			}
			return applied.SetFields["order"] == 1
		})).Return(nil).Once()

		err := l.MovePost(context.Background(), dto.NewMovePostRequest(branchManager(branchID), postID, 1))
		require.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("SamePositionIsNoOp", func(t *testing.T) {
		l, postRepo, orderedRepo := newTestPostLogic()
		post := &models.Post{ID: postID, BranchID: branchID, Order: 4}
		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()

		err := l.MovePost(context.Background(), dto.NewMovePostRequest(branchManager(branchID), postID, 4))
		require.NoError(t, err)
		orderedRepo.AssertNotCalled(t, "ListSiblingsFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		postRepo.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NegativeOrderRejected", func(t *testing.T) {
		l, postRepo, _ := newTestPostLogic()
		post := &models.Post{ID: postID, BranchID: branchID, Order: 4}
		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()

		err := l.MovePost(context.Background(), dto.NewMovePostRequest(branchManager(branchID), postID, -1))
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.FromError(err).Kind)
	})
}

func TestPostLogic_DeletePost(t *testing.T) {
	branchID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	t.Run("ClosesGapAfterDelete", func(t *testing.T) {
		l, postRepo, orderedRepo := newTestPostLogic()
		post := &models.Post{ID: postID, BranchID: branchID, Order: 3}

		postRepo.On("GetPostByID", mock.Anything, postID).Return(post, nil).Once()
		postRepo.On("DeletePost", mock.Anything, postID).Return(nil).Once()
		orderedRepo.On("ListSiblingsAbove", mock.Anything, mock.Anything, 3).Return(makeSiblings(2, 4), nil).Once()
		orderedRepo.On("ApplyOrderBatch", mock.Anything, mock.Anything, mock.MatchedBy(func(updates []repository.OrderUpdate) bool {
			for _, u := range updates {
				assert.GreaterOrEqual(t, u.Order, 3)
			}
			return true
		})).Return(nil).Once()

		err := l.DeletePost(context.Background(), branchManager(branchID), postID)
		require.NoError(t, err)
		postRepo.AssertExpectations(t)
		orderedRepo.AssertExpectations(t)
	})
}

package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/mongodb"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
)

func testScope() repository.OrderScope {
	return repository.OrderScope{
		Collection:  mongodb.CollectionPosts,
		FilterField: fields.FieldPostBranch,
		FilterValue: primitive.NewObjectID(),
	}
}

func makeSiblings(n, startOrder int) []repository.OrderedRecord {
	records := make([]repository.OrderedRecord, n)
	for i := range records {
		records[i] = repository.OrderedRecord{
			ID:    primitive.NewObjectID(),
			Order: startOrder + i,
		}
	}
	return records
}

func TestOrderingEngine_ShiftUp(t *testing.T) {
	t.Run("AssignsExplicitIncrementedOrders", func(t *testing.T) {
		repo := newMockOrderedRepository()
		engine := NewOrderingEngine(repo, zap.NewNop())
		scope := testScope()
		siblings := makeSiblings(3, 5)

		repo.On("ListSiblingsFrom", mock.Anything, scope, 5, primitive.NilObjectID).Return(siblings, nil).Once()
		repo.On("ApplyOrderBatch", mock.Anything, scope.Collection, mock.MatchedBy(func(updates []repository.OrderUpdate) bool {
			require.Len(t, updates, 3)
			for i, u := range updates {
				assert.Equal(t, siblings[i].ID, u.ID)
				assert.Equal(t, siblings[i].Order+1, u.Order)
			}
			return true
		})).Return(nil).Once()

		err := engine.ShiftUp(context.Background(), scope, 5, primitive.NilObjectID)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyScopeSkipsStoreWrite", func(t *testing.T) {
		repo := newMockOrderedRepository()
		engine := NewOrderingEngine(repo, zap.NewNop())
		scope := testScope()

		repo.On("ListSiblingsFrom", mock.Anything, scope, 0, primitive.NilObjectID).Return(nil, nil).Once()

		err := engine.ShiftUp(context.Background(), scope, 0, primitive.NilObjectID)
		require.NoError(t, err)
		repo.AssertNotCalled(t, "ApplyOrderBatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LargeScopeCommitsSequentialChunks", func(t *testing.T) {
		// 1200 affected siblings must go out as three batches of 500, 500
		// and 200, in order.
		repo := newMockOrderedRepository()
		engine := NewOrderingEngine(repo, zap.NewNop())
		scope := testScope()
		siblings := makeSiblings(1200, 0)

		repo.On("ListSiblingsFrom", mock.Anything, scope, 0, primitive.NilObjectID).Return(siblings, nil).Once()

		var batchSizes []int
		repo.On("ApplyOrderBatch", mock.Anything, scope.Collection, mock.Anything).
			Run(func(args mock.Arguments) {
				updates := args.Get(2).([]repository.OrderUpdate)
				batchSizes = append(batchSizes, len(updates))
			}).
			Return(nil).Times(3)

		err := engine.ShiftUp(context.Background(), scope, 0, primitive.NilObjectID)
		require.NoError(t, err)
		assert.Equal(t, []int{500, 500, 200}, batchSizes)
	})

	t.Run("FailedChunkStopsRemaining", func(t *testing.T) {
		repo := newMockOrderedRepository()
		engine := NewOrderingEngine(repo, zap.NewNop())
		scope := testScope()
		siblings := makeSiblings(700, 0)

		repo.On("ListSiblingsFrom", mock.Anything, scope, 0, primitive.NilObjectID).Return(siblings, nil).Once()
		repo.On("ApplyOrderBatch", mock.Anything, scope.Collection, mock.Anything).
			Return(errors.New("write failed")).Once()

		err := engine.ShiftUp(context.Background(), scope, 0, primitive.NilObjectID)
		require.Error(t, err)
		repo.AssertNumberOfCalls(t, "ApplyOrderBatch", 1)
	})
}

func TestOrderingEngine_ShiftDown(t *testing.T) {
	repo := newMockOrderedRepository()
	engine := NewOrderingEngine(repo, zap.NewNop())
	scope := testScope()
	siblings := makeSiblings(4, 3)

	repo.On("ListSiblingsAbove", mock.Anything, scope, 2).Return(siblings, nil).Once()
	repo.On("ApplyOrderBatch", mock.Anything, scope.Collection, mock.MatchedBy(func(updates []repository.OrderUpdate) bool {
		require.Len(t, updates, 4)
		for i, u := range updates {
			assert.Equal(t, siblings[i].Order-1, u.Order)
		}
		return true
	})).Return(nil).Once()

	err := engine.ShiftDown(context.Background(), scope, 2)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

package mongodb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
)

func TestOrderedDAO_ApplyOrderBatch(t *testing.T) {
	t.Run("empty batch issues no command", func(t *testing.T) {
		dao := &OrderedDAO{logger: zap.NewNop()}
		err := dao.ApplyOrderBatch(context.Background(), CollectionPosts, nil)
		require.NoError(t, err)
	})

	t.Run("oversized batch is rejected before writing", func(t *testing.T) {
		dao := &OrderedDAO{logger: zap.NewNop()}

		updates := make([]repository.OrderUpdate, MaxBatchOps+1)
		for i := range updates {
			updates[i] = repository.OrderUpdate{ID: primitive.NewObjectID(), Order: i}
		}

		err := dao.ApplyOrderBatch(context.Background(), CollectionPosts, updates)
		require.Error(t, err)
		require.Contains(t, err.Error(), "ceiling")
	})

	t.Run("batch at the ceiling is written", func(t *testing.T) {
		mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
		mt.Run("BulkWrite success", func(mt *mtest.T) {
			dao := &OrderedDAO{db: mt.DB, logger: zap.NewNop()}

			updates := make([]repository.OrderUpdate, MaxBatchOps)
			for i := range updates {
				updates[i] = repository.OrderUpdate{ID: primitive.NewObjectID(), Order: i + 1}
			}

			mt.AddMockResponses(mtest.CreateSuccessResponse(
				bson.E{Key: "nMatched", Value: len(updates)},
				bson.E{Key: "nModified", Value: len(updates)},
			))

			err := dao.ApplyOrderBatch(context.Background(), CollectionPosts, updates)
			require.NoError(mt, err)
		})
	})

	t.Run("write error is returned", func(t *testing.T) {
		mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
		mt.Run("BulkWrite failure", func(mt *mtest.T) {
			dao := &OrderedDAO{db: mt.DB, logger: zap.NewNop()}

			mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    123,
				Message: "failure",
				Name:    "CommandFailed",
			}))

			err := dao.ApplyOrderBatch(context.Background(), CollectionPosts, []repository.OrderUpdate{
				{ID: primitive.NewObjectID(), Order: 1},
			})
			require.Error(mt, err)
		})
	})
}

func TestOrderedDAO_ListSiblingsFrom(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes id and order projections", func(mt *mtest.T) {
		dao := &OrderedDAO{db: mt.DB, logger: zap.NewNop()}

		scope := repository.OrderScope{
			Collection:  CollectionPosts,
			FilterField: fields.FieldPostBranch,
			FilterValue: primitive.NewObjectID(),
		}

		firstID := primitive.NewObjectID()
		secondID := primitive.NewObjectID()
		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), CollectionPosts)
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: firstID}, {Key: fields.FieldOrder, Value: 3}})
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch,
			bson.D{{Key: "_id", Value: secondID}, {Key: fields.FieldOrder, Value: 4}})
		mt.AddMockResponses(first, second)

		records, err := dao.ListSiblingsFrom(context.Background(), scope, 3, primitive.NilObjectID)
		require.NoError(mt, err)
		require.Len(mt, records, 2)
		require.Equal(mt, firstID, records[0].ID)
		require.Equal(mt, 3, records[0].Order)
		require.Equal(mt, secondID, records[1].ID)
		require.Equal(mt, 4, records[1].Order)
	})

	mt.Run("empty scope yields empty slice", func(mt *mtest.T) {
		dao := &OrderedDAO{db: mt.DB, logger: zap.NewNop()}

		scope := repository.OrderScope{
			Collection:  CollectionPosts,
			FilterField: fields.FieldPostBranch,
			FilterValue: primitive.NewObjectID(),
		}

		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), CollectionPosts)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		records, err := dao.ListSiblingsFrom(context.Background(), scope, 0, primitive.NilObjectID)
		require.NoError(mt, err)
		require.Empty(mt, records)
	})

	mt.Run("propagates find errors", func(mt *mtest.T) {
		dao := &OrderedDAO{db: mt.DB, logger: zap.NewNop()}

		scope := repository.OrderScope{
			Collection:  CollectionPosts,
			FilterField: fields.FieldPostBranch,
			FilterValue: primitive.NewObjectID(),
		}

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "failure",
			Name:    "CommandFailed",
		}))

		records, err := dao.ListSiblingsFrom(context.Background(), scope, 0, primitive.NilObjectID)
		require.Error(mt, err)
		require.Nil(mt, records)
	})
}

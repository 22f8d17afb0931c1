package mongodb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
)

func TestAuditLogDAO_Append(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns an id and upserts", func(mt *mtest.T) {
		dao := &AuditLogDAO{collection: mt.Coll, logger: zap.NewNop()}

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		entry := &models.AuditLog{
			UserID:          "uid-1",
			Action:          "register_basic",
			PerformedBy:     "uid-1",
			PerformedByRole: "user",
		}
		err := dao.Append(context.Background(), entry)
		require.NoError(mt, err)
		require.False(mt, entry.ID.IsZero())
	})

	mt.Run("write failure is returned", func(mt *mtest.T) {
		dao := &AuditLogDAO{collection: mt.Coll, logger: zap.NewNop()}

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "failure",
			Name:    "CommandFailed",
		}))

		err := dao.Append(context.Background(), &models.AuditLog{UserID: "uid-1", Action: "user_update"})
		require.Error(mt, err)
	})
}

func TestAuditLogDAO_ListByUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes entries most recent first", func(mt *mtest.T) {
		dao := &AuditLogDAO{collection: mt.Coll, logger: zap.NewNop()}

		now := time.Now().UTC().Truncate(time.Millisecond)
		newer := primitive.NewObjectID()
		older := primitive.NewObjectID()
		ns := fmt.Sprintf("%s.%s", mt.Coll.Database().Name(), mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: newer}, {Key: fields.FieldAuditUserID, Value: "uid-1"}, {Key: "action", Value: "role_update"}, {Key: fields.FieldAuditTimestamp, Value: now}},
			bson.D{{Key: "_id", Value: older}, {Key: fields.FieldAuditUserID, Value: "uid-1"}, {Key: "action", Value: "register_basic"}, {Key: fields.FieldAuditTimestamp, Value: now.Add(-time.Hour)}},
		))

		entries, err := dao.ListByUser(context.Background(), &repository.ListAuditLogsParams{UserID: "uid-1", Limit: 20})
		require.NoError(mt, err)
		require.Len(mt, entries, 2)
		assert.Equal(mt, newer, entries[0].ID)
		assert.Equal(mt, older, entries[1].ID)
	})
}

func TestSortAuditEntries(t *testing.T) {
	now := time.Now().UTC()
	idLow := primitive.ObjectID{0x01}
	idHigh := primitive.ObjectID{0x02}

	t.Run("timestamp wins", func(t *testing.T) {
		entries := []*models.AuditLog{
			{ID: idHigh, Timestamp: now.Add(-time.Minute)},
			{ID: idLow, Timestamp: now},
		}
		sortAuditEntries(entries)
		assert.Equal(t, idLow, entries[0].ID)
	})

	t.Run("equal timestamps fall back to id", func(t *testing.T) {
		entries := []*models.AuditLog{
			{ID: idLow, Timestamp: now},
			{ID: idHigh, Timestamp: now},
		}
		sortAuditEntries(entries)
		assert.Equal(t, idHigh, entries[0].ID)
		assert.Equal(t, idLow, entries[1].ID)
	})

	t.Run("missing timestamps sort last", func(t *testing.T) {
		entries := []*models.AuditLog{
			{ID: idHigh},
			{ID: idLow, Timestamp: now},
		}
		sortAuditEntries(entries)
		assert.Equal(t, idLow, entries[0].ID)
		assert.True(t, entries[1].Timestamp.IsZero())
	})
}

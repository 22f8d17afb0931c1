package mongodb

import (
	"bytes"
	"context"
	"sort"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewAuditLogDAO(db *mongo.Database, logger *zap.Logger) *AuditLogDAO {
	return &AuditLogDAO{
		collection: db.Collection(CollectionAuditLogs),
		logger:     logger.Named("AuditLogDAO"),
	}
}

type AuditLogDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// Append writes one immutable entry with a server-clock timestamp. The write
// goes through an upsert so the store stamps the time itself; client clocks
// never touch the audit trail. A failed append is returned to the caller so
// it can decide how to treat the committed-but-unlogged state change.
func (d *AuditLogDAO) Append(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}

	set := bson.M{
		fields.FieldAuditUserID: entry.UserID,
		"action":                entry.Action,
		"performed_by":          entry.PerformedBy,
		"performed_by_role":     entry.PerformedByRole,
	}
	if entry.PreviousStatus != "" {
		set["previous_status"] = entry.PreviousStatus
	}
	if entry.NewStatus != "" {
		set["new_status"] = entry.NewStatus
	}
	if len(entry.Metadata) > 0 {
		set["metadata"] = entry.Metadata
	}

	update := bson.M{
		"$set":         set,
		"$currentDate": bson.M{fields.FieldAuditTimestamp: true},
	}

	_, err := d.collection.UpdateOne(ctx,
		bson.M{fields.FieldObjectId: entry.ID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		d.logger.Error("Append: upsert failed", zap.Error(err), zap.String("userID", entry.UserID), zap.String("action", entry.Action))
		return err
	}
	return nil
}

func (d *AuditLogDAO) ListByUser(ctx context.Context, params *repository.ListAuditLogsParams) ([]*models.AuditLog, error) {
	filter := bson.M{fields.FieldAuditUserID: params.UserID}
	if !params.CursorID.IsZero() {
		filter["$or"] = bson.A{
			bson.M{fields.FieldAuditTimestamp: bson.M{"$lt": params.CursorTimestamp}},
			bson.M{
				fields.FieldAuditTimestamp: params.CursorTimestamp,
				fields.FieldObjectId:       bson.M{"$lt": params.CursorID},
			},
		}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: fields.FieldAuditTimestamp, Value: -1}, {Key: fields.FieldObjectId, Value: -1}})
	if params.Limit > 0 {
		findOptions.SetLimit(params.Limit)
	}

	cursor, err := d.collection.Find(ctx, filter, findOptions)
	if err != nil {
		d.logger.Error("ListByUser: Find failed", zap.Error(err), zap.String("userID", params.UserID))
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		d.logger.Error("ListByUser: cursor.All failed", zap.Error(err), zap.String("userID", params.UserID))
		return nil, err
	}

	sortAuditEntries(entries)
	return entries, nil
}

// sortAuditEntries re-sorts most-recent-first in memory. The store's ordering
// degrades when entries are missing timestamps; ties and zero timestamps fall
// back to the object id, which carries insertion order.
func sortAuditEntries(entries []*models.AuditLog) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, tj := entries[i].Timestamp, entries[j].Timestamp
		if !ti.Equal(tj) {
			if ti.IsZero() {
				return false
			}
			if tj.IsZero() {
				return true
			}
			return ti.After(tj)
		}
		return bytes.Compare(entries[i].ID[:], entries[j].ID[:]) > 0
	})
}

package mongodb

import (
	"context"
	"fmt"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewOrderedDAO(db *mongo.Database, logger *zap.Logger) *OrderedDAO {
	return &OrderedDAO{
		db:     db,
		logger: logger.Named("OrderedDAO"),
	}
}

// OrderedDAO is the collection-agnostic store surface of the ordering engine.
// It only ever reads id+order projections and writes explicit order values.
type OrderedDAO struct {
	db     *mongo.Database
	logger *zap.Logger
}

func (d *OrderedDAO) ListSiblingsFrom(ctx context.Context, scope repository.OrderScope, minOrder int, excludeID primitive.ObjectID) ([]repository.OrderedRecord, error) {
	filter := bson.M{
		scope.FilterField: scope.FilterValue,
		fields.FieldOrder: bson.M{"$gte": minOrder},
	}
	if !excludeID.IsZero() {
		filter[fields.FieldObjectId] = bson.M{"$ne": excludeID}
	}
	return d.listSiblings(ctx, scope.Collection, filter)
}

func (d *OrderedDAO) ListSiblingsAbove(ctx context.Context, scope repository.OrderScope, afterOrder int) ([]repository.OrderedRecord, error) {
	filter := bson.M{
		scope.FilterField: scope.FilterValue,
		fields.FieldOrder: bson.M{"$gt": afterOrder},
	}
	return d.listSiblings(ctx, scope.Collection, filter)
}

func (d *OrderedDAO) listSiblings(ctx context.Context, collection string, filter bson.M) ([]repository.OrderedRecord, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: fields.FieldOrder, Value: 1}}).
		SetProjection(bson.M{fields.FieldObjectId: 1, fields.FieldOrder: 1})

	cursor, err := d.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		d.logger.Error("listSiblings: Find failed", zap.Error(err), zap.String("collection", collection))
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []repository.OrderedRecord
	if err := cursor.All(ctx, &records); err != nil {
		d.logger.Error("listSiblings: cursor.All failed", zap.Error(err), zap.String("collection", collection))
		return nil, err
	}
	return records, nil
}

// ApplyOrderBatch commits one batch of order assignments. The batch is
// rejected outright when it exceeds the store's per-batch write ceiling;
// chunking is the ordering engine's job, not this layer's.
func (d *OrderedDAO) ApplyOrderBatch(ctx context.Context, collection string, updates []repository.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	if len(updates) > MaxBatchOps {
		return fmt.Errorf("order batch of %d exceeds the %d-operation ceiling", len(updates), MaxBatchOps)
	}

	writes := make([]mongo.WriteModel, 0, len(updates))
	for _, u := range updates {
		model := mongo.NewUpdateOneModel().
			SetFilter(bson.M{fields.FieldObjectId: u.ID}).
			SetUpdate(bson.M{"$set": bson.M{fields.FieldOrder: u.Order}})
		writes = append(writes, model)
	}

	bulkWriteOptions := options.BulkWrite().SetOrdered(false)
	_, err := d.db.Collection(collection).BulkWrite(ctx, writes, bulkWriteOptions)
	if err != nil {
		d.logger.Error("ApplyOrderBatch: BulkWrite failed", zap.Error(err), zap.String("collection", collection), zap.Int("ops", len(updates)))
		return err
	}
	return nil
}

package mongodb

import (
	"context"
	"errors"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func NewBranchesDAO(db *mongo.Database, logger *zap.Logger) *BranchesDAO {
	return &BranchesDAO{
		collection: db.Collection(CollectionBranches),
		logger:     logger.Named("BranchesDAO"),
	}
}

type BranchesDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *BranchesDAO) GetBranchByID(ctx context.Context, id primitive.ObjectID) (*models.Branch, error) {
	var branch models.Branch
	err := d.collection.FindOne(ctx, bson.M{fields.FieldObjectId: id}).Decode(&branch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetBranchByID: FindOne failed", zap.Error(err), zap.Stringer("branchID", id))
		return nil, err
	}
	return &branch, nil
}

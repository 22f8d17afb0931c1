package mongodb

import (
	"context"
	"errors"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func NewIdentitiesDAO(db *mongo.Database, logger *zap.Logger) *IdentitiesDAO {
	return &IdentitiesDAO{
		collection: db.Collection(CollectionIdentities),
		logger:     logger.Named("IdentitiesDAO"),
	}
}

type IdentitiesDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *IdentitiesDAO) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	_, err := d.collection.InsertOne(ctx, identity)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		d.logger.Error("CreateIdentity: InsertOne failed", zap.Error(err), zap.String("uid", identity.UID))
		return err
	}
	return nil
}

func (d *IdentitiesDAO) GetIdentityByUID(ctx context.Context, uid string) (*models.Identity, error) {
	var identity models.Identity
	err := d.collection.FindOne(ctx, bson.M{fields.FieldObjectId: uid}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetIdentityByUID: FindOne failed", zap.Error(err), zap.String("uid", uid))
		return nil, err
	}
	return &identity, nil
}

func (d *IdentitiesDAO) GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error) {
	var identity models.Identity
	err := d.collection.FindOne(ctx, bson.M{fields.FieldIdentityEmail: email}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetIdentityByEmail: FindOne failed", zap.Error(err))
		return nil, err
	}
	return &identity, nil
}

func (d *IdentitiesDAO) SetIdentityDisabled(ctx context.Context, uid string, disabled bool) error {
	res, err := d.collection.UpdateOne(ctx,
		bson.M{fields.FieldObjectId: uid},
		bson.M{"$set": bson.M{fields.FieldIdentityDisabled: disabled}},
	)
	if err != nil {
		d.logger.Error("SetIdentityDisabled: UpdateOne failed", zap.Error(err), zap.String("uid", uid))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *IdentitiesDAO) DeleteIdentity(ctx context.Context, uid string) error {
	res, err := d.collection.DeleteOne(ctx, bson.M{fields.FieldObjectId: uid})
	if err != nil {
		d.logger.Error("DeleteIdentity: DeleteOne failed", zap.Error(err), zap.String("uid", uid))
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

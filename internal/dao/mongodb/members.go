package mongodb

import (
	"context"
	"errors"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMembersDAO(db *mongo.Database, logger *zap.Logger) *MembersDAO {
	return &MembersDAO{
		collection: db.Collection(CollectionMembers),
		logger:     logger.Named("MembersDAO"),
	}
}

type MembersDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *MembersDAO) CreateMember(ctx context.Context, member *models.Member) error {
	_, err := d.collection.InsertOne(ctx, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		d.logger.Error("CreateMember: InsertOne failed", zap.Error(err), zap.String("uid", member.UID))
		return err
	}
	return nil
}

func (d *MembersDAO) GetMemberByUID(ctx context.Context, uid string) (*models.Member, error) {
	var member models.Member
	err := d.collection.FindOne(ctx, bson.M{fields.FieldObjectId: uid}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetMemberByUID: FindOne failed", zap.Error(err), zap.String("uid", uid))
		return nil, err
	}
	return &member, nil
}

func (d *MembersDAO) ListMembers(ctx context.Context, params *repository.ListMembersParams) ([]*models.Member, int64, error) {
	filter := bson.M{}
	if params.Role != "" {
		filter[fields.FieldMemberRole] = params.Role
	}
	if params.Status != "" {
		filter[fields.FieldStatus] = params.Status
	}
	if params.BranchID != nil {
		filter[fields.FieldMemberBranch] = *params.BranchID
	}

	total, err := d.collection.CountDocuments(ctx, filter)
	if err != nil {
		d.logger.Error("ListMembers: CountDocuments failed", zap.Error(err))
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: fields.FieldCreatedAt, Value: -1}}).
		SetSkip(int64(params.Offset)).
		SetLimit(int64(params.Limit))

	cursor, err := d.collection.Find(ctx, filter, findOptions)
	if err != nil {
		d.logger.Error("ListMembers: Find failed", zap.Error(err))
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var members []*models.Member
	if err := cursor.All(ctx, &members); err != nil {
		d.logger.Error("ListMembers: cursor.All failed", zap.Error(err))
		return nil, 0, err
	}

	return members, total, nil
}

func (d *MembersDAO) UpdateMember(ctx context.Context, uid string, opts ...repository.UpdateOption) error {
	update := buildUpdateDocument(opts...)
	if len(update) == 0 {
		return nil
	}

	res, err := d.collection.UpdateOne(ctx, bson.M{fields.FieldObjectId: uid}, update)
	if err != nil {
		d.logger.Error("UpdateMember: UpdateOne failed", zap.Error(err), zap.String("uid", uid))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *MembersDAO) DeleteMember(ctx context.Context, uid string) error {
	res, err := d.collection.DeleteOne(ctx, bson.M{fields.FieldObjectId: uid})
	if err != nil {
		d.logger.Error("DeleteMember: DeleteOne failed", zap.Error(err), zap.String("uid", uid))
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *MembersDAO) CountByNationalID(ctx context.Context, nationalID string, excludeUID string) (int64, error) {
	filter := bson.M{
		fields.FieldMemberNationalID: nationalID,
		fields.FieldObjectId:         bson.M{"$ne": excludeUID},
	}
	count, err := d.collection.CountDocuments(ctx, filter)
	if err != nil {
		d.logger.Error("CountByNationalID: CountDocuments failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

package mongodb

import (
	"context"
	"errors"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewPostsDAO(db *mongo.Database, logger *zap.Logger) *PostsDAO {
	return &PostsDAO{
		collection: db.Collection(CollectionPosts),
		logger:     logger.Named("PostsDAO"),
	}
}

type PostsDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *PostsDAO) CreatePost(ctx context.Context, post *models.Post) (primitive.ObjectID, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	_, err := d.collection.InsertOne(ctx, post)
	if err != nil {
		d.logger.Error("CreatePost: InsertOne failed", zap.Error(err), zap.Stringer("branchID", post.BranchID))
		return primitive.NilObjectID, err
	}
	return post.ID, nil
}

func (d *PostsDAO) GetPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := d.collection.FindOne(ctx, bson.M{fields.FieldObjectId: id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetPostByID: FindOne failed", zap.Error(err), zap.Stringer("postID", id))
		return nil, err
	}
	return &post, nil
}

func (d *PostsDAO) ListPostsByBranch(ctx context.Context, branchID primitive.ObjectID) ([]*models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: fields.FieldPostOrder, Value: 1}})
	cursor, err := d.collection.Find(ctx, bson.M{fields.FieldPostBranch: branchID}, findOptions)
	if err != nil {
		d.logger.Error("ListPostsByBranch: Find failed", zap.Error(err), zap.Stringer("branchID", branchID))
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		d.logger.Error("ListPostsByBranch: cursor.All failed", zap.Error(err), zap.Stringer("branchID", branchID))
		return nil, err
	}
	return posts, nil
}

func (d *PostsDAO) UpdatePost(ctx context.Context, id primitive.ObjectID, opts ...repository.UpdateOption) error {
	update := buildUpdateDocument(opts...)
	if len(update) == 0 {
		return nil
	}

	res, err := d.collection.UpdateOne(ctx, bson.M{fields.FieldObjectId: id}, update)
	if err != nil {
		d.logger.Error("UpdatePost: UpdateOne failed", zap.Error(err), zap.Stringer("postID", id))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *PostsDAO) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	res, err := d.collection.DeleteOne(ctx, bson.M{fields.FieldObjectId: id})
	if err != nil {
		d.logger.Error("DeletePost: DeleteOne failed", zap.Error(err), zap.Stringer("postID", id))
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *PostsDAO) NextPostOrder(ctx context.Context, branchID primitive.ObjectID) (int, error) {
	findOptions := options.FindOne().
		SetSort(bson.D{{Key: fields.FieldPostOrder, Value: -1}}).
		SetProjection(bson.M{fields.FieldPostOrder: 1})

	var last struct {
		Order int `bson:"order"`
	}
	err := d.collection.FindOne(ctx, bson.M{fields.FieldPostBranch: branchID}, findOptions).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		d.logger.Error("NextPostOrder: FindOne failed", zap.Error(err), zap.Stringer("branchID", branchID))
		return 0, err
	}
	return last.Order + 1, nil
}

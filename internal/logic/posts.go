package logic

import (
	"context"
	"errors"
	"time"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/authz"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/mongodb"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
)

// PostLogic defines the interface for branch announcement business logic.
type PostLogic interface {
	CreatePost(ctx context.Context, d *dto.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, d *dto.UpdatePostRequest) (*models.Post, error)
	MovePost(ctx context.Context, d *dto.MovePostRequest) error
	DeletePost(ctx context.Context, actor *models.Member, postID primitive.ObjectID) error
	SetPublished(ctx context.Context, actor *models.Member, postID primitive.ObjectID, published bool) error
	GetPost(ctx context.Context, postID primitive.ObjectID) (*models.Post, error)
	ListPosts(ctx context.Context, branchID primitive.ObjectID) ([]*models.Post, error)
}

var _ PostLogic = (*postLogic)(nil)

type postLogic struct {
	postRepo repository.PostRepository
	ordering *OrderingEngine
	logger   *zap.Logger
}

func NewPostLogic(postRepo repository.PostRepository, ordering *OrderingEngine, logger *zap.Logger) *postLogic {
	return &postLogic{
		postRepo: postRepo,
		ordering: ordering,
		logger:   logger.Named("PostLogic"),
	}
}

// postScope is the ordered sibling set of one branch's posts.
func postScope(branchID primitive.ObjectID) repository.OrderScope {
	return repository.OrderScope{
		Collection:  mongodb.CollectionPosts,
		FilterField: fields.FieldPostBranch,
		FilterValue: branchID,
	}
}

// authorizeBranch gates post management. Admins and superadmins manage any
// branch; a branch manager only their own.
func (l *postLogic) authorizeBranch(actor *models.Member, branchID primitive.ObjectID) error {
	decision := authz.Decide(authz.Subject{
		UID:      actor.UID,
		Role:     constants.ParseRole(actor.Role),
		BranchID: actor.BranchHex(),
	}, nil, authz.ActionManagePosts)
	if !decision.Allowed {
		return apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}
	if constants.ParseRole(actor.Role) == constants.RoleBranchManager && actor.BranchHex() != branchID.Hex() {
		return apperrors.Authorization("ACCESS_DENIED").WithCause(ErrPermissionDenied)
	}
	return nil
}

// CreatePost inserts an announcement. With an explicit order the engine
// first opens a gap at that position; without one the post appends at the
// end of the branch's list.
func (l *postLogic) CreatePost(ctx context.Context, d *dto.CreatePostRequest) (*models.Post, error) {
	if err := l.authorizeBranch(d.Actor(), d.BranchID()); err != nil {
		return nil, err
	}
	if d.Title() == "" {
		return nil, apperrors.Validation("MISSING_TITLE", "title is required")
	}

	var order int
	if d.Order() != nil {
		order = *d.Order()
		if order < 0 {
			return nil, apperrors.Validation("INVALID_ORDER", "order cannot be negative")
		}
		if err := l.ordering.ShiftUp(ctx, postScope(d.BranchID()), order, primitive.NilObjectID); err != nil {
			return nil, err
		}
	} else {
		next, err := l.postRepo.NextPostOrder(ctx, d.BranchID())
		if err != nil {
			return nil, apperrors.FromError(err)
		}
		order = next
	}

	now := time.Now()
	post := &models.Post{
		BranchID:  d.BranchID(),
		Title:     d.Title(),
		Body:      d.Body(),
		Order:     order,
		Published: false,
		CreatedBy: d.Actor().UID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := l.postRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	post.ID = id

	return post, nil
}

// UpdatePost edits the announcement's content. Only submitted fields change;
// a cleared title is rejected rather than stored empty.
func (l *postLogic) UpdatePost(ctx context.Context, d *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := l.getPost(ctx, d.PostID())
	if err != nil {
		return nil, err
	}
	if err := l.authorizeBranch(d.Actor(), post.BranchID); err != nil {
		return nil, err
	}

	var opts []repository.UpdateOption
	if d.Title() != nil {
		if *d.Title() == "" {
			return nil, apperrors.Validation("MISSING_TITLE", "title is required")
		}
		opts = append(opts, repository.WithPostTitle(*d.Title()))
	}
	if d.Body() != nil {
		opts = append(opts, repository.WithPostBody(*d.Body()))
	}
	if len(opts) == 0 {
		return nil, apperrors.Validation("EMPTY_UPDATE", "no fields to update")
	}
	opts = append(opts, repository.WithServerTimestamp())

	if err := l.postRepo.UpdatePost(ctx, post.ID, opts...); err != nil {
		return nil, apperrors.FromError(err)
	}

	return l.getPost(ctx, post.ID)
}

// MovePost relocates a post to newOrder. The gap is opened with the moving
// post excluded, then the post takes the freed position.
func (l *postLogic) MovePost(ctx context.Context, d *dto.MovePostRequest) error {
	post, err := l.getPost(ctx, d.PostID())
	if err != nil {
		return err
	}
	if err := l.authorizeBranch(d.Actor(), post.BranchID); err != nil {
		return err
	}
	if d.NewOrder() < 0 {
		return apperrors.Validation("INVALID_ORDER", "order cannot be negative")
	}
	if d.NewOrder() == post.Order {
		return nil
	}

	if err := l.ordering.ShiftUp(ctx, postScope(post.BranchID), d.NewOrder(), post.ID); err != nil {
		return err
	}

	if err := l.postRepo.UpdatePost(ctx, post.ID,
		repository.WithOrder(d.NewOrder()),
		repository.WithServerTimestamp(),
	); err != nil {
		return apperrors.FromError(err)
	}

	return nil
}

// DeletePost removes the post, then closes the order gap it leaves behind.
func (l *postLogic) DeletePost(ctx context.Context, actor *models.Member, postID primitive.ObjectID) error {
	post, err := l.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := l.authorizeBranch(actor, post.BranchID); err != nil {
		return err
	}

	if err := l.postRepo.DeletePost(ctx, post.ID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return apperrors.NotFound("POST_NOT_FOUND", "post not found")
		}
		return apperrors.FromError(err)
	}

	return l.ordering.ShiftDown(ctx, postScope(post.BranchID), post.Order)
}

func (l *postLogic) SetPublished(ctx context.Context, actor *models.Member, postID primitive.ObjectID, published bool) error {
	post, err := l.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := l.authorizeBranch(actor, post.BranchID); err != nil {
		return err
	}

	if err := l.postRepo.UpdatePost(ctx, post.ID,
		repository.WithPublished(published),
		repository.WithServerTimestamp(),
	); err != nil {
		return apperrors.FromError(err)
	}
	return nil
}

func (l *postLogic) GetPost(ctx context.Context, postID primitive.ObjectID) (*models.Post, error) {
	return l.getPost(ctx, postID)
}

func (l *postLogic) ListPosts(ctx context.Context, branchID primitive.ObjectID) ([]*models.Post, error) {
	posts, err := l.postRepo.ListPostsByBranch(ctx, branchID)
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	return posts, nil
}

func (l *postLogic) getPost(ctx context.Context, postID primitive.ObjectID) (*models.Post, error) {
	post, err := l.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, apperrors.NotFound("POST_NOT_FOUND", "post not found")
		}
		return nil, apperrors.FromError(err)
	}
	return post, nil
}

var PostLogicProviderSet = wire.NewSet(NewPostLogic, wire.Bind(new(PostLogic), new(*postLogic)))

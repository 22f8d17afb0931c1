package repository

import (
	"context"

	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemberRepository interface {
	CreateMember(ctx context.Context, member *models.Member) error
	GetMemberByUID(ctx context.Context, uid string) (*models.Member, error)
	ListMembers(ctx context.Context, params *ListMembersParams) ([]*models.Member, int64, error)
	UpdateMember(ctx context.Context, uid string, opts ...UpdateOption) error
	DeleteMember(ctx context.Context, uid string) error
	// CountByNationalID counts accounts other than excludeUID holding the
	// given national id. Uniqueness is a convention, not a store constraint,
	// so transitions re-check it through this call.
	CountByNationalID(ctx context.Context, nationalID string, excludeUID string) (int64, error)
}

type BranchRepository interface {
	GetBranchByID(ctx context.Context, id primitive.ObjectID) (*models.Branch, error)
}

type AuditLogRepository interface {
	// Append writes one immutable entry. Failures propagate to the caller;
	// they are never swallowed.
	Append(ctx context.Context, entry *models.AuditLog) error
	ListByUser(ctx context.Context, params *ListAuditLogsParams) ([]*models.AuditLog, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) (primitive.ObjectID, error)
	GetPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	ListPostsByBranch(ctx context.Context, branchID primitive.ObjectID) ([]*models.Post, error)
	UpdatePost(ctx context.Context, id primitive.ObjectID, opts ...UpdateOption) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error
	// NextPostOrder returns the first free order value at the end of the
	// branch's sibling set.
	NextPostOrder(ctx context.Context, branchID primitive.ObjectID) (int, error)
}

// OrderedRepository is the store surface the ordering engine runs on. It is
// collection-agnostic: a scope names the collection and the sibling filter.
type OrderedRepository interface {
	// ListSiblingsFrom returns records in scope with order >= minOrder,
	// excluding excludeID when it is non-zero.
	ListSiblingsFrom(ctx context.Context, scope OrderScope, minOrder int, excludeID primitive.ObjectID) ([]OrderedRecord, error)
	// ListSiblingsAbove returns records in scope with order > afterOrder.
	ListSiblingsAbove(ctx context.Context, scope OrderScope, afterOrder int) ([]OrderedRecord, error)
	// ApplyOrderBatch commits one batch of explicit order assignments. The
	// batch must not exceed the store's per-batch write ceiling.
	ApplyOrderBatch(ctx context.Context, collection string, updates []OrderUpdate) error
}

type IdentityRepository interface {
	CreateIdentity(ctx context.Context, identity *models.Identity) error
	GetIdentityByUID(ctx context.Context, uid string) (*models.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error)
	SetIdentityDisabled(ctx context.Context, uid string, disabled bool) error
	DeleteIdentity(ctx context.Context, uid string) error
}

package logic

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
	"github.com/EmreNP/sendikaapp-sub000/internal/identity"
	"github.com/EmreNP/sendikaapp-sub000/internal/models"
)

type mockMemberRepository struct {
	mock.Mock
}

func newMockMemberRepository() *mockMemberRepository {
	return &mockMemberRepository{}
}

func (m *mockMemberRepository) CreateMember(ctx context.Context, member *models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockMemberRepository) GetMemberByUID(ctx context.Context, uid string) (*models.Member, error) {
	args := m.Called(ctx, uid)
	var member *models.Member
	if v := args.Get(0); v != nil {
		member = v.(*models.Member)
	}
	return member, args.Error(1)
}

func (m *mockMemberRepository) ListMembers(ctx context.Context, params *repository.ListMembersParams) ([]*models.Member, int64, error) {
	args := m.Called(ctx, params)
	var members []*models.Member
	if v := args.Get(0); v != nil {
		members = v.([]*models.Member)
	}
	return members, args.Get(1).(int64), args.Error(2)
}

func (m *mockMemberRepository) UpdateMember(ctx context.Context, uid string, opts ...repository.UpdateOption) error {
	args := m.Called(ctx, uid, opts)
	return args.Error(0)
}

func (m *mockMemberRepository) DeleteMember(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *mockMemberRepository) CountByNationalID(ctx context.Context, nationalID string, excludeUID string) (int64, error) {
	args := m.Called(ctx, nationalID, excludeUID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBranchRepository struct {
	mock.Mock
}

func newMockBranchRepository() *mockBranchRepository {
	return &mockBranchRepository{}
}

func (m *mockBranchRepository) GetBranchByID(ctx context.Context, id primitive.ObjectID) (*models.Branch, error) {
	args := m.Called(ctx, id)
	var branch *models.Branch
	if v := args.Get(0); v != nil {
		branch = v.(*models.Branch)
	}
	return branch, args.Error(1)
}

type mockAuditLogRepository struct {
	mock.Mock
}

func newMockAuditLogRepository() *mockAuditLogRepository {
	return &mockAuditLogRepository{}
}

func (m *mockAuditLogRepository) Append(ctx context.Context, entry *models.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockAuditLogRepository) ListByUser(ctx context.Context, params *repository.ListAuditLogsParams) ([]*models.AuditLog, error) {
	args := m.Called(ctx, params)
	var entries []*models.AuditLog
	if v := args.Get(0); v != nil {
		entries = v.([]*models.AuditLog)
	}
	return entries, args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func newMockPostRepository() *mockPostRepository {
	return &mockPostRepository{}
}

func (m *mockPostRepository) CreatePost(ctx context.Context, post *models.Post) (primitive.ObjectID, error) {
	args := m.Called(ctx, post)
	if oid := args.Get(0); oid != nil {
		return oid.(primitive.ObjectID), args.Error(1)
	}
	return primitive.NilObjectID, args.Error(1)
}

func (m *mockPostRepository) GetPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	args := m.Called(ctx, id)
	var post *models.Post
	if v := args.Get(0); v != nil {
		post = v.(*models.Post)
	}
	return post, args.Error(1)
}

func (m *mockPostRepository) ListPostsByBranch(ctx context.Context, branchID primitive.ObjectID) ([]*models.Post, error) {
	args := m.Called(ctx, branchID)
	var posts []*models.Post
	if v := args.Get(0); v != nil {
		posts = v.([]*models.Post)
	}
	return posts, args.Error(1)
}

func (m *mockPostRepository) UpdatePost(ctx context.Context, id primitive.ObjectID, opts ...repository.UpdateOption) error {
	args := m.Called(ctx, id, opts)
	return args.Error(0)
}

func (m *mockPostRepository) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepository) NextPostOrder(ctx context.Context, branchID primitive.ObjectID) (int, error) {
	args := m.Called(ctx, branchID)
	return args.Int(0), args.Error(1)
}

type mockOrderedRepository struct {
	mock.Mock
}

func newMockOrderedRepository() *mockOrderedRepository {
	return &mockOrderedRepository{}
}

func (m *mockOrderedRepository) ListSiblingsFrom(ctx context.Context, scope repository.OrderScope, minOrder int, excludeID primitive.ObjectID) ([]repository.OrderedRecord, error) {
	args := m.Called(ctx, scope, minOrder, excludeID)
	var records []repository.OrderedRecord
	if v := args.Get(0); v != nil {
		records = v.([]repository.OrderedRecord)
	}
	return records, args.Error(1)
}

func (m *mockOrderedRepository) ListSiblingsAbove(ctx context.Context, scope repository.OrderScope, afterOrder int) ([]repository.OrderedRecord, error) {
	args := m.Called(ctx, scope, afterOrder)
	var records []repository.OrderedRecord
	if v := args.Get(0); v != nil {
		records = v.([]repository.OrderedRecord)
	}
	return records, args.Error(1)
}

func (m *mockOrderedRepository) ApplyOrderBatch(ctx context.Context, collection string, updates []repository.OrderUpdate) error {
	args := m.Called(ctx, collection, updates)
	return args.Error(0)
}

type mockIdentityProvider struct {
	mock.Mock
}

func newMockIdentityProvider() *mockIdentityProvider {
	return &mockIdentityProvider{}
}

func (m *mockIdentityProvider) VerifyToken(ctx context.Context, token string) (*identity.Token, error) {
	args := m.Called(ctx, token)
	var t *identity.Token
	if v := args.Get(0); v != nil {
		t = v.(*identity.Token)
	}
	return t, args.Error(1)
}

func (m *mockIdentityProvider) GetByUID(ctx context.Context, uid string) (*models.Identity, error) {
	args := m.Called(ctx, uid)
	var id *models.Identity
	if v := args.Get(0); v != nil {
		id = v.(*models.Identity)
	}
	return id, args.Error(1)
}

func (m *mockIdentityProvider) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	args := m.Called(ctx, email)
	var id *models.Identity
	if v := args.Get(0); v != nil {
		id = v.(*models.Identity)
	}
	return id, args.Error(1)
}

func (m *mockIdentityProvider) Create(ctx context.Context, record *models.Identity) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockIdentityProvider) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	args := m.Called(ctx, uid, disabled)
	return args.Error(0)
}

func (m *mockIdentityProvider) Delete(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

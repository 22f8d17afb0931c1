package dto

import (
	"github.com/EmreNP/sendikaapp-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func NewCreatePostRequest(actor *models.Member, branchID primitive.ObjectID, title, body string, order *int) *CreatePostRequest {
	return &CreatePostRequest{
		actor:    actor,
		branchID: branchID,
		title:    title,
		body:     body,
		order:    order,
	}
}

type CreatePostRequest struct {
	actor    *models.Member
	branchID primitive.ObjectID
	title    string
	body     string
	// order is the requested position; nil appends at the end.
	order *int
}

func (r CreatePostRequest) Actor() *models.Member        { return r.actor }
func (r CreatePostRequest) BranchID() primitive.ObjectID { return r.branchID }
func (r CreatePostRequest) Title() string                { return r.title }
func (r CreatePostRequest) Body() string                 { return r.body }
func (r CreatePostRequest) Order() *int                  { return r.order }

func NewUpdatePostRequest(actor *models.Member, postID primitive.ObjectID, title, body *string) *UpdatePostRequest {
	return &UpdatePostRequest{
		actor:  actor,
		postID: postID,
		title:  title,
		body:   body,
	}
}

// UpdatePostRequest edits an announcement's content. Nil fields are left
// untouched.
type UpdatePostRequest struct {
	actor  *models.Member
	postID primitive.ObjectID
	title  *string
	body   *string
}

func (r UpdatePostRequest) Actor() *models.Member      { return r.actor }
func (r UpdatePostRequest) PostID() primitive.ObjectID { return r.postID }
func (r UpdatePostRequest) Title() *string             { return r.title }
func (r UpdatePostRequest) Body() *string              { return r.body }

func NewMovePostRequest(actor *models.Member, postID primitive.ObjectID, newOrder int) *MovePostRequest {
	return &MovePostRequest{
		actor:    actor,
		postID:   postID,
		newOrder: newOrder,
	}
}

type MovePostRequest struct {
	actor    *models.Member
	postID   primitive.ObjectID
	newOrder int
}

func (r MovePostRequest) Actor() *models.Member      { return r.actor }
func (r MovePostRequest) PostID() primitive.ObjectID { return r.postID }
func (r MovePostRequest) NewOrder() int              { return r.newOrder }

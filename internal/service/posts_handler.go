package service

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/logic"
)

// PostsHandler handles the HTTP requests for branch announcements.
type PostsHandler struct {
	postLogic logic.PostLogic
	responder *Responder
	logger    *zap.Logger
}

func NewPostsHandler(pl logic.PostLogic, responder *Responder, logger *zap.Logger) *PostsHandler {
	return &PostsHandler{
		postLogic: pl,
		responder: responder,
		logger:    logger.Named("PostsHandler"),
	}
}

func pathObjectID(r *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(r.PathValue(name))
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("INVALID_ID", name+" is not a valid id")
	}
	return id, nil
}

// Create handles POST /api/v1/branches/{branch_id}/posts.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	branchID, err := pathObjectID(r, "branch_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Order *int   `json:"order"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	post, err := h.postLogic.CreatePost(r.Context(),
		dto.NewCreatePostRequest(actor, branchID, body.Title, body.Body, body.Order))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, "post created", post)
}

// List handles GET /api/v1/branches/{branch_id}/posts.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	branchID, err := pathObjectID(r, "branch_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	posts, err := h.postLogic.ListPosts(r.Context(), branchID)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", posts)
}

// Update handles PATCH /api/v1/posts/{post_id}.
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	postID, err := pathObjectID(r, "post_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	var body struct {
		Title *string `json:"title"`
		Body  *string `json:"body"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	post, err := h.postLogic.UpdatePost(r.Context(),
		dto.NewUpdatePostRequest(actor, postID, body.Title, body.Body))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "post updated", post)
}

// Move handles PUT /api/v1/posts/{post_id}/order.
func (h *PostsHandler) Move(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	postID, err := pathObjectID(r, "post_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	var body struct {
		Order int `json:"order"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.postLogic.MovePost(r.Context(), dto.NewMovePostRequest(actor, postID, body.Order)); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "post moved", nil)
}

// SetPublished handles PUT /api/v1/posts/{post_id}/published.
func (h *PostsHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	postID, err := pathObjectID(r, "post_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	var body struct {
		Published bool `json:"published"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.postLogic.SetPublished(r.Context(), actor, postID, body.Published); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "post updated", nil)
}

// Delete handles DELETE /api/v1/posts/{post_id}.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	postID, err := pathObjectID(r, "post_id")
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.postLogic.DeletePost(r.Context(), actor, postID); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "post deleted", nil)
}

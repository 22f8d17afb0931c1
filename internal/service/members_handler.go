package service

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/logic"
	"github.com/EmreNP/sendikaapp-sub000/pkg/pagination"
)

const defaultAuditPageSize = 20

// MembersHandler handles the HTTP requests of the member lifecycle.
type MembersHandler struct {
	memberLogic logic.MemberLogic
	responder   *Responder
	logger      *zap.Logger
}

func NewMembersHandler(ml logic.MemberLogic, responder *Responder, logger *zap.Logger) *MembersHandler {
	return &MembersHandler{
		memberLogic: ml,
		responder:   responder,
		logger:      logger.Named("MembersHandler"),
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Validation("INVALID_BODY", "request body is not valid JSON")
	}
	return nil
}

// Register handles POST /api/v1/members. The caller holds a verified token
// but no member document yet; the token middleware provides the identity.
func (h *MembersHandler) Register(w http.ResponseWriter, r *http.Request) {
	token := TokenFromContext(r.Context())
	if token == nil {
		h.responder.Error(w, apperrors.Authentication("MISSING_IDENTITY", "caller identity not found"))
		return
	}

	var body struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	member, err := h.memberLogic.RegisterBasic(r.Context(),
		dto.NewRegisterBasicRequest(token.UID, token.Email, body.FirstName, body.LastName))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, "registration started", member)
}

// CompleteDetails handles PUT /api/v1/members/{uid}/details.
func (h *MembersHandler) CompleteDetails(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	targetUID := r.PathValue("uid")

	var details dto.MemberDetails
	if err := decodeBody(r, &details); err != nil {
		h.responder.Error(w, err)
		return
	}

	member, err := h.memberLogic.CompleteDetails(r.Context(),
		dto.NewCompleteDetailsRequest(actor, targetUID, &details))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "details completed", member)
}

// Review handles POST /api/v1/members/{uid}/review.
func (h *MembersHandler) Review(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	targetUID := r.PathValue("uid")

	var body struct {
		Approve bool   `json:"approve"`
		Note    string `json:"note"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	member, err := h.memberLogic.Review(r.Context(),
		dto.NewReviewRequest(actor, targetUID, body.Approve, body.Note))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "review recorded", member)
}

// Update handles PATCH /api/v1/members/{uid}.
func (h *MembersHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	targetUID := r.PathValue("uid")

	var update dto.MemberUpdate
	if err := decodeBody(r, &update); err != nil {
		h.responder.Error(w, err)
		return
	}

	member, err := h.memberLogic.UpdateMember(r.Context(),
		dto.NewUpdateMemberRequest(actor, targetUID, &update))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "member updated", member)
}

// UpdateRole handles PUT /api/v1/members/{uid}/role.
func (h *MembersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	targetUID := r.PathValue("uid")

	var body struct {
		Role     string `json:"role"`
		BranchID string `json:"branch_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	role := constants.ParseRole(body.Role)
	if role == constants.RoleUnknown {
		h.responder.Error(w, apperrors.Validation("UNKNOWN_ROLE", "unknown role: "+body.Role))
		return
	}

	if err := h.memberLogic.UpdateRole(r.Context(),
		dto.NewUpdateRoleRequest(actor, targetUID, role, body.BranchID)); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "role updated", nil)
}

// SetActive handles PUT /api/v1/members/{uid}/active.
func (h *MembersHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	targetUID := r.PathValue("uid")

	var body struct {
		Active bool `json:"active"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	if err := h.memberLogic.SetActive(r.Context(), actor, targetUID, body.Active); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "member updated", nil)
}

// Delete handles DELETE /api/v1/members/{uid}.
func (h *MembersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	targetUID := r.PathValue("uid")

	if err := h.memberLogic.DeleteMember(r.Context(), actor, targetUID); err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "member deleted", nil)
}

// Get handles GET /api/v1/members/{uid}.
func (h *MembersHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	member, err := h.memberLogic.GetMember(r.Context(), actor, r.PathValue("uid"))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", member)
}

// List handles GET /api/v1/members with role/status/branch filters and
// page/page_size pagination.
func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var branchID *primitive.ObjectID
	if raw := q.Get("branch_id"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			h.responder.Error(w, apperrors.Validation("INVALID_BRANCH_ID", "branch id is not valid"))
			return
		}
		branchID = &id
	}

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	pageReq := pagination.NewPageRequest(page, pageSize)

	result, err := h.memberLogic.ListMembers(r.Context(), ActorFromContext(r.Context()),
		dto.NewListMembersFilter(q.Get("role"), q.Get("status"), branchID), pageReq)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", result)
}

// AuditLogs handles GET /api/v1/members/{uid}/audit-logs with cursor
// pagination.
func (h *MembersHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := int64(defaultAuditPageSize)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > pagination.MaxPageSize {
			h.responder.Error(w, apperrors.Validation("INVALID_LIMIT", "limit is not valid"))
			return
		}
		limit = parsed
	}

	entries, nextToken, err := h.memberLogic.ListAuditLogs(r.Context(), ActorFromContext(r.Context()),
		r.PathValue("uid"), pagination.PageToken(q.Get("page_token")), limit)
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.Success(w, http.StatusOK, "", map[string]interface{}{
		"entries":         entries,
		"next_page_token": nextToken,
	})
}

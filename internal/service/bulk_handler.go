package service

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/logic"
)

// BulkHandler handles the bulk mutation endpoints.
type BulkHandler struct {
	bulkLogic logic.BulkLogic
	responder *Responder
	logger    *zap.Logger
}

func NewBulkHandler(bl logic.BulkLogic, responder *Responder, logger *zap.Logger) *BulkHandler {
	return &BulkHandler{
		bulkLogic: bl,
		responder: responder,
		logger:    logger.Named("BulkHandler"),
	}
}

type bulkBody struct {
	Action    string   `json:"action"`
	TargetIDs []string `json:"target_ids"`
}

// Members handles POST /api/v1/members/bulk.
func (h *BulkHandler) Members(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var body bulkBody
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	result, err := h.bulkLogic.ExecuteMembers(r.Context(),
		dto.NewBulkMemberRequest(actor, body.Action, body.TargetIDs))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.BulkResult(w, result)
}

// Posts handles POST /api/v1/posts/bulk.
func (h *BulkHandler) Posts(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var body bulkBody
	if err := decodeBody(r, &body); err != nil {
		h.responder.Error(w, err)
		return
	}

	result, err := h.bulkLogic.ExecutePosts(r.Context(),
		dto.NewBulkPostRequest(actor, body.Action, body.TargetIDs))
	if err != nil {
		h.responder.Error(w, err)
		return
	}

	h.responder.BulkResult(w, result)
}

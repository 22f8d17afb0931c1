package service

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/dto"
	"github.com/EmreNP/sendikaapp-sub000/internal/provider"
)

// Envelope is the uniform response body of every endpoint, success or
// failure.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Responder writes envelopes and owns the single AppError to HTTP
// translation. In dev mode failure responses carry the underlying error
// chain; in production they carry only the sanitized message and code.
type Responder struct {
	logger  *zap.Logger
	devMode bool
}

func NewResponder(logger *zap.Logger, mode provider.AppMode) *Responder {
	return &Responder{
		logger:  logger.Named("Responder"),
		devMode: mode == "dev" || mode == "test",
	}
}

func (r *Responder) writeJSON(w http.ResponseWriter, status int, env *Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		r.logger.Error("failed to encode response", zap.Error(err))
	}
}

// Success writes a success envelope with the given status, typically
// http.StatusOK or http.StatusCreated.
func (r *Responder) Success(w http.ResponseWriter, status int, message string, data interface{}) {
	r.writeJSON(w, status, &Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error translates err into its envelope. Unexpected errors are logged with
// full detail server-side; the client sees the generic message unless dev
// mode is on.
func (r *Responder) Error(w http.ResponseWriter, err error) {
	appErr := apperrors.FromError(err)

	if appErr.Kind == apperrors.KindInternal || appErr.Kind == apperrors.KindBadGateway {
		r.logger.Error("request failed", zap.Error(err), zap.String("code", appErr.Code))
	}

	env := &Envelope{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
	}
	if appErr.Details != "" {
		env.Details = appErr.Details
	}
	if r.devMode {
		env.Details = err.Error()
	}
	r.writeJSON(w, appErr.HTTPStatus(), env)
}

// BulkResult maps a bulk run to its status: 200 when everything succeeded,
// 207 for a mixed or fully failed run.
func (r *Responder) BulkResult(w http.ResponseWriter, result *dto.BulkResult) {
	status := http.StatusOK
	message := "bulk operation completed"
	if result.FailureCount > 0 {
		status = http.StatusMultiStatus
		message = "bulk operation completed with failures"
	}
	r.writeJSON(w, status, &Envelope{
		Success: result.FailureCount == 0,
		Message: message,
		Data:    result,
	})
}

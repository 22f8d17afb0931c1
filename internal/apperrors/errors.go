package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error for transport mapping and logging.
type Kind int

const (
	KindValidation Kind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindRateLimit
	KindInternal
	KindBadGateway
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindRateLimit:
		return "rate_limit"
	case KindBadGateway:
		return "bad_gateway"
	default:
		return "internal"
	}
}

// AppError is the tagged error type every layer above the DAOs propagates.
// A single translation layer at the HTTP boundary maps it to the response
// envelope; nothing else inspects HTTP status codes.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.err
}

// Is matches two AppErrors by kind and code so sentinels built with the
// constructors below work with errors.Is.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Code == "" || e.Code == t.Code)
}

// WithCause returns a copy of e carrying cause for Unwrap chains.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.err = cause
	return &clone
}

// HTTPStatus maps the error kind to the status code of the operation envelope.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Validation(code, message string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: message}
}

func Authentication(code, message string) *AppError {
	return &AppError{Kind: KindAuthentication, Code: code, Message: message}
}

// Authorization errors deliberately carry a generic message so responses never
// reveal which rule denied the caller.
func Authorization(code string) *AppError {
	return &AppError{Kind: KindAuthorization, Code: code, Message: "access denied"}
}

func NotFound(code, message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

func RateLimited(code, message string) *AppError {
	return &AppError{Kind: KindRateLimit, Code: code, Message: message}
}

func Internal(code, message string) *AppError {
	return &AppError{Kind: KindInternal, Code: code, Message: message}
}

func BadGateway(code, message string) *AppError {
	return &AppError{Kind: KindBadGateway, Code: code, Message: message}
}

// FromError returns err as an *AppError, wrapping unknown errors as internal
// so the boundary never leaks raw error text in production.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("INTERNAL", "an unexpected error occurred").WithCause(err)
}

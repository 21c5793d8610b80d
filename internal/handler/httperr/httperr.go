package httperr

import (
	"net/http"

	"marketplace-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type mapping struct {
	kind   error
	status int
	code   string
}

// First match wins, so narrower kinds come before the ones they may also carry.
var mappings = []mapping{
	{errs.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED"},
	{errs.ErrAlreadyAssigned, http.StatusConflict, "ALREADY_ASSIGNED"},
	{errs.ErrAlreadyResponded, http.StatusConflict, "ALREADY_RESPONDED"},
	{errs.ErrAlreadyReviewed, http.StatusConflict, "ALREADY_REVIEWED"},
	{errs.ErrInvalidOtp, http.StatusUnprocessableEntity, "INVALID_OTP"},
	{errs.ErrOtpInactive, http.StatusConflict, "OTP_INACTIVE"},
	{errs.ErrWindowExpired, http.StatusConflict, "CANCELLATION_WINDOW_EXPIRED"},
	{errs.ErrExpired, http.StatusGone, "EXPIRED"},
	{errs.ErrPartnerApprovalPending, http.StatusConflict, "PARTNER_APPROVAL_PENDING"},
	{errs.ErrPartnerRejected, http.StatusConflict, "PARTNER_REJECTED"},
	{errs.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
	{errs.ErrConflict, http.StatusConflict, "CONFLICT"},
}

var defaultMessages = map[int]string{
	http.StatusBadRequest:          "Invalid request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not found",
	http.StatusConflict:            "Request conflicts with the current state",
	http.StatusInternalServerError: "Internal server error",
}

var statusCodes = map[int]string{
	http.StatusBadRequest:          "BAD_REQUEST",
	http.StatusUnauthorized:        "UNAUTHENTICATED",
	http.StatusForbidden:           "FORBIDDEN",
	http.StatusNotFound:            "NOT_FOUND",
	http.StatusInternalServerError: "INTERNAL_ERROR",
}

// Classify maps err to an HTTP status, a stable error code and a client-safe message.
func Classify(err error) (status int, code, message string) {
	status, code = http.StatusInternalServerError, "INTERNAL_ERROR"
	for _, m := range mappings {
		if errs.Is(err, m.kind) {
			status, code = m.status, m.code
			break
		}
	}

	if status == http.StatusInternalServerError {
		return status, code, defaultMessages[status]
	}
	if msg, ok := errs.PublicMessage(err); ok {
		return status, code, msg
	}
	return status, code, defaultMessages[status]
}

// Abort responds with the classification of err.
func Abort(c *gin.Context, err error) {
	status, code, msg := Classify(err)
	abort(c, status, code, err, msg, nil)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	code, ok := statusCodes[status]
	if !ok {
		code = http.StatusText(status)
	}
	abort(c, status, code, err, msg, detail)
}

func abort(c *gin.Context, status int, code string, err error, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	lostRace := errs.Mark(errors.New("CONFLICT: booking no longer open"), booking.ErrAlreadyAssigned)

	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", quotation.ErrTotalMismatch, http.StatusBadRequest, "VALIDATION_ERROR", "line item total does not equal quantity times unit price"},
		{"invalid cursor", queries.ErrInvalidCursor, http.StatusBadRequest, "VALIDATION_ERROR", "invalid cursor"},
		{"not found", booking.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "booking not found"},
		{"unauthorized", booking.ErrNotAssigned, http.StatusForbidden, "UNAUTHORIZED", "partner is not assigned to this booking"},
		{"lost accept race", lostRace, http.StatusConflict, "ALREADY_ASSIGNED", "booking already has a partner assigned"},
		{"invalid state", booking.ErrInvalidTransition, http.StatusConflict, "INVALID_STATE", "booking status does not permit this action"},
		{"invalid otp", booking.ErrInvalidOtp, http.StatusUnprocessableEntity, "INVALID_OTP", "otp does not match"},
		{"otp inactive", booking.ErrOtpInactive, http.StatusConflict, "OTP_INACTIVE", "otp is not active"},
		{"window expired", booking.ErrWindowExpired, http.StatusConflict, "CANCELLATION_WINDOW_EXPIRED", "cancellation window has passed"},
		{"already responded", quotation.ErrAlreadyResponded, http.StatusConflict, "ALREADY_RESPONDED", "track already responded"},
		{"already reviewed", quotation.ErrAlreadyReviewed, http.StatusConflict, "ALREADY_REVIEWED", "quotation already reviewed by admin"},
		{"expired", quotation.ErrExpired, http.StatusGone, "EXPIRED", "quotation has expired"},
		{"partner pending", quotation.ErrPartnerApprovalPending, http.StatusConflict, "PARTNER_APPROVAL_PENDING", "partner approval still pending"},
		{"partner rejected", quotation.ErrPartnerRejected, http.StatusConflict, "PARTNER_REJECTED", "partner rejected the quotation"},
		{"stale write", errs.Mark(errors.New("zero rows"), errs.ErrConflict), http.StatusConflict, "CONFLICT", "Request conflicts with the current state"},
		{"database failure", errs.Mark(errors.New("dial tcp: refused"), errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, msg := httperr.Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.message, msg)
		})
	}
}

func TestAbort_WritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Abort(c, errs.Wrap(quotation.ErrExpired, "customer respond"))

	require.Equal(t, http.StatusGone, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "EXPIRED", body.Error.Code)
	assert.Equal(t, "quotation has expired", body.Error.Message)
}

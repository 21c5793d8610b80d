package errs

import "errors"

// Error kinds shared by every command. Domain packages declare narrower sentinels
// marked with one of these, so callers can match on either.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("concurrent modification")

	// Booking
	ErrAlreadyAssigned = errors.New("already assigned")
	ErrInvalidOtp      = errors.New("invalid otp")
	ErrOtpInactive     = errors.New("otp inactive")
	ErrWindowExpired   = errors.New("cancellation window expired")

	// Quotation
	ErrAlreadyResponded       = errors.New("already responded")
	ErrAlreadyReviewed        = errors.New("already reviewed")
	ErrExpired                = errors.New("expired")
	ErrPartnerApprovalPending = errors.New("partner approval pending")
	ErrPartnerRejected        = errors.New("partner rejected")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

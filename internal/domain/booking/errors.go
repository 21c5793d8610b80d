package booking

import "marketplace-core/internal/pkg/errs"

var (
	ErrNotFound = errs.NewKind("booking not found", errs.ErrNotFound)

	ErrAlreadyAssigned   = errs.NewKind("booking already has a partner assigned", errs.ErrAlreadyAssigned)
	ErrInvalidTransition = errs.NewKind("booking status does not permit this action", errs.ErrInvalidState)
	ErrNotAssigned       = errs.NewKind("partner is not assigned to this booking", errs.ErrUnauthorized)
	ErrNotCustomer       = errs.NewKind("requester is not the booking customer", errs.ErrUnauthorized)
	ErrInvalidOtp        = errs.NewKind("otp does not match", errs.ErrInvalidOtp)
	ErrOtpInactive       = errs.NewKind("otp is not active", errs.ErrOtpInactive)
	ErrWindowExpired     = errs.NewKind("cancellation window has passed", errs.ErrWindowExpired)

	ErrReasonRequired   = errs.NewKind("reason is required", errs.ErrValidation)
	ErrReasonTooLong    = errs.NewKind("reason exceeds maximum length", errs.ErrValidation)
	ErrEmptyServiceName = errs.NewKind("service name is required", errs.ErrValidation)
	ErrEmptyAddress     = errs.NewKind("address is required", errs.ErrValidation)
	ErrScheduledInPast  = errs.NewKind("scheduled time must be in the future", errs.ErrValidation)
	ErrMalformedOTP     = errs.NewKind("otp must be exactly 6 digits", errs.ErrValidation)
	ErrRemarkTooLong    = errs.NewKind("remark exceeds maximum length", errs.ErrValidation)
)

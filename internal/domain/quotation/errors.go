package quotation

import "marketplace-core/internal/pkg/errs"

var (
	ErrNotFound = errs.NewKind("quotation not found", errs.ErrNotFound)

	ErrNotCustomer = errs.NewKind("requester is not the quotation customer", errs.ErrUnauthorized)
	ErrNotPartner  = errs.NewKind("requester is not the quotation partner", errs.ErrUnauthorized)

	ErrBookingNotActive         = errs.NewKind("booking must be accepted or in progress", errs.ErrInvalidState)
	ErrBookingNotAssigned       = errs.NewKind("booking is not assigned to this partner", errs.ErrUnauthorized)
	ErrPartnerApprovalNotNeeded = errs.NewKind("partner approval is not required for this quotation", errs.ErrInvalidState)
	ErrCustomerAlreadyResponded = errs.NewKind("customer response already recorded", errs.ErrInvalidState)

	ErrAlreadyResponded       = errs.NewKind("track already responded", errs.ErrAlreadyResponded)
	ErrAlreadyReviewed        = errs.NewKind("quotation already reviewed by admin", errs.ErrAlreadyReviewed)
	ErrExpired                = errs.NewKind("quotation has expired", errs.ErrExpired)
	ErrPartnerApprovalPending = errs.NewKind("partner approval still pending", errs.ErrPartnerApprovalPending)
	ErrPartnerRejected        = errs.NewKind("partner rejected the quotation", errs.ErrPartnerRejected)

	ErrInvalidDecision  = errs.NewKind("decision must be accept or reject", errs.ErrValidation)
	ErrReasonTooLong    = errs.NewKind("reason exceeds maximum length", errs.ErrValidation)
	ErrNoItems          = errs.NewKind("at least one line item is required", errs.ErrValidation)
	ErrEmptyDescription = errs.NewKind("line item description is required", errs.ErrValidation)
	ErrInvalidQuantity  = errs.NewKind("line item quantity must be positive", errs.ErrValidation)
	ErrInvalidUnitPrice = errs.NewKind("line item unit price must not be negative", errs.ErrValidation)
	ErrTotalMismatch    = errs.NewKind("line item total does not equal quantity times unit price", errs.ErrValidation)
	ErrValidTillInPast  = errs.NewKind("valid till must be in the future", errs.ErrValidation)
	ErrNotesTooLong     = errs.NewKind("notes exceed maximum length", errs.ErrValidation)
	ErrInvalidNumber    = errs.NewKind("quotation number must look like QT000001", errs.ErrValidation)
)

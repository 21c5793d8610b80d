package commands

import (
	"time"

	"marketplace-core/internal/domain/quotation"

	"github.com/google/uuid"
)

// Write-side request types keep handlers away from domain constructors.
type CreateBookingRequest struct {
	ServiceName string
	Address     string
	ScheduledAt time.Time
}

type CompleteBookingRequest struct {
	OTP    string
	Remark *string
}

type CreateQuotationRequest struct {
	BookingID uuid.UUID
	Items     []quotation.LineItem
	ValidTill time.Time
	Notes     string
}

type RespondRequest struct {
	Decision string
	Reason   *string
}

package request

import (
	"time"

	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// CreateQuotationRequest leaves item checks to the domain so callers get its specific errors.
type CreateQuotationRequest struct {
	Items     []LineItemRequest `json:"items"`
	ValidTill time.Time         `json:"valid_till" binding:"required"`
	Notes     string            `json:"notes"`
}

func (r CreateQuotationRequest) ToCommand(bookingID uuid.UUID) commands.CreateQuotationRequest {
	items := make([]quotation.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, quotation.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return commands.CreateQuotationRequest{
		BookingID: bookingID,
		Items:     items,
		ValidTill: r.ValidTill,
		Notes:     r.Notes,
	}
}

type RespondRequest struct {
	Decision string  `json:"decision" binding:"required"`
	Reason   *string `json:"reason,omitempty"`
}

func (r RespondRequest) ToCommand() commands.RespondRequest {
	return commands.RespondRequest{
		Decision: r.Decision,
		Reason:   r.Reason,
	}
}

package response

import (
	"time"

	"marketplace-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuotationResponse struct {
	ID          uuid.UUID          `json:"id"`
	Number      string             `json:"number"`
	BookingID   uuid.UUID          `json:"booking_id"`
	UserID      uuid.UUID          `json:"user_id"`
	PartnerID   uuid.UUID          `json:"partner_id"`
	PartnerName string             `json:"partner_name"`
	PartnerType string             `json:"partner_type"`
	Items       []LineItemResponse `json:"items"`
	TotalAmount float64            `json:"total_amount"`
	Notes       string             `json:"notes"`
	ValidTill   time.Time          `json:"valid_till"`
	Customer    TrackResponse      `json:"customer_approval"`
	Partner     TrackResponse      `json:"partner_approval"`
	Admin       TrackResponse      `json:"admin_approval"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type TrackResponse struct {
	Status      string     `json:"status"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	Reason      *string    `json:"reason,omitempty"`
	ReviewerID  *uuid.UUID `json:"reviewer_id,omitempty"`
}

func FromQuotationView(v *queries.QuotationView) *QuotationResponse {
	items := make([]LineItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = LineItemResponse(it)
	}
	return &QuotationResponse{
		ID:          v.ID,
		Number:      v.Number,
		BookingID:   v.BookingID,
		UserID:      v.UserID,
		PartnerID:   v.PartnerID,
		PartnerName: v.PartnerName,
		PartnerType: v.PartnerType,
		Items:       items,
		TotalAmount: v.TotalAmount,
		Notes:       v.Notes,
		ValidTill:   v.ValidTill,
		Customer:    TrackResponse(v.Customer),
		Partner:     TrackResponse(v.Partner),
		Admin:       TrackResponse(v.Admin),
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromQuotationList(views []*queries.QuotationView) []*QuotationResponse {
	res := make([]*QuotationResponse, len(views))
	for i, v := range views {
		res[i] = FromQuotationView(v)
	}
	return res
}

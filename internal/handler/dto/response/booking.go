package response

import (
	"time"

	"marketplace-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID           `json:"id"`
	UserID             uuid.UUID           `json:"user_id"`
	ServiceName        string              `json:"service_name"`
	Address            string              `json:"address"`
	ScheduledAt        time.Time           `json:"scheduled_at"`
	Status             string              `json:"status"`
	PartnerID          *uuid.UUID          `json:"partner_id,omitempty"`
	PartnerName        *string             `json:"partner_name,omitempty"`
	OTP                *string             `json:"otp,omitempty"`
	AcceptedAt         *time.Time          `json:"accepted_at,omitempty"`
	StartedAt          *time.Time          `json:"started_at,omitempty"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty"`
	CompletionRemark   *string             `json:"completion_remark,omitempty"`
	CancellationReason *string             `json:"cancellation_reason,omitempty"`
	CancellationTime   *time.Time          `json:"cancellation_time,omitempty"`
	CancelableUntil    time.Time           `json:"cancelable_until"`
	RejectionHistory   []RejectionResponse `json:"rejection_history"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type RejectionResponse struct {
	PartnerID  uuid.UUID `json:"partner_id"`
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejected_at"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	ServiceName string     `json:"service_name"`
	Address     string     `json:"address"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      string     `json:"status"`
	PartnerID   *uuid.UUID `json:"partner_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	history := make([]RejectionResponse, len(v.RejectionHistory))
	for i, r := range v.RejectionHistory {
		history[i] = RejectionResponse{
			PartnerID:  r.PartnerID,
			Reason:     r.Reason,
			RejectedAt: r.RejectedAt,
		}
	}
	return &BookingResponse{
		ID:                 v.ID,
		UserID:             v.UserID,
		ServiceName:        v.ServiceName,
		Address:            v.Address,
		ScheduledAt:        v.ScheduledAt,
		Status:             v.Status,
		PartnerID:          v.PartnerID,
		PartnerName:        v.PartnerName,
		OTP:                v.OTP,
		AcceptedAt:         v.AcceptedAt,
		StartedAt:          v.StartedAt,
		CompletedAt:        v.CompletedAt,
		CompletionRemark:   v.CompletionRemark,
		CancellationReason: v.CancellationReason,
		CancellationTime:   v.CancellationTime,
		CancelableUntil:    v.CancelableUntil,
		RejectionHistory:   history,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]*BookingListItemResponse, len(items))}
	for i, it := range items {
		res.Items[i] = &BookingListItemResponse{
			ID:          it.ID,
			ServiceName: it.ServiceName,
			Address:     it.Address,
			ScheduledAt: it.ScheduledAt,
			Status:      it.Status,
			PartnerID:   it.PartnerID,
			CreatedAt:   it.CreatedAt,
		}
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

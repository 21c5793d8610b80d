package queries

import (
	"time"

	"marketplace-core/internal/domain/user"

	"github.com/google/uuid"
)

// Viewer is the authenticated caller of a query.
type Viewer struct {
	ID   uuid.UUID
	Role user.Role
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	ServiceName        string          `json:"service_name"`
	Address            string          `json:"address"`
	ScheduledAt        time.Time       `json:"scheduled_at"`
	Status             string          `json:"status"`
	PartnerID          *uuid.UUID      `json:"partner_id,omitempty"`
	PartnerName        *string         `json:"partner_name,omitempty"`
	OTP                *string         `json:"otp,omitempty"`
	AcceptedAt         *time.Time      `json:"accepted_at,omitempty"`
	StartedAt          *time.Time      `json:"started_at,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	CompletionRemark   *string         `json:"completion_remark,omitempty"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	CancellationTime   *time.Time      `json:"cancellation_time,omitempty"`
	CancelableUntil    time.Time       `json:"cancelable_until"`
	RejectionHistory   []RejectionView `json:"rejection_history"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type RejectionView struct {
	PartnerID  uuid.UUID `json:"partner_id"`
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejected_at"`
}

// BookingListItem represents one row of a booking listing
type BookingListItem struct {
	ID          uuid.UUID  `json:"id"`
	ServiceName string     `json:"service_name"`
	Address     string     `json:"address"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      string     `json:"status"`
	PartnerID   *uuid.UUID `json:"partner_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// QuotationView represents read-optimized quotation data. Status is derived at read time.
type QuotationView struct {
	ID          uuid.UUID      `json:"id"`
	Number      string         `json:"number"`
	BookingID   uuid.UUID      `json:"booking_id"`
	UserID      uuid.UUID      `json:"user_id"`
	PartnerID   uuid.UUID      `json:"partner_id"`
	PartnerName string         `json:"partner_name"`
	PartnerType string         `json:"partner_type"`
	Items       []LineItemView `json:"items"`
	TotalAmount float64        `json:"total_amount"`
	Notes       string         `json:"notes"`
	ValidTill   time.Time      `json:"valid_till"`
	Customer    TrackView      `json:"customer_approval"`
	Partner     TrackView      `json:"partner_approval"`
	Admin       TrackView      `json:"admin_approval"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type LineItemView struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type TrackView struct {
	Status      string     `json:"status"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	Reason      *string    `json:"reason,omitempty"`
	ReviewerID  *uuid.UUID `json:"reviewer_id,omitempty"`
}

// UserView represents read-optimized user data
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

package request

import (
	"time"

	"marketplace-core/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ServiceName string    `json:"service_name" binding:"required"`
	Address     string    `json:"address" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ServiceName: r.ServiceName,
		Address:     r.Address,
		ScheduledAt: r.ScheduledAt,
	}
}

// ReasonRequest is the body of reject and cancel.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CompleteBookingRequest struct {
	OTP    string  `json:"otp" binding:"required"`
	Remark *string `json:"remark,omitempty"`
}

func (r CompleteBookingRequest) ToCommand() commands.CompleteBookingRequest {
	return commands.CompleteBookingRequest{
		OTP:    r.OTP,
		Remark: r.Remark,
	}
}

type ListRequest struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-core/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID      uuid.UUID
	ServiceName string
	Address     string
	ScheduledAt time.Time
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:      uuid.New(),
		ServiceName: "AC repair",
		Address:     "12 Harbour Road",
		ScheduledAt: now.Add(24 * time.Hour),
		Now:         now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.UserID, b.ServiceName, b.Address, b.ScheduledAt, b.Now)
}

// BuildAccepted returns a booking already accepted by partnerID with the given OTP.
func (b *BookingBuilder) BuildAccepted(partnerID uuid.UUID, code string) (*booking.Booking, error) {
	bk, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	otp, err := booking.NewOTP(code)
	if err != nil {
		return nil, err
	}
	if err := bk.Accept(partnerID, otp, b.Now.Add(10*time.Minute)); err != nil {
		return nil, err
	}
	return bk, nil
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithServiceName(name string) *BookingBuilder {
	b.ServiceName = name
	return b
}

func (b *BookingBuilder) WithAddress(address string) *BookingBuilder {
	b.Address = address
	return b
}

func (b *BookingBuilder) WithScheduledAt(at time.Time) *BookingBuilder {
	b.ScheduledAt = at
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

package commands

import (
	"context"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*booking.Booking, error)
	AcceptBooking(ctx context.Context, bookingID, partnerID uuid.UUID) (*booking.Booking, error)
	StartBooking(ctx context.Context, bookingID, partnerID uuid.UUID) (*booking.Booking, error)
	RejectBooking(ctx context.Context, bookingID, partnerID uuid.UUID, reason string) (*booking.Booking, error)
	CompleteBooking(ctx context.Context, bookingID, partnerID uuid.UUID, req CompleteBookingRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, reason string) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	otp    booking.OTPGenerator
	events shared.EventDispatcher
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, otp booking.OTPGenerator, events shared.EventDispatcher) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, otp: otp, events: events}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*booking.Booking, error) {
	b, err := booking.NewBooking(userID, req.ServiceName, req.Address, req.ScheduledAt, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) AcceptBooking(ctx context.Context, bookingID, partnerID uuid.UUID) (*booking.Booking, error) {
	var (
		result *booking.Booking
		events []shared.Event
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().PartnerByID(ctx, partnerID); err != nil {
			return notFoundAs(err, partner.ErrNotFound)
		}
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrNotFound)
		}

		code, err := uc.otp.Generate()
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := b.Accept(partnerID, code, now); err != nil {
			return err
		}
		if err := tx.Bookings().Assign(ctx, b); err != nil {
			if errs.Is(err, errs.ErrConflict) {
				return errs.Mark(err, booking.ErrAlreadyAssigned)
			}
			return err
		}

		result = b
		events = []shared.Event{bookingEvent(shared.EventBookingAccepted, customerOf(b.UserID()), b, now)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.events.Dispatch(ctx, events...)
	return result, nil
}

func (uc *bookingUseCaseImpl) StartBooking(ctx context.Context, bookingID, partnerID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, bookingID, func(b *booking.Booking, now time.Time) ([]shared.Event, error) {
		if err := b.Start(partnerID, now); err != nil {
			return nil, err
		}
		return []shared.Event{bookingEvent(shared.EventBookingStarted, customerOf(b.UserID()), b, now)}, nil
	})
}

func (uc *bookingUseCaseImpl) RejectBooking(ctx context.Context, bookingID, partnerID uuid.UUID, reason string) (*booking.Booking, error) {
	r, err := booking.NewReason(reason)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, bookingID, func(b *booking.Booking, now time.Time) ([]shared.Event, error) {
		if err := b.Reject(partnerID, r, now); err != nil {
			return nil, err
		}
		ev := bookingEvent(shared.EventBookingRejected, customerOf(b.UserID()), b, now)
		ev.Payload["partner_id"] = partnerID.String()
		ev.Payload["reason"] = r.String()
		return []shared.Event{ev}, nil
	})
}

func (uc *bookingUseCaseImpl) CompleteBooking(ctx context.Context, bookingID, partnerID uuid.UUID, req CompleteBookingRequest) (*booking.Booking, error) {
	return uc.transition(ctx, bookingID, func(b *booking.Booking, now time.Time) ([]shared.Event, error) {
		if err := b.Complete(partnerID, req.OTP, req.Remark, now); err != nil {
			return nil, err
		}
		return []shared.Event{bookingEvent(shared.EventBookingCompleted, customerOf(b.UserID()), b, now)}, nil
	})
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, reason string) (*booking.Booking, error) {
	r, err := booking.NewReason(reason)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, bookingID, func(b *booking.Booking, now time.Time) ([]shared.Event, error) {
		previous := b.PartnerID()
		if err := b.Cancel(requesterID, r, now); err != nil {
			return nil, err
		}
		if previous == nil {
			return nil, nil
		}
		ev := bookingEvent(shared.EventBookingCancelled, partnerOf(*previous), b, now)
		ev.Payload["reason"] = r.String()
		return []shared.Event{ev}, nil
	})
}

// transition loads, mutates and version-guards one booking, then dispatches events after commit.
func (uc *bookingUseCaseImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	apply func(b *booking.Booking, now time.Time) ([]shared.Event, error),
) (*booking.Booking, error) {
	var (
		result *booking.Booking
		events []shared.Event
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrNotFound)
		}

		evs, err := apply(b, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}

		result = b
		events = evs
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.events.Dispatch(ctx, events...)
	return result, nil
}

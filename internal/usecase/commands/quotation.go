//go:generate mockgen -source=quotation.go -destination=../../../tests/mock/commands/quotation.go -package=commandsmock

package commands

import (
	"context"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuotationCommands interface {
	CreateQuotation(ctx context.Context, req CreateQuotationRequest, partnerID uuid.UUID) (*quotation.Quotation, error)
	CustomerRespond(ctx context.Context, quotationID, userID uuid.UUID, req RespondRequest) (*quotation.Quotation, error)
	PartnerRespond(ctx context.Context, quotationID, partnerID uuid.UUID, req RespondRequest) (*quotation.Quotation, error)
	AdminRespond(ctx context.Context, quotationID, adminID uuid.UUID, req RespondRequest) (*quotation.Quotation, error)
	WithdrawQuotation(ctx context.Context, quotationID, partnerID uuid.UUID) error
}

type quotationUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	seq    shared.SequenceAllocator
	events shared.EventDispatcher
}

func NewQuotationUseCase(uow shared.UnitOfWork, clk clock.Clock, seq shared.SequenceAllocator, events shared.EventDispatcher) QuotationCommands {
	return &quotationUseCaseImpl{uow: uow, clock: clk, seq: seq, events: events}
}

func (uc *quotationUseCaseImpl) CreateQuotation(ctx context.Context, req CreateQuotationRequest, partnerID uuid.UUID) (*quotation.Quotation, error) {
	if err := quotation.ValidateDraft(req.Items, req.ValidTill, req.Notes, uc.clock.Now()); err != nil {
		return nil, err
	}
	if _, _, err := loadEligible(ctx, uc.uow.CommandReads(), req.BookingID, partnerID); err != nil {
		return nil, err
	}

	// Drawn outside the transaction: a request never holds two pool connections.
	seq, err := uc.seq.Next(ctx, quotation.SequenceName)
	if err != nil {
		return nil, errs.Wrap(err, "allocate quotation number")
	}

	var (
		result *quotation.Quotation
		events []shared.Event
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Checked again under the booking row lock.
		b, p, err := loadEligible(ctx, tx.Reads(), req.BookingID, partnerID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		q, err := quotation.NewQuotation(quotation.NewParams{
			Booking:   b,
			Partner:   p,
			Sequence:  seq,
			Items:     req.Items,
			ValidTill: req.ValidTill,
			Notes:     req.Notes,
			Now:       now,
		})
		if err != nil {
			return err
		}
		if err := tx.Quotations().Create(ctx, q); err != nil {
			return err
		}

		result = q
		events = quotationEvents(shared.EventQuotationCreated, quotation.PartyPartner, q, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.events.Dispatch(ctx, events...)
	return result, nil
}

// loadEligible returns the booking and the calling partner when the partner may quote on the booking.
func loadEligible(ctx context.Context, reads shared.CommandReads, bookingID, partnerID uuid.UUID) (*booking.Booking, *partner.Partner, error) {
	b, err := reads.BookingByID(ctx, bookingID)
	if err != nil {
		return nil, nil, notFoundAs(err, booking.ErrNotFound)
	}
	if err := quotation.CheckBookingEligibility(b, partnerID); err != nil {
		return nil, nil, err
	}
	p, err := reads.PartnerByID(ctx, partnerID)
	if err != nil {
		return nil, nil, notFoundAs(err, partner.ErrNotFound)
	}
	return b, p, nil
}

func (uc *quotationUseCaseImpl) CustomerRespond(ctx context.Context, quotationID, userID uuid.UUID, req RespondRequest) (*quotation.Quotation, error) {
	return uc.respond(ctx, quotationID, quotation.PartyCustomer, req, func(q *quotation.Quotation, d quotation.Decision, now time.Time) error {
		return q.CustomerRespond(userID, d, req.Reason, now)
	})
}

func (uc *quotationUseCaseImpl) PartnerRespond(ctx context.Context, quotationID, partnerID uuid.UUID, req RespondRequest) (*quotation.Quotation, error) {
	return uc.respond(ctx, quotationID, quotation.PartyPartner, req, func(q *quotation.Quotation, d quotation.Decision, now time.Time) error {
		return q.PartnerRespond(partnerID, d, req.Reason, now)
	})
}

func (uc *quotationUseCaseImpl) AdminRespond(ctx context.Context, quotationID, adminID uuid.UUID, req RespondRequest) (*quotation.Quotation, error) {
	return uc.respond(ctx, quotationID, quotation.PartyAdmin, req, func(q *quotation.Quotation, d quotation.Decision, now time.Time) error {
		return q.AdminRespond(adminID, d, req.Reason, now)
	})
}

func (uc *quotationUseCaseImpl) WithdrawQuotation(ctx context.Context, quotationID, partnerID uuid.UUID) error {
	var events []shared.Event
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, err := tx.Reads().QuotationByID(ctx, quotationID)
		if err != nil {
			return notFoundAs(err, quotation.ErrNotFound)
		}
		if err := q.CheckWithdrawable(partnerID); err != nil {
			return err
		}
		if err := tx.Quotations().Delete(ctx, q.ID()); err != nil {
			if errs.Is(err, errs.ErrConflict) {
				return errs.Mark(err, quotation.ErrCustomerAlreadyResponded)
			}
			return err
		}
		events = quotationEvents(shared.EventQuotationWithdrawn, quotation.PartyPartner, q, uc.clock.Now())
		return nil
	})
	if err != nil {
		return err
	}
	uc.events.Dispatch(ctx, events...)
	return nil
}

// respond runs one track transition. An expired quotation is saved as expired and
// the call still fails with quotation.ErrExpired.
func (uc *quotationUseCaseImpl) respond(
	ctx context.Context,
	quotationID uuid.UUID,
	actor quotation.Party,
	req RespondRequest,
	apply func(q *quotation.Quotation, d quotation.Decision, now time.Time) error,
) (*quotation.Quotation, error) {
	d, err := quotation.NewDecision(req.Decision)
	if err != nil {
		return nil, err
	}

	var (
		result  *quotation.Quotation
		events  []shared.Event
		expired bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = false
		q, err := tx.Reads().QuotationByID(ctx, quotationID)
		if err != nil {
			return notFoundAs(err, quotation.ErrNotFound)
		}

		loaded := q.Version()
		now := uc.clock.Now()
		if err := apply(q, d, now); err != nil {
			if !errs.Is(err, quotation.ErrExpired) {
				return err
			}
			expired = true
			if q.Version() == loaded {
				return nil
			}
			return tx.Quotations().Update(ctx, q)
		}
		if err := tx.Quotations().Update(ctx, q); err != nil {
			return err
		}

		result = q
		events = quotationEvents(shared.EventQuotationResponded, actor, q, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, quotation.ErrExpired
	}
	uc.events.Dispatch(ctx, events...)
	return result, nil
}

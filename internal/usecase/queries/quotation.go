//go:generate mockgen -source=quotation.go -destination=../../../tests/mock/queries/quotation.go -package=queriesmock

package queries

import (
	"context"

	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type QuotationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuotationView, error)
	FindByNumber(ctx context.Context, number string) (*QuotationView, error)
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*QuotationView, error)
}

type QuotationQueries interface {
	GetQuotation(ctx context.Context, id uuid.UUID) (*QuotationView, error)
	GetQuotationByNumber(ctx context.Context, number string) (*QuotationView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*QuotationView, error)
}

type quotationQueriesImpl struct {
	store QuotationReadStore
	clock clock.Clock
}

func NewQuotationQueries(store QuotationReadStore, clk clock.Clock) QuotationQueries {
	return &quotationQueriesImpl{store: store, clock: clk}
}

func (q *quotationQueriesImpl) GetQuotation(ctx context.Context, id uuid.UUID) (*QuotationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, quotationNotFound(err)
	}
	q.derive(view)
	return view, nil
}

// GetQuotationByNumber accepts only the canonical QT form; the stored number is looked up as formatted.
func (q *quotationQueriesImpl) GetQuotationByNumber(ctx context.Context, number string) (*QuotationView, error) {
	seq, err := quotation.ParseNumber(number)
	if err != nil {
		return nil, err
	}
	view, err := q.store.FindByNumber(ctx, quotation.FormatNumber(seq))
	if err != nil {
		return nil, quotationNotFound(err)
	}
	q.derive(view)
	return view, nil
}

func (q *quotationQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*QuotationView, error) {
	views, err := q.store.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.derive(v)
	}
	return views, nil
}

// derive replaces the stored status with the one in force now, without writing it back.
func (q *quotationQueriesImpl) derive(v *QuotationView) {
	expired := q.clock.Now().After(v.ValidTill)
	v.Status = quotation.DeriveStatus(
		quotation.TrackStatus(v.Customer.Status),
		quotation.TrackStatus(v.Partner.Status),
		quotation.TrackStatus(v.Admin.Status),
		expired,
	).String()
}

func quotationNotFound(err error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(err, quotation.ErrNotFound)
	}
	return err
}

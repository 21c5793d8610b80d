//go:build unit

package commands_test

import (
	"context"
	"errors"
	"maps"
	"sync"
	"sync/atomic"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errNoRows     = errs.Mark(errors.New("no rows in result set"), errs.ErrNotFound)
	errStaleWrite = errs.Mark(errors.New("stale write"), errs.ErrConflict)
)

// memStore is an in-memory UnitOfWork. Within runs one transaction at a time and
// drops staged writes when fn fails.
type memStore struct {
	mu         sync.Mutex
	bookings   map[uuid.UUID]booking.Snapshot
	quotations map[uuid.UUID]quotation.Snapshot
	partners   map[uuid.UUID]*partner.Partner
	commits    int
	inTx       atomic.Bool
}

func newMemStore() *memStore {
	return &memStore{
		bookings:   map[uuid.UUID]booking.Snapshot{},
		quotations: map[uuid.UUID]quotation.Snapshot{},
		partners:   map[uuid.UUID]*partner.Partner{},
	}
}

func (s *memStore) putBooking(b *booking.Booking)       { s.bookings[b.ID()] = b.Snapshot() }
func (s *memStore) putQuotation(q *quotation.Quotation) { s.quotations[q.ID()] = q.Snapshot() }
func (s *memStore) putPartner(p *partner.Partner)       { s.partners[p.ID()] = p }

func (s *memStore) storedBooking(id uuid.UUID) booking.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

func (s *memStore) storedQuotation(id uuid.UUID) (quotation.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotations[id]
	return q, ok
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inTx.Store(true)
	defer s.inTx.Store(false)

	tx := &memTx{
		bookings:   maps.Clone(s.bookings),
		quotations: maps.Clone(s.quotations),
		partners:   s.partners,
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.bookings = tx.bookings
	s.quotations = tx.quotations
	s.commits++
	return nil
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db shared.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db shared.DBTX) error) error {
	return fn(ctx, nil)
}

// CommandReads reads a copy of the committed state without holding the store.
func (s *memStore) CommandReads() shared.CommandReads {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &memTx{
		bookings:   maps.Clone(s.bookings),
		quotations: maps.Clone(s.quotations),
		partners:   maps.Clone(s.partners),
	}
}

func (s *memStore) updateBooking(id uuid.UUID, mutate func(*booking.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.bookings[id]
	mutate(&snap)
	s.bookings[id] = snap
}

type memTx struct {
	bookings   map[uuid.UUID]booking.Snapshot
	quotations map[uuid.UUID]quotation.Snapshot
	partners   map[uuid.UUID]*partner.Partner
}

func (tx *memTx) Bookings() shared.BookingRepository     { return memBookings{tx} }
func (tx *memTx) Quotations() shared.QuotationRepository { return memQuotations{tx} }
func (tx *memTx) Reads() shared.CommandReads             { return tx }
func (tx *memTx) DB() shared.DBTX                        { return nil }

func (tx *memTx) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s, ok := tx.bookings[id]
	if !ok {
		return nil, errNoRows
	}
	return booking.Reconstruct(s), nil
}

func (tx *memTx) QuotationByID(_ context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	s, ok := tx.quotations[id]
	if !ok {
		return nil, errNoRows
	}
	return quotation.Reconstruct(s), nil
}

func (tx *memTx) PartnerByID(_ context.Context, id uuid.UUID) (*partner.Partner, error) {
	p, ok := tx.partners[id]
	if !ok {
		return nil, errNoRows
	}
	return p, nil
}

func (tx *memTx) UserContact(_ context.Context, _ uuid.UUID) (*user.ContactInfo, error) {
	return nil, errNoRows
}

type memBookings struct{ tx *memTx }

func (r memBookings) Create(_ context.Context, b *booking.Booking) error {
	r.tx.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r memBookings) Assign(_ context.Context, b *booking.Booking) error {
	stored, ok := r.tx.bookings[b.ID()]
	if !ok || stored.PartnerID != nil || stored.Status != booking.StatusPending {
		return errStaleWrite
	}
	r.tx.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r memBookings) Update(_ context.Context, b *booking.Booking) error {
	stored, ok := r.tx.bookings[b.ID()]
	if !ok || stored.Version != b.Version()-1 {
		return errStaleWrite
	}
	r.tx.bookings[b.ID()] = b.Snapshot()
	return nil
}

type memQuotations struct{ tx *memTx }

func (r memQuotations) Create(_ context.Context, q *quotation.Quotation) error {
	r.tx.quotations[q.ID()] = q.Snapshot()
	return nil
}

func (r memQuotations) Update(_ context.Context, q *quotation.Quotation) error {
	stored, ok := r.tx.quotations[q.ID()]
	if !ok || stored.Version != q.Version()-1 {
		return errStaleWrite
	}
	r.tx.quotations[q.ID()] = q.Snapshot()
	return nil
}

func (r memQuotations) Delete(_ context.Context, id uuid.UUID) error {
	stored, ok := r.tx.quotations[id]
	if !ok {
		return errNoRows
	}
	if stored.Customer.Status != quotation.TrackPending {
		return errStaleWrite
	}
	delete(r.tx.quotations, id)
	return nil
}

type fixedOTP struct{ code string }

func (f fixedOTP) Generate() (booking.OTP, error) {
	return booking.NewOTP(f.code)
}

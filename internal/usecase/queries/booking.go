//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

package queries

import (
	"context"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingFilter narrows a booking listing. OpenOnly selects pending bookings without a partner.
type BookingFilter struct {
	UserID    *uuid.UUID
	PartnerID *uuid.UUID
	OpenOnly  bool
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindPage(ctx context.Context, filter BookingFilter, after *Keyset, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID, viewer Viewer) (*BookingView, error)
	ListMine(ctx context.Context, viewer Viewer, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListOpen(ctx context.Context, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetBooking returns the OTP only to the booking's customer. Bookings the viewer may
// not see are reported as not found.
func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID, viewer Viewer) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(err, booking.ErrNotFound)
		}
		return nil, err
	}
	if !canViewBooking(view, viewer) {
		return nil, booking.ErrNotFound
	}

	if viewer.Role != user.RoleCustomer || viewer.ID != view.UserID {
		view.OTP = nil
	}
	return view, nil
}

// canViewBooking admits the booking's customer, its assigned partner and admins.
// Any partner may see a booking still in the open pool.
func canViewBooking(view *BookingView, viewer Viewer) bool {
	switch viewer.Role {
	case user.RoleAdmin:
		return true
	case user.RoleCustomer:
		return viewer.ID == view.UserID
	case user.RolePartner:
		if view.PartnerID != nil {
			return *view.PartnerID == viewer.ID
		}
		return view.Status == booking.StatusPending.String()
	default:
		return false
	}
}

// ListMine lists the customer's own bookings, or for a partner the bookings assigned to them.
func (q *bookingQueriesImpl) ListMine(ctx context.Context, viewer Viewer, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	var filter BookingFilter
	switch viewer.Role {
	case user.RoleCustomer:
		filter.UserID = &viewer.ID
	case user.RolePartner:
		filter.PartnerID = &viewer.ID
	case user.RoleAdmin:
	default:
		return nil, nil, errs.ErrUnauthorized
	}
	return q.list(ctx, filter, cursor, limit)
}

func (q *bookingQueriesImpl) ListOpen(ctx context.Context, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	return q.list(ctx, BookingFilter{OpenOnly: true}, cursor, limit)
}

func (q *bookingQueriesImpl) list(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var after *Keyset
	if cursor != nil && cursor.After != "" {
		k, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		after = k
	}

	rows, err := q.store.FindPage(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(b *BookingListItem) (time.Time, uuid.UUID) {
		return b.CreatedAt, b.ID
	})
	return items, next, nil
}

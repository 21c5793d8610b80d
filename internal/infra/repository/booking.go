package repository

import (
	"context"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertBookingSQL = `INSERT INTO bookings (` + converter.BookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	selectBookingSQL = `SELECT ` + converter.BookingColumns + ` FROM bookings WHERE id = $1`

	setBookingSQL = `UPDATE bookings SET
	user_id = $2, service_name = $3, address = $4, scheduled_at = $5, status = $6, partner_id = $7,
	otp = $8, otp_active = $9, accepted_at = $10, started_at = $11, completed_at = $12,
	completion_remark = $13, cancellation_reason = $14, cancellation_time = $15,
	rejection_history = $16, created_at = $17, updated_at = $18, version = $19
	WHERE id = $1`

	// Re-checks at write time what Accept checked at read time.
	assignBookingSQL = setBookingSQL + ` AND partner_id IS NULL AND status = 'pending'`

	updateBookingSQL = setBookingSQL + ` AND version = $20`
)

type BookingRepository struct {
	db shared.DBTX
}

func NewBookingRepository(db shared.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// FindByID loads the aggregate. With lock set the row stays locked until the transaction ends.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID, lock bool) (*booking.Booking, error) {
	sql := selectBookingSQL
	if lock {
		sql += " FOR UPDATE"
	}

	row, err := converter.ScanBooking(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	args, err := converter.BookingArgs(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}
	if _, err := r.db.Exec(ctx, insertBookingSQL, args...); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Assign(ctx context.Context, b *booking.Booking) error {
	args, err := converter.BookingArgs(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}

	tag, err := r.db.Exec(ctx, assignBookingSQL, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to assign booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking no longer open", nil, infra.KindConflict)
	}
	return nil
}

// Update writes b only if the stored row is still at the version b was loaded with.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args, err := converter.BookingArgs(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}

	tag, err := r.db.Exec(ctx, updateBookingSQL, append(args, b.Version()-1)...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

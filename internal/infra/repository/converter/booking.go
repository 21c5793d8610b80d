package converter

import (
	"encoding/json"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns is the column order shared by BookingRow.Targets and BookingArgs.
const BookingColumns = `id, user_id, service_name, address, scheduled_at, status, partner_id, otp, otp_active,
	accepted_at, started_at, completed_at, completion_remark, cancellation_reason, cancellation_time,
	rejection_history, created_at, updated_at, version`

type BookingRow struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	ServiceName        string
	Address            string
	ScheduledAt        time.Time
	Status             string
	PartnerID          pgtype.UUID
	OTP                pgtype.Text
	OTPActive          bool
	AcceptedAt         pgtype.Timestamptz
	StartedAt          pgtype.Timestamptz
	CompletedAt        pgtype.Timestamptz
	CompletionRemark   pgtype.Text
	CancellationReason pgtype.Text
	CancellationTime   pgtype.Timestamptz
	RejectionHistory   []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int32
}

func (r *BookingRow) Targets() []any {
	return []any{
		&r.ID, &r.UserID, &r.ServiceName, &r.Address, &r.ScheduledAt, &r.Status, &r.PartnerID, &r.OTP, &r.OTPActive,
		&r.AcceptedAt, &r.StartedAt, &r.CompletedAt, &r.CompletionRemark, &r.CancellationReason, &r.CancellationTime,
		&r.RejectionHistory, &r.CreatedAt, &r.UpdatedAt, &r.Version,
	}
}

func ScanBooking(row pgx.Row) (BookingRow, error) {
	var r BookingRow
	err := row.Scan(r.Targets()...)
	return r, err
}

func BookingFromRow(r BookingRow) (*booking.Booking, error) {
	status, err := booking.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	history, err := DecodeRejections(r.RejectionHistory)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(booking.Snapshot{
		ID:                 r.ID,
		UserID:             r.UserID,
		ServiceName:        r.ServiceName,
		Address:            r.Address,
		ScheduledAt:        r.ScheduledAt.UTC(),
		Status:             status,
		PartnerID:          pgconv.UUIDPtrFromPgtype(r.PartnerID),
		OTP:                pgconv.StringPtrFromPgtype(r.OTP),
		OTPActive:          r.OTPActive,
		AcceptedAt:         pgconv.TimePtrFromPgtype(r.AcceptedAt),
		StartedAt:          pgconv.TimePtrFromPgtype(r.StartedAt),
		CompletedAt:        pgconv.TimePtrFromPgtype(r.CompletedAt),
		CompletionRemark:   pgconv.StringPtrFromPgtype(r.CompletionRemark),
		CancellationReason: pgconv.StringPtrFromPgtype(r.CancellationReason),
		CancellationTime:   pgconv.TimePtrFromPgtype(r.CancellationTime),
		RejectionHistory:   history,
		CreatedAt:          r.CreatedAt.UTC(),
		UpdatedAt:          r.UpdatedAt.UTC(),
		Version:            r.Version,
	}), nil
}

// BookingArgs returns b's fields as positional arguments in BookingColumns order.
func BookingArgs(b *booking.Booking) ([]any, error) {
	s := b.Snapshot()
	if s.RejectionHistory == nil {
		s.RejectionHistory = []booking.RejectionRecord{}
	}
	history, err := json.Marshal(s.RejectionHistory)
	if err != nil {
		return nil, errs.Wrap(err, "encode rejection history")
	}

	return []any{
		s.ID, s.UserID, s.ServiceName, s.Address, s.ScheduledAt, s.Status.String(),
		pgconv.UUIDPtrToPgtype(s.PartnerID), pgconv.StringPtrToPgtype(s.OTP), s.OTPActive,
		pgconv.TimePtrToPgtype(s.AcceptedAt), pgconv.TimePtrToPgtype(s.StartedAt), pgconv.TimePtrToPgtype(s.CompletedAt),
		pgconv.StringPtrToPgtype(s.CompletionRemark), pgconv.StringPtrToPgtype(s.CancellationReason),
		pgconv.TimePtrToPgtype(s.CancellationTime),
		history, s.CreatedAt, s.UpdatedAt, s.Version,
	}, nil
}

func DecodeRejections(raw []byte) ([]booking.RejectionRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var history []booking.RejectionRecord
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, errs.Wrap(err, "decode rejection history")
	}
	return history, nil
}

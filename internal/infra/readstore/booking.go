package readstore

import (
	"context"
	"fmt"
	"strings"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const selectBookingViewSQL = `SELECT b.id, b.user_id, b.service_name, b.address, b.scheduled_at, b.status, b.partner_id, b.otp, b.otp_active,
	b.accepted_at, b.started_at, b.completed_at, b.completion_remark, b.cancellation_reason, b.cancellation_time,
	b.rejection_history, b.created_at, b.updated_at, b.version, u.name
	FROM bookings b
	LEFT JOIN users u ON u.id = b.partner_id
	WHERE b.id = $1`

type BookingReadStore struct {
	db shared.DBTX
}

func NewBookingReadStore(db shared.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		row         converter.BookingRow
		partnerName pgtype.Text
	)
	err := r.db.QueryRow(ctx, selectBookingViewSQL, id).Scan(append(row.Targets(), &partnerName)...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view, err := rowToBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	view.PartnerName = pgconv.StringPtrFromPgtype(partnerName)
	return view, nil
}

// FindPage returns bookings newest first, strictly after the keyset when one is given.
func (r *BookingReadStore) FindPage(ctx context.Context, filter queries.BookingFilter, after *queries.Keyset, limit int32) ([]*queries.BookingListItem, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != nil {
		conds = append(conds, "user_id = "+arg(*filter.UserID))
	}
	if filter.PartnerID != nil {
		conds = append(conds, "partner_id = "+arg(*filter.PartnerID))
	}
	if filter.OpenOnly {
		conds = append(conds, "status = 'pending' AND partner_id IS NULL")
	}
	if after != nil {
		conds = append(conds, fmt.Sprintf("(created_at, id) < (%s, %s)", arg(after.CreatedAt), arg(after.ID)))
	}

	var sb strings.Builder
	sb.WriteString("SELECT id, service_name, address, scheduled_at, status, partner_id, created_at FROM bookings")
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC LIMIT " + arg(limit))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			partnerID pgtype.UUID
		)
		if err := rows.Scan(&item.ID, &item.ServiceName, &item.Address, &item.ScheduledAt, &item.Status, &partnerID, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		item.PartnerID = pgconv.UUIDPtrFromPgtype(partnerID)
		item.ScheduledAt = item.ScheduledAt.UTC()
		item.CreatedAt = item.CreatedAt.UTC()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return result, nil
}

func rowToBookingView(row converter.BookingRow) (*queries.BookingView, error) {
	history, err := converter.DecodeRejections(row.RejectionHistory)
	if err != nil {
		return nil, err
	}
	rejections := make([]queries.RejectionView, 0, len(history))
	for _, h := range history {
		rejections = append(rejections, queries.RejectionView{
			PartnerID:  h.PartnerID,
			Reason:     h.Reason,
			RejectedAt: h.RejectedAt.UTC(),
		})
	}

	createdAt := row.CreatedAt.UTC()
	return &queries.BookingView{
		ID:                 row.ID,
		UserID:             row.UserID,
		ServiceName:        row.ServiceName,
		Address:            row.Address,
		ScheduledAt:        row.ScheduledAt.UTC(),
		Status:             row.Status,
		PartnerID:          pgconv.UUIDPtrFromPgtype(row.PartnerID),
		OTP:                activeOTP(row),
		AcceptedAt:         pgconv.TimePtrFromPgtype(row.AcceptedAt),
		StartedAt:          pgconv.TimePtrFromPgtype(row.StartedAt),
		CompletedAt:        pgconv.TimePtrFromPgtype(row.CompletedAt),
		CompletionRemark:   pgconv.StringPtrFromPgtype(row.CompletionRemark),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancellationTime:   pgconv.TimePtrFromPgtype(row.CancellationTime),
		CancelableUntil:    createdAt.Add(booking.CancellationWindow),
		RejectionHistory:   rejections,
		CreatedAt:          createdAt,
		UpdatedAt:          row.UpdatedAt.UTC(),
	}, nil
}

func activeOTP(row converter.BookingRow) *string {
	if !row.OTPActive {
		return nil
	}
	return pgconv.StringPtrFromPgtype(row.OTP)
}

package readstore

import (
	"context"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectQuotationViewSQL = `SELECT q.id, q.number, q.booking_id, q.user_id, q.partner_id, q.items, q.total_amount, q.notes, q.valid_till,
	q.customer_status, q.customer_responded_at, q.customer_reason,
	q.partner_status, q.partner_responded_at, q.partner_reason,
	q.admin_status, q.admin_responded_at, q.admin_reason, q.admin_reviewer_id,
	q.status, q.created_at, q.updated_at, q.version, u.name, p.partner_type
	FROM quotations q
	JOIN partners p ON p.id = q.partner_id
	JOIN users u ON u.id = q.partner_id`

type QuotationReadStore struct {
	db shared.DBTX
}

func NewQuotationReadStore(db shared.DBTX) *QuotationReadStore {
	return &QuotationReadStore{db: db}
}

func (r *QuotationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuotationView, error) {
	return r.findOne(ctx, selectQuotationViewSQL+" WHERE q.id = $1", id)
}

func (r *QuotationReadStore) FindByNumber(ctx context.Context, number string) (*queries.QuotationView, error) {
	return r.findOne(ctx, selectQuotationViewSQL+" WHERE q.number = $1", number)
}

// FindByBooking lists a booking's quotations oldest first.
func (r *QuotationReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.QuotationView, error) {
	rows, err := r.db.Query(ctx, selectQuotationViewSQL+" WHERE q.booking_id = $1 ORDER BY q.created_at, q.id", bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations by booking", err)
	}
	defer rows.Close()

	result := []*queries.QuotationView{}
	for rows.Next() {
		view, err := scanQuotationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quotation", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list quotations by booking", err)
	}
	return result, nil
}

func (r *QuotationReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.QuotationView, error) {
	view, err := scanQuotationView(r.db.QueryRow(ctx, sql, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quotation", err)
	}
	return view, nil
}

func scanQuotationView(row pgx.Row) (*queries.QuotationView, error) {
	var (
		qr          converter.QuotationRow
		partnerName string
		partnerType string
	)
	if err := row.Scan(append(qr.Targets(), &partnerName, &partnerType)...); err != nil {
		return nil, err
	}

	view, err := rowToQuotationView(qr)
	if err != nil {
		return nil, err
	}
	view.PartnerName = partnerName
	view.PartnerType = partnerType
	return view, nil
}

func rowToQuotationView(row converter.QuotationRow) (*queries.QuotationView, error) {
	items, err := converter.DecodeItems(row.Items)
	if err != nil {
		return nil, err
	}
	lines := make([]queries.LineItemView, 0, len(items))
	for _, it := range items {
		lines = append(lines, queries.LineItemView{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}

	admin := trackView(row.Admin)
	admin.ReviewerID = pgconv.UUIDPtrFromPgtype(row.AdminReviewerID)

	return &queries.QuotationView{
		ID:          row.ID,
		Number:      row.Number,
		BookingID:   row.BookingID,
		UserID:      row.UserID,
		PartnerID:   row.PartnerID,
		Items:       lines,
		TotalAmount: row.TotalAmount,
		Notes:       row.Notes,
		ValidTill:   row.ValidTill.UTC(),
		Customer:    trackView(row.Customer),
		Partner:     trackView(row.Partner),
		Admin:       admin,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}, nil
}

func trackView(c converter.TrackColumns) queries.TrackView {
	return queries.TrackView{
		Status:      c.Status,
		RespondedAt: pgconv.TimePtrFromPgtype(c.RespondedAt),
		Reason:      pgconv.StringPtrFromPgtype(c.Reason),
	}
}

package converter

import (
	"encoding/json"
	"time"

	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// QuotationColumns is the column order shared by QuotationRow.Targets and QuotationArgs.
const QuotationColumns = `id, number, booking_id, user_id, partner_id, items, total_amount, notes, valid_till,
	customer_status, customer_responded_at, customer_reason,
	partner_status, partner_responded_at, partner_reason,
	admin_status, admin_responded_at, admin_reason, admin_reviewer_id,
	status, created_at, updated_at, version`

type TrackColumns struct {
	Status      string
	RespondedAt pgtype.Timestamptz
	Reason      pgtype.Text
}

type QuotationRow struct {
	ID              uuid.UUID
	Number          string
	BookingID       uuid.UUID
	UserID          uuid.UUID
	PartnerID       uuid.UUID
	Items           []byte
	TotalAmount     float64
	Notes           string
	ValidTill       time.Time
	Customer        TrackColumns
	Partner         TrackColumns
	Admin           TrackColumns
	AdminReviewerID pgtype.UUID
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int32
}

func (r *QuotationRow) Targets() []any {
	return []any{
		&r.ID, &r.Number, &r.BookingID, &r.UserID, &r.PartnerID, &r.Items, &r.TotalAmount, &r.Notes, &r.ValidTill,
		&r.Customer.Status, &r.Customer.RespondedAt, &r.Customer.Reason,
		&r.Partner.Status, &r.Partner.RespondedAt, &r.Partner.Reason,
		&r.Admin.Status, &r.Admin.RespondedAt, &r.Admin.Reason, &r.AdminReviewerID,
		&r.Status, &r.CreatedAt, &r.UpdatedAt, &r.Version,
	}
}

func ScanQuotation(row pgx.Row) (QuotationRow, error) {
	var r QuotationRow
	err := row.Scan(r.Targets()...)
	return r, err
}

func QuotationFromRow(r QuotationRow) (*quotation.Quotation, error) {
	items, err := DecodeItems(r.Items)
	if err != nil {
		return nil, err
	}
	status := quotation.Status(r.Status)
	if !status.IsValid() {
		return nil, errs.New("invalid quotation status: " + r.Status)
	}

	customer, err := trackFromColumns(r.Customer)
	if err != nil {
		return nil, err
	}
	partner, err := trackFromColumns(r.Partner)
	if err != nil {
		return nil, err
	}
	admin, err := trackFromColumns(r.Admin)
	if err != nil {
		return nil, err
	}
	admin.ReviewerID = pgconv.UUIDPtrFromPgtype(r.AdminReviewerID)

	return quotation.Reconstruct(quotation.Snapshot{
		ID:          r.ID,
		Number:      r.Number,
		BookingID:   r.BookingID,
		UserID:      r.UserID,
		PartnerID:   r.PartnerID,
		Items:       items,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
		ValidTill:   r.ValidTill.UTC(),
		Customer:    customer,
		Partner:     partner,
		Admin:       admin,
		Status:      status,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
		Version:     r.Version,
	}), nil
}

// QuotationArgs returns q's fields as positional arguments in QuotationColumns order.
func QuotationArgs(q *quotation.Quotation) ([]any, error) {
	s := q.Snapshot()
	items, err := json.Marshal(s.Items)
	if err != nil {
		return nil, errs.Wrap(err, "encode line items")
	}

	return []any{
		s.ID, s.Number, s.BookingID, s.UserID, s.PartnerID, items, s.TotalAmount, s.Notes, s.ValidTill,
		s.Customer.Status.String(), pgconv.TimePtrToPgtype(s.Customer.RespondedAt), pgconv.StringPtrToPgtype(s.Customer.Reason),
		s.Partner.Status.String(), pgconv.TimePtrToPgtype(s.Partner.RespondedAt), pgconv.StringPtrToPgtype(s.Partner.Reason),
		s.Admin.Status.String(), pgconv.TimePtrToPgtype(s.Admin.RespondedAt), pgconv.StringPtrToPgtype(s.Admin.Reason),
		pgconv.UUIDPtrToPgtype(s.Admin.ReviewerID),
		s.Status.String(), s.CreatedAt, s.UpdatedAt, s.Version,
	}, nil
}

func DecodeItems(raw []byte) ([]quotation.LineItem, error) {
	var items []quotation.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errs.Wrap(err, "decode line items")
	}
	return items, nil
}

func trackFromColumns(c TrackColumns) (quotation.Track, error) {
	status := quotation.TrackStatus(c.Status)
	if !status.IsValid() {
		return quotation.Track{}, errs.New("invalid track status: " + c.Status)
	}
	return quotation.Track{
		Status:      status,
		RespondedAt: pgconv.TimePtrFromPgtype(c.RespondedAt),
		Reason:      pgconv.StringPtrFromPgtype(c.Reason),
	}, nil
}

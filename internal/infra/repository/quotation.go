package repository

import (
	"context"

	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertQuotationSQL = `INSERT INTO quotations (` + converter.QuotationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	selectQuotationSQL = `SELECT ` + converter.QuotationColumns + ` FROM quotations WHERE id = $1`

	updateQuotationSQL = `UPDATE quotations SET
	number = $2, booking_id = $3, user_id = $4, partner_id = $5, items = $6, total_amount = $7, notes = $8, valid_till = $9,
	customer_status = $10, customer_responded_at = $11, customer_reason = $12,
	partner_status = $13, partner_responded_at = $14, partner_reason = $15,
	admin_status = $16, admin_responded_at = $17, admin_reason = $18, admin_reviewer_id = $19,
	status = $20, created_at = $21, updated_at = $22, version = $23
	WHERE id = $1 AND version = $24`

	deleteQuotationSQL = `DELETE FROM quotations WHERE id = $1 AND customer_status = 'pending'`
)

type QuotationRepository struct {
	db shared.DBTX
}

func NewQuotationRepository(db shared.DBTX) *QuotationRepository {
	return &QuotationRepository{db: db}
}

func (r *QuotationRepository) FindByID(ctx context.Context, id uuid.UUID, lock bool) (*quotation.Quotation, error) {
	sql := selectQuotationSQL
	if lock {
		sql += " FOR UPDATE"
	}

	row, err := converter.ScanQuotation(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quotation by ID", err)
	}

	q, err := converter.QuotationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode quotation", err)
	}
	return q, nil
}

func (r *QuotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	args, err := converter.QuotationArgs(q)
	if err != nil {
		return infra.WrapRepoErr("failed to encode quotation", err)
	}
	if _, err := r.db.Exec(ctx, insertQuotationSQL, args...); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("quotation number already issued", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create quotation", err)
	}
	return nil
}

func (r *QuotationRepository) Update(ctx context.Context, q *quotation.Quotation) error {
	args, err := converter.QuotationArgs(q)
	if err != nil {
		return infra.WrapRepoErr("failed to encode quotation", err)
	}

	tag, err := r.db.Exec(ctx, updateQuotationSQL, append(args, q.Version()-1)...)
	if err != nil {
		return infra.WrapRepoErr("failed to update quotation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quotation was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *QuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteQuotationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quotation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quotation already answered by customer", nil, infra.KindConflict)
	}
	return nil
}

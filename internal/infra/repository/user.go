package repository

import (
	"context"

	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertUserSQL = `INSERT INTO users (id, name, email, phone, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	insertPartnerSQL = `INSERT INTO partners (id, partner_type) VALUES ($1, $2)`

	selectContactSQL = `SELECT name, email, phone FROM users WHERE id = $1`

	selectContactsByRoleSQL = `SELECT name, email, phone FROM users WHERE role = $1 ORDER BY created_at`

	selectPartnerSQL = `SELECT p.id, p.partner_type, u.name, u.email, u.phone
	FROM partners p JOIN users u ON u.id = p.id
	WHERE p.id = $1`
)

// UserRepository covers accounts and the partner profile hanging off them.
type UserRepository struct {
	db shared.DBTX
}

func NewUserRepository(db shared.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	var phone *string
	if !u.Phone().IsZero() {
		v := u.Phone().Value()
		phone = &v
	}

	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(), u.Name(), u.Email().Value(), pgconv.StringPtrToPgtype(phone), u.Role().String(), u.CreatedAt())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// CreatePartner attaches a partner profile to an existing partner account.
func (r *UserRepository) CreatePartner(ctx context.Context, id uuid.UUID, t partner.Type) error {
	if _, err := r.db.Exec(ctx, insertPartnerSQL, id, t.String()); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("partner already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create partner", err)
	}
	return nil
}

func (r *UserRepository) FindContact(ctx context.Context, id uuid.UUID) (*user.ContactInfo, error) {
	var (
		c     user.ContactInfo
		phone pgtype.Text
	)
	if err := r.db.QueryRow(ctx, selectContactSQL, id).Scan(&c.Name, &c.Email, &phone); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user contact", err)
	}
	c.Phone = phone.String
	return &c, nil
}

func (r *UserRepository) FindContactsByRole(ctx context.Context, role user.Role) ([]user.ContactInfo, error) {
	rows, err := r.db.Query(ctx, selectContactsByRoleSQL, role.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts by role", err)
	}
	defer rows.Close()

	var out []user.ContactInfo
	for rows.Next() {
		var (
			c     user.ContactInfo
			phone pgtype.Text
		)
		if err := rows.Scan(&c.Name, &c.Email, &phone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact", err)
		}
		c.Phone = phone.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts by role", err)
	}
	return out, nil
}

func (r *UserRepository) FindPartner(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var (
		pid      uuid.UUID
		rawType  string
		contact  user.ContactInfo
		phoneCol pgtype.Text
	)
	err := r.db.QueryRow(ctx, selectPartnerSQL, id).Scan(&pid, &rawType, &contact.Name, &contact.Email, &phoneCol)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find partner by ID", err)
	}

	t, err := partner.NewType(rawType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode partner", err)
	}
	contact.Phone = phoneCol.String
	return partner.Reconstruct(pid, t, contact), nil
}

package readstore

import (
	"context"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const selectUserViewSQL = `SELECT id, name, email, phone, role, created_at FROM users WHERE id = $1`

type UserReadStore struct {
	db shared.DBTX
}

func NewUserReadStore(db shared.DBTX) *UserReadStore {
	return &UserReadStore{
		db: db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		view  queries.UserView
		phone pgtype.Text
	)
	err := r.db.QueryRow(ctx, selectUserViewSQL, id).
		Scan(&view.ID, &view.Name, &view.Email, &phone, &view.Role, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.Phone = pgconv.StringPtrFromPgtype(phone)
	view.CreatedAt = view.CreatedAt.UTC()
	return &view, nil
}

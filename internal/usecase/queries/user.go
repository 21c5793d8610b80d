//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

package queries

import (
	"context"

	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.NewKind("user not found", errs.ErrNotFound)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return u, nil
}

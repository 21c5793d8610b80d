//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		matches  error
	}{
		{name: "defaults to db failure", wantKind: infra.KindDBFailure, matches: errs.ErrDatabaseOperationFailed},
		{name: "not found", kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound, matches: errs.ErrNotFound},
		{name: "conflict", kind: []infra.RepositoryErrorKind{infra.KindConflict}, wantKind: infra.KindConflict, matches: errs.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("load booking", cause, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.matches)
			assert.ErrorIs(t, err, cause)
			assert.Contains(t, err.Error(), "load booking")
		})
	}

	t.Run("duplicate key carries no domain kind", func(t *testing.T) {
		err := infra.WrapRepoErr("insert quotation", cause, infra.KindDuplicateKey)
		assert.NotErrorIs(t, err, errs.ErrConflict)
		assert.NotErrorIs(t, err, errs.ErrNotFound)
	})
}

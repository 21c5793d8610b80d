//go:build unit || e2e

package dbtest

import (
	"marketplace-core/internal/usecase/shared"
)

// DBLike is what fixtures need: a pool, a connection or an open transaction.
type DBLike = shared.DBTX

//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-core/internal/domain/partner"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/infra/repository"
	"marketplace-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts an account with the given role and returns its id.
func CreateTestUser(t *testing.T, db DBLike, name, email string, role user.Role) uuid.UUID {
	t.Helper()

	u, err := builder.NewUserBuilder().
		WithName(name).
		WithEmail(email).
		WithPhone("").
		WithRole(role).
		With(func(b *builder.UserBuilder) { b.Now = time.Now() }).
		BuildDomain()
	require.NoError(t, err)

	require.NoError(t, repository.NewUserRepository(db).Create(t.Context(), u))
	return u.ID()
}

// CreateTestPartner inserts a partner account together with its profile.
func CreateTestPartner(t *testing.T, db DBLike, name, email string, partnerType partner.Type) uuid.UUID {
	t.Helper()

	id := CreateTestUser(t, db, name, email, user.RolePartner)
	require.NoError(t, repository.NewUserRepository(db).CreatePartner(t.Context(), id, partnerType))
	return id
}

// ApplyMigrations runs every file under migrations/ in name order. The directory is
// looked up from the package directory upwards.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	for _, file := range files {
		sqlContent, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

func findMigrationsDir() (string, error) {
	candidates := []string{
		"migrations",
		filepath.Join("..", "migrations"),
		filepath.Join("..", "..", "migrations"),
		filepath.Join("..", "..", "..", "migrations"),
		filepath.Join("..", "..", "..", "..", "migrations"),
	}
	for _, cand := range candidates {
		if info, err := os.Stat(cand); err == nil && info.IsDir() {
			return cand, nil
		}
	}
	return "", fmt.Errorf("migrations directory not found")
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

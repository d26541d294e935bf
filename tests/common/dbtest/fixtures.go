//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestOrder(t *testing.T, db DBLike, totalAmountCents int64) uuid.UUID {
	t.Helper()

	orderID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO orders (id, total_amount_cents) VALUES ($1, $2)",
		orderID, totalAmountCents)
	require.NoError(t, err)

	return orderID
}

func CreateTestClaim(t *testing.T, db DBLike, orderID uuid.UUID, amountCents int64, sessionTokenID, status string, expiresAt time.Time) uuid.UUID {
	t.Helper()

	claimID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO payment_claims (id, order_id, claimed_amount_cents, session_token_id, status, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		claimID, orderID, amountCents, sessionTokenID, status, expiresAt)
	require.NoError(t, err)

	// Keep the order counter in step with the inserted claim.
	if status == "reserved" || status == "processing" {
		_, err = db.Exec(ctx,
			"UPDATE orders SET total_claimed_cents = total_claimed_cents + $2 WHERE id = $1",
			orderID, amountCents)
		require.NoError(t, err)
	}

	return claimID
}

func OrderCounters(t *testing.T, db DBLike, orderID uuid.UUID) (claimed, paid int64, status string) {
	t.Helper()

	ctx := context.Background()
	err := db.QueryRow(ctx,
		"SELECT total_claimed_cents, total_paid_cents, status FROM orders WHERE id = $1",
		orderID).Scan(&claimed, &paid, &status)
	require.NoError(t, err)
	return claimed, paid, status
}

func ClaimStatus(t *testing.T, db DBLike, claimID uuid.UUID) string {
	t.Helper()

	ctx := context.Background()
	var status string
	err := db.QueryRow(ctx,
		"SELECT status FROM payment_claims WHERE id = $1", claimID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between sub-tests
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}

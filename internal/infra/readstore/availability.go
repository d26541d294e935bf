package readstore

import (
	"context"

	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
	"splitpay/internal/pkg/pgconv"
	"splitpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct{}

func NewAvailabilityReadStore() *AvailabilityReadStore {
	return &AvailabilityReadStore{}
}

// LedgerByOrderID re-derives the claimed/paid sums from the live claim set
// instead of trusting the cached counters, so the availability figure is
// correct even if the cache ever drifted.
func (r *AvailabilityReadStore) LedgerByOrderID(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (*queries.LedgerRow, error) {
	const query = `
		SELECT
			o.id,
			o.total_amount_cents,
			o.total_claimed_cents,
			o.total_paid_cents,
			o.status,
			COALESCE(SUM(c.claimed_amount_cents) FILTER (WHERE c.status IN ('reserved', 'processing')), 0) AS sum_active,
			COALESCE(SUM(c.claimed_amount_cents) FILTER (WHERE c.status = 'paid'), 0) AS sum_paid
		FROM orders o
		LEFT JOIN payment_claims c ON c.order_id = o.id
		WHERE o.id = $1
		GROUP BY o.id`

	row := &queries.LedgerRow{}
	err := dbtx.QueryRow(ctx, query, orderID).Scan(
		&row.OrderID,
		&row.TotalAmountCents,
		&row.TotalClaimedCents,
		&row.TotalPaidCents,
		&row.Status,
		&row.SumActiveCents,
		&row.SumPaidCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read order ledger", err)
	}
	return row, nil
}

func (r *AvailabilityReadStore) ClaimsByOrderID(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]*queries.ClaimView, error) {
	const query = `
		SELECT id, order_id, claimed_amount_cents, fee_portion_cents,
		       status, expires_at, paid_at, created_at
		FROM payment_claims
		WHERE order_id = $1
		ORDER BY created_at, id`

	rows, err := dbtx.Query(ctx, query, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims for order", err)
	}
	defer rows.Close()

	var result []*queries.ClaimView
	for rows.Next() {
		cv := &queries.ClaimView{}
		if err := rows.Scan(
			&cv.ID,
			&cv.OrderID,
			&cv.ClaimedAmountCents,
			&cv.FeePortionCents,
			&cv.Status,
			&cv.ExpiresAt,
			&cv.PaidAt,
			&cv.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claim row", err)
		}
		cv.TotalToPayCents = cv.ClaimedAmountCents + cv.FeePortionCents
		result = append(result, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claim rows", err)
	}
	return result, nil
}

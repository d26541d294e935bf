package repository

import (
	"context"

	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
	"splitpay/internal/pkg/pgconv"
	"splitpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindForUpdate takes the per-order row lock that linearizes every counter
// mutation for one order. Unrelated orders never contend on it.
func (r *OrderRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (*shared.OrderSnapshot, error) {
	const query = `
		SELECT id, total_amount_cents, total_claimed_cents, total_paid_cents, status
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	snap := &shared.OrderSnapshot{}
	err := dbtx.QueryRow(ctx, query, orderID).Scan(
		&snap.ID,
		&snap.TotalAmountCents,
		&snap.TotalClaimedCents,
		&snap.TotalPaidCents,
		&snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return snap, nil
}

// AddClaimed keeps the non-overcommit guard inside the statement itself, so
// even a caller that skipped the recheck cannot push the counters past the
// total.
func (r *OrderRepository) AddClaimed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, amountCents int64) error {
	const query = `
		UPDATE orders
		SET total_claimed_cents = total_claimed_cents + $2,
		    updated_at = now()
		WHERE id = $1
		  AND total_claimed_cents + total_paid_cents + $2 <= total_amount_cents`

	tag, err := dbtx.Exec(ctx, query, orderID, amountCents)
	if err != nil {
		// 23514 is the schema-level CHECK backstop firing.
		if isCheckViolation(err) {
			return infra.WrapRepoErr("claimed amount would exceed order total", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to add claimed amount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("claimed amount would exceed order total", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) ReleaseClaimed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, amountCents int64) error {
	const query = `
		UPDATE orders
		SET total_claimed_cents = total_claimed_cents - $2,
		    updated_at = now()
		WHERE id = $1
		  AND total_claimed_cents >= $2`

	tag, err := dbtx.Exec(ctx, query, orderID, amountCents)
	if err != nil {
		return infra.WrapRepoErr("failed to release claimed amount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("release would drive claimed amount negative", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) SettleClaimed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, amountCents int64) error {
	const query = `
		UPDATE orders
		SET total_claimed_cents = total_claimed_cents - $2,
		    total_paid_cents = total_paid_cents + $2,
		    updated_at = now()
		WHERE id = $1
		  AND total_claimed_cents >= $2`

	tag, err := dbtx.Exec(ctx, query, orderID, amountCents)
	if err != nil {
		return infra.WrapRepoErr("failed to settle claimed amount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("settle amount exceeds claimed amount", nil, infra.KindConflict)
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, status string) error {
	const query = `
		UPDATE orders
		SET status = $2,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, orderID, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

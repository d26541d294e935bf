package repository

import (
	"context"
	"time"

	domclaim "splitpay/internal/domain/claim"
	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
	"splitpay/internal/pkg/pgconv"
	"splitpay/internal/usecase/shared"

	"github.com/google/uuid"
)

const claimColumns = `
	id, order_id, claimed_amount_cents, fee_portion_cents,
	session_token_id, status, processor_ref, expires_at, paid_at, created_at`

type ClaimRepository struct{}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{}
}

func (r *ClaimRepository) Create(ctx context.Context, dbtx db.DBTX, c *domclaim.Claim) error {
	const query = `
		INSERT INTO payment_claims (
			id, order_id, claimed_amount_cents, fee_portion_cents,
			session_token_id, status, expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := dbtx.Exec(ctx, query,
		c.ID(),
		c.OrderID(),
		c.ClaimedAmountCents(),
		c.FeePortionCents(),
		c.SessionTokenID(),
		c.Status().String(),
		c.ExpiresAt(),
		c.CreatedAt(),
		c.UpdatedAt(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("order does not exist", err, infra.KindForeignKeyViolated)
		}
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("duplicate claim id", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create claim", err)
	}
	return nil
}

func (r *ClaimRepository) Find(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*shared.ClaimSnapshot, error) {
	const query = `SELECT ` + claimColumns + ` FROM payment_claims WHERE id = $1`
	return r.scanClaim(ctx, dbtx, query, claimID)
}

func (r *ClaimRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*shared.ClaimSnapshot, error) {
	const query = `SELECT ` + claimColumns + ` FROM payment_claims WHERE id = $1 FOR UPDATE`
	return r.scanClaim(ctx, dbtx, query, claimID)
}

// ExpireStale is the single expiry statement shared by lazy expiry and the
// reaper sweep, so the two paths can never diverge on the counters.
func (r *ClaimRepository) ExpireStale(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, now time.Time) (int64, error) {
	const query = `
		WITH expired AS (
			UPDATE payment_claims
			SET status = 'expired',
			    updated_at = $2
			WHERE order_id = $1
			  AND status IN ('reserved', 'processing')
			  AND expires_at < $2
			RETURNING claimed_amount_cents
		)
		SELECT COALESCE(SUM(claimed_amount_cents), 0) FROM expired`

	var releasedCents int64
	if err := dbtx.QueryRow(ctx, query, orderID, now).Scan(&releasedCents); err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale claims", err)
	}
	return releasedCents, nil
}

func (r *ClaimRepository) SetProcessing(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, now time.Time) error {
	const query = `
		UPDATE payment_claims
		SET status = 'processing', updated_at = $2
		WHERE id = $1 AND status = 'reserved'`
	return r.execTransition(ctx, dbtx, query, "claim is not reserved", claimID, now)
}

func (r *ClaimRepository) SetPaid(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, paidAt time.Time, processorRef string) error {
	const query = `
		UPDATE payment_claims
		SET status = 'paid', paid_at = $2, processor_ref = $3, updated_at = $2
		WHERE id = $1 AND status IN ('reserved', 'processing')`

	tag, err := dbtx.Exec(ctx, query, claimID, paidAt, processorRef)
	if err != nil {
		return infra.WrapRepoErr("failed to mark claim paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("claim is not active", nil, infra.KindConflict)
	}
	return nil
}

func (r *ClaimRepository) SetCancelled(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, now time.Time) error {
	const query = `
		UPDATE payment_claims
		SET status = 'cancelled', updated_at = $2
		WHERE id = $1 AND status IN ('reserved', 'processing')`
	return r.execTransition(ctx, dbtx, query, "claim is not active", claimID, now)
}

func (r *ClaimRepository) SetExpired(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, now time.Time) error {
	const query = `
		UPDATE payment_claims
		SET status = 'expired', updated_at = $2
		WHERE id = $1 AND status IN ('reserved', 'processing')`
	return r.execTransition(ctx, dbtx, query, "claim is not active", claimID, now)
}

func (r *ClaimRepository) OrdersWithStaleClaims(ctx context.Context, dbtx db.DBTX, now time.Time, limit int) ([]uuid.UUID, error) {
	const query = `
		SELECT DISTINCT order_id
		FROM payment_claims
		WHERE status IN ('reserved', 'processing')
		  AND expires_at < $1
		LIMIT $2`

	rows, err := dbtx.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders with stale claims", err)
	}
	defer rows.Close()

	var orderIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stale order id", err)
		}
		orderIDs = append(orderIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stale order ids", err)
	}
	return orderIDs, nil
}

func (r *ClaimRepository) scanClaim(ctx context.Context, dbtx db.DBTX, query string, claimID uuid.UUID) (*shared.ClaimSnapshot, error) {
	snap := &shared.ClaimSnapshot{}
	err := dbtx.QueryRow(ctx, query, claimID).Scan(
		&snap.ID,
		&snap.OrderID,
		&snap.ClaimedAmountCents,
		&snap.FeePortionCents,
		&snap.SessionTokenID,
		&snap.Status,
		&snap.ProcessorRef,
		&snap.ExpiresAt,
		&snap.PaidAt,
		&snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim", err)
	}
	return snap, nil
}

func (r *ClaimRepository) execTransition(ctx context.Context, dbtx db.DBTX, query, conflictMsg string, claimID uuid.UUID, now time.Time) error {
	tag, err := dbtx.Exec(ctx, query, claimID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to transition claim", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(conflictMsg, nil, infra.KindConflict)
	}
	return nil
}

package readstore

import (
	"context"

	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
	"splitpay/internal/pkg/pgconv"
	"splitpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimReadStore struct{}

func NewClaimReadStore() *ClaimReadStore {
	return &ClaimReadStore{}
}

func (r *ClaimReadStore) FindByID(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*queries.ClaimView, error) {
	const query = `
		SELECT id, order_id, claimed_amount_cents, fee_portion_cents,
		       status, expires_at, paid_at, created_at
		FROM payment_claims
		WHERE id = $1`

	cv := &queries.ClaimView{}
	err := dbtx.QueryRow(ctx, query, claimID).Scan(
		&cv.ID,
		&cv.OrderID,
		&cv.ClaimedAmountCents,
		&cv.FeePortionCents,
		&cv.Status,
		&cv.ExpiresAt,
		&cv.PaidAt,
		&cv.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim by ID", err)
	}
	cv.TotalToPayCents = cv.ClaimedAmountCents + cv.FeePortionCents
	return cv, nil
}

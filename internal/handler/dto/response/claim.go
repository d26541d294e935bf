package response

import (
	"time"

	"splitpay/internal/usecase/commands"
	"splitpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimResponse struct {
	ID                 uuid.UUID  `json:"id"`
	OrderID            uuid.UUID  `json:"order_id"`
	ClaimedAmountCents int64      `json:"claimed_amount_cents"`
	FeePortionCents    int64      `json:"fee_portion_cents"`
	TotalToPayCents    int64      `json:"total_to_pay_cents"`
	Status             string     `json:"status"`
	ExpiresAt          time.Time  `json:"expires_at"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CreateClaimResponse echoes the session token so a first-time device can
// store it for the follow-up start/cancel calls.
type CreateClaimResponse struct {
	Claim        ClaimResponse `json:"claim"`
	SessionToken string        `json:"session_token"`
}

func FromClaimView(v *queries.ClaimView) ClaimResponse {
	return ClaimResponse{
		ID:                 v.ID,
		OrderID:            v.OrderID,
		ClaimedAmountCents: v.ClaimedAmountCents,
		FeePortionCents:    v.FeePortionCents,
		TotalToPayCents:    v.TotalToPayCents,
		Status:             v.Status,
		ExpiresAt:          v.ExpiresAt,
		PaidAt:             v.PaidAt,
		CreatedAt:          v.CreatedAt,
	}
}

func FromCreateClaimResult(r *commands.CreateClaimResult) CreateClaimResponse {
	return CreateClaimResponse{
		Claim:        FromClaimView(r.Claim),
		SessionToken: r.SessionToken,
	}
}

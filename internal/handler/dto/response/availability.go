package response

import (
	"splitpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	OrderID              uuid.UUID       `json:"order_id"`
	TotalAmountCents     int64           `json:"total_amount_cents"`
	TotalClaimedCents    int64           `json:"total_claimed_cents"`
	TotalPaidCents       int64           `json:"total_paid_cents"`
	AvailableAmountCents int64           `json:"available_amount_cents"`
	Status               string          `json:"status"`
	Claims               []ClaimResponse `json:"claims"`
}

func FromAvailabilityView(v *queries.AvailabilityView) AvailabilityResponse {
	claims := make([]ClaimResponse, len(v.Claims))
	for i, cv := range v.Claims {
		claims[i] = FromClaimView(cv)
	}
	return AvailabilityResponse{
		OrderID:              v.OrderID,
		TotalAmountCents:     v.TotalAmountCents,
		TotalClaimedCents:    v.TotalClaimedCents,
		TotalPaidCents:       v.TotalPaidCents,
		AvailableAmountCents: v.AvailableAmountCents,
		Status:               v.Status,
		Claims:               claims,
	}
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type OrderSnapshot struct {
	ID                uuid.UUID
	TotalAmountCents  int64
	TotalClaimedCents int64
	TotalPaidCents    int64
	Status            string
}

func (s *OrderSnapshot) AvailableAmountCents() int64 {
	return s.TotalAmountCents - s.TotalClaimedCents - s.TotalPaidCents
}

type ClaimSnapshot struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	ClaimedAmountCents int64
	FeePortionCents    int64
	SessionTokenID     string
	Status             string
	ProcessorRef       *string
	ExpiresAt          time.Time
	PaidAt             *time.Time
	CreatedAt          time.Time
}

func (s *ClaimSnapshot) TotalToPayCents() int64 {
	return s.ClaimedAmountCents + s.FeePortionCents
}

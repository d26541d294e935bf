package queries

import (
	"time"

	"github.com/google/uuid"
)

type ClaimView struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	ClaimedAmountCents int64
	FeePortionCents    int64
	TotalToPayCents    int64
	Status             string
	ExpiresAt          time.Time
	PaidAt             *time.Time
	CreatedAt          time.Time
}

type AvailabilityView struct {
	OrderID              uuid.UUID
	TotalAmountCents     int64
	TotalClaimedCents    int64
	TotalPaidCents       int64
	AvailableAmountCents int64
	Status               string
	Claims               []*ClaimView
}

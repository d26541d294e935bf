//go:build unit || e2e

package builder

import (
	"time"

	domclaim "splitpay/internal/domain/claim"
	reqdto "splitpay/internal/handler/dto/request"
	"splitpay/internal/usecase/queries"
	"splitpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClaimBuilder struct {
	ID                 uuid.UUID
	OrderID            uuid.UUID
	ClaimedAmountCents int64
	FeePortionCents    int64
	SessionTokenID     string
	Status             domclaim.Status
	ProcessorRef       *string
	ExpiresAt          time.Time
	PaidAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewClaimBuilder() *ClaimBuilder {
	now := time.Now()
	return &ClaimBuilder{
		ID:                 uuid.New(),
		OrderID:            uuid.New(),
		ClaimedAmountCents: 2500,
		FeePortionCents:    100,
		SessionTokenID:     uuid.New().String(),
		Status:             domclaim.StatusReserved,
		ExpiresAt:          now.Add(5 * time.Minute),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (c *ClaimBuilder) With(mutate func(*ClaimBuilder)) *ClaimBuilder {
	mutate(c)
	return c
}

func (c *ClaimBuilder) BuildDomain() *domclaim.Claim {
	return domclaim.ReconstructClaim(
		c.ID, c.OrderID,
		c.ClaimedAmountCents, c.FeePortionCents,
		c.SessionTokenID,
		c.Status,
		c.ProcessorRef,
		c.ExpiresAt,
		c.PaidAt,
		c.CreatedAt, c.UpdatedAt,
	)
}

func (c *ClaimBuilder) BuildSnapshot() *shared.ClaimSnapshot {
	return &shared.ClaimSnapshot{
		ID:                 c.ID,
		OrderID:            c.OrderID,
		ClaimedAmountCents: c.ClaimedAmountCents,
		FeePortionCents:    c.FeePortionCents,
		SessionTokenID:     c.SessionTokenID,
		Status:             c.Status.String(),
		ProcessorRef:       c.ProcessorRef,
		ExpiresAt:          c.ExpiresAt,
		PaidAt:             c.PaidAt,
		CreatedAt:          c.CreatedAt,
	}
}

func (c *ClaimBuilder) BuildView() *queries.ClaimView {
	return &queries.ClaimView{
		ID:                 c.ID,
		OrderID:            c.OrderID,
		ClaimedAmountCents: c.ClaimedAmountCents,
		FeePortionCents:    c.FeePortionCents,
		TotalToPayCents:    c.ClaimedAmountCents + c.FeePortionCents,
		Status:             c.Status.String(),
		ExpiresAt:          c.ExpiresAt,
		PaidAt:             c.PaidAt,
		CreatedAt:          c.CreatedAt,
	}
}

func (c *ClaimBuilder) BuildCreateRequestDTO() reqdto.CreateClaimRequest {
	return reqdto.CreateClaimRequest{
		AmountCents: c.ClaimedAmountCents,
	}
}

// Fluent builder methods
func (c *ClaimBuilder) WithID(id uuid.UUID) *ClaimBuilder {
	c.ID = id
	return c
}

func (c *ClaimBuilder) WithOrderID(orderID uuid.UUID) *ClaimBuilder {
	c.OrderID = orderID
	return c
}

func (c *ClaimBuilder) WithClaimedAmountCents(cents int64) *ClaimBuilder {
	c.ClaimedAmountCents = cents
	return c
}

func (c *ClaimBuilder) WithFeePortionCents(cents int64) *ClaimBuilder {
	c.FeePortionCents = cents
	return c
}

func (c *ClaimBuilder) WithSessionTokenID(id string) *ClaimBuilder {
	c.SessionTokenID = id
	return c
}

func (c *ClaimBuilder) WithStatus(status domclaim.Status) *ClaimBuilder {
	c.Status = status
	return c
}

func (c *ClaimBuilder) WithExpiresAt(at time.Time) *ClaimBuilder {
	c.ExpiresAt = at
	return c
}

func (c *ClaimBuilder) AsProcessing() *ClaimBuilder {
	c.Status = domclaim.StatusProcessing
	return c
}

func (c *ClaimBuilder) AsPaid(paidAt time.Time, processorRef string) *ClaimBuilder {
	c.Status = domclaim.StatusPaid
	c.PaidAt = &paidAt
	c.ProcessorRef = &processorRef
	return c
}

func (c *ClaimBuilder) AsExpired() *ClaimBuilder {
	c.Status = domclaim.StatusExpired
	c.ExpiresAt = time.Now().Add(-time.Minute)
	return c
}

func (c *ClaimBuilder) AsLapsed() *ClaimBuilder {
	c.Status = domclaim.StatusReserved
	c.ExpiresAt = time.Now().Add(-time.Minute)
	return c
}

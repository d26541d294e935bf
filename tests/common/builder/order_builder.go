//go:build unit || e2e

package builder

import (
	"time"

	domorder "splitpay/internal/domain/order"
	"splitpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID                uuid.UUID
	TotalAmountCents  int64
	TotalClaimedCents int64
	TotalPaidCents    int64
	Status            domorder.Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:                uuid.New(),
		TotalAmountCents:  10000,
		TotalClaimedCents: 0,
		TotalPaidCents:    0,
		Status:            domorder.StatusOrdering,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) BuildDomain() *domorder.Order {
	return domorder.ReconstructOrder(
		o.ID,
		o.TotalAmountCents, o.TotalClaimedCents, o.TotalPaidCents,
		o.Status,
		o.CreatedAt, o.UpdatedAt,
	)
}

func (o *OrderBuilder) BuildSnapshot() *shared.OrderSnapshot {
	return &shared.OrderSnapshot{
		ID:                o.ID,
		TotalAmountCents:  o.TotalAmountCents,
		TotalClaimedCents: o.TotalClaimedCents,
		TotalPaidCents:    o.TotalPaidCents,
		Status:            o.Status.String(),
	}
}

// Fluent builder methods
func (o *OrderBuilder) WithID(id uuid.UUID) *OrderBuilder {
	o.ID = id
	return o
}

func (o *OrderBuilder) WithTotalAmountCents(cents int64) *OrderBuilder {
	o.TotalAmountCents = cents
	return o
}

func (o *OrderBuilder) WithTotalClaimedCents(cents int64) *OrderBuilder {
	o.TotalClaimedCents = cents
	return o
}

func (o *OrderBuilder) WithTotalPaidCents(cents int64) *OrderBuilder {
	o.TotalPaidCents = cents
	return o
}

func (o *OrderBuilder) WithStatus(status domorder.Status) *OrderBuilder {
	o.Status = status
	return o
}

func (o *OrderBuilder) AsPaymentStarted() *OrderBuilder {
	o.Status = domorder.StatusPaymentStarted
	return o
}

func (o *OrderBuilder) AsPaid() *OrderBuilder {
	o.Status = domorder.StatusPaid
	o.TotalPaidCents = o.TotalAmountCents
	o.TotalClaimedCents = 0
	return o
}

func (o *OrderBuilder) AsCancelled() *OrderBuilder {
	o.Status = domorder.StatusCancelled
	return o
}

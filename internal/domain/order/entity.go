package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderClosed         = errors.New("order is already paid or cancelled")
	ErrOrderNotCancellable = errors.New("order can only be cancelled while ordering")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrOvercommitted       = errors.New("claimed plus paid would exceed the order total")
)

// Order is the authoritative bill ledger. The counters are derived from the
// claim set and must only change in the same transaction as a claim
// transition; the Claim Manager use case is the single writer gate.
type Order struct {
	id                uuid.UUID
	totalAmountCents  int64
	totalClaimedCents int64
	totalPaidCents    int64
	status            Status
	createdAt         time.Time
	updatedAt         time.Time
}

func ReconstructOrder(
	id uuid.UUID,
	totalAmountCents, totalClaimedCents, totalPaidCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:                id,
		totalAmountCents:  totalAmountCents,
		totalClaimedCents: totalClaimedCents,
		totalPaidCents:    totalPaidCents,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) TotalAmountCents() int64  { return o.totalAmountCents }
func (o *Order) TotalClaimedCents() int64 { return o.totalClaimedCents }
func (o *Order) TotalPaidCents() int64    { return o.totalPaidCents }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }

// AvailableAmountCents is the portion of the total not reserved or paid.
func (o *Order) AvailableAmountCents() int64 {
	return o.totalAmountCents - o.totalClaimedCents - o.totalPaidCents
}

// CanAdmit checks the non-overcommit invariant for a prospective claim.
func (o *Order) CanAdmit(amountCents int64) error {
	if o.status.IsClosed() {
		return ErrOrderClosed
	}
	if amountCents > o.AvailableAmountCents() {
		return ErrOvercommitted
	}
	return nil
}

// DeriveStatus recomputes the coarse order status from ledger state. The
// claim set plus the counters are the authoritative truth; the stored status
// is a cache for display. paid and cancelled are terminal; payment_started
// is entered on the first claim and never reverts to ordering.
func DeriveStatus(current Status, totalAmountCents, totalPaidCents int64) Status {
	switch current {
	case StatusPaid, StatusCancelled:
		return current
	}
	if totalPaidCents >= totalAmountCents {
		return StatusPaid
	}
	if totalPaidCents > 0 {
		return StatusPartiallyPaid
	}
	if current == StatusOrdering {
		return StatusOrdering
	}
	return StatusPaymentStarted
}

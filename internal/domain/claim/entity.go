package claim

import (
	"errors"
	"math"
	"time"

	"splitpay/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("claimed amount must be positive")
	ErrNotCancellable  = errors.New("claim is not in a cancellable state")
	ErrNotProcessable  = errors.New("claim cannot start processing")
	ErrClaimExpired    = errors.New("claim has already expired")
	ErrAlreadyTerminal = errors.New("claim is already in a terminal state")
)

type Services struct {
	Clock         clock.Clock
	FeeCalculator FeeCalculator
}

type FeeCalculator interface {
	FeePortionCents(claimedAmountCents int64) int64
}

// Claim is a reservation of part of one order's total by one paying
// participant, valid until its TTL or explicit resolution. Claims are bound
// to an opaque session token, not an authenticated user.
type Claim struct {
	id                 uuid.UUID
	orderID            uuid.UUID
	claimedAmountCents int64
	feePortionCents    int64
	sessionTokenID     string
	status             Status
	processorRef       *string
	expiresAt          time.Time
	paidAt             *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewClaim(
	services *Services,
	orderID uuid.UUID,
	claimedAmountCents int64,
	sessionTokenID string,
	ttl time.Duration,
) (*Claim, error) {
	if claimedAmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	now := services.Clock.Now()
	return &Claim{
		id:                 uuid.New(),
		orderID:            orderID,
		claimedAmountCents: claimedAmountCents,
		feePortionCents:    services.FeeCalculator.FeePortionCents(claimedAmountCents),
		sessionTokenID:     sessionTokenID,
		status:             StatusReserved,
		expiresAt:          now.Add(ttl),
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructClaim(
	id, orderID uuid.UUID,
	claimedAmountCents, feePortionCents int64,
	sessionTokenID string,
	status Status,
	processorRef *string,
	expiresAt time.Time,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) *Claim {
	return &Claim{
		id:                 id,
		orderID:            orderID,
		claimedAmountCents: claimedAmountCents,
		feePortionCents:    feePortionCents,
		sessionTokenID:     sessionTokenID,
		status:             status,
		processorRef:       processorRef,
		expiresAt:          expiresAt,
		paidAt:             paidAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (c *Claim) ID() uuid.UUID             { return c.id }
func (c *Claim) OrderID() uuid.UUID        { return c.orderID }
func (c *Claim) ClaimedAmountCents() int64 { return c.claimedAmountCents }
func (c *Claim) FeePortionCents() int64    { return c.feePortionCents }
func (c *Claim) SessionTokenID() string    { return c.sessionTokenID }
func (c *Claim) Status() Status            { return c.status }
func (c *Claim) ProcessorRef() *string     { return c.processorRef }
func (c *Claim) ExpiresAt() time.Time      { return c.expiresAt }
func (c *Claim) PaidAt() *time.Time        { return c.paidAt }
func (c *Claim) CreatedAt() time.Time      { return c.createdAt }
func (c *Claim) UpdatedAt() time.Time      { return c.updatedAt }

func (c *Claim) TotalToPayCents() int64 {
	return c.claimedAmountCents + c.feePortionCents
}

func (c *Claim) HasExpired(now time.Time) bool {
	return c.status.IsActive() && now.After(c.expiresAt)
}

func (c *Claim) IsOwnedBy(sessionTokenID string) bool {
	return c.sessionTokenID == sessionTokenID
}

// StartProcessing marks the beginning of a payment attempt.
func (c *Claim) StartProcessing(now time.Time) error {
	if c.status == StatusProcessing {
		return nil
	}
	if c.status != StatusReserved {
		return ErrNotProcessable
	}
	if now.After(c.expiresAt) {
		return ErrClaimExpired
	}
	c.status = StatusProcessing
	c.updatedAt = now
	return nil
}

func (c *Claim) MarkPaid(now time.Time, processorRef string) error {
	if c.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	c.status = StatusPaid
	c.processorRef = &processorRef
	c.paidAt = &now
	c.updatedAt = now
	return nil
}

func (c *Claim) Cancel(now time.Time) error {
	if !c.status.IsActive() {
		return ErrNotCancellable
	}
	c.status = StatusCancelled
	c.updatedAt = now
	return nil
}

func (c *Claim) Expire(now time.Time) error {
	if c.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	c.status = StatusExpired
	c.updatedAt = now
	return nil
}

// FixedPercentFeeCalculator derives the fee portion as a fixed percentage of
// the claimed amount, rounded half-up.
type FixedPercentFeeCalculator struct {
	Percent float64
}

func NewFixedPercentFeeCalculator(percent float64) *FixedPercentFeeCalculator {
	return &FixedPercentFeeCalculator{Percent: percent}
}

func (f *FixedPercentFeeCalculator) FeePortionCents(claimedAmountCents int64) int64 {
	return int64(math.Round(float64(claimedAmountCents) * f.Percent / 100.0))
}

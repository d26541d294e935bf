package shared

import (
	"context"
	"time"

	"splitpay/internal/domain/claim"
	"splitpay/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// All counter mutations run here so partial increments are never
	// observable (everything rolls back together).
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Orders() OrderRepository
	Claims() ClaimRepository
	ProcessorEvents() ProcessorEventRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

// OrderRepository mutates the order ledger. Every method that changes a
// counter carries the non-overcommit guard in its statement; callers must
// hold the order row lock (FindForUpdate) first.
type OrderRepository interface {
	FindForUpdate(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (*OrderSnapshot, error)
	// AddClaimed bumps total_claimed only while the invariant holds;
	// returns KindConflict when the guard rejects the increment.
	AddClaimed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, amountCents int64) error
	ReleaseClaimed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, amountCents int64) error
	// SettleClaimed moves an amount from total_claimed to total_paid.
	SettleClaimed(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, amountCents int64) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, status string) error
}

type ClaimRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *claim.Claim) error
	Find(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*ClaimSnapshot, error)
	FindForUpdate(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*ClaimSnapshot, error)
	// ExpireStale transitions every lapsed reserved/processing claim of the
	// order to expired and returns the released amount. Both lazy expiry and
	// the reaper sweep go through this single statement.
	ExpireStale(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID, now time.Time) (releasedCents int64, err error)
	SetProcessing(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, now time.Time) error
	SetPaid(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, paidAt time.Time, processorRef string) error
	SetCancelled(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, now time.Time) error
	SetExpired(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID, now time.Time) error
	OrdersWithStaleClaims(ctx context.Context, dbtx db.DBTX, now time.Time, limit int) ([]uuid.UUID, error)
}

// ProcessorEventRepository deduplicates redelivered processor notifications.
type ProcessorEventRepository interface {
	// TryInsert returns KindDuplicateKey when the processor_ref was seen before.
	TryInsert(ctx context.Context, dbtx db.DBTX, processorRef string, claimID uuid.UUID, outcome string, receivedAt time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

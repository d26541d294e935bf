package queries

import (
	"context"

	"splitpay/internal/domain/claim"
	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
	"splitpay/internal/pkg/clock"
	"splitpay/internal/pkg/errs"
	"splitpay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrClaimNotFound = errs.New("claim not found")
)

type AvailabilityReadStore interface {
	LedgerByOrderID(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) (*LedgerRow, error)
	ClaimsByOrderID(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]*ClaimView, error)
}

type ClaimReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, claimID uuid.UUID) (*ClaimView, error)
}

type LedgerRow struct {
	OrderID           uuid.UUID
	TotalAmountCents  int64
	TotalClaimedCents int64
	TotalPaidCents    int64
	Status            string
	SumActiveCents    int64
	SumPaidCents      int64
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, orderID uuid.UUID) (*AvailabilityView, error)
	GetClaim(ctx context.Context, claimID uuid.UUID) (*ClaimView, error)
}

type availabilityQueriesImpl struct {
	uow        shared.UnitOfWork
	readStore  AvailabilityReadStore
	claimStore ClaimReadStore
	clock      clock.Clock
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	readStore AvailabilityReadStore,
	claimStore ClaimReadStore,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:        uow,
		readStore:  readStore,
		claimStore: claimStore,
		clock:      clk,
	}
}

// GetAvailability is the basis for admission decisions, so it must not be
// stale: the order row is locked, lapsed claims are expired first, and the
// counters are re-derived from the live claim set inside the same
// transaction.
func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, orderID uuid.UUID) (*AvailabilityView, error) {
	var view *AvailabilityView

	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		now := q.clock.Now()
		released, err := tx.Claims().ExpireStale(ctx, tx.DB(), orderID, now)
		if err != nil {
			return err
		}
		if released > 0 {
			if err := tx.Orders().ReleaseClaimed(ctx, tx.DB(), orderID, released); err != nil {
				return err
			}
		}

		ledger, err := q.readStore.LedgerByOrderID(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}
		claims, err := q.readStore.ClaimsByOrderID(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}

		view = toAvailabilityView(ord, ledger, claims)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *availabilityQueriesImpl) GetClaim(ctx context.Context, claimID uuid.UUID) (*ClaimView, error) {
	var view *ClaimView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		cv, err := q.claimStore.FindByID(ctx, dbtx, claimID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrClaimNotFound
			}
			return err
		}
		// Lazy-expiring view: a lapsed-but-unmarked claim reads as expired.
		if claim.Status(cv.Status).IsActive() && q.clock.Now().After(cv.ExpiresAt) {
			cv.Status = string(claim.StatusExpired)
		}
		view = cv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func toAvailabilityView(ord *shared.OrderSnapshot, ledger *LedgerRow, claims []*ClaimView) *AvailabilityView {
	// Counters re-derived from the live claim set, not read back from the
	// cached columns.
	available := ledger.TotalAmountCents - ledger.SumActiveCents - ledger.SumPaidCents
	if available < 0 {
		available = 0
	}
	return &AvailabilityView{
		OrderID:              ord.ID,
		TotalAmountCents:     ledger.TotalAmountCents,
		TotalClaimedCents:    ledger.SumActiveCents,
		TotalPaidCents:       ledger.SumPaidCents,
		AvailableAmountCents: available,
		Status:               ledger.Status,
		Claims:               claims,
	}
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"splitpay/internal/domain/claim"
	"splitpay/internal/domain/order"
	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
	"splitpay/internal/pkg/clock"
	"splitpay/internal/pkg/errs"
	"splitpay/internal/usecase/queries"
	"splitpay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound           = errs.New("order not found")
	ErrOrderClosed             = errs.New("order is already paid or cancelled")
	ErrClaimNotFound           = errs.New("claim not found")
	ErrClaimNotCancellable     = errs.New("claim is not cancellable")
	ErrClaimNotProcessable     = errs.New("claim cannot start processing")
	ErrClaimExpired            = errs.New("claim has already expired")
	ErrInvalidAmount           = errs.New("claimed amount must be positive")
	ErrInvalidSessionToken     = errs.New("invalid session token")
	ErrInvalidOutcome          = errs.New("invalid payment outcome")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// InsufficientAmountError reports current availability so the client can
// retry with a corrected amount instead of a blind retry.
type InsufficientAmountError struct {
	AvailableAmountCents int64
	TotalAmountCents     int64
	TotalClaimedCents    int64
}

func (e *InsufficientAmountError) Error() string {
	return fmt.Sprintf("insufficient amount: available=%d total=%d claimed=%d",
		e.AvailableAmountCents, e.TotalAmountCents, e.TotalClaimedCents)
}

// SessionTokens mints and validates the opaque device identity a claim is
// bound to.
type SessionTokens interface {
	Issue(now time.Time) (token string, tokenID string, err error)
	Validate(token string) (tokenID string, err error)
}

type CreateClaimResult struct {
	Claim        *queries.ClaimView
	SessionToken string
}

type ClaimCommands interface {
	CreateClaim(ctx context.Context, orderID uuid.UUID, amountCents int64, sessionToken *string) (*CreateClaimResult, error)
	StartPayment(ctx context.Context, claimID uuid.UUID, sessionToken string) (*queries.ClaimView, error)
	CancelClaim(ctx context.Context, claimID uuid.UUID, sessionToken string) (*queries.ClaimView, error)
	ApplyPaymentOutcome(ctx context.Context, claimID uuid.UUID, outcome claim.Outcome, processorRef string) error
	SweepExpiredClaims(ctx context.Context) (int, error)
}

type claimCommandsImpl struct {
	uow            shared.UnitOfWork
	claimRepo      shared.ClaimRepository
	sessions       SessionTokens
	services       *claim.Services
	clock          clock.Clock
	ttl            time.Duration
	sweepBatchSize int
}

func NewClaimCommands(
	uow shared.UnitOfWork,
	claimRepo shared.ClaimRepository,
	sessions SessionTokens,
	services *claim.Services,
	clk clock.Clock,
	ttl time.Duration,
	sweepBatchSize int,
) ClaimCommands {
	return &claimCommandsImpl{
		uow:            uow,
		claimRepo:      claimRepo,
		sessions:       sessions,
		services:       services,
		clock:          clk,
		ttl:            ttl,
		sweepBatchSize: sweepBatchSize,
	}
}

// CreateClaim admits a new reservation against the order's remaining amount.
// The availability check and the insert run as one serializable unit under
// the order row lock: two concurrent callers can never both succeed when
// their combined amount exceeds what is left.
func (c *claimCommandsImpl) CreateClaim(
	ctx context.Context,
	orderID uuid.UUID,
	amountCents int64,
	sessionToken *string,
) (*CreateClaimResult, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	token, tokenID, err := c.resolveSession(sessionToken)
	if err != nil {
		return nil, err
	}

	var created *claim.Claim
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if order.Status(ord.Status).IsClosed() {
			return ErrOrderClosed
		}

		now := c.clock.Now()
		released, err := tx.Claims().ExpireStale(ctx, tx.DB(), orderID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if released > 0 {
			if err := tx.Orders().ReleaseClaimed(ctx, tx.DB(), orderID, released); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			ord.TotalClaimedCents -= released
		}

		if amountCents > ord.AvailableAmountCents() {
			return &InsufficientAmountError{
				AvailableAmountCents: ord.AvailableAmountCents(),
				TotalAmountCents:     ord.TotalAmountCents,
				TotalClaimedCents:    ord.TotalClaimedCents,
			}
		}

		entity, err := claim.NewClaim(c.services, orderID, amountCents, tokenID, c.ttl)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Claims().Create(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Orders().AddClaimed(ctx, tx.DB(), orderID, amountCents); err != nil {
			// The guarded update is the backstop for the check above; a
			// conflict here means another writer won the race.
			if infra.IsKind(err, infra.KindConflict) {
				return &InsufficientAmountError{
					AvailableAmountCents: ord.AvailableAmountCents(),
					TotalAmountCents:     ord.TotalAmountCents,
					TotalClaimedCents:    ord.TotalClaimedCents,
				}
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// First active claim locks the order for payment.
		if order.Status(ord.Status) == order.StatusOrdering {
			if err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, order.StatusPaymentStarted.String()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateClaimResult{
		Claim:        claimViewFromEntity(created),
		SessionToken: token,
	}, nil
}

func (c *claimCommandsImpl) StartPayment(ctx context.Context, claimID uuid.UUID, sessionToken string) (*queries.ClaimView, error) {
	tokenID, err := c.sessions.Validate(sessionToken)
	if err != nil {
		return nil, ErrInvalidSessionToken
	}

	var view *queries.ClaimView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.lockClaim(ctx, tx, claimID)
		if err != nil {
			return err
		}
		if snap.SessionTokenID != tokenID {
			// Do not reveal foreign claims to other sessions.
			return ErrClaimNotFound
		}

		now := c.clock.Now()
		if claim.Status(snap.Status) == claim.StatusProcessing {
			view = claimViewFromSnapshot(snap)
			return nil
		}
		if claim.Status(snap.Status) != claim.StatusReserved {
			return ErrClaimNotProcessable
		}
		if now.After(snap.ExpiresAt) {
			// Lapsed while the payment UI was idle: reclaim it right away.
			if err := c.expireAndRelease(ctx, tx, snap, now); err != nil {
				return err
			}
			return ErrClaimExpired
		}

		if err := tx.Claims().SetProcessing(ctx, tx.DB(), claimID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		snap.Status = claim.StatusProcessing.String()
		view = claimViewFromSnapshot(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *claimCommandsImpl) CancelClaim(ctx context.Context, claimID uuid.UUID, sessionToken string) (*queries.ClaimView, error) {
	tokenID, err := c.sessions.Validate(sessionToken)
	if err != nil {
		return nil, ErrInvalidSessionToken
	}

	var view *queries.ClaimView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.lockClaim(ctx, tx, claimID)
		if err != nil {
			return err
		}
		if snap.SessionTokenID != tokenID {
			return ErrClaimNotFound
		}
		if !claim.Status(snap.Status).IsActive() {
			return ErrClaimNotCancellable
		}

		now := c.clock.Now()
		if err := tx.Claims().SetCancelled(ctx, tx.DB(), claimID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Orders().ReleaseClaimed(ctx, tx.DB(), snap.OrderID, snap.ClaimedAmountCents); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		snap.Status = claim.StatusCancelled.String()
		view = claimViewFromSnapshot(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ApplyPaymentOutcome handles the processor's asynchronous notification. It
// is idempotent: redeliveries are absorbed via the processor_ref dedup
// insert, and a late notification for a terminal claim (e.g. a success
// racing a cancel) is a no-op.
func (c *claimCommandsImpl) ApplyPaymentOutcome(
	ctx context.Context,
	claimID uuid.UUID,
	outcome claim.Outcome,
	processorRef string,
) error {
	if !outcome.IsValid() {
		return ErrInvalidOutcome
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		if processorRef != "" {
			err := tx.ProcessorEvents().TryInsert(ctx, tx.DB(), processorRef, claimID, string(outcome), now)
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					slog.Debug("duplicate payment notification absorbed",
						"claim_id", claimID, "processor_ref", processorRef)
					return nil
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		snap, err := c.lockClaim(ctx, tx, claimID)
		if err != nil {
			return err
		}
		if claim.Status(snap.Status).IsTerminal() {
			slog.Debug("payment notification for terminal claim ignored",
				"claim_id", claimID, "status", snap.Status)
			return nil
		}

		switch outcome {
		case claim.OutcomeSucceeded:
			return c.settleClaim(ctx, tx, snap, now, processorRef)
		case claim.OutcomeFailed:
			// Back to reclaimable so the same diner can retry immediately.
			return c.expireAndRelease(ctx, tx, snap, now)
		}
		return ErrInvalidOutcome
	})
}

func (c *claimCommandsImpl) settleClaim(
	ctx context.Context,
	tx shared.Tx,
	snap *shared.ClaimSnapshot,
	now time.Time,
	processorRef string,
) error {
	if err := tx.Claims().SetPaid(ctx, tx.DB(), snap.ID, now, processorRef); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Orders().SettleClaimed(ctx, tx.DB(), snap.OrderID, snap.ClaimedAmountCents); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ord, err := tx.Orders().FindForUpdate(ctx, tx.DB(), snap.OrderID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	next := order.DeriveStatus(order.Status(ord.Status), ord.TotalAmountCents, ord.TotalPaidCents)
	if next != order.Status(ord.Status) {
		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), snap.OrderID, next.String()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if next == order.StatusPaid {
		// Fully settled: release the table and send the receipt out of band.
		if err := c.enqueueOrderPaidJobs(ctx, tx, ord, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *claimCommandsImpl) expireAndRelease(
	ctx context.Context,
	tx shared.Tx,
	snap *shared.ClaimSnapshot,
	now time.Time,
) error {
	if err := tx.Claims().SetExpired(ctx, tx.DB(), snap.ID, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Orders().ReleaseClaimed(ctx, tx.DB(), snap.OrderID, snap.ClaimedAmountCents); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// SweepExpiredClaims is the periodic tidy-up; it reuses the exact expiry
// statement the lazy path runs, per order, under the order row lock.
func (c *claimCommandsImpl) SweepExpiredClaims(ctx context.Context) (int, error) {
	now := c.clock.Now()

	var orderIDs []uuid.UUID
	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		orderIDs, err = c.staleOrders(ctx, dbtx, now)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	swept := 0
	for _, orderID := range orderIDs {
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID); err != nil {
				return err
			}
			released, err := tx.Claims().ExpireStale(ctx, tx.DB(), orderID, now)
			if err != nil {
				return err
			}
			if released > 0 {
				return tx.Orders().ReleaseClaimed(ctx, tx.DB(), orderID, released)
			}
			return nil
		})
		if err != nil {
			slog.Warn("failed to sweep expired claims for order",
				"order_id", orderID, "error", err.Error())
			continue
		}
		swept++
	}
	return swept, nil
}

func (c *claimCommandsImpl) resolveSession(sessionToken *string) (token, tokenID string, err error) {
	if sessionToken != nil && *sessionToken != "" {
		tokenID, err = c.sessions.Validate(*sessionToken)
		if err != nil {
			return "", "", ErrInvalidSessionToken
		}
		return *sessionToken, tokenID, nil
	}
	token, tokenID, err = c.sessions.Issue(c.clock.Now())
	if err != nil {
		return "", "", errs.Wrap(err, "failed to issue session token")
	}
	return token, tokenID, nil
}

// lockClaim locks the order row before re-reading the claim so every
// mutation of one order's counters is linearized through the same lock.
func (c *claimCommandsImpl) lockClaim(ctx context.Context, tx shared.Tx, claimID uuid.UUID) (*shared.ClaimSnapshot, error) {
	peek, err := tx.Claims().Find(ctx, tx.DB(), claimID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := tx.Orders().FindForUpdate(ctx, tx.DB(), peek.OrderID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snap, err := tx.Claims().FindForUpdate(ctx, tx.DB(), claimID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *claimCommandsImpl) staleOrders(ctx context.Context, dbtx db.DBTX, now time.Time) ([]uuid.UUID, error) {
	// Batch size bounds one sweep; leftovers are picked up next tick.
	return c.claimRepo.OrdersWithStaleClaims(ctx, dbtx, now, c.sweepBatchSize)
}

func (c *claimCommandsImpl) enqueueOrderPaidJobs(ctx context.Context, tx shared.Tx, ord *shared.OrderSnapshot, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"order_id":         ord.ID,
		"total_paid_cents": ord.TotalPaidCents,
		"type":             "order_paid",
	})
	if err != nil {
		return err
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "table", "order_paid", payload, now); err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "receipt", payload, now)
}

func claimViewFromEntity(c *claim.Claim) *queries.ClaimView {
	return &queries.ClaimView{
		ID:                 c.ID(),
		OrderID:            c.OrderID(),
		ClaimedAmountCents: c.ClaimedAmountCents(),
		FeePortionCents:    c.FeePortionCents(),
		TotalToPayCents:    c.TotalToPayCents(),
		Status:             c.Status().String(),
		ExpiresAt:          c.ExpiresAt(),
		PaidAt:             c.PaidAt(),
		CreatedAt:          c.CreatedAt(),
	}
}

func claimViewFromSnapshot(s *shared.ClaimSnapshot) *queries.ClaimView {
	return &queries.ClaimView{
		ID:                 s.ID,
		OrderID:            s.OrderID,
		ClaimedAmountCents: s.ClaimedAmountCents,
		FeePortionCents:    s.FeePortionCents,
		TotalToPayCents:    s.TotalToPayCents(),
		Status:             s.Status,
		ExpiresAt:          s.ExpiresAt,
		PaidAt:             s.PaidAt,
		CreatedAt:          s.CreatedAt,
	}
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"splitpay/internal/domain/claim"
	"splitpay/internal/domain/order"
	"splitpay/internal/infra"
	"splitpay/internal/infra/db"
	"splitpay/internal/pkg/clock"
	"splitpay/internal/usecase/commands"
	"splitpay/internal/usecase/shared"
	"splitpay/tests/common/builder"
	sharedmock "splitpay/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeTx hands the mocked repositories to the use case without a real
// transaction; the locking semantics under test live in the call order.
type fakeTx struct {
	orders        *sharedmock.MockOrderRepository
	claims        *sharedmock.MockClaimRepository
	events        *sharedmock.MockProcessorEventRepository
	notifications *sharedmock.MockNotificationRepository
}

func (t *fakeTx) Orders() shared.OrderRepository                   { return t.orders }
func (t *fakeTx) Claims() shared.ClaimRepository                   { return t.claims }
func (t *fakeTx) ProcessorEvents() shared.ProcessorEventRepository { return t.events }
func (t *fakeTx) Notifications() shared.NotificationRepository     { return t.notifications }
func (t *fakeTx) DB() db.DBTX                                      { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type stubSessions struct {
	issuedToken string
	issuedID    string
	validID     string
	validateErr error
}

func (s *stubSessions) Issue(_ time.Time) (string, string, error) {
	return s.issuedToken, s.issuedID, nil
}

func (s *stubSessions) Validate(_ string) (string, error) {
	if s.validateErr != nil {
		return "", s.validateErr
	}
	return s.validID, nil
}

type ClaimCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	orders        *sharedmock.MockOrderRepository
	claims        *sharedmock.MockClaimRepository
	events        *sharedmock.MockProcessorEventRepository
	notifications *sharedmock.MockNotificationRepository
	sessions      *stubSessions
	clock         *clock.MockClock
	now           time.Time
	commands      commands.ClaimCommands
}

func (s *ClaimCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.claims = sharedmock.NewMockClaimRepository(s.ctrl)
	s.events = sharedmock.NewMockProcessorEventRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.sessions = &stubSessions{
		issuedToken: "minted-token",
		issuedID:    "minted-session",
		validID:     "session-1",
	}
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)

	uow := &fakeUoW{tx: &fakeTx{
		orders:        s.orders,
		claims:        s.claims,
		events:        s.events,
		notifications: s.notifications,
	}}
	services := &claim.Services{
		Clock:         s.clock,
		FeeCalculator: claim.NewFixedPercentFeeCalculator(4.0),
	}
	s.commands = commands.NewClaimCommands(uow, s.claims, s.sessions, services, s.clock, 5*time.Minute, 100)
}

func (s *ClaimCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestClaimCommandsSuite(t *testing.T) {
	suite.Run(t, new(ClaimCommandsTestSuite))
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func conflictErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}

// ================================================================================
// CreateClaim
// ================================================================================

func (s *ClaimCommandsTestSuite) TestCreateClaim() {
	ctx := context.Background()

	s.Run("success mints a session and admits the claim", func() {
		ord := builder.NewOrderBuilder().WithTotalAmountCents(10000).BuildSnapshot()

		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), ord.ID).Return(ord, nil)
		s.claims.EXPECT().ExpireStale(gomock.Any(), gomock.Any(), ord.ID, s.now).Return(int64(0), nil)
		s.claims.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.orders.EXPECT().AddClaimed(gomock.Any(), gomock.Any(), ord.ID, int64(2500)).Return(nil)
		s.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), ord.ID, order.StatusPaymentStarted.String()).Return(nil)

		result, err := s.commands.CreateClaim(ctx, ord.ID, 2500, nil)
		s.Require().NoError(err)
		s.Require().NotNil(result)

		s.Equal("minted-token", result.SessionToken)
		s.Equal(int64(2500), result.Claim.ClaimedAmountCents)
		s.Equal(int64(100), result.Claim.FeePortionCents)
		s.Equal(int64(2600), result.Claim.TotalToPayCents)
		s.Equal(claim.StatusReserved.String(), result.Claim.Status)
		s.Equal(s.now.Add(5*time.Minute), result.Claim.ExpiresAt)
	})

	s.Run("existing session is reused, ordering already left", func() {
		ord := builder.NewOrderBuilder().
			WithTotalAmountCents(10000).
			WithTotalClaimedCents(2000).
			AsPaymentStarted().
			BuildSnapshot()
		token := "existing-token"

		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), ord.ID).Return(ord, nil)
		s.claims.EXPECT().ExpireStale(gomock.Any(), gomock.Any(), ord.ID, s.now).Return(int64(0), nil)
		s.claims.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.orders.EXPECT().AddClaimed(gomock.Any(), gomock.Any(), ord.ID, int64(1000)).Return(nil)

		result, err := s.commands.CreateClaim(ctx, ord.ID, 1000, &token)
		s.Require().NoError(err)
		s.Equal(token, result.SessionToken)
	})

	s.Run("insufficient amount reports availability figures", func() {
		ord := builder.NewOrderBuilder().
			WithTotalAmountCents(10000).
			WithTotalClaimedCents(8000).
			AsPaymentStarted().
			BuildSnapshot()

		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), ord.ID).Return(ord, nil)
		s.claims.EXPECT().ExpireStale(gomock.Any(), gomock.Any(), ord.ID, s.now).Return(int64(0), nil)

		_, err := s.commands.CreateClaim(ctx, ord.ID, 3000, nil)
		s.Require().Error(err)

		var insufficient *commands.InsufficientAmountError
		s.Require().ErrorAs(err, &insufficient)
		s.Equal(int64(2000), insufficient.AvailableAmountCents)
		s.Equal(int64(10000), insufficient.TotalAmountCents)
		s.Equal(int64(8000), insufficient.TotalClaimedCents)
	})

	s.Run("lazy expiry frees capacity before the check", func() {
		ord := builder.NewOrderBuilder().
			WithTotalAmountCents(10000).
			WithTotalClaimedCents(9000).
			AsPaymentStarted().
			BuildSnapshot()

		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), ord.ID).Return(ord, nil)
		s.claims.EXPECT().ExpireStale(gomock.Any(), gomock.Any(), ord.ID, s.now).Return(int64(4000), nil)
		s.orders.EXPECT().ReleaseClaimed(gomock.Any(), gomock.Any(), ord.ID, int64(4000)).Return(nil)
		s.claims.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.orders.EXPECT().AddClaimed(gomock.Any(), gomock.Any(), ord.ID, int64(3000)).Return(nil)

		_, err := s.commands.CreateClaim(ctx, ord.ID, 3000, nil)
		s.Require().NoError(err)
	})

	s.Run("closed order rejects new claims", func() {
		for _, b := range []*builder.OrderBuilder{
			builder.NewOrderBuilder().AsPaid(),
			builder.NewOrderBuilder().AsCancelled(),
		} {
			ord := b.BuildSnapshot()
			s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), ord.ID).Return(ord, nil)

			_, err := s.commands.CreateClaim(ctx, ord.ID, 100, nil)
			s.Require().ErrorIs(err, commands.ErrOrderClosed)
		}
	})

	s.Run("unknown order", func() {
		orderID := uuid.New()
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), orderID).
			Return(nil, notFoundErr("order not found"))

		_, err := s.commands.CreateClaim(ctx, orderID, 100, nil)
		s.Require().ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("non-positive amount", func() {
		_, err := s.commands.CreateClaim(ctx, uuid.New(), 0, nil)
		s.Require().ErrorIs(err, commands.ErrInvalidAmount)
	})

	s.Run("guarded update losing the race maps to insufficient", func() {
		ord := builder.NewOrderBuilder().WithTotalAmountCents(10000).AsPaymentStarted().BuildSnapshot()

		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), ord.ID).Return(ord, nil)
		s.claims.EXPECT().ExpireStale(gomock.Any(), gomock.Any(), ord.ID, s.now).Return(int64(0), nil)
		s.claims.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.orders.EXPECT().AddClaimed(gomock.Any(), gomock.Any(), ord.ID, int64(5000)).
			Return(conflictErr("claimed amount would exceed order total"))

		_, err := s.commands.CreateClaim(ctx, ord.ID, 5000, nil)

		var insufficient *commands.InsufficientAmountError
		s.Require().ErrorAs(err, &insufficient)
	})
}

// ================================================================================
// StartPayment
// ================================================================================

func (s *ClaimCommandsTestSuite) expectLockClaim(snap *shared.ClaimSnapshot) {
	s.claims.EXPECT().Find(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
	s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.OrderID).
		Return(builder.NewOrderBuilder().WithID(snap.OrderID).AsPaymentStarted().BuildSnapshot(), nil)
	s.claims.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
}

func (s *ClaimCommandsTestSuite) TestStartPayment() {
	ctx := context.Background()

	s.Run("reserved claim moves to processing", func() {
		snap := builder.NewClaimBuilder().
			WithSessionTokenID("session-1").
			WithExpiresAt(s.now.Add(time.Minute)).
			BuildSnapshot()

		s.expectLockClaim(snap)
		s.claims.EXPECT().SetProcessing(gomock.Any(), gomock.Any(), snap.ID, s.now).Return(nil)

		view, err := s.commands.StartPayment(ctx, snap.ID, "token")
		s.Require().NoError(err)
		s.Equal(claim.StatusProcessing.String(), view.Status)
	})

	s.Run("already processing is idempotent", func() {
		snap := builder.NewClaimBuilder().
			WithSessionTokenID("session-1").
			WithExpiresAt(s.now.Add(time.Minute)).
			AsProcessing().
			BuildSnapshot()

		s.expectLockClaim(snap)

		view, err := s.commands.StartPayment(ctx, snap.ID, "token")
		s.Require().NoError(err)
		s.Equal(claim.StatusProcessing.String(), view.Status)
	})

	s.Run("foreign session reads as not found", func() {
		snap := builder.NewClaimBuilder().
			WithSessionTokenID("someone-else").
			WithExpiresAt(s.now.Add(time.Minute)).
			BuildSnapshot()

		s.expectLockClaim(snap)

		_, err := s.commands.StartPayment(ctx, snap.ID, "token")
		s.Require().ErrorIs(err, commands.ErrClaimNotFound)
	})

	s.Run("lapsed claim is expired and released on touch", func() {
		snap := builder.NewClaimBuilder().
			WithSessionTokenID("session-1").
			WithClaimedAmountCents(2500).
			WithExpiresAt(s.now.Add(-time.Second)).
			BuildSnapshot()

		s.expectLockClaim(snap)
		s.claims.EXPECT().SetExpired(gomock.Any(), gomock.Any(), snap.ID, s.now).Return(nil)
		s.orders.EXPECT().ReleaseClaimed(gomock.Any(), gomock.Any(), snap.OrderID, int64(2500)).Return(nil)

		_, err := s.commands.StartPayment(ctx, snap.ID, "token")
		s.Require().ErrorIs(err, commands.ErrClaimExpired)
	})

	s.Run("invalid session token", func() {
		s.sessions.validateErr = commands.ErrInvalidSessionToken

		_, err := s.commands.StartPayment(ctx, uuid.New(), "bad-token")
		s.Require().ErrorIs(err, commands.ErrInvalidSessionToken)

		s.sessions.validateErr = nil
	})
}

// ================================================================================
// CancelClaim
// ================================================================================

func (s *ClaimCommandsTestSuite) TestCancelClaim() {
	ctx := context.Background()

	s.Run("active claim is cancelled and its amount released", func() {
		snap := builder.NewClaimBuilder().
			WithSessionTokenID("session-1").
			WithClaimedAmountCents(2500).
			WithExpiresAt(s.now.Add(time.Minute)).
			BuildSnapshot()

		s.expectLockClaim(snap)
		s.claims.EXPECT().SetCancelled(gomock.Any(), gomock.Any(), snap.ID, s.now).Return(nil)
		s.orders.EXPECT().ReleaseClaimed(gomock.Any(), gomock.Any(), snap.OrderID, int64(2500)).Return(nil)

		view, err := s.commands.CancelClaim(ctx, snap.ID, "token")
		s.Require().NoError(err)
		s.Equal(claim.StatusCancelled.String(), view.Status)
	})

	s.Run("terminal claim is not cancellable", func() {
		for _, status := range []claim.Status{claim.StatusPaid, claim.StatusExpired, claim.StatusCancelled} {
			snap := builder.NewClaimBuilder().
				WithSessionTokenID("session-1").
				WithStatus(status).
				BuildSnapshot()

			s.expectLockClaim(snap)

			_, err := s.commands.CancelClaim(ctx, snap.ID, "token")
			s.Require().ErrorIs(err, commands.ErrClaimNotCancellable)
		}
	})

	s.Run("unknown claim", func() {
		claimID := uuid.New()
		s.claims.EXPECT().Find(gomock.Any(), gomock.Any(), claimID).
			Return(nil, notFoundErr("claim not found"))

		_, err := s.commands.CancelClaim(ctx, claimID, "token")
		s.Require().ErrorIs(err, commands.ErrClaimNotFound)
	})
}

// ================================================================================
// ApplyPaymentOutcome
// ================================================================================

func (s *ClaimCommandsTestSuite) TestApplyPaymentOutcome() {
	ctx := context.Background()

	s.Run("success settles the claim and updates the order status", func() {
		snap := builder.NewClaimBuilder().
			WithClaimedAmountCents(2500).
			AsProcessing().
			BuildSnapshot()

		s.events.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "proc-1", snap.ID, "succeeded", s.now).Return(nil)
		s.expectLockClaim(snap)
		s.claims.EXPECT().SetPaid(gomock.Any(), gomock.Any(), snap.ID, s.now, "proc-1").Return(nil)
		s.orders.EXPECT().SettleClaimed(gomock.Any(), gomock.Any(), snap.OrderID, int64(2500)).Return(nil)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.OrderID).
			Return(builder.NewOrderBuilder().
				WithID(snap.OrderID).
				WithTotalAmountCents(10000).
				WithTotalPaidCents(2500).
				AsPaymentStarted().
				BuildSnapshot(), nil)
		s.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.OrderID, order.StatusPartiallyPaid.String()).Return(nil)

		err := s.commands.ApplyPaymentOutcome(ctx, snap.ID, claim.OutcomeSucceeded, "proc-1")
		s.Require().NoError(err)
	})

	s.Run("last settlement closes the order and enqueues notifications", func() {
		snap := builder.NewClaimBuilder().
			WithClaimedAmountCents(2500).
			AsProcessing().
			BuildSnapshot()

		s.events.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "proc-2", snap.ID, "succeeded", s.now).Return(nil)
		s.expectLockClaim(snap)
		s.claims.EXPECT().SetPaid(gomock.Any(), gomock.Any(), snap.ID, s.now, "proc-2").Return(nil)
		s.orders.EXPECT().SettleClaimed(gomock.Any(), gomock.Any(), snap.OrderID, int64(2500)).Return(nil)
		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), snap.OrderID).
			Return(builder.NewOrderBuilder().
				WithID(snap.OrderID).
				WithTotalAmountCents(10000).
				WithTotalPaidCents(10000).
				AsPaymentStarted().
				BuildSnapshot(), nil)
		s.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.OrderID, order.StatusPaid.String()).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "table", "order_paid", gomock.Any(), s.now).Return(nil)
		s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "receipt", gomock.Any(), s.now).Return(nil)

		err := s.commands.ApplyPaymentOutcome(ctx, snap.ID, claim.OutcomeSucceeded, "proc-2")
		s.Require().NoError(err)
	})

	s.Run("redelivered notification is absorbed", func() {
		claimID := uuid.New()
		s.events.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "proc-1", claimID, "succeeded", s.now).
			Return(infra.WrapRepoErr("processor event already recorded", nil, infra.KindDuplicateKey))

		err := s.commands.ApplyPaymentOutcome(ctx, claimID, claim.OutcomeSucceeded, "proc-1")
		s.Require().NoError(err)
	})

	s.Run("late success for a terminal claim is a no-op", func() {
		snap := builder.NewClaimBuilder().
			WithStatus(claim.StatusCancelled).
			BuildSnapshot()

		s.events.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "proc-3", snap.ID, "succeeded", s.now).Return(nil)
		s.expectLockClaim(snap)

		err := s.commands.ApplyPaymentOutcome(ctx, snap.ID, claim.OutcomeSucceeded, "proc-3")
		s.Require().NoError(err)
	})

	s.Run("failure expires the claim so it can be reclaimed", func() {
		snap := builder.NewClaimBuilder().
			WithClaimedAmountCents(2500).
			AsProcessing().
			BuildSnapshot()

		s.events.EXPECT().TryInsert(gomock.Any(), gomock.Any(), "proc-4", snap.ID, "failed", s.now).Return(nil)
		s.expectLockClaim(snap)
		s.claims.EXPECT().SetExpired(gomock.Any(), gomock.Any(), snap.ID, s.now).Return(nil)
		s.orders.EXPECT().ReleaseClaimed(gomock.Any(), gomock.Any(), snap.OrderID, int64(2500)).Return(nil)

		err := s.commands.ApplyPaymentOutcome(ctx, snap.ID, claim.OutcomeFailed, "proc-4")
		s.Require().NoError(err)
	})

	s.Run("invalid outcome", func() {
		err := s.commands.ApplyPaymentOutcome(ctx, uuid.New(), claim.Outcome("refunded"), "proc-5")
		s.Require().ErrorIs(err, commands.ErrInvalidOutcome)
	})
}

// ================================================================================
// SweepExpiredClaims
// ================================================================================

func (s *ClaimCommandsTestSuite) TestSweepExpiredClaims() {
	ctx := context.Background()

	s.Run("sweeps each order with stale claims under its own lock", func() {
		orderA := uuid.New()
		orderB := uuid.New()

		s.claims.EXPECT().OrdersWithStaleClaims(gomock.Any(), gomock.Any(), s.now, 100).
			Return([]uuid.UUID{orderA, orderB}, nil)

		for _, orderID := range []uuid.UUID{orderA, orderB} {
			s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), orderID).
				Return(builder.NewOrderBuilder().WithID(orderID).AsPaymentStarted().BuildSnapshot(), nil)
			s.claims.EXPECT().ExpireStale(gomock.Any(), gomock.Any(), orderID, s.now).Return(int64(1500), nil)
			s.orders.EXPECT().ReleaseClaimed(gomock.Any(), gomock.Any(), orderID, int64(1500)).Return(nil)
		}

		swept, err := s.commands.SweepExpiredClaims(ctx)
		s.Require().NoError(err)
		s.Equal(2, swept)
	})

	s.Run("a failing order does not stop the sweep", func() {
		orderA := uuid.New()
		orderB := uuid.New()

		s.claims.EXPECT().OrdersWithStaleClaims(gomock.Any(), gomock.Any(), s.now, 100).
			Return([]uuid.UUID{orderA, orderB}, nil)

		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), orderA).
			Return(nil, notFoundErr("order not found"))

		s.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), orderB).
			Return(builder.NewOrderBuilder().WithID(orderB).AsPaymentStarted().BuildSnapshot(), nil)
		s.claims.EXPECT().ExpireStale(gomock.Any(), gomock.Any(), orderB, s.now).Return(int64(0), nil)

		swept, err := s.commands.SweepExpiredClaims(ctx)
		s.Require().NoError(err)
		s.Equal(1, swept)
	})

	s.Run("nothing stale", func() {
		s.claims.EXPECT().OrdersWithStaleClaims(gomock.Any(), gomock.Any(), s.now, 100).
			Return(nil, nil)

		swept, err := s.commands.SweepExpiredClaims(ctx)
		s.Require().NoError(err)
		s.Equal(0, swept)
	})
}

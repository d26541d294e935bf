//go:build unit

package claim_test

import (
	"testing"
	"time"

	"splitpay/internal/domain/claim"
	"splitpay/internal/pkg/clock"
	"splitpay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(now time.Time, feePercent float64) *claim.Services {
	return &claim.Services{
		Clock:         clock.NewMockClock(now),
		FeeCalculator: claim.NewFixedPercentFeeCalculator(feePercent),
	}
}

func TestNewClaim(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 5 * time.Minute

	t.Run("basic success case", func(t *testing.T) {
		services := newServices(now, 4.0)
		orderID := uuid.New()

		actual, err := claim.NewClaim(services, orderID, 2500, "session-1", ttl)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, orderID, actual.OrderID())
		assert.Equal(t, int64(2500), actual.ClaimedAmountCents())
		assert.Equal(t, int64(100), actual.FeePortionCents())
		assert.Equal(t, int64(2600), actual.TotalToPayCents())
		assert.Equal(t, claim.StatusReserved, actual.Status())
		assert.Equal(t, now.Add(ttl), actual.ExpiresAt())
		assert.True(t, actual.IsOwnedBy("session-1"))
		assert.False(t, actual.IsOwnedBy("session-2"))
	})

	t.Run("amount validation", func(t *testing.T) {
		services := newServices(now, 4.0)

		for _, amount := range []int64{0, -1, -2500} {
			actual, err := claim.NewClaim(services, uuid.New(), amount, "session-1", ttl)
			require.Nil(t, actual)
			require.ErrorIs(t, err, claim.ErrInvalidAmount)
		}
	})

	t.Run("fee rounding", func(t *testing.T) {
		cases := []struct {
			percent  float64
			amount   int64
			expected int64
		}{
			{4.0, 2500, 100},
			{4.0, 1, 0},    // 0.04 rounds down
			{4.0, 13, 1},   // 0.52 rounds up
			{4.0, 9999, 400},
			{0.0, 2500, 0},
		}
		for _, c := range cases {
			services := newServices(now, c.percent)
			actual, err := claim.NewClaim(services, uuid.New(), c.amount, "session-1", ttl)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual.FeePortionCents(),
				"percent=%v amount=%d", c.percent, c.amount)
		}
	})
}

func TestClaimTransitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("start processing from reserved", func(t *testing.T) {
		c := builder.NewClaimBuilder().WithExpiresAt(now.Add(time.Minute)).BuildDomain()

		require.NoError(t, c.StartProcessing(now))
		assert.Equal(t, claim.StatusProcessing, c.Status())
	})

	t.Run("start processing twice is a no-op", func(t *testing.T) {
		c := builder.NewClaimBuilder().WithExpiresAt(now.Add(time.Minute)).BuildDomain()

		require.NoError(t, c.StartProcessing(now))
		require.NoError(t, c.StartProcessing(now.Add(time.Second)))
		assert.Equal(t, claim.StatusProcessing, c.Status())
	})

	t.Run("start processing after expiry", func(t *testing.T) {
		c := builder.NewClaimBuilder().WithExpiresAt(now.Add(-time.Second)).BuildDomain()

		require.ErrorIs(t, c.StartProcessing(now), claim.ErrClaimExpired)
		assert.Equal(t, claim.StatusReserved, c.Status())
	})

	t.Run("start processing from terminal states", func(t *testing.T) {
		for _, status := range []claim.Status{claim.StatusPaid, claim.StatusExpired, claim.StatusCancelled} {
			c := builder.NewClaimBuilder().WithStatus(status).BuildDomain()
			require.ErrorIs(t, c.StartProcessing(now), claim.ErrNotProcessable)
		}
	})

	t.Run("mark paid", func(t *testing.T) {
		c := builder.NewClaimBuilder().AsProcessing().BuildDomain()

		require.NoError(t, c.MarkPaid(now, "proc-ref-1"))
		assert.Equal(t, claim.StatusPaid, c.Status())
		require.NotNil(t, c.PaidAt())
		assert.Equal(t, now, *c.PaidAt())
		require.NotNil(t, c.ProcessorRef())
		assert.Equal(t, "proc-ref-1", *c.ProcessorRef())
	})

	t.Run("mark paid on terminal claim", func(t *testing.T) {
		c := builder.NewClaimBuilder().WithStatus(claim.StatusCancelled).BuildDomain()
		require.ErrorIs(t, c.MarkPaid(now, "proc-ref-1"), claim.ErrAlreadyTerminal)
	})

	t.Run("cancel active claim", func(t *testing.T) {
		for _, status := range []claim.Status{claim.StatusReserved, claim.StatusProcessing} {
			c := builder.NewClaimBuilder().WithStatus(status).BuildDomain()
			require.NoError(t, c.Cancel(now))
			assert.Equal(t, claim.StatusCancelled, c.Status())
		}
	})

	t.Run("cancel terminal claim", func(t *testing.T) {
		for _, status := range []claim.Status{claim.StatusPaid, claim.StatusExpired, claim.StatusCancelled} {
			c := builder.NewClaimBuilder().WithStatus(status).BuildDomain()
			require.ErrorIs(t, c.Cancel(now), claim.ErrNotCancellable)
		}
	})

	t.Run("expire terminal claim", func(t *testing.T) {
		c := builder.NewClaimBuilder().WithStatus(claim.StatusPaid).BuildDomain()
		require.ErrorIs(t, c.Expire(now), claim.ErrAlreadyTerminal)
	})
}

func TestHasExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("active claim past its deadline", func(t *testing.T) {
		c := builder.NewClaimBuilder().WithExpiresAt(now.Add(-time.Second)).BuildDomain()
		assert.True(t, c.HasExpired(now))
	})

	t.Run("active claim within its deadline", func(t *testing.T) {
		c := builder.NewClaimBuilder().WithExpiresAt(now.Add(time.Second)).BuildDomain()
		assert.False(t, c.HasExpired(now))
	})

	t.Run("terminal claim never reads as expired", func(t *testing.T) {
		c := builder.NewClaimBuilder().
			WithStatus(claim.StatusPaid).
			WithExpiresAt(now.Add(-time.Hour)).
			BuildDomain()
		assert.False(t, c.HasExpired(now))
	})
}

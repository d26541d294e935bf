//go:build unit

package order_test

import (
	"testing"

	"splitpay/internal/domain/order"
	"splitpay/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableAmountCents(t *testing.T) {
	o := builder.NewOrderBuilder().
		WithTotalAmountCents(10000).
		WithTotalClaimedCents(3000).
		WithTotalPaidCents(2000).
		BuildDomain()

	assert.Equal(t, int64(5000), o.AvailableAmountCents())
}

func TestCanAdmit(t *testing.T) {
	t.Run("admits up to the available amount", func(t *testing.T) {
		o := builder.NewOrderBuilder().
			WithTotalAmountCents(10000).
			WithTotalClaimedCents(4000).
			BuildDomain()

		require.NoError(t, o.CanAdmit(6000))
		require.ErrorIs(t, o.CanAdmit(6001), order.ErrOvercommitted)
	})

	t.Run("closed orders admit nothing", func(t *testing.T) {
		for _, b := range []*builder.OrderBuilder{
			builder.NewOrderBuilder().AsPaid(),
			builder.NewOrderBuilder().AsCancelled(),
		} {
			o := b.BuildDomain()
			require.ErrorIs(t, o.CanAdmit(1), order.ErrOrderClosed)
		}
	})
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name      string
		current   order.Status
		total     int64
		totalPaid int64
		expected  order.Status
	}{
		{"ordering stays until a claim exists", order.StatusOrdering, 10000, 0, order.StatusOrdering},
		{"payment_started with nothing paid", order.StatusPaymentStarted, 10000, 0, order.StatusPaymentStarted},
		{"first settlement moves to partially_paid", order.StatusPaymentStarted, 10000, 2500, order.StatusPartiallyPaid},
		{"full settlement moves to paid", order.StatusPartiallyPaid, 10000, 10000, order.StatusPaid},
		{"settlement directly from payment_started to paid", order.StatusPaymentStarted, 10000, 10000, order.StatusPaid},
		{"paid is terminal", order.StatusPaid, 10000, 10000, order.StatusPaid},
		{"cancelled is terminal", order.StatusCancelled, 10000, 0, order.StatusCancelled},
		{"partially_paid never reverts", order.StatusPartiallyPaid, 10000, 2500, order.StatusPartiallyPaid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := order.DeriveStatus(c.current, c.total, c.totalPaid)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestStatusIsClosed(t *testing.T) {
	assert.True(t, order.StatusPaid.IsClosed())
	assert.True(t, order.StatusCancelled.IsClosed())
	assert.False(t, order.StatusOrdering.IsClosed())
	assert.False(t, order.StatusPaymentStarted.IsClosed())
	assert.False(t, order.StatusPartiallyPaid.IsClosed())
}

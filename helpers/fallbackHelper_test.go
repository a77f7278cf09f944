package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackOrdersAreDeterministic(t *testing.T) {
	first := FallbackOrders()
	second := FallbackOrders()

	require.Len(t, first, 5)
	assert.Equal(t, first, second)

	// mutating one copy must not leak into the next call
	first[0].Status = UIStatusCancelled
	assert.NotEqual(t, first[0].Status, FallbackOrders()[0].Status)
}

func TestFallbackIdsAreSkippable(t *testing.T) {
	for _, order := range FallbackOrders() {
		assert.True(t, IsFallbackID(order.Order_id), order.Order_id)
	}
	for _, reservation := range FallbackReservations() {
		assert.True(t, IsFallbackID(reservation.Reservation_id), reservation.Reservation_id)
	}
	assert.False(t, IsFallbackID("663c5f2e9b1e8a0001a2b3c4"))
}

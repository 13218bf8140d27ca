package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medimanager/m/domain"
)

func paracetamol() *domain.Medicine {
	return &domain.Medicine{ID: 1, Name: "Paracetamol", Price: 2.50, Quantity: 10}
}

func ibuprofen() *domain.Medicine {
	return &domain.Medicine{ID: 2, Name: "Ibuprofen", Price: 4.00, Quantity: 8}
}

func TestAddItemCapturesUnitPrice(t *testing.T) {
	var cart Cart
	med := paracetamol()
	require.NoError(t, cart.AddItem(med, 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3), cart.Items[0].Quantity)
	assert.Equal(t, 2.50, cart.Items[0].PricePerUnit)
	assert.Equal(t, "Paracetamol", cart.Items[0].Medicine.Name)

	// Changing the medicine's price afterwards must not affect the snapshot.
	med.Price = 9.99
	assert.Equal(t, 2.50, cart.Items[0].PricePerUnit)
}

func TestAddItemRejectsMissingSelection(t *testing.T) {
	var cart Cart
	err := cart.AddItem(nil, 1)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, cart.Items)
}

func TestAddItemRejectsInvalidQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
	}{
		{"zero", 0},
		{"negative", -2},
		{"exceeds stock", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart Cart
			err := cart.AddItem(paracetamol(), tt.quantity)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Empty(t, cart.Items)
		})
	}
}

func TestAddItemAllowsFullStock(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.AddItem(paracetamol(), 10))
	assert.Len(t, cart.Items, 1)
}

func TestRemoveItem(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.AddItem(paracetamol(), 1))
	require.NoError(t, cart.AddItem(ibuprofen(), 2))

	cart.RemoveItem(0)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Ibuprofen", cart.Items[0].Medicine.Name)

	// Out-of-range positions are a no-op.
	cart.RemoveItem(5)
	cart.RemoveItem(-1)
	assert.Len(t, cart.Items, 1)
}

func TestTotal(t *testing.T) {
	var cart Cart
	assert.Equal(t, 0.0, cart.Total())

	require.NoError(t, cart.AddItem(paracetamol(), 3))
	require.NoError(t, cart.AddItem(ibuprofen(), 2))
	assert.InDelta(t, 15.50, cart.Total(), 1e-9)

	cart.RemoveItem(1)
	assert.InDelta(t, 7.50, cart.Total(), 1e-9)

	cart.RemoveItem(0)
	assert.Equal(t, 0.0, cart.Total())
	assert.True(t, cart.Empty())
}

func TestTotalTracksItemsAcrossMutations(t *testing.T) {
	var cart Cart
	meds := []*domain.Medicine{paracetamol(), ibuprofen(), {ID: 3, Name: "Aspirin", Price: 1.25, Quantity: 100}}
	for i, m := range meds {
		require.NoError(t, cart.AddItem(m, int64(i+1)))
	}
	cart.RemoveItem(1)
	require.NoError(t, cart.AddItem(meds[1], 5))

	var want float64
	for _, item := range cart.Items {
		want += float64(item.Quantity) * item.PricePerUnit
	}
	assert.Equal(t, want, cart.Total())
}

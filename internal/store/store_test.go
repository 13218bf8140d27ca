package store

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"medimanager/m/domain"
	"medimanager/m/internal/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	migrations.Run(db)
	return New(db)
}

func seedOperator(t *testing.T, s *Store, username string) int64 {
	t.Helper()
	res, err := s.db.Exec(`INSERT INTO operators (username, password) VALUES (?, ?)`, username, "hash")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestOperatorByUsername(t *testing.T) {
	s := newTestStore(t)
	id := seedOperator(t, s, "alice")

	op, err := s.OperatorByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, id, op.ID)
	assert.Equal(t, "alice", op.Username)
	assert.Equal(t, "hash", op.Password)

	_, err = s.OperatorByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartRoundTripPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	id := seedOperator(t, s, "alice")

	require.NoError(t, s.AppendCartItem(id, domain.BillItem{
		Quantity: 3, PricePerUnit: 2.5, Medicine: domain.Medicine{ID: 1, Name: "Paracetamol"},
	}))
	require.NoError(t, s.AppendCartItem(id, domain.BillItem{
		Quantity: 2, PricePerUnit: 4.0, Medicine: domain.Medicine{ID: 2, Name: "Ibuprofen"},
	}))

	items, err := s.CartItems(id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Paracetamol", items[0].Medicine.Name)
	assert.Equal(t, int64(3), items[0].Quantity)
	assert.Equal(t, 2.5, items[0].PricePerUnit)
	assert.Equal(t, "Ibuprofen", items[1].Medicine.Name)
}

func TestCartsAreScopedPerOperator(t *testing.T) {
	s := newTestStore(t)
	alice := seedOperator(t, s, "alice")
	bob := seedOperator(t, s, "bob")

	require.NoError(t, s.AppendCartItem(alice, domain.BillItem{Quantity: 1, Medicine: domain.Medicine{ID: 1, Name: "A"}}))

	items, err := s.CartItems(bob)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveCartItemByPosition(t *testing.T) {
	s := newTestStore(t)
	id := seedOperator(t, s, "alice")
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, s.AppendCartItem(id, domain.BillItem{Quantity: 1, Medicine: domain.Medicine{ID: 1, Name: name}}))
	}

	require.NoError(t, s.RemoveCartItem(id, 1))

	items, err := s.CartItems(id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Medicine.Name)
	assert.Equal(t, "C", items[1].Medicine.Name)

	// Out-of-range positions leave the cart alone.
	require.NoError(t, s.RemoveCartItem(id, 10))
	require.NoError(t, s.RemoveCartItem(id, -1))
	items, err = s.CartItems(id)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestClearCart(t *testing.T) {
	s := newTestStore(t)
	id := seedOperator(t, s, "alice")
	require.NoError(t, s.AppendCartItem(id, domain.BillItem{Quantity: 1, Medicine: domain.Medicine{ID: 1, Name: "A"}}))

	require.NoError(t, s.ClearCart(id))

	items, err := s.CartItems(id)
	require.NoError(t, err)
	assert.Empty(t, items)
}

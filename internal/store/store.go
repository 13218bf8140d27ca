// Package store persists the web UI's local state: operator accounts and
// each operator's in-progress cart, so a cart survives across form posts.
package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"medimanager/m/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the local SQLite database.
type Store struct {
	db *sqlx.DB
}

// New constructs a Store.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// OperatorByUsername loads a sign-in account.
func (s *Store) OperatorByUsername(username string) (domain.Operator, error) {
	var op domain.Operator
	err := s.db.Get(&op, `SELECT id, username, password, created_at FROM operators WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Operator{}, ErrNotFound
	}
	if err != nil {
		return domain.Operator{}, err
	}
	return op, nil
}

type cartRow struct {
	ID           int64   `db:"id"`
	MedicineID   int64   `db:"medicine_id"`
	MedicineName string  `db:"medicine_name"`
	Quantity     int64   `db:"quantity"`
	UnitPrice    float64 `db:"unit_price"`
}

// CartItems returns the operator's in-progress cart in insertion order.
func (s *Store) CartItems(operatorID int64) ([]domain.BillItem, error) {
	var rows []cartRow
	err := s.db.Select(&rows, `SELECT id, medicine_id, medicine_name, quantity, unit_price FROM cart_items WHERE operator_id = ? ORDER BY id`, operatorID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.BillItem, len(rows))
	for i, row := range rows {
		items[i] = domain.BillItem{
			Quantity:     row.Quantity,
			PricePerUnit: row.UnitPrice,
			Medicine: domain.Medicine{
				ID:   row.MedicineID,
				Name: row.MedicineName,
			},
		}
	}
	return items, nil
}

// AppendCartItem adds one line item to the operator's cart.
func (s *Store) AppendCartItem(operatorID int64, item domain.BillItem) error {
	_, err := s.db.Exec(`INSERT INTO cart_items (operator_id, medicine_id, medicine_name, quantity, unit_price) VALUES (?, ?, ?, ?, ?)`,
		operatorID, item.Medicine.ID, item.Medicine.Name, item.Quantity, item.PricePerUnit)
	return err
}

// RemoveCartItem deletes the line item at the given position in insertion
// order. Out-of-range positions are ignored.
func (s *Store) RemoveCartItem(operatorID int64, position int) error {
	if position < 0 {
		return nil
	}
	_, err := s.db.Exec(`DELETE FROM cart_items WHERE id IN (
        SELECT id FROM cart_items WHERE operator_id = ? ORDER BY id LIMIT 1 OFFSET ?)`,
		operatorID, position)
	return err
}

// ClearCart discards the operator's cart, typically after a successful bill
// submission.
func (s *Store) ClearCart(operatorID int64) error {
	_, err := s.db.Exec(`DELETE FROM cart_items WHERE operator_id = ?`, operatorID)
	return err
}

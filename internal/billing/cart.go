// Package billing holds the in-progress cart and its composition rules. The
// checks here are advisory: stock is not reserved and the backend revalidates
// everything when the bill is submitted.
package billing

import (
	"medimanager/m/domain"
)

// Cart is the ordered list of line items being composed into a bill.
type Cart struct {
	Items []domain.BillItem
}

// AddItem appends a line item for the selected medicine, capturing the unit
// price at this moment. The quantity must be positive and must not exceed the
// medicine's last-fetched quantity on hand.
func (c *Cart) AddItem(medicine *domain.Medicine, quantity int64) error {
	if medicine == nil {
		return &domain.ValidationError{Message: "Please select a medicine"}
	}
	if quantity <= 0 || quantity > medicine.Quantity {
		return &domain.ValidationError{Message: "Invalid quantity"}
	}
	c.Items = append(c.Items, domain.BillItem{
		Quantity:     quantity,
		PricePerUnit: medicine.Price,
		Medicine:     *medicine,
	})
	return nil
}

// RemoveItem drops the line item at the given position. Out-of-range
// positions are ignored.
func (c *Cart) RemoveItem(position int) {
	if position < 0 || position >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:position], c.Items[position+1:]...)
}

// Total is the provisional bill amount, recomputed from the line items on
// every call. The backend's total is authoritative once the bill is created.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Empty reports whether the cart has no line items.
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

package domain

type BillItem struct {
	ID           int64    `json:"id,omitempty"`
	Quantity     int64    `json:"quantity"`
	PricePerUnit float64  `json:"pricePerUnit"`
	Medicine     Medicine `json:"medicine"`
}

// Subtotal is the line amount, quantity times the captured unit price.
func (it BillItem) Subtotal() float64 {
	return float64(it.Quantity) * it.PricePerUnit
}

type Bill struct {
	ID          int64      `json:"id"`
	BillDate    string     `json:"billDate"`
	TotalAmount float64    `json:"totalAmount"`
	Items       []BillItem `json:"items"`
}

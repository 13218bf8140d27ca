package domain

import "time"

// DateLayout is the wire format for calendar dates used by the backend.
const DateLayout = "2006-01-02"

type Medicine struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Quantity     int64   `json:"quantity"`
	ExpiryDate   string  `json:"expiryDate"`
	Manufacturer string  `json:"manufacturer"`
}

// LowStock reports whether the quantity on hand is at or below threshold.
func (m Medicine) LowStock(threshold int64) bool {
	return m.Quantity <= threshold
}

// ExpiringSoon reports whether the expiry date falls before now plus the
// given day window. Already-expired medicines count as expiring.
func (m Medicine) ExpiringSoon(now time.Time, days int) bool {
	expiry, err := time.Parse(DateLayout, m.ExpiryDate)
	if err != nil {
		return false
	}
	return expiry.Before(now.AddDate(0, 0, days))
}

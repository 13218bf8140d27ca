package webui

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"medimanager/m/domain"
)

// medicineForm holds the raw form inputs so an invalid submission can be
// re-rendered exactly as typed.
type medicineForm struct {
	Name         string
	Description  string
	Price        string
	Quantity     string
	ExpiryDate   string
	Manufacturer string
}

func medicineFormFromRequest(r *http.Request) medicineForm {
	return medicineForm{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Price:        strings.TrimSpace(r.FormValue("price")),
		Quantity:     strings.TrimSpace(r.FormValue("quantity")),
		ExpiryDate:   strings.TrimSpace(r.FormValue("expiryDate")),
		Manufacturer: strings.TrimSpace(r.FormValue("manufacturer")),
	}
}

func medicineFormFromMedicine(m domain.Medicine) medicineForm {
	expiry, _, _ := strings.Cut(m.ExpiryDate, "T")
	return medicineForm{
		Name:         m.Name,
		Description:  m.Description,
		Price:        strconv.FormatFloat(m.Price, 'f', -1, 64),
		Quantity:     strconv.FormatInt(m.Quantity, 10),
		ExpiryDate:   expiry,
		Manufacturer: m.Manufacturer,
	}
}

// validate checks every field and reports all violations at once. The
// returned medicine is only meaningful when the error is nil.
func (f medicineForm) validate(now time.Time) (domain.Medicine, *domain.ValidationError) {
	errs := make(map[string]string)

	if f.Name == "" {
		errs["name"] = "Name is required"
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil || price <= 0 {
		errs["price"] = "Price must be greater than 0"
	}

	quantity, err := strconv.ParseInt(f.Quantity, 10, 64)
	if err != nil || quantity < 0 {
		errs["quantity"] = "Quantity cannot be negative"
	}

	if f.ExpiryDate == "" {
		errs["expiryDate"] = "Expiry date is required"
	} else if expiry, err := time.Parse(domain.DateLayout, f.ExpiryDate); err != nil {
		errs["expiryDate"] = "Expiry date is invalid"
	} else {
		year, month, day := now.Date()
		today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !expiry.After(today) {
			errs["expiryDate"] = "Expiry date must be in the future"
		}
	}

	if f.Manufacturer == "" {
		errs["manufacturer"] = "Manufacturer is required"
	}

	if len(errs) > 0 {
		return domain.Medicine{}, &domain.ValidationError{Message: "Please correct the highlighted fields", Fields: errs}
	}
	return domain.Medicine{
		Name:         f.Name,
		Description:  f.Description,
		Price:        price,
		Quantity:     quantity,
		ExpiryDate:   f.ExpiryDate,
		Manufacturer: f.Manufacturer,
	}, nil
}

package webui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medimanager/m/domain"
)

var validationNow = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func validForm() medicineForm {
	return medicineForm{
		Name:         "Paracetamol",
		Description:  "Pain relief",
		Price:        "5.00",
		Quantity:     "20",
		ExpiryDate:   "2026-03-15", // tomorrow relative to validationNow
		Manufacturer: "Acme Pharma",
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	medicine, verr := validForm().validate(validationNow)
	require.Nil(t, verr)

	assert.Equal(t, "Paracetamol", medicine.Name)
	assert.Equal(t, 5.00, medicine.Price)
	assert.Equal(t, int64(20), medicine.Quantity)
	assert.Equal(t, "2026-03-15", medicine.ExpiryDate)
	assert.Equal(t, "Acme Pharma", medicine.Manufacturer)
}

func TestValidateRejectsZeroPrice(t *testing.T) {
	form := validForm()
	form.Price = "0"
	_, verr := form.validate(validationNow)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "price")
}

func TestValidateRejectsNegativeQuantity(t *testing.T) {
	form := validForm()
	form.Quantity = "-1"
	_, verr := form.validate(validationNow)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "quantity")
}

func TestValidateAcceptsZeroQuantity(t *testing.T) {
	form := validForm()
	form.Quantity = "0"
	_, verr := form.validate(validationNow)
	assert.Nil(t, verr)
}

func TestValidateRejectsExpiryToday(t *testing.T) {
	form := validForm()
	form.ExpiryDate = "2026-03-14"
	_, verr := form.validate(validationNow)
	require.NotNil(t, verr)
	assert.Equal(t, "Expiry date must be in the future", verr.Fields["expiryDate"])
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	_, verr := medicineForm{}.validate(validationNow)
	require.NotNil(t, verr)

	for _, field := range []string{"name", "price", "quantity", "expiryDate", "manufacturer"} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestValidateRejectsMalformedDate(t *testing.T) {
	form := validForm()
	form.ExpiryDate = "15/03/2026"
	_, verr := form.validate(validationNow)
	require.NotNil(t, verr)
	assert.Equal(t, "Expiry date is invalid", verr.Fields["expiryDate"])
}

func TestMedicineFormFromMedicineTrimsTimestamp(t *testing.T) {
	form := medicineFormFromMedicine(domain.Medicine{
		Name:       "Ibuprofen",
		Price:      4,
		Quantity:   8,
		ExpiryDate: "2026-06-01T00:00:00",
	})
	assert.Equal(t, "2026-06-01", form.ExpiryDate)
	assert.Equal(t, "4", form.Price)
	assert.Equal(t, "8", form.Quantity)
}

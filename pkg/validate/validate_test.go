package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhone(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"987654321", false},
		{"98765432101", false},
		{"98765-4321", false},
		{"+919876543", false},
		{"", false},
		{"９８７６５４３２１０", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsPhone(tt.in), tt.in)
	}
}

func TestIsPostalCode(t *testing.T) {
	assert.True(t, IsPostalCode("560001"))
	assert.False(t, IsPostalCode("56000"))
	assert.False(t, IsPostalCode("5600011"))
	assert.False(t, IsPostalCode("56000a"))
}

func TestIsLuhn(t *testing.T) {
	assert.True(t, IsLuhn("79927398713"))
	assert.False(t, IsLuhn("79927398710"))
}

type address struct {
	Phone      string `json:"phone" validate:"required,phone"`
	PostalCode string `json:"postal_code" validate:"omitempty,postal"`
}

type line struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type form struct {
	Name     string  `json:"name" validate:"required"`
	Method   string  `json:"payment_method" validate:"oneof=cod online"`
	Key      string  `json:"idempotency_key" validate:"required,uuid"`
	Shipping address `json:"shipping"`
	Items    []line  `json:"items" validate:"required,min=1,dive"`
}

func TestStruct(t *testing.T) {
	valid := form{
		Name:     "Asha",
		Method:   "cod",
		Key:      "9a1f6a43-8b4e-4c58-9e1b-1f6b7a2c3d4e",
		Shipping: address{Phone: "9876543210"},
		Items:    []line{{Quantity: 1}},
	}
	assert.Nil(t, Struct(valid))

	invalid := form{
		Method:   "cash",
		Key:      "not-a-uuid",
		Shipping: address{Phone: "12345", PostalCode: "12"},
		Items:    []line{{Quantity: 0}},
	}
	assert.Equal(t, map[string]string{
		"name":                 "is required",
		"payment_method":       "must be one of: cod online",
		"idempotency_key":      "must be a valid UUID",
		"shipping.phone":       "must be exactly 10 digits",
		"shipping.postal_code": "must be exactly 6 digits",
		"items[0].quantity":    "must be greater than 0",
	}, Struct(invalid))
}

package helpers

import (
	"testing"
	"time"

	"frontdash/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func validShipping() ShippingDetails {
	return ShippingDetails{
		First_name: "Ada",
		Last_name:  "Lovelace",
		Address:    "12 Analytical St",
		City:       "Springfield",
		State:      "IL",
		Zip_code:   "12345",
		Phone:      "(555) 123-4567",
	}
}

func validCard() *PaymentDetails {
	return &PaymentDetails{
		Card_number:  "4123 5678 9012 3456",
		Expiry_date:  "12/99",
		Cvv:          "123",
		Name_on_card: "Ada Lovelace",
	}
}

func TestValidateCreditCard(t *testing.T) {
	tests := []struct {
		name   string
		number string
		ok     bool
	}{
		{"visa style with spaces", "4123 5678 9012 3456", true},
		{"mastercard prefix", "5123567890123456", true},
		{"starts with 1", "1123567890123456", false},
		{"too short", "412356789012345", false},
		{"too long", "41235678901234567", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateCreditCard(tt.number)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateZipCode(t *testing.T) {
	ok, _ := ValidateZipCode("12345")
	assert.True(t, ok)
	ok, msg := ValidateZipCode("1234")
	assert.False(t, ok)
	assert.Equal(t, "Zip code must be exactly 5 digits", msg)
	ok, _ = ValidateZipCode("12345-678")
	assert.False(t, ok, "eight digits after stripping")
	ok, _ = ValidateZipCode("1-2-3-4-5")
	assert.True(t, ok, "non digits are stripped first")
}

func TestValidatePhone(t *testing.T) {
	ok, _ := ValidatePhone("(555) 123-4567")
	assert.True(t, ok)
	ok, _ = ValidatePhone("555123456")
	assert.False(t, ok)
	ok, msg := ValidatePhone("  ")
	assert.False(t, ok)
	assert.Equal(t, "Phone number is required", msg)
}

func TestValidateExpiryDate(t *testing.T) {
	tests := []struct {
		name   string
		expiry string
		ok     bool
	}{
		{"past year", "01/20", false},
		{"current month", "09/26", true},
		{"previous month", "08/26", false},
		{"next month", "10/26", true},
		{"far future", "12/99", true},
		{"month zero", "00/30", false},
		{"month thirteen", "13/30", false},
		{"missing slash", "0926", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidateExpiryDate(tt.expiry, testNow)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestValidateCheckoutFormCollectsAllErrors(t *testing.T) {
	fieldErrors := ValidateCheckoutForm("", ShippingDetails{}, PaymentMethodCard, &PaymentDetails{}, testNow)

	for _, field := range []string{
		"customer_email", "first_name", "last_name", "address", "city",
		"state", "zip_code", "phone", "card_number", "name_on_card",
		"expiry_date", "cvv",
	} {
		assert.Contains(t, fieldErrors, field)
	}
}

func TestValidateCheckoutFormIdempotent(t *testing.T) {
	shipping := ShippingDetails{First_name: "Ada", Zip_code: "99"}
	first := ValidateCheckoutForm("bad-email", shipping, PaymentMethodCard, &PaymentDetails{Card_number: "1123567890123456"}, testNow)
	second := ValidateCheckoutForm("bad-email", shipping, PaymentMethodCard, &PaymentDetails{Card_number: "1123567890123456"}, testNow)
	assert.Equal(t, first, second)
}

func TestValidateCheckoutFormWalletMethods(t *testing.T) {
	for _, method := range []string{PaymentMethodPaypal, PaymentMethodVenmo} {
		fieldErrors := ValidateCheckoutForm("ada@example.com", validShipping(), method, nil, testNow)
		assert.Empty(t, fieldErrors, "no card fields required for %s", method)
	}

	fieldErrors := ValidateCheckoutForm("ada@example.com", validShipping(), "bitcoin", nil, testNow)
	assert.Contains(t, fieldErrors, "payment_method")
}

func TestPriceCartRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.01", "9.99", "20.00", "123.45", "9999.99"} {
		subtotal := decimal.RequireFromString(s)
		serviceCharge, tax, total := PriceCart(subtotal)

		wantService := subtotal.Mul(decimal.RequireFromString("0.0825")).Round(2)
		wantTax := subtotal.Mul(decimal.RequireFromString("0.08")).Round(2)
		wantTotal := subtotal.Add(decimal.RequireFromString("2.99")).Add(wantService).Add(wantTax)

		assert.True(t, wantService.Equal(serviceCharge), "service charge for %s", s)
		assert.True(t, wantTax.Equal(tax), "tax for %s", s)
		assert.True(t, wantTotal.Equal(total), "total for %s", s)
	}
}

func TestValidateAndPriceEmptyCart(t *testing.T) {
	_, _, err := ValidateAndPrice(&models.Cart{}, "ada@example.com", validShipping(), PaymentMethodCard, validCard())
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, _, err = ValidateAndPrice(nil, "ada@example.com", validShipping(), PaymentMethodCard, validCard())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestValidateAndPriceEndToEnd(t *testing.T) {
	cart := &models.Cart{}
	cart.AddItem(1, "Margherita", decimal.RequireFromString("10.00"), "rest-1")
	cart.AddItem(1, "Margherita", decimal.RequireFromString("10.00"), "rest-1")

	draft, fieldErrors, err := ValidateAndPrice(cart, "ada@example.com", validShipping(), PaymentMethodCard, validCard())
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	require.NotNil(t, draft)

	assert.True(t, decimal.RequireFromString("20.00").Equal(draft.Subtotal))
	assert.True(t, decimal.RequireFromString("2.99").Equal(draft.Delivery_fee))
	assert.True(t, decimal.RequireFromString("1.65").Equal(draft.Service_charge))
	assert.True(t, decimal.RequireFromString("1.60").Equal(draft.Tax))
	assert.True(t, decimal.RequireFromString("26.24").Equal(draft.Total))

	assert.Regexp(t, `^FD\d{6}$`, draft.Order_number)
	assert.WithinDuration(t, time.Now().Add(35*time.Minute), draft.Estimated_delivery, time.Minute)

	// validation failures come back as data, never as an error
	_, fieldErrors, err = ValidateAndPrice(cart, "ada@example.com", validShipping(), PaymentMethodCard, &PaymentDetails{
		Card_number:  "1123567890123456",
		Expiry_date:  "12/99",
		Cvv:          "123",
		Name_on_card: "Ada Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "Credit card number must be 16 digits long, start with 4, 2, 5, 3, or 6", fieldErrors["card_number"])
}

func TestNewOrderNumber(t *testing.T) {
	number := NewOrderNumber(testNow)
	assert.Regexp(t, `^FD\d{6}$`, number)
	assert.Equal(t, number, NewOrderNumber(testNow))
}

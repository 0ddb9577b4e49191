package helpers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"frontdash/models"

	"github.com/shopspring/decimal"
)

// ErrEmptyCart is the checkout precondition failure: the customer reached
// checkout with no items or no bound restaurant. It is not a field error and
// callers render it as a separate view.
var ErrEmptyCart = errors.New("cart is empty or not bound to a restaurant")

const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
	PaymentMethodVenmo  = "venmo"
)

type ShippingDetails struct {
	First_name string `json:"first_name"`
	Last_name  string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip_code   string `json:"zip_code"`
	Phone      string `json:"phone"`
}

type PaymentDetails struct {
	Card_number  string `json:"card_number"`
	Expiry_date  string `json:"expiry_date"`
	Cvv          string `json:"cvv"`
	Name_on_card string `json:"name_on_card"`
}

// FieldErrors maps a form field name to a human readable message. Validation
// never stops at the first failure so the customer sees everything at once.
type FieldErrors map[string]string

// PricedOrderDraft is the validated, fee-computed cart right before it is
// persisted as an Order.
type PricedOrderDraft struct {
	Order_number       string
	Subtotal           decimal.Decimal
	Delivery_fee       decimal.Decimal
	Service_charge     decimal.Decimal
	Tax                decimal.Decimal
	Total              decimal.Decimal
	Estimated_delivery time.Time
}

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

var (
	deliveryFee       = decimal.RequireFromString("2.99")
	serviceChargeRate = decimal.RequireFromString("0.0825")
	taxRate           = decimal.RequireFromString("0.08")
)

func stripNonDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

func ValidateEmail(email string) (bool, string) {
	if strings.TrimSpace(email) == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, "Please enter a valid email address (e.g., user@example.com)"
	}
	return true, ""
}

func ValidatePhone(phone string) (bool, string) {
	if strings.TrimSpace(phone) == "" {
		return false, "Phone number is required"
	}
	if len(stripNonDigits(phone)) != 10 {
		return false, "Phone number must be exactly 10 digits"
	}
	return true, ""
}

func ValidateZipCode(zipCode string) (bool, string) {
	if strings.TrimSpace(zipCode) == "" {
		return false, "Zip code is required"
	}
	if len(stripNonDigits(zipCode)) != 5 {
		return false, "Zip code must be exactly 5 digits"
	}
	return true, ""
}

func ValidateCreditCard(cardNumber string) (bool, string) {
	if strings.TrimSpace(cardNumber) == "" {
		return false, "Card number is required"
	}
	digits := stripNonDigits(cardNumber)
	if len(digits) != 16 {
		return false, "Credit card number must be 16 digits long, start with 4, 2, 5, 3, or 6"
	}
	switch digits[0] {
	case '2', '3', '4', '5', '6':
		return true, ""
	}
	return false, "Credit card number must be 16 digits long, start with 4, 2, 5, 3, or 6"
}

// ValidateExpiryDate accepts MM/YY and requires (year, month) to be no
// earlier than the current month.
func ValidateExpiryDate(expiryDate string, now time.Time) (bool, string) {
	if strings.TrimSpace(expiryDate) == "" {
		return false, "Expiry date is required"
	}
	parts := strings.Split(expiryDate, "/")
	if len(parts) != 2 {
		return false, "Credit card expiry date must be in the future"
	}
	month, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
	year, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errM != nil || errY != nil || month < 1 || month > 12 {
		return false, "Credit card expiry date must be in the future"
	}
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year > currentYear || (year == currentYear && month >= currentMonth) {
		return true, ""
	}
	return false, "Credit card expiry date must be in the future"
}

func ValidateCVV(cvv string) (bool, string) {
	if strings.TrimSpace(cvv) == "" {
		return false, "CVV is required"
	}
	if len(stripNonDigits(cvv)) != 3 {
		return false, "Security code must be exactly 3 digits"
	}
	return true, ""
}

// ValidateCheckoutForm runs every field rule independently and collects all
// failures. A nil-length result means the form is clean.
func ValidateCheckoutForm(email string, shipping ShippingDetails, paymentMethod string, payment *PaymentDetails, now time.Time) FieldErrors {
	fieldErrors := FieldErrors{}

	if ok, msg := ValidateEmail(email); !ok {
		fieldErrors["customer_email"] = msg
	}
	if strings.TrimSpace(shipping.First_name) == "" {
		fieldErrors["first_name"] = "First name is required"
	}
	if strings.TrimSpace(shipping.Last_name) == "" {
		fieldErrors["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(shipping.Address) == "" {
		fieldErrors["address"] = "Address is required"
	}
	if strings.TrimSpace(shipping.City) == "" {
		fieldErrors["city"] = "City is required"
	}
	if strings.TrimSpace(shipping.State) == "" {
		fieldErrors["state"] = "State is required"
	}
	if ok, msg := ValidateZipCode(shipping.Zip_code); !ok {
		fieldErrors["zip_code"] = msg
	}
	if ok, msg := ValidatePhone(shipping.Phone); !ok {
		fieldErrors["phone"] = msg
	}

	switch paymentMethod {
	case PaymentMethodCard:
		card := payment
		if card == nil {
			card = &PaymentDetails{}
		}
		if ok, msg := ValidateCreditCard(card.Card_number); !ok {
			fieldErrors["card_number"] = msg
		}
		if strings.TrimSpace(card.Name_on_card) == "" {
			fieldErrors["name_on_card"] = "Name on card is required"
		}
		if ok, msg := ValidateExpiryDate(card.Expiry_date, now); !ok {
			fieldErrors["expiry_date"] = msg
		}
		if ok, msg := ValidateCVV(card.Cvv); !ok {
			fieldErrors["cvv"] = msg
		}
	case PaymentMethodPaypal, PaymentMethodVenmo:
		// redirect style flows, no card fields collected
	default:
		fieldErrors["payment_method"] = "Payment method must be card, paypal, or venmo"
	}

	return fieldErrors
}

// PriceCart computes the fee breakdown for a subtotal. Percentages are
// rounded to cents before summing, so the total is exact in decimal.
func PriceCart(subtotal decimal.Decimal) (serviceCharge, tax, total decimal.Decimal) {
	serviceCharge = subtotal.Mul(serviceChargeRate).Round(2)
	tax = subtotal.Mul(taxRate).Round(2)
	total = subtotal.Add(deliveryFee).Add(serviceCharge).Add(tax)
	return serviceCharge, tax, total
}

// DeliveryFee is flat regardless of payment method or restaurant.
func DeliveryFee() decimal.Decimal {
	return deliveryFee
}

// ValidateAndPrice turns the cart plus the checkout form into either a fully
// priced order draft or the complete set of field errors. An empty or unbound
// cart is a precondition failure returned as ErrEmptyCart, never as a field
// error.
func ValidateAndPrice(cart *models.Cart, email string, shipping ShippingDetails, paymentMethod string, payment *PaymentDetails) (*PricedOrderDraft, FieldErrors, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, nil, ErrEmptyCart
	}

	now := time.Now()
	fieldErrors := ValidateCheckoutForm(email, shipping, paymentMethod, payment, now)
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	subtotal := cart.Subtotal()
	serviceCharge, tax, total := PriceCart(subtotal)

	draft := &PricedOrderDraft{
		Order_number:       NewOrderNumber(now),
		Subtotal:           subtotal,
		Delivery_fee:       deliveryFee,
		Service_charge:     serviceCharge,
		Tax:                tax,
		Total:              total,
		Estimated_delivery: now.Add(35 * time.Minute),
	}
	return draft, nil, nil
}

// NewOrderNumber derives a customer facing number from the current time,
// FD followed by the last six digits of the unix millisecond clock. It is
// informational; the stored order keeps its own unique id.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("FD%06d", now.UnixMilli()%1000000)
}

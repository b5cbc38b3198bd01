package values

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with currency and precision handling.
// All report amounts are denominated in EUR; the currency is carried
// explicitly so stored snapshots stay self-describing.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// Common currency codes (ISO 4217)
const (
	EUR = "EUR"
	USD = "USD"
	CHF = "CHF"
)

var validCurrencies = map[string]bool{EUR: true, USD: true, CHF: true}

// NewMoney creates a new Money value object
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if err := validateCurrency(currency); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyFromString creates Money from string amount and currency
func NewMoneyFromString(amount, currency string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %w", err)
	}

	return NewMoney(dec, currency)
}

// MustNewMoney creates Money and panics on error (for constants/tests)
func MustNewMoney(amount decimal.Decimal, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Euros creates an EUR Money value from whole euros. The rule tables are
// hand-curated EUR integer amounts, so this is the main constructor.
func Euros(units int64) Money {
	return MustNewMoney(decimal.NewFromInt(units), EUR)
}

// Zero returns a zero Money value in the given currency
func Zero(currency string) Money {
	return MustNewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() string {
	if m.currency == "" {
		return EUR
	}
	return m.currency
}

// String returns the amount with currency code (e.g., "20000000 EUR")
func (m Money) String() string {
	return m.amount.String() + " " + m.Currency()
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns the sum of two Money values. Panics on currency mismatch,
// which would indicate corrupted rule tables.
func (m Money) Add(other Money) Money {
	if m.Currency() != other.Currency() {
		panic(fmt.Sprintf("currency mismatch: %s vs %s", m.Currency(), other.Currency()))
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.Currency()}
}

// Mul scales the amount by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.Currency()}
}

// Percent returns the given percentage of the amount (pct of 2 means 2%)
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(pct).Div(decimal.NewFromInt(100)), currency: m.Currency()}
}

// RoundToHundreds rounds to the nearest hundred currency units. Cost
// estimates use this granularity to avoid false precision.
func (m Money) RoundToHundreds() Money {
	hundred := decimal.NewFromInt(100)
	return Money{amount: m.amount.Div(hundred).Round(0).Mul(hundred), currency: m.Currency()}
}

// GreaterThan compares amounts, ignoring currency
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// GreaterThanOrEqual compares amounts, ignoring currency
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// Max returns the larger of two Money values
func (m Money) Max(other Money) Money {
	if other.GreaterThan(m) {
		return other
	}
	return m
}

// Equal checks amount and currency equality
func (m Money) Equal(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

// IntPart returns the whole currency units, truncated
func (m Money) IntPart() int64 {
	return m.amount.IntPart()
}

// Float64 returns the amount as a float64 for formatting purposes
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.String(),
		Currency: m.Currency(),
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewMoneyFromString(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

func validateCurrency(currency string) error {
	if currency == "" {
		return fmt.Errorf("currency is required")
	}
	if !validCurrencies[currency] {
		return fmt.Errorf("unsupported currency: %s", currency)
	}
	return nil
}

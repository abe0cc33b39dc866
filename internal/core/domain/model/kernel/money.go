package kernel

import (
	"errors"
	"fmt"
	"strings"

	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, ParseMoney or NewMoneyFromFloat")

// CurrencyMismatchError is returned by Money arithmetic and comparison when the
// operands are denominated in different currencies.
type CurrencyMismatchError struct {
	Operation string
	Left      string
	Right     string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("cannot %s different currencies: %s and %s", e.Operation, e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Money is an immutable value object holding a non-negative decimal amount
// tagged with a currency code.
//
// All operations return a new Money and never modify the receiver. Arithmetic
// and comparison between two Money values require identical currency codes;
// Multiply takes a plain scalar factor instead.
//
// The zero value of Money is invalid; use NewMoney, ParseMoney or NewMoneyFromFloat.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(65000), "USDT")
//	if err != nil {
//	    return err
//	}
//	total, err := price.Multiply(decimal.RequireFromString("0.5"))
//	fmt.Println(total) // Output: 32500 USDT
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value.
//
// Parameters:
//   - amount: must not be negative
//   - currency: currency code, surrounding whitespace is trimmed, must not be blank
//
// Returns:
//   - Money: the constructed value
//   - error: joined validation errors (ValueIsInvalid for a negative amount,
//     ValueIsRequired for a blank currency)
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ParseMoney creates Money from a decimal string such as "65000.50".
//
// Example:
//
//	m, err := kernel.ParseMoney("0.01", "USDT")
func ParseMoney(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// NewMoneyFromFloat creates Money from a float64, converting it to the
// shortest decimal representation that round-trips the float.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of m and other.
//
// Returns a CurrencyMismatchError if the currencies differ.
//
// Example:
//
//	a, _ := kernel.ParseMoney("10", "USDT")
//	b, _ := kernel.ParseMoney("2.5", "USDT")
//	sum, _ := a.Add(b) // 12.5 USDT
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency("add", other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns m minus other.
//
// Returns a CurrencyMismatchError if the currencies differ, and a
// ValueIsInvalid error if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency("subtract", other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply scales the amount by factor and keeps the currency.
// A negative factor yields a ValueIsInvalid error.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Mul(factor), m.currency)
}

// MultiplyFloat is Multiply with a float64 factor coerced to decimal.
func (m Money) MultiplyFloat(factor float64) (Money, error) {
	return m.Multiply(decimal.NewFromFloat(factor))
}

// IsGreaterThan reports whether m is strictly greater than other.
//
// Returns a CurrencyMismatchError if the currencies differ.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency("compare", other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether both values have the same currency and numerically equal amounts.
// Amounts are compared by value, so 1.50 and 1.5 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the value as "<amount> <currency>", e.g. "65000 USDT".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}

func (m Money) sameCurrency(operation string, other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return &CurrencyMismatchError{Operation: operation, Left: m.currency, Right: other.currency}
	}
	return nil
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("amount cannot be negative: %s", amount),
		)
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	m.currency = currency
	return nil
}

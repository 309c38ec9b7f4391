// Package money provides value objects for monetary amounts expressed in a
// currency's minor unit (cents, pence, fils). Keeping amounts integral avoids
// fractional drift; callers that need decimal arithmetic go through Decimal().
package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency validates that code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for
// package-level variable initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string { return c.code }

// String returns the currency code.
func (c Currency) String() string { return c.code }

// IsZero reports whether the currency has not been initialised.
func (c Currency) IsZero() bool { return c.code == "" }

// Common currencies.
var (
	USD = MustCurrency("USD")
	EUR = MustCurrency("EUR")
	SGD = MustCurrency("SGD")
)

// Money is an immutable amount in a currency's minor unit.
// Fields are unexported to enforce immutability.
type Money struct {
	amount   int64
	currency Currency
}

// New creates a Money value from an amount in minor units.
func New(amount int64, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// NewFromString parses a minor-unit amount string and currency code. The
// amount must be a whole number; sub-unit fractions are rejected.
func NewFromString(amount string, currency string) (Money, error) {
	cur, err := NewCurrency(currency)
	if err != nil {
		return Money{}, fmt.Errorf("invalid currency: %w", err)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if !d.IsInteger() {
		return Money{}, fmt.Errorf("invalid amount %q: minor units must be whole", amount)
	}

	return Money{amount: d.IntPart(), currency: cur}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{currency: currency}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 { return m.amount }

// Currency returns the currency.
func (m Money) Currency() Currency { return m.currency }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount > 0 }

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool { return m.amount < 0 }

// Add returns m plus other. The currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot add %s to %s", other.currency, m.currency)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns m minus other. The currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot subtract %s from %s", other.currency, m.currency)
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// SameCurrency reports whether m and other share a currency.
func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

// DivRound divides the amount by n and rounds half away from zero.
// n must be positive.
func (m Money) DivRound(n int64) Money {
	q := decimal.NewFromInt(m.amount).DivRound(decimal.NewFromInt(n), 0)
	return Money{amount: q.IntPart(), currency: m.currency}
}

// Equal reports whether both the amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// Decimal returns the minor-unit amount as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.amount)
}

// String formats the value as "<minor units> <currency>", e.g. "5000 SGD".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency.Code())
}

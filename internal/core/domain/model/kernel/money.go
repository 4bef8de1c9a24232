package kernel

import (
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point currency amount with two decimal places.
// Every arithmetic operation rounds its result to two decimals using
// half-up rounding, so intermediate results stay cent-consistent with a
// reference ledger instead of accumulating drift until a final rounding.
//
// The zero value is a valid zero amount. Money is immutable: all operations
// return a new value.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from an arbitrary decimal, rounding it to
// two decimal places half-up.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: round2(amount)}
}

// NewMoneyFromInt creates a Money value from a whole number of currency units.
func NewMoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// NewMoneyFromString parses a decimal string such as "1250.00".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: round2(d)}, nil
}

// round2 rounds half away from zero at two decimals; for the non-negative
// amounts this system prices, that is half-up rounding.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Add returns the rounded sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: round2(m.amount.Add(other.amount))}
}

// Mul returns the rounded product of the amount and an arbitrary factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: round2(m.amount.Mul(factor))}
}

// MulInt returns the rounded product of the amount and a whole count.
func (m Money) MulInt(count int) Money {
	return Money{amount: round2(m.amount.Mul(decimal.NewFromInt(int64(count))))}
}

// MulFloat returns the rounded product of the amount and a fractional
// quantity such as a weight in kilograms.
func (m Money) MulFloat(quantity float64) Money {
	return Money{amount: round2(m.amount.Mul(decimal.NewFromFloat(quantity)))}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals compares two amounts by value.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two decimal places, e.g. "800.00".
// This is also the wire representation: amounts travel as decimal strings,
// never as floating point.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

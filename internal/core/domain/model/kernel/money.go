package kernel

import (
	"fmt"
	"math"

	"farmmarket/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// It is immutable; arithmetic methods return new values. The zero value
// represents an amount of zero and is valid.
//
// Example:
//
//	unitPrice, _ := kernel.NewMoney(10.00)
//	lineTotal := unitPrice.MulQuantity(2)   // 20.00
//	subTotal := lineTotal.Add(otherLine)
type Money struct {
	amount float64
}

// NewMoney creates a Money value from a float amount.
// Returns an error if the amount is negative, NaN, or infinite.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a Money value of zero.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the underlying float amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative, preserving the
// non-negativity invariant.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", m.amount-other.amount, 0.0, m.amount)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount * float64(quantity)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

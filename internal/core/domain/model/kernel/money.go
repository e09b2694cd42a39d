package kernel

import (
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
)

// Money is an amount in minor currency units (cents). Keeping integers avoids
// float rounding when totals are summed; the API exposes two-decimal numbers.
type Money int64

// maxMoney mirrors the NUMERIC(10,2) limit of the original schema.
const maxMoney Money = 99_999_999_99

// NewMoney validates an amount already expressed in minor units.
func NewMoney(cents int64) (Money, error) {
	m := Money(cents)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// NewMoneyFromFloat converts a two-decimal amount, rounding to the nearest cent.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%v is not a finite amount", amount))
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

// Validate rejects negative amounts and amounts that do not fit the storage column.
func (m Money) Validate() error {
	if m < 0 || m > maxMoney {
		return errs.NewValueIsOutOfRangeError("money", int64(m), 0, int64(maxMoney))
	}
	return nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Float returns the amount as a two-decimal number.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// Multiply returns m*n, failing when the result leaves the valid range.
func (m Money) Multiply(n int) (Money, error) {
	if n < 0 {
		return 0, errs.NewValueIsOutOfRangeError("multiplier", n, 0, math.MaxInt32)
	}
	if n != 0 && int64(m) > int64(maxMoney)/int64(n) {
		return 0, errs.NewValueIsOutOfRangeError("money", fmt.Sprintf("%d x %d", m, n), 0, int64(maxMoney))
	}
	return Money(int64(m) * int64(n)), nil
}

// Add returns m+other, failing when the result leaves the valid range.
func (m Money) Add(other Money) (Money, error) {
	sum := m + other
	if err := sum.Validate(); err != nil {
		return 0, err
	}
	return sum, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}

// Package shopspring converts between [money.Money] and the arbitrary-precision
// decimals of [github.com/shopspring/decimal].
//
// Conversions to money round to two digits after the decimal point using
// rounding half away from zero, the same rule [money.Money.Mul] and
// [money.Money.Quo] apply.
package shopspring

import (
	"fmt"

	"github.com/centcount/money"
	"github.com/shopspring/decimal"
)

// ToDecimal returns the amount of money m as a decimal with exactly two
// digits after the decimal point. The currency is dropped.
func ToDecimal(m money.Money) decimal.Decimal {
	return decimal.New(m.MinorUnits(), -2)
}

// FromDecimal converts a decimal to money in currency curr.
// Digits beyond the second decimal place are rounded half away from zero.
func FromDecimal(curr money.Currency, d decimal.Decimal) (money.Money, error) {
	m, err := money.ParseMoney(curr, d.Round(2).StringFixed(2))
	if err != nil {
		return money.Money{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return m, nil
}

// Mul returns m multiplied by factor, rounded half away from zero.
func Mul(m money.Money, factor decimal.Decimal) (money.Money, error) {
	p, err := FromDecimal(m.Curr(), ToDecimal(m).Mul(factor))
	if err != nil {
		return money.Money{}, fmt.Errorf("computing [%v * %v]: %w", m, factor, err)
	}
	return p, nil
}

// Quo returns m divided by divisor, rounded half away from zero.
// Quo returns [money.ErrDivisionByZero] if the divisor is zero.
func Quo(m money.Money, divisor decimal.Decimal) (money.Money, error) {
	if divisor.IsZero() {
		return money.Money{}, fmt.Errorf("computing [%v / %v]: %w", m, divisor, money.ErrDivisionByZero)
	}
	q, err := FromDecimal(m.Curr(), ToDecimal(m).DivRound(divisor, 2))
	if err != nil {
		return money.Money{}, fmt.Errorf("computing [%v / %v]: %w", m, divisor, err)
	}
	return q, nil
}

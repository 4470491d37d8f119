package money

import (
	"math"

	"github.com/govalues/decimal"
	exact "github.com/shopspring/decimal"
)

// roundHalfUp returns a decimal rounded to the specified number of digits after
// the decimal point using [rounding half away from zero].
// Decimals that already have a smaller scale are returned unchanged.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func roundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		return d, nil
	}
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	half := decimal.MustNew(5, scale+1)
	if r.CmpAbs(half) < 0 {
		return t, nil
	}
	return t.Add(t.ULP().CopySign(d))
}

// quoHalfUp returns the quotient of decimals d and e rounded to an integer
// using rounding half away from zero.
// The quotient is computed exactly from the integer quotient and the remainder,
// so no intermediate rounding takes place.
func quoHalfUp(d, e decimal.Decimal) (decimal.Decimal, error) {
	q, r, err := d.QuoRem(e)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if r.IsZero() {
		return q, nil
	}
	// |r| >= |e| / 2
	r, err = r.Add(r)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if r.CmpAbs(e) < 0 {
		return q, nil
	}
	if d.IsNeg() != e.IsNeg() {
		return q.Add(decimal.NegOne)
	}
	return q.Add(decimal.One)
}

// mulHalfUp returns the product of units and factor e rounded to an integer
// using rounding half away from zero.
// The product is computed with arbitrary precision, so it is rounded only once.
func mulHalfUp(units int64, e decimal.Decimal) (int64, error) {
	f, err := exact.NewFromString(e.String())
	if err != nil {
		return 0, err
	}
	p := exact.New(units, 0).Mul(f).Round(0).BigInt()
	if !p.IsInt64() || p.Int64() == math.MinInt64 {
		return 0, errMoneyOverflow
	}
	return p.Int64(), nil
}

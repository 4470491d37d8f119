package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// parseAmount validates a decimal string against the money grammar and
// converts it to a decimal.
// Unlike [decimal.Parse], it rejects exponents, a leading '+', a missing
// integer part and more than two digits after the decimal point.
func parseAmount(s string) (decimal.Decimal, error) {
	pos, width := 0, len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		pos++
	}

	// Integer digits
	intdigs := 0
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
		intdigs++
	}

	// Fractional digits
	fracdigs, dpoints := 0, 0
	for pos < width && s[pos] == '.' {
		pos++
		dpoints++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			pos++
			fracdigs++
		}
	}

	switch {
	case pos < width:
		return decimal.Decimal{}, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidFormat, s[pos], s)
	case intdigs == 0:
		return decimal.Decimal{}, fmt.Errorf("%w: no integer digits in %q", ErrInvalidFormat, s)
	case dpoints > 1:
		return decimal.Decimal{}, fmt.Errorf("%w: more than one decimal point in %q", ErrInvalidFormat, s)
	case dpoints == 1 && fracdigs == 0:
		return decimal.Decimal{}, fmt.Errorf("%w: no digits after the decimal point in %q", ErrInvalidFormat, s)
	case fracdigs > scale:
		return decimal.Decimal{}, fmt.Errorf("%w: more than %v digits after the decimal point in %q", ErrInvalidFormat, scale, s)
	}

	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", errMoneyOverflow, err)
	}
	return d, nil
}

// floatToDecimal converts a float to a decimal using its shortest
// decimal representation.
func floatToDecimal(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: special value %v", ErrInvalidValue, f)
	}
	return decimal.NewFromFloat64(f)
}

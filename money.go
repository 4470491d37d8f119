package money

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/govalues/decimal"
)

var (
	// ErrInvalidFormat is returned when a decimal string is malformed, e.g. it
	// has more than one decimal point or more than two fractional digits.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidValue is returned when the whole and fractional parts of an
	// amount have strictly opposite signs or the fractional part is out of range.
	ErrInvalidValue = errors.New("invalid value")

	// ErrIncompatibleCurrency is returned when an operation is attempted on
	// amounts denominated in different currencies.
	ErrIncompatibleCurrency = errors.New("incompatible currency")

	// ErrDivisionByZero is returned when the divisor is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	errMoneyOverflow = errors.New("money overflow")
)

// Money type represents an immutable monetary value with two digits
// after the decimal point.
// Its zero value corresponds to "XXX 0.00", where [XXX] indicates an unknown currency.
//
// The value is stored as a signed number of minor units, so every amount has
// exactly one representation and two values can be compared with the == operator.
// Money is designed to be safe for concurrent use by multiple goroutines.
type Money struct {
	curr  Currency // ISO 4217 currency
	units int64    // amount in hundredths
}

// newMoneySafe converts a decimal with at most two digits after the decimal
// point to money and checks that the result fits into the supported range.
func newMoneySafe(c Currency, d decimal.Decimal) (Money, error) {
	if !c.valid() {
		return Money{}, fmt.Errorf("%w: index %v", errInvalidCurrency, uint8(c))
	}
	if d.Scale() > scale {
		return Money{}, fmt.Errorf("%w: %v has more than %v digits after the decimal point", ErrInvalidValue, d, scale)
	}
	d = d.Pad(scale)
	if d.Scale() < scale {
		return Money{}, fmt.Errorf("padding amount: %w", errMoneyOverflow)
	}
	coef := d.Coef()
	if coef > math.MaxInt64 {
		return Money{}, errMoneyOverflow
	}
	units := int64(coef)
	if d.IsNeg() {
		units = -units
	}
	return Money{curr: c, units: units}, nil
}

// newMoneyFromUnits converts an integer decimal, representing minor units,
// to money.
func newMoneyFromUnits(c Currency, u decimal.Decimal) (Money, error) {
	units, _, ok := u.Int64(0)
	if !ok || units == math.MinInt64 {
		return Money{}, errMoneyOverflow
	}
	return NewMoneyFromMinorUnits(c, units)
}

// NewMoney returns money equal to whole + frac / 100.
// The fractional part is given in hundredths and must carry the same sign as
// the whole part. When the whole part is zero, the fractional part alone
// carries the sign, e.g. NewMoney(EUR, 0, -19) is "EUR -0.19".
//
// NewMoney returns an error if:
//   - the currency is not supported;
//   - the whole and fractional parts have strictly opposite signs ([ErrInvalidValue]);
//   - the fractional part is not within the range [-99, 99] ([ErrInvalidValue]);
//   - the amount does not fit into the supported range.
func NewMoney(curr Currency, whole, frac int64) (Money, error) {
	if frac < -99 || frac > 99 {
		return Money{}, fmt.Errorf("converting integers: %w: fraction %v is out of range", ErrInvalidValue, frac)
	}
	if whole != 0 && frac != 0 && (whole < 0) != (frac < 0) {
		return Money{}, fmt.Errorf("converting integers: %w: inconsistent signs of %v and %v", ErrInvalidValue, whole, frac)
	}
	// Whole
	d, err := decimal.New(whole, 0)
	if err != nil {
		return Money{}, fmt.Errorf("converting integers: %w", err)
	}
	// Fraction
	f, err := decimal.New(frac, scale)
	if err != nil {
		return Money{}, fmt.Errorf("converting integers: %w", err)
	}
	d, err = d.AddExact(f, scale)
	if err != nil {
		return Money{}, fmt.Errorf("converting integers: %w", errMoneyOverflow)
	}
	m, err := newMoneySafe(curr, d)
	if err != nil {
		return Money{}, fmt.Errorf("converting integers: %w", err)
	}
	return m, nil
}

// MustNewMoney is like [NewMoney] but panics if the money cannot be constructed.
// It simplifies safe initialization of global variables holding money.
func MustNewMoney(curr Currency, whole, frac int64) Money {
	m, err := NewMoney(curr, whole, frac)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%v, %v, %v) failed: %v", curr, whole, frac, err))
	}
	return m
}

// NewMoneyFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, centavos), to money.
// See also method [Money.MinorUnits].
//
// NewMoneyFromMinorUnits returns an error if the currency is not supported
// or units is [math.MinInt64].
func NewMoneyFromMinorUnits(curr Currency, units int64) (Money, error) {
	if !curr.valid() {
		return Money{}, fmt.Errorf("converting minor units: %w: index %v", errInvalidCurrency, uint8(curr))
	}
	if units == math.MinInt64 {
		return Money{}, fmt.Errorf("converting minor units: %w", errMoneyOverflow)
	}
	return Money{curr: curr, units: units}, nil
}

// NewMoneyFromDecimal converts a decimal to money.
// If the decimal has more than two digits after the decimal point, it is
// rounded using rounding half away from zero.
// See also method [Money.Decimal].
func NewMoneyFromDecimal(curr Currency, amount decimal.Decimal) (Money, error) {
	d, err := roundHalfUp(amount, scale)
	if err != nil {
		return Money{}, fmt.Errorf("rounding %v: %w", amount, err)
	}
	return newMoneySafe(curr, d)
}

// NewMoneyFromFloat64 converts a float to money.
// The float is converted using its shortest decimal representation, which is
// then rounded to two digits after the decimal point using rounding half away from zero.
//
// NewMoneyFromFloat64 returns an error if the float is a special value (NaN or Inf)
// or the result does not fit into the supported range.
func NewMoneyFromFloat64(curr Currency, amount float64) (Money, error) {
	d, err := floatToDecimal(amount)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	m, err := NewMoneyFromDecimal(curr, d)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return m, nil
}

// ParseMoney converts a decimal string to money.
// The input string must match the following grammar:
//
//	digits       ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	fraction     ::= '.' digit [digit]
//	money-string ::= ['-'] digits [fraction]
//
// A single fractional digit is zero-padded to the right, so "1.5" is
// parsed as 1.50. The sign applies to the whole value: "-0.19" results in
// a zero whole part and a negative fractional part.
//
// ParseMoney returns an error if:
//   - the string has more than one decimal point ([ErrInvalidFormat]);
//   - the string has more than two digits after the decimal point ([ErrInvalidFormat]);
//   - the string does not match the grammar above ([ErrInvalidFormat]);
//   - the currency is not supported;
//   - the amount does not fit into the supported range.
func ParseMoney(curr Currency, amount string) (Money, error) {
	d, err := parseAmount(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	m, err := newMoneySafe(curr, d)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return m, nil
}

// MustParseMoney is like [ParseMoney] but panics if the string cannot be parsed.
// This function simplifies safe initialization of global variables holding money.
func MustParseMoney(curr Currency, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%v, %q) failed: %v", curr, amount, err))
	}
	return m
}

// parseText parses the text form produced by [Money.String], e.g. "EUR -1.20".
func parseText(s string) (Money, error) {
	code, amount, ok := strings.Cut(s, " ")
	if !ok {
		return Money{}, fmt.Errorf("%w: missing delimiter in %q", ErrInvalidFormat, s)
	}
	c, err := ParseCurr(code)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return ParseMoney(c, amount)
}

// Curr returns the currency of the money.
func (m Money) Curr() Currency {
	return m.curr
}

// Decimal returns the decimal representation of the money.
// The scale of the result is always 2.
func (m Money) Decimal() decimal.Decimal {
	return decimal.MustNew(m.units, scale)
}

// minor returns the number of minor units as an integer decimal.
func (m Money) minor() decimal.Decimal {
	return decimal.MustNew(m.units, 0)
}

// MinorUnits returns the amount in minor units of currency (e.g. cents).
// See also constructor [NewMoneyFromMinorUnits].
func (m Money) MinorUnits() int64 {
	return m.units
}

// Whole returns the integer part of the money.
// The integer part is truncated toward zero, so the whole part of "-0.19" is 0.
func (m Money) Whole() int64 {
	return m.units / 100
}

// Frac returns the fractional part of the money in hundredths.
// The result is within the range [-99, 99] and carries the sign of the money,
// e.g. the fractional part of "-1.01" is -1.
func (m Money) Frac() int64 {
	return m.units % 100
}

// IsNegFrac returns:
//
//	true  if -1 < m < 0
//	false otherwise
//
// In this case the whole part is zero and only the fractional part
// carries the negative sign.
func (m Money) IsNegFrac() bool {
	return m.Whole() == 0 && m.Frac() < 0
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	switch {
	case m.units < 0:
		return -1
	case m.units > 0:
		return 1
	}
	return 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.units < 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.units > 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.units == 0
}

// Zero returns money with a value of 0, having the same currency as money m.
func (m Money) Zero() Money {
	return Money{curr: m.curr}
}

// Abs returns the absolute value of the money.
func (m Money) Abs() Money {
	if m.units < 0 {
		return m.Neg()
	}
	return m
}

// Neg returns money with the opposite sign.
func (m Money) Neg() Money {
	return Money{curr: m.curr, units: -m.units}
}

// SameCurr returns true if both values are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.Curr() == b.Curr()
}

// checkSameCurr returns an error naming both currencies if they differ.
func (m Money) checkSameCurr(b Money) error {
	if !m.SameCurr(b) {
		return fmt.Errorf("%w: %v and %v", ErrIncompatibleCurrency, m.Curr(), b.Curr())
	}
	return nil
}

// Add returns the sum of money m and b.
//
// Add returns an error if:
//   - the values are denominated in different currencies ([ErrIncompatibleCurrency]);
//   - the result does not fit into the supported range.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if err := m.checkSameCurr(b); err != nil {
		return Money{}, err
	}
	c, d, e := m.Curr(), m.Decimal(), b.Decimal()
	d, err := d.AddExact(e, scale)
	if err != nil {
		return Money{}, err
	}
	return newMoneySafe(c, d)
}

// Sub returns the difference between money m and b.
//
// Sub returns an error if:
//   - the values are denominated in different currencies ([ErrIncompatibleCurrency]);
//   - the result does not fit into the supported range.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if err := m.checkSameCurr(b); err != nil {
		return Money{}, err
	}
	c, d, e := m.Curr(), m.Decimal(), b.Decimal()
	d, err := d.SubExact(e, scale)
	if err != nil {
		return Money{}, err
	}
	return newMoneySafe(c, d)
}

// Mul returns the product of money m and factor e rounded to two digits after
// the decimal point using rounding half away from zero.
// The exact product is rounded once, and its sign is preserved, so "USD -0.01"
// multiplied by 0.5 is "USD -0.01".
//
// Mul returns an error if the result does not fit into the supported range.
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	c, err := m.mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) mul(e decimal.Decimal) (Money, error) {
	u, err := mulHalfUp(m.units, e)
	if err != nil {
		return Money{}, err
	}
	return NewMoneyFromMinorUnits(m.Curr(), u)
}

// MulFloat64 is like [Money.Mul], but the factor is a float.
// The float is converted using its shortest decimal representation, so
// MulFloat64(1.1) multiplies by exactly 1.1.
//
// MulFloat64 returns an error if the factor is a special value (NaN or Inf).
func (m Money) MulFloat64(f float64) (Money, error) {
	e, err := floatToDecimal(f)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, f, err)
	}
	return m.Mul(e)
}

// Quo returns the quotient of money m and divisor e rounded to two digits
// after the decimal point using rounding half away from zero.
//
// Quo returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the result does not fit into the supported range.
func (m Money) Quo(e decimal.Decimal) (Money, error) {
	c, err := m.quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return c, nil
}

func (m Money) quo(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	c, u := m.Curr(), m.minor()
	u, err := quoHalfUp(u, e)
	if err != nil {
		return Money{}, err
	}
	return newMoneyFromUnits(c, u)
}

// QuoFloat64 is like [Money.Quo], but the divisor is a float.
//
// QuoFloat64 returns an error if the divisor is 0 or a special value (NaN or Inf).
func (m Money) QuoFloat64(f float64) (Money, error) {
	e, err := floatToDecimal(f)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, f, err)
	}
	return m.Quo(e)
}

// Split returns a slice of values that sum up to the original money,
// ensuring the parts are as equal as possible.
// If the money cannot be divided equally among the specified number
// of parts, the remainder is distributed one minor unit at a time among the
// first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrInvalidValue)
	}
	n := int64(parts)
	quo, rem := m.units/n, m.units%n
	ulp := int64(1)
	if rem < 0 {
		ulp = -1
	}
	res := make([]Money, parts)
	for i := range res {
		res[i] = Money{curr: m.curr, units: quo}
		// Reminder distribution
		if rem != 0 {
			res[i].units += ulp
			rem -= ulp
		}
	}
	return res, nil
}

// Cmp compares money and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if the values are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if err := m.checkSameCurr(b); err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, err)
	}
	switch {
	case m.units < b.units:
		return -1, nil
	case m.units > b.units:
		return 1, nil
	}
	return 0, nil
}

// Equal returns true if the values have the same currency, the same whole
// part, the same fractional part and the same negative fraction flag.
// No numeric normalization across currencies takes place: "EUR 1.00" and
// "USD 1.00" are not equal.
// Equal is equivalent to comparing values with the == operator.
func (m Money) Equal(b Money) bool {
	return m == b
}

// Hash returns a hash of the money consistent with [Money.Equal]:
// equal values always have equal hashes.
func (m Money) Hash() uint64 {
	var buf [12]byte
	n := copy(buf[:], m.Curr().Code())
	binary.LittleEndian.PutUint64(buf[n:], uint64(m.units)) //nolint:gosec
	return xxhash.Sum64(buf[:n+8])
}

// Value returns the canonical decimal representation of the money
// with exactly two digits after the decimal point, e.g. "-0.19" or "3.00".
// See also method [Money.String].
func (m Money) Value() string {
	return m.Decimal().String()
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the money, e.g. "EUR -0.19".
// See also methods [Currency.String], [Money.Value], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Curr().Code() + " " + m.Value()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The text must be in the format produced by [Money.String], e.g. "EUR -1.20".
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Money) UnmarshalText(text []byte) error {
	var err error
	*m, err = parseText(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Money.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                |
//	| ------ | ---------- | -------------------------- |
//	| %s, %v | USD 5.67   | Currency and amount        |
//	| %q     | "USD 5.67" | Quoted currency and amount |
//	| %f     | 5.67       | Amount                     |
//	| %d     | 567        | Amount in minor units      |
//	| %c     | USD        | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb and can only add trailing zeros,
// it never rounds the amount.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (m Money) Format(state fmt.State, verb rune) {
	c, d := m.Curr(), m.Decimal()

	// Trailing zeros
	tzeros := 0
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok && p > scale {
			tzeros = p - scale
		}
	}

	// Integer and fractional digits
	intdigs, fracdigs := 0, 0
	switch aprec := d.Prec(); verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		intdigs = aprec
		if d.IsZero() {
			intdigs++ // leading 0
		}
	default:
		fracdigs = scale
		if aprec > fracdigs {
			intdigs = aprec - fracdigs
		}
		if d.WithinOne() {
			intdigs++ // leading 0
		}
	}

	// Decimal point
	dpoint := 0
	if fracdigs > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if verb != 'c' && verb != 'C' && (d.IsNeg() || state.Flag('+') || state.Flag(' ')) {
		rsign = 1
	}

	// Currency code and delimiter
	curr, currsyms, currdel := "", 0, 0
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		curr = c.Code()
		currsyms = len(curr)
	default:
		curr = c.Code()
		currsyms = len(curr)
		currdel = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currsyms + currdel + rsign + intdigs + dpoint + fracdigs + tzeros + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Trailing zeros
	for range tzeros {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	coef := d.Coef()
	for range fracdigs {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer digits
	for range intdigs {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Leading zeros
	for range lzeros {
		buf[pos] = '0'
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf[pos] = '-'
		case state.Flag(' '):
			buf[pos] = ' '
		default:
			buf[pos] = '+'
		}
		pos--
	}

	// Currency delimiter
	if currdel > 0 {
		buf[pos] = ' '
		pos--
	}

	// Currency code
	for i := currsyms; i > 0; i-- {
		buf[pos] = curr[i-1]
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

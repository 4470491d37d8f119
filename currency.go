package money

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// scale is the number of digits after the decimal point used by every
// supported currency.
const scale = 2

// Currency type represents a currency in a closed set of ISO 4217 currencies
// whose minor unit is a hundredth of the major unit.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into an in-memory array that
// stores the code and the numeric code of each currency.
// Two currencies are equal if and only if they have the same index, so
// values can be compared with the == operator.
//
// When exchanging a currency value with other systems, use the alphabetic
// code returned by the [Currency.Code] method rather than the integer index.
type Currency uint8

var errInvalidCurrency = errors.New("invalid currency")

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a supported currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w %q", errInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// valid reports whether c is one of the generated currency constants.
func (c Currency) valid() bool {
	return int(c) < len(codeLookup)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// It is also used by [encoding/json], which leaves the currency unchanged
// for a JSON null.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	currlen := len(curr)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		if state.Flag('-') {
			tspaces = w - width
		} else {
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, 0, width)
	for range lspaces {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, curr...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for range tspaces {
		buf = append(buf, ' ')
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// Every supported currency uses a scale of 2, e.g. the [US Dollar] represents
// its minor unit, 1 cent, as 0.01 dollars.
//
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
func (c Currency) Scale() int {
	return scale
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if !c.valid() {
		return numLookup[XXX]
	}
	return numLookup[c]
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// Values outside of the supported set are reported as "XXX".
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if !c.valid() {
		return codeLookup[XXX]
	}
	return codeLookup[c]
}

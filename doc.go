/*
Package money implements fixed-precision monetary values.
It leverages the [decimal] package for exact decimal arithmetic and combines
it with a [Currency] type for representing a closed set of currencies.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Exactly two digits after the decimal point for every value
  - Arithmetic and comparison operations between values of the same currency
  - Multiplication and division rounded using rounding half away from zero
  - Canonical text representation, e.g. "EUR -0.19"

# Representation

Money is a struct with two fields: a [Currency] and a signed number of minor
units (hundredths). The whole and fractional parts are derived from the
minor units, so a value strictly between -1 and 0 keeps its sign even though
its whole part is zero.
Every value has exactly one representation, hence values can be compared
with the == operator and used as map keys.

The Currency type is implemented as an integer index into an in-memory array
containing the alphabetic and numeric codes of each currency.

# Supported Ranges

The absolute number of minor units must not exceed [math.MaxInt64].
For US Dollars this allows values up to 92,233,720,368,547,758.07.

# Operations

Addition and subtraction are exact and require both values to be denominated
in the same currency.
Multiplication and division accept [decimal.Decimal] or float64 arguments.
The exact result is rounded to two digits after the decimal point using
rounding half away from zero, which is the convention used for currencies,
rather than the rounding half to even used by binary floating-point numbers.

# Errors

Constructors and operations return errors wrapping one of the sentinel
errors [ErrInvalidFormat], [ErrInvalidValue], [ErrIncompatibleCurrency] and
[ErrDivisionByZero], which can be checked with [errors.Is].
No partial results are returned on error.
*/
package money

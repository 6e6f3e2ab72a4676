package datatype

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// RateType is the unit of a [Rate].
type RateType uint8

const (
	Percent  RateType = iota // parts per hundred, symbol "%"
	Permille                 // parts per thousand, symbol "‰"
)

// Symbol returns "%" or "‰".
func (t RateType) Symbol() string {
	switch t {
	case Permille:
		return "‰"
	default:
		return "%"
	}
}

// String returns the name of the rate type.
func (t RateType) String() string {
	switch t {
	case Percent:
		return "Percent"
	case Permille:
		return "Permille"
	default:
		return fmt.Sprintf("RateType(%d)", uint8(t))
	}
}

// exponent returns the power of ten of the denominator.
func (t RateType) exponent() int {
	if t == Permille {
		return 3
	}
	return 2
}

func parseRateType(sym string) (RateType, bool) {
	switch sym {
	case "%":
		return Percent, true
	case "‰":
		return Permille, true
	default:
		return 0, false
	}
}

// Rate type represents a percentage or a per mille rate as a fixed-point
// number, such as "12.5 %".
// Its zero value corresponds to "0 %".
// Rate is designed to be safe for concurrent use by multiple goroutines.
type Rate struct {
	value    int64    // mantissa
	decimals int      // the position of the decimal point, 0..MaxScale
	typ      RateType // unit
}

// NewRate returns a rate equal to value / 10^decimals in the given unit.
//
// NewRate returns an error if decimals is negative or greater than
// [MaxScale], or if the rate type is unknown.
func NewRate(value int64, decimals int, typ RateType) (Rate, error) {
	if decimals < 0 || decimals > MaxScale {
		return Rate{}, fmt.Errorf("decimals %v is not between 0 and %v: %w", decimals, MaxScale, ErrOutOfRange)
	}
	if typ > Permille {
		return Rate{}, fmt.Errorf("unknown rate type %v: %w", typ, ErrOutOfRange)
	}
	return Rate{value: value, decimals: decimals, typ: typ}, nil
}

// ParseRate converts a string in the format "<number> <symbol>" to a rate,
// for example "12.5 %" or "-3 ‰".
//
// ParseRate returns an error if:
//   - the number and the symbol are not separated by exactly one space;
//   - the symbol is neither "%" nor "‰";
//   - the number is not valid, see [ParseAmount].
func ParseRate(s string) (Rate, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return Rate{}, fmt.Errorf("rate %q must have a number and a rate type separated by a space: %w", s, ErrMalformedInput)
	}
	typ, ok := parseRateType(parts[1])
	if !ok {
		return Rate{}, fmt.Errorf("rate %q: rate type must be %% or ‰: %w", s, ErrMalformedInput)
	}
	value, decimals, err := parseSigned(parts[0])
	if err != nil {
		return Rate{}, fmt.Errorf("parsing number: %w", err)
	}
	return NewRate(value, decimals, typ)
}

// Mantissa returns the integer value of r without the decimal point.
func (r Rate) Mantissa() int64 {
	return r.value
}

// Decimals returns the number of digits after the decimal point.
func (r Rate) Decimals() int {
	return r.decimals
}

// Type returns the unit of r.
func (r Rate) Type() RateType {
	return r.typ
}

// IsZero returns true if r == 0.
func (r Rate) IsZero() bool {
	return r.value == 0
}

// Convert returns r expressed in the given unit, for example "12.5 %" is
// "125 ‰" and "125 ‰" is "12.5 %".
//
// Convert returns an error if the result does not fit in an int64 or needs
// more than [MaxScale] digits after the decimal point.
func (r Rate) Convert(typ RateType) (Rate, error) {
	if _, err := NewRate(0, 0, typ); err != nil {
		return Rate{}, err
	}
	decimals := r.decimals + r.typ.exponent() - typ.exponent()
	value := r.value
	if decimals < 0 {
		v, ok := lsh64(value, -decimals)
		if !ok {
			return Rate{}, fmt.Errorf("converting %v to %v: %w", r, typ, ErrOverflow)
		}
		value, decimals = v, 0
	}
	if decimals > MaxScale {
		return Rate{}, fmt.Errorf("converting %v to %v: %w", r, typ, ErrOutOfRange)
	}
	return Rate{value: value, decimals: decimals, typ: typ}, nil
}

// Cmp compares the numerical values of r and q, taking their units into
// account, and returns:
//
//	-1 if r < q
//	 0 if r == q
//	+1 if r > q
func (r Rate) Cmp(q Rate) int {
	return cmpScaled(r.value, r.decimals+r.typ.exponent(), q.value, q.decimals+q.typ.exponent())
}

// Equal returns true if r and q represent the same ratio.
func (r Rate) Equal(q Rate) bool {
	return r.Cmp(q) == 0
}

// Decimal returns the number of r as written, for example 12.5 for "12.5 %".
func (r Rate) Decimal() (decimal.Decimal, error) {
	d, err := decimal.New(r.value, r.decimals)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", r, err)
	}
	return d, nil
}

// Fraction returns r as a plain ratio, for example 0.125 for "12.5 %".
//
// Fraction returns an error if the result needs more than
// [decimal.MaxScale] digits after the decimal point.
func (r Rate) Fraction() (decimal.Decimal, error) {
	d, err := decimal.New(r.value, r.decimals+r.typ.exponent())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", r, err)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the rate, such as "12.5 %".
// Also see constructor [ParseRate].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rate) String() string {
	return encodeNumber(r.value, r.decimals) + " " + r.typ.Symbol()
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rate) UnmarshalText(text []byte) error {
	q, err := ParseRate(string(text))
	if err != nil {
		return err
	}
	*r = q
	return nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts the text form of a rate as string or []byte.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (r *Rate) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		err = r.UnmarshalText([]byte(value))
	case []byte:
		err = r.UnmarshalText(value)
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, r, ErrTypeMismatch)
	}
	return err
}

// Value implements the [driver.Valuer] interface and returns the text form
// of the rate.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rate) Value() (driver.Value, error) {
	return r.String(), nil
}

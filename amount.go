package datatype

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// Amount type represents a monetary amount as a fixed-point number.
// Its zero value corresponds to "0 XXX".
// Amount is designed to be safe for concurrent use by multiple goroutines.
//
// An amount is a struct with four parameters:
//
//   - Mantissa: an integer value of the amount without the decimal point.
//   - Decimals: the number of digits of the value after the decimal point.
//   - Volume: the magnitude unit of the amount, see [Volume].
//   - Currency: the currency of the amount, see [Currency].
//
// The numerical value of an amount is Mantissa / 10^Decimals * Volume.
// For example, an amount with a mantissa of 1250, 2 decimals and the volume
// [Thousand] represents 12,500 and is written "12.50 TEUR".
// The same numerical value can have several representations, and arithmetic
// on amounts never rounds.
type Amount struct {
	value    int64    // mantissa
	decimals int      // the position of the decimal point, 0..MaxScale
	volume   Volume   // magnitude unit
	curr     Currency // currency
}

// NewAmount returns an amount equal to value / 10^decimals * volume in the
// currency curr.
//
// NewAmount returns an error if decimals is negative or greater than
// [MaxScale], or if the volume is unknown.
func NewAmount(value int64, decimals int, volume Volume, curr Currency) (Amount, error) {
	if decimals < 0 || decimals > MaxScale {
		return Amount{}, fmt.Errorf("decimals %v is not between 0 and %v: %w", decimals, MaxScale, ErrOutOfRange)
	}
	if !volume.valid() {
		return Amount{}, fmt.Errorf("unknown volume %v: %w", volume, ErrOutOfRange)
	}
	return Amount{value: value, decimals: decimals, volume: volume, curr: curr}, nil
}

// NewAmountFromDecimal returns an amount in the base volume with the
// currency curr and the numerical value of d.
// Trailing zeros beyond [MaxScale] digits after the decimal point are removed.
// Also see method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the coefficient of d does not fit
// in an int64 or d has more than [MaxScale] significant digits after the
// decimal point.
func NewAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() > MaxScale {
		d = d.Trim(MaxScale)
		if d.Scale() > MaxScale {
			return Amount{}, fmt.Errorf("converting %v: %v digit(s) after the decimal point: %w", d, d.Scale(), ErrOutOfRange)
		}
	}
	coef := d.Coef()
	if coef > math.MaxInt64 {
		return Amount{}, fmt.Errorf("converting %v: %w", d, ErrOverflow)
	}
	value := int64(coef)
	if d.IsNeg() {
		value = -value
	}
	return NewAmount(value, d.Scale(), Base, curr)
}

// ParseAmount converts a string in the format "<number> <volume><currency>"
// to an amount, for example "12.50 EUR", "-0.5 TEUR" or "3 MUSD".
//
// The number has an optional minus sign, digits and an optional decimal
// point. The number of digits after the point becomes the number of
// decimals of the amount, so trailing zeros are preserved.
//
// ParseAmount returns an error if:
//   - the number and the unit are not separated by exactly one space;
//   - the volume symbol or the currency code is not known;
//   - the number has more than one decimal point or contains other characters;
//   - the number does not fit in an int64 or has more than [MaxScale] digits
//     after the decimal point.
func ParseAmount(s string) (Amount, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return Amount{}, fmt.Errorf("amount %q must have a number and a currency separated by a space: %w", s, ErrMalformedInput)
	}
	num, unit := parts[0], parts[1]

	// Unit
	var (
		volume Volume
		code   string
		ok     bool
	)
	switch len(unit) {
	case 3:
		volume, code, ok = Base, unit, true
	case 4:
		volume, ok = parseVolume(unit[:1])
		ok = ok && volume != Base
		code = unit[1:]
	}
	if !ok {
		return Amount{}, fmt.Errorf("amount %q has unknown unit %q: %w", s, unit, ErrMalformedInput)
	}
	curr, err := ParseCurr(code)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}

	// Number
	value, decimals, err := parseSigned(num)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing number: %w", err)
	}

	return NewAmount(value, decimals, volume, curr)
}

// Mantissa returns the integer value of a without the decimal point.
func (a Amount) Mantissa() int64 {
	return a.value
}

// Decimals returns the number of digits after the decimal point.
func (a Amount) Decimals() int {
	return a.decimals
}

// Volume returns the magnitude unit of a.
func (a Amount) Volume() Volume {
	return a.volume
}

// Curr returns the currency of a.
func (a Amount) Curr() Currency {
	return a.curr
}

// SameCurr returns true if a and b are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a == 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch {
	case a.value < 0:
		return -1
	case a.value > 0:
		return 1
	default:
		return 0
	}
}

// IsZero returns true if a == 0.
func (a Amount) IsZero() bool {
	return a.value == 0
}

// IsNeg returns true if a < 0.
func (a Amount) IsNeg() bool {
	return a.value < 0
}

// IsPos returns true if a > 0.
func (a Amount) IsPos() bool {
	return a.value > 0
}

// Neg returns a with opposite sign.
// Neg returns an error if the value of a is the minimum int64.
func (a Amount) Neg() (Amount, error) {
	v, ok := neg64(a.value)
	if !ok {
		return Amount{}, fmt.Errorf("computing [-%v]: %w", a, ErrOverflow)
	}
	a.value = v
	return a, nil
}

// Abs returns the absolute value of a.
// Abs returns an error if the value of a is the minimum int64.
func (a Amount) Abs() (Amount, error) {
	if a.IsNeg() {
		return a.Neg()
	}
	return a, nil
}

// Convert returns a with the given number of decimals and volume and the
// same numerical value.
// For example, "12.5 TEUR" converted to 2 decimals and [Base] is
// "12500.00 EUR".
//
// Convert returns an error if:
//   - decimals is out of range or volume is unknown;
//   - significant digits would be lost;
//   - the result does not fit in an int64.
func (a Amount) Convert(decimals int, volume Volume) (Amount, error) {
	if _, err := NewAmount(0, decimals, volume, a.curr); err != nil {
		return Amount{}, err
	}
	v, err := a.rescale(decimals, volume)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v decimal(s) and %v volume: %w", a, decimals, volume, err)
	}
	return Amount{value: v, decimals: decimals, volume: volume, curr: a.curr}, nil
}

// Rescale returns a with the given number of decimals and the same volume.
// Also see method [Amount.Convert].
func (a Amount) Rescale(decimals int) (Amount, error) {
	return a.Convert(decimals, a.volume)
}

// rescale returns the value of a expressed with the given decimals and
// volume.
func (a Amount) rescale(decimals int, volume Volume) (int64, error) {
	shift := decimals - a.decimals + a.volume.exponent() - volume.exponent()
	if shift >= 0 {
		v, ok := lsh64(a.value, shift)
		if !ok {
			return 0, ErrOverflow
		}
		return v, nil
	}
	// Only a multiple of 10^-shift can lose digits without rounding.
	if -shift >= len(pow10) {
		if a.value != 0 {
			return 0, ErrInexact
		}
		return 0, nil
	}
	f := pow10[-shift]
	if a.value%f != 0 {
		return 0, ErrInexact
	}
	return a.value / f, nil
}

// Sum returns the exact sum of the amounts.
//
// The result has the largest number of decimals among the amounts.
// Its volume is [Base] if any amount is in [Base], otherwise [Thousand] if
// any amount is in [Thousand], otherwise [Million].
// Every amount is rescaled to that representation before it is added.
//
// Sum returns an error if:
//   - no amounts are given;
//   - the amounts are denominated in different currencies;
//   - a rescaled amount or the result does not fit in an int64.
func Sum(amounts ...Amount) (Amount, error) {
	if len(amounts) == 0 {
		return Amount{}, fmt.Errorf("computing sum: %w", ErrEmptyOperands)
	}

	// Representation of the result
	curr := amounts[0].curr
	decimals := 0
	vols := make([]Volume, len(amounts))
	for i, a := range amounts {
		if a.curr != curr {
			return Amount{}, fmt.Errorf("computing sum: %v and %v: %w", amounts[0], a, ErrCurrencyMismatch)
		}
		if a.decimals > decimals {
			decimals = a.decimals
		}
		vols[i] = a.volume
	}
	volume := sumVolume(vols)

	// Accumulation
	var total int64
	for _, a := range amounts {
		v, err := a.rescale(decimals, volume)
		if err != nil {
			return Amount{}, fmt.Errorf("computing sum: rescaling %v: %w", a, err)
		}
		var ok bool
		total, ok = add64(total, v)
		if !ok {
			return Amount{}, fmt.Errorf("computing sum: adding %v: %w", a, ErrOverflow)
		}
	}

	return Amount{value: total, decimals: decimals, volume: volume, curr: curr}, nil
}

// Add returns the exact sum of a and b.
// Also see function [Sum].
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := Sum(a, b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

// Sub returns the exact difference a - b.
// It negates b and adds it to a, so the representation of the result is
// chosen as in [Sum].
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	nb, err := b.Neg()
	if err != nil {
		return Amount{}, err
	}
	return Sum(a, nb)
}

// scaledValue returns x and s such that the numerical value of a is
// x / 10^s. The scale s can be negative.
func (a Amount) scaledValue() (x int64, s int) {
	return a.value, a.decimals - a.volume.exponent()
}

// Cmp compares the numerical values of a and b and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
//
// Cmp returns an error if the amounts are in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	x, xs := a.scaledValue()
	y, ys := b.scaledValue()
	return cmpScaled(x, xs, y, ys), nil
}

// Equal returns true if a and b have the same currency and numerical value,
// regardless of their decimals and volume.
func (a Amount) Equal(b Amount) bool {
	r, err := a.Cmp(b)
	return err == nil && r == 0
}

// Decimal returns the numerical value of a, with the volume applied, as a
// decimal. Also see constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the result has more digits than
// [decimal.MaxPrec].
func (a Amount) Decimal() (decimal.Decimal, error) {
	x, s := a.scaledValue()
	if s >= 0 {
		d, err := decimal.New(x, s)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
		}
		return d, nil
	}
	d, err := decimal.New(x, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	m, err := decimal.New(pow10[-s], 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	d, err = d.Mul(m)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", a, err)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount, such as "12.50 EUR" or "-3 MUSD".
// Also see constructor [ParseAmount].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return encodeNumber(a.value, a.decimals) + " " + a.volume.Symbol() + a.curr.Code()
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	b, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = b
	return nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts the text form of an amount as string or []byte.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		err = a.UnmarshalText([]byte(value))
	case []byte:
		err = a.UnmarshalText(value)
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, a, ErrTypeMismatch)
	}
	return err
}

// Value implements the [driver.Valuer] interface and returns the text form
// of the amount.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

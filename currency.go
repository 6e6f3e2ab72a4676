package datatype

import (
	"fmt"

	"golang.org/x/text/currency"
)

// Currency is an ISO 4217 currency.
// Amounts only ever compare currencies for equality; no exchange rates or
// minor-unit rules are applied.
// The zero value is XXX, the code for "no currency".
type Currency currency.Unit

// Frequently used currencies.
var (
	XXX = Currency{}
	EUR = Currency(currency.EUR)
	USD = Currency(currency.USD)
	GBP = Currency(currency.GBP)
	CHF = Currency(currency.CHF)
	JPY = Currency(currency.JPY)
)

// ParseCurr converts a three-letter upper-case ISO 4217 code, such as "EUR",
// to a currency.
//
// ParseCurr returns an error if the code is not three upper-case letters or
// is not a known currency.
func ParseCurr(code string) (Currency, error) {
	if len(code) != 3 {
		return Currency{}, fmt.Errorf("currency code %q must have 3 letters: %w", code, ErrMalformedInput)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return Currency{}, fmt.Errorf("currency code %q must be upper-case letters: %w", code, ErrMalformedInput)
		}
	}
	u, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, fmt.Errorf("currency code %q: %v: %w", code, err, ErrMalformedInput)
	}
	if u == currency.XXX {
		return XXX, nil
	}
	return Currency(u), nil
}

// MustParseCurr is like [ParseCurr] but panics if the code is not valid.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the three-letter ISO 4217 code of c.
func (c Currency) Code() string {
	if c == XXX {
		return "XXX"
	}
	return currency.Unit(c).String()
}

// String implements the [fmt.Stringer] interface and returns the code of c.
func (c Currency) String() string {
	return c.Code()
}

// MarshalText implements [encoding.TextMarshaler] interface.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
func (c *Currency) UnmarshalText(text []byte) error {
	d, err := ParseCurr(string(text))
	if err != nil {
		return err
	}
	*c = d
	return nil
}

package datatype

import "fmt"

// MustNewDate is like [NewDate] but panics if the date is not valid.
// It simplifies safe initialization of global variables holding dates.
func MustNewDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("NewDate(%v, %v, %v) failed: %v", year, month, day, err))
	}
	return d
}

// MustParseDate is like [ParseDate] but panics if the string cannot be parsed.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDate(%q) failed: %v", s, err))
	}
	return d
}

// MustNewMonth is like [NewMonth] but panics if the month is not valid.
func MustNewMonth(year, month int) Month {
	m, err := NewMonth(year, month)
	if err != nil {
		panic(fmt.Sprintf("NewMonth(%v, %v) failed: %v", year, month, err))
	}
	return m
}

// MustParseMonth is like [ParseMonth] but panics if the string cannot be parsed.
func MustParseMonth(s string) Month {
	m, err := ParseMonth(s)
	if err != nil {
		panic(fmt.Sprintf("ParseMonth(%q) failed: %v", s, err))
	}
	return m
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be
// constructed.
func MustNewAmount(value int64, decimals int, volume Volume, curr Currency) Amount {
	a, err := NewAmount(value, decimals, volume, curr)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v, %v, %v) failed: %v", value, decimals, volume, curr, err))
	}
	return a
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be
// parsed.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// MustSum is like [Sum] but panics if the sum cannot be computed.
func MustSum(amounts ...Amount) Amount {
	a, err := Sum(amounts...)
	if err != nil {
		panic(fmt.Sprintf("Sum(%v) failed: %v", amounts, err))
	}
	return a
}

// MustParseRate is like [ParseRate] but panics if the string cannot be parsed.
func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRate(%q) failed: %v", s, err))
	}
	return r
}

// MustNewRate is like [NewRate] but panics if the rate cannot be constructed.
func MustNewRate(value int64, decimals int, typ RateType) Rate {
	r, err := NewRate(value, decimals, typ)
	if err != nil {
		panic(fmt.Sprintf("NewRate(%v, %v, %v) failed: %v", value, decimals, typ, err))
	}
	return r
}

package datatype

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Month type represents a calendar month of a year between 1000-01 and
// 9999-12, that is a [Date] without the day.
// Month is designed to be safe for concurrent use by multiple goroutines,
// as long as its setters are only called on an exclusively owned value.
//
// The zero value is an incomplete month with none of its fields set.
type Month struct {
	year  int16 // 1000..9999, 0 when unset
	month int8  // 1..12, 0 when unset
}

// Range of the integer encoding of a month, see [Month.Int].
const (
	MinMonthInt = MinYear * 12
	MaxMonthInt = MaxYear*12 + 11
)

// NewMonth returns the month year-month.
// NewMonth returns an error if a field is out of range.
func NewMonth(year, month int) (Month, error) {
	var m Month
	if err := m.SetYearMonth(year, month); err != nil {
		return Month{}, err
	}
	return m, nil
}

// NewMonthFromInt is the inverse of [Month.Int].
// NewMonthFromInt returns an error if n is less than [MinMonthInt] or greater
// than [MaxMonthInt].
func NewMonthFromInt(n int64) (Month, error) {
	if n < MinMonthInt || n > MaxMonthInt {
		return Month{}, fmt.Errorf("month number %v is not between %v and %v: %w", n, MinMonthInt, MaxMonthInt, ErrOutOfRange)
	}
	return NewMonth(int(n/12), int(n%12)+1)
}

// ParseMonth converts a string in the format "YYYY-MM" to a month.
//
// ParseMonth returns an error if:
//   - the string is not exactly 7 characters long or is not split into
//     year and month by a hyphen;
//   - a field contains anything other than decimal digits;
//   - a field is out of range.
func ParseMonth(s string) (Month, error) {
	if len(s) != 7 {
		return Month{}, fmt.Errorf("month %q must have 7 characters: %w", s, ErrMalformedInput)
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 || len(parts[0]) != 4 {
		return Month{}, fmt.Errorf("month %q must have year and month separated by '-': %w", s, ErrMalformedInput)
	}

	year, err := parseDigits(parts[0])
	if err != nil {
		return Month{}, fmt.Errorf("parsing year: %w", err)
	}
	month, err := parseDigits(parts[1])
	if err != nil {
		return Month{}, fmt.Errorf("parsing month: %w", err)
	}

	var m Month
	if err := m.SetYear(year); err != nil {
		return Month{}, fmt.Errorf("invalid year: %w", err)
	}
	if err := m.SetMonth(month); err != nil {
		return Month{}, fmt.Errorf("invalid month: %w", err)
	}
	return m, nil
}

// SetYear sets the year of m.
// On error m is left unchanged.
func (m *Month) SetYear(year int) error {
	if err := checkYear(year); err != nil {
		return err
	}
	m.year = int16(year)
	return nil
}

// SetMonth sets the month of m.
// On error m is left unchanged.
func (m *Month) SetMonth(month int) error {
	if err := checkMonth(month); err != nil {
		return err
	}
	m.month = int8(month)
	return nil
}

// SetYearMonth sets both fields of m.
// On error m is left unchanged.
func (m *Month) SetYearMonth(year, month int) error {
	if err := checkYear(year); err != nil {
		return err
	}
	if err := checkMonth(month); err != nil {
		return err
	}
	*m = Month{year: int16(year), month: int8(month)}
	return nil
}

// Year returns the year of m, or 0 if it is not set.
func (m Month) Year() int {
	return int(m.year)
}

// Month returns the month of m (1 to 12), or 0 if it is not set.
func (m Month) Month() int {
	return int(m.month)
}

// IsZero returns true if none of the fields of m is set.
func (m Month) IsZero() bool {
	return m == Month{}
}

// IsComplete returns true if both fields of m are set.
func (m Month) IsComplete() bool {
	return m.year != 0 && m.month != 0
}

func (m Month) mustBeComplete(method string) {
	if !m.IsComplete() {
		panic(fmt.Sprintf("Month{%v, %v}.%v() failed: %v", m.year, m.month, method, ErrIncomplete))
	}
}

// Int returns year * 12 + (month - 1).
// The encoding preserves order and consecutive months map to consecutive
// integers.
//
// Int panics if m is incomplete.
func (m Month) Int() int64 {
	m.mustBeComplete("Int")
	return int64(m.Year())*12 + int64(m.Month()-1)
}

// Days returns the number of days in m.
//
// Days panics if m is incomplete.
func (m Month) Days() int {
	m.mustBeComplete("Days")
	return DaysIn(m.Year(), m.Month())
}

// FirstDay returns the first day of m.
//
// FirstDay panics if m is incomplete.
func (m Month) FirstDay() Date {
	m.mustBeComplete("FirstDay")
	return Date{year: m.year, month: m.month, day: 1}
}

// LastDay returns the last day of m.
//
// LastDay panics if m is incomplete.
func (m Month) LastDay() Date {
	m.mustBeComplete("LastDay")
	return Date{year: m.year, month: m.month, day: int8(m.Days())}
}

// AddMonths returns the month n months after m (or before m, if n is
// negative).
//
// AddMonths returns an error if m is incomplete or if the result is outside
// the supported range.
func (m Month) AddMonths(n int64) (Month, error) {
	if !m.IsComplete() {
		return Month{}, fmt.Errorf("adding %v month(s): %w", n, ErrIncomplete)
	}
	i, ok := add64(m.Int(), n)
	if !ok {
		return Month{}, fmt.Errorf("adding %v month(s) to %v: %w", n, m, ErrOutOfRange)
	}
	k, err := NewMonthFromInt(i)
	if err != nil {
		return Month{}, fmt.Errorf("adding %v month(s) to %v: %w", n, m, err)
	}
	return k, nil
}

// Next returns the month after m.
// Next returns an error if m is 9999-12 or incomplete.
func (m Month) Next() (Month, error) {
	return m.AddMonths(1)
}

// Prev returns the month before m.
// Prev returns an error if m is 1000-01 or incomplete.
func (m Month) Prev() (Month, error) {
	return m.AddMonths(-1)
}

// Contains returns true if d is a day of m.
func (m Month) Contains(d Date) bool {
	return m.IsComplete() && d.IsComplete() && m.year == d.year && m.month == d.month
}

// Cmp compares m and k and returns:
//
//	-1 if m < k
//	 0 if m == k
//	+1 if m > k
func (m Month) Cmp(k Month) int {
	switch {
	case m.year < k.year:
		return -1
	case m.year > k.year:
		return 1
	case m.month < k.month:
		return -1
	case m.month > k.month:
		return 1
	}
	return 0
}

// String implements the [fmt.Stringer] interface and returns the month in
// the format "YYYY-MM".
// It returns an empty string if m is incomplete.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Month) String() string {
	if !m.IsComplete() {
		return ""
	}
	var buf [7]byte
	putDigits(buf[0:4], m.Year())
	buf[4] = '-'
	putDigits(buf[5:7], m.Month())
	return string(buf[:])
}

// MarshalText implements [encoding.TextMarshaler] interface.
// The zero month is marshalled to an empty text.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Month) MarshalText() ([]byte, error) {
	switch {
	case m.IsZero():
		return []byte{}, nil
	case !m.IsComplete():
		return nil, fmt.Errorf("marshalling month: %w", ErrIncomplete)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// An empty text is unmarshalled to the zero month.
// Also see constructor [ParseMonth].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Month) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = Month{}
		return nil
	}
	k, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = k
	return nil
}

// MarshalInt implements the [IntCodec] interface.
// Also see method [Month.Int].
func (m Month) MarshalInt() (int64, error) {
	if !m.IsComplete() {
		return 0, fmt.Errorf("marshalling month: %w", ErrIncomplete)
	}
	return m.Int(), nil
}

// UnmarshalInt implements the [IntCodec] interface.
// Also see constructor [NewMonthFromInt].
func (m *Month) UnmarshalInt(n int64) error {
	k, err := NewMonthFromInt(n)
	if err != nil {
		return err
	}
	*m = k
	return nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts the canonical text as string or []byte, the integer encoding
// as int64, and nil, which sets m to the zero month.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Month) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case nil:
		*m = Month{}
	case string:
		err = m.UnmarshalText([]byte(value))
	case []byte:
		err = m.UnmarshalText(value)
	case int64:
		err = m.UnmarshalInt(value)
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, m, ErrTypeMismatch)
	}
	return err
}

// Value implements the [driver.Valuer] interface and returns the month in
// the format "YYYY-MM", or nil for the zero month.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Month) Value() (driver.Value, error) {
	switch {
	case m.IsZero():
		return nil, nil
	case !m.IsComplete():
		return nil, fmt.Errorf("converting month: %w", ErrIncomplete)
	}
	return m.String(), nil
}

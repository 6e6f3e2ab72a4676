package datatype

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date type represents a calendar date in the proleptic Gregorian calendar
// between 1000-01-01 and 9999-12-31.
// It has no time of day and no time zone.
// Date is designed to be safe for concurrent use by multiple goroutines,
// as long as its setters are only called on an exclusively owned value.
//
// The zero value is an incomplete date with none of its fields set.
// It marshals to an empty string and to SQL NULL.
// Dates returned by the constructors of this package are always complete.
type Date struct {
	year  int16 // 1000..9999, 0 when unset
	month int8  // 1..12, 0 when unset
	day   int8  // 1..31, 0 when unset
}

// NewDate returns the date year-month-day.
//
// NewDate returns an error if a field is out of range or if the day does
// not exist in that month of that year.
func NewDate(year, month, day int) (Date, error) {
	var d Date
	if err := d.SetDate(year, month, day); err != nil {
		return Date{}, err
	}
	return d, nil
}

// NewDateFromDays returns the date with the given day-number.
// Day-number 0 is 1000-01-01.
// Also see method [Date.Days].
//
// NewDateFromDays returns an error if days is less than [MinDays] or
// greater than [MaxDays].
func NewDateFromDays(days int64) (Date, error) {
	if days < MinDays || days > MaxDays {
		return Date{}, fmt.Errorf("day-number %v is not between %v and %v: %w", days, MinDays, MaxDays, ErrOutOfRange)
	}
	y, m, d := dateFromDays(days)
	return Date{year: int16(y), month: int8(m), day: int8(d)}, nil
}

// NewDateFromTime returns the calendar date of t in the location of t.
// The time of day is discarded.
func NewDateFromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// ParseDate converts a string in the format "YYYY-MM-DD" to a date.
//
// ParseDate returns an error if:
//   - the string is not exactly 10 characters long or is not split into
//     year, month and day by two hyphens;
//   - a field contains anything other than decimal digits;
//   - a field is out of range or the day does not exist.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 {
		return Date{}, fmt.Errorf("date %q must have 10 characters: %w", s, ErrMalformedInput)
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return Date{}, fmt.Errorf("date %q must have year, month and day separated by '-': %w", s, ErrMalformedInput)
	}

	year, err := parseDigits(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("parsing year: %w", err)
	}
	month, err := parseDigits(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("parsing month: %w", err)
	}
	day, err := parseDigits(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("parsing day: %w", err)
	}

	var d Date
	if err := d.SetYear(year); err != nil {
		return Date{}, fmt.Errorf("invalid year: %w", err)
	}
	if err := d.SetMonth(month); err != nil {
		return Date{}, fmt.Errorf("invalid month: %w", err)
	}
	if err := d.SetDay(day); err != nil {
		return Date{}, fmt.Errorf("invalid day: %w", err)
	}
	return d, nil
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year %v is not between %v and %v: %w", year, MinYear, MaxYear, ErrOutOfRange)
	}
	return nil
}

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %v is not between 1 and 12: %w", month, ErrOutOfRange)
	}
	return nil
}

func checkDay(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("day %v is not between 1 and 31: %w", day, ErrOutOfRange)
	}
	return nil
}

// checkDayInMonth is skipped until all three fields are known.
func checkDayInMonth(year, month, day int) error {
	if year == 0 || month == 0 || day == 0 {
		return nil
	}
	if n := DaysIn(year, month); day > n {
		return fmt.Errorf("month %v of year %v has only %v days, got %v: %w", month, year, n, day, ErrOutOfRange)
	}
	return nil
}

// SetYear sets the year of d.
// If the month and the day are already set, it also checks that the day
// exists in the resulting month.
// On error d is left unchanged.
func (d *Date) SetYear(year int) error {
	if err := checkYear(year); err != nil {
		return err
	}
	if err := checkDayInMonth(year, d.Month(), d.Day()); err != nil {
		return err
	}
	d.year = int16(year)
	return nil
}

// SetMonth sets the month of d.
// If the year and the day are already set, it also checks that the day
// exists in the resulting month.
// On error d is left unchanged.
func (d *Date) SetMonth(month int) error {
	if err := checkMonth(month); err != nil {
		return err
	}
	if err := checkDayInMonth(d.Year(), month, d.Day()); err != nil {
		return err
	}
	d.month = int8(month)
	return nil
}

// SetDay sets the day of d.
// If the year and the month are already set, it also checks that the day
// exists in that month.
// On error d is left unchanged.
func (d *Date) SetDay(day int) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if err := checkDayInMonth(d.Year(), d.Month(), day); err != nil {
		return err
	}
	d.day = int8(day)
	return nil
}

// SetDate sets all three fields of d at once.
// Unlike a sequence of [Date.SetYear], [Date.SetMonth] and [Date.SetDay]
// calls, it does not depend on the previous value of d.
// On error d is left unchanged.
func (d *Date) SetDate(year, month, day int) error {
	if err := checkYear(year); err != nil {
		return err
	}
	if err := checkMonth(month); err != nil {
		return err
	}
	if err := checkDay(day); err != nil {
		return err
	}
	if err := checkDayInMonth(year, month, day); err != nil {
		return err
	}
	*d = Date{year: int16(year), month: int8(month), day: int8(day)}
	return nil
}

// Year returns the year of d, or 0 if it is not set.
func (d Date) Year() int {
	return int(d.year)
}

// Month returns the month of d (1 to 12), or 0 if it is not set.
func (d Date) Month() int {
	return int(d.month)
}

// Day returns the day of month of d (1 to 31), or 0 if it is not set.
func (d Date) Day() int {
	return int(d.day)
}

// IsZero returns true if none of the fields of d is set.
func (d Date) IsZero() bool {
	return d == Date{}
}

// IsComplete returns true if all fields of d are set.
func (d Date) IsComplete() bool {
	return d.year != 0 && d.month != 0 && d.day != 0
}

func (d Date) mustBeComplete(method string) {
	if !d.IsComplete() {
		panic(fmt.Sprintf("Date{%v, %v, %v}.%v() failed: %v", d.year, d.month, d.day, method, ErrIncomplete))
	}
}

// Days returns the day-number of d, the number of days since 1000-01-01.
// The result is between [MinDays] and [MaxDays].
// Also see constructor [NewDateFromDays].
//
// Days panics if d is incomplete.
func (d Date) Days() int64 {
	d.mustBeComplete("Days")
	return daysSinceEpoch(d.Year(), d.Month(), d.Day())
}

// AddDays returns the date n days after d (or before d, if n is negative).
//
// AddDays returns an error if d is incomplete or if the result is outside
// the supported range.
func (d Date) AddDays(n int64) (Date, error) {
	if !d.IsComplete() {
		return Date{}, fmt.Errorf("adding %v day(s): %w", n, ErrIncomplete)
	}
	days, ok := add64(d.Days(), n)
	if !ok {
		return Date{}, fmt.Errorf("adding %v day(s) to %v: %w", n, d, ErrOutOfRange)
	}
	e, err := NewDateFromDays(days)
	if err != nil {
		return Date{}, fmt.Errorf("adding %v day(s) to %v: %w", n, d, err)
	}
	return e, nil
}

// Next returns the day after d.
// Next returns an error if d is 9999-12-31 or incomplete.
func (d Date) Next() (Date, error) {
	return d.AddDays(1)
}

// Prev returns the day before d.
// Prev returns an error if d is 1000-01-01 or incomplete.
func (d Date) Prev() (Date, error) {
	return d.AddDays(-1)
}

// WeekdayNumber returns 0 if d is a Monday through 6 if d is a Sunday.
//
// WeekdayNumber panics if d is incomplete.
func (d Date) WeekdayNumber() int {
	d.mustBeComplete("WeekdayNumber")
	return weekdayNumber(d.Days())
}

// Weekday returns the day of the week of d.
//
// Weekday panics if d is incomplete.
func (d Date) Weekday() Weekday {
	d.mustBeComplete("Weekday")
	return Weekday(weekdayNumber(d.Days()))
}

// CalendarWeek returns the ISO 8601 week number of d, between 1 and 53.
// Week 1 is the week containing the first Thursday of the year, so the first
// days of January can belong to week 52 or 53 of the previous year and the
// last days of December to week 1 of the next year.
//
// CalendarWeek panics if d is incomplete.
func (d Date) CalendarWeek() int {
	d.mustBeComplete("CalendarWeek")
	return calendarWeek(d.Year(), d.Month(), d.Day())
}

// FirstDayOfYear returns January 1 of the year of d.
//
// FirstDayOfYear panics if d is incomplete.
func (d Date) FirstDayOfYear() Date {
	d.mustBeComplete("FirstDayOfYear")
	return Date{year: d.year, month: 1, day: 1}
}

// LastDayOfYear returns December 31 of the year of d.
//
// LastDayOfYear panics if d is incomplete.
func (d Date) LastDayOfYear() Date {
	d.mustBeComplete("LastDayOfYear")
	return Date{year: d.year, month: 12, day: 31}
}

// LastDayOfPreviousYear returns December 31 of the year before d.
// It returns an error if d is in year [MinYear] or incomplete.
func (d Date) LastDayOfPreviousYear() (Date, error) {
	if !d.IsComplete() {
		return Date{}, ErrIncomplete
	}
	return NewDate(d.Year()-1, 12, 31)
}

// YearMonth returns the month that contains d.
//
// YearMonth panics if d is incomplete.
func (d Date) YearMonth() Month {
	d.mustBeComplete("YearMonth")
	return Month{year: d.year, month: d.month}
}

// Time returns midnight UTC at the beginning of d.
//
// Time panics if d is incomplete.
func (d Date) Time() time.Time {
	d.mustBeComplete("Time")
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Cmp compares d and e field by field and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Date) Cmp(e Date) int {
	switch {
	case d.year < e.year:
		return -1
	case d.year > e.year:
		return 1
	case d.month < e.month:
		return -1
	case d.month > e.month:
		return 1
	case d.day < e.day:
		return -1
	case d.day > e.day:
		return 1
	}
	return 0
}

// Equal returns true if d and e denote the same day.
func (d Date) Equal(e Date) bool {
	return d == e
}

// Before returns true if d is earlier than e.
func (d Date) Before(e Date) bool {
	return d.Cmp(e) < 0
}

// After returns true if d is later than e.
func (d Date) After(e Date) bool {
	return d.Cmp(e) > 0
}

// String implements the [fmt.Stringer] interface and returns the date in
// the format "YYYY-MM-DD".
// It returns an empty string if d is incomplete.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Date) String() string {
	if !d.IsComplete() {
		return ""
	}
	var buf [10]byte
	putDigits(buf[0:4], d.Year())
	buf[4] = '-'
	putDigits(buf[5:7], d.Month())
	buf[7] = '-'
	putDigits(buf[8:10], d.Day())
	return string(buf[:])
}

// putDigits writes n into buf right-aligned and zero-padded.
func putDigits(buf []byte, n int) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
}

// MarshalText implements [encoding.TextMarshaler] interface.
// The zero date is marshalled to an empty text.
// Also see method [Date.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	switch {
	case d.IsZero():
		return []byte{}, nil
	case !d.IsComplete():
		return nil, fmt.Errorf("marshalling date: %w", ErrIncomplete)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// An empty text is unmarshalled to the zero date.
// Also see constructor [ParseDate].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	e, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// MarshalInt implements the [IntCodec] interface and returns the day-number
// of d. Also see method [Date.Days].
func (d Date) MarshalInt() (int64, error) {
	if !d.IsComplete() {
		return 0, fmt.Errorf("marshalling date: %w", ErrIncomplete)
	}
	return d.Days(), nil
}

// UnmarshalInt implements the [IntCodec] interface.
// Also see constructor [NewDateFromDays].
func (d *Date) UnmarshalInt(days int64) error {
	e, err := NewDateFromDays(days)
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts the canonical text as string or []byte, a day-number as int64,
// a [time.Time] (its calendar date in its own location) and nil, which
// sets d to the zero date.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Date) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case nil:
		*d = Date{}
	case string:
		err = d.UnmarshalText([]byte(value))
	case []byte:
		err = d.UnmarshalText(value)
	case int64:
		err = d.UnmarshalInt(value)
	case time.Time:
		var e Date
		e, err = NewDateFromTime(value)
		if err == nil {
			*d = e
		}
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, d, ErrTypeMismatch)
	}
	return err
}

// Value implements the [driver.Valuer] interface and returns the date in
// the format "YYYY-MM-DD", or nil for the zero date.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Date) Value() (driver.Value, error) {
	switch {
	case d.IsZero():
		return nil, nil
	case !d.IsComplete():
		return nil, fmt.Errorf("converting date: %w", ErrIncomplete)
	}
	return d.String(), nil
}

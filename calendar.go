package datatype

// Supported range of calendar years and of the corresponding day-numbers.
// Day-number 0 is 1000-01-01 and day-number [MaxDays] is 9999-12-31.
const (
	MinYear = 1000
	MaxYear = 9999
	MinDays = 0
	MaxDays = 3_287_181
)

// epochShift is the number of days from 0001-01-01 to 1000-01-01.
const epochShift = 364_877

// epochWeekday is the weekday number of 1000-01-01, a Wednesday.
const epochWeekday = 2

// daysPerMonth holds month lengths of a common year.
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// yearSpans decomposes a number of elapsed Gregorian years into 400, 100,
// 4 and 1 year blocks together with the number of days in each block.
var yearSpans = [...]struct {
	years int64
	days  int64
}{
	{400, 146_097}, // 100-year * 4 + 1
	{100, 36_524},  // 4-year * 25 - 1
	{4, 1_461},     // 1-year * 4 + 1
	{1, 365},
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	case year%4 == 0:
		return true
	default:
		return false
	}
}

// DaysIn returns the number of days in the month of the year.
// It returns 0 if month is not between 1 and 12.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// daysBeforeYear returns the day-number of January 1 of the year.
func daysBeforeYear(year int) int64 {
	y := int64(year) - 1
	days := int64(0)
	for _, span := range yearSpans {
		n := y / span.years
		y -= n * span.years
		days += n * span.days
	}
	return days - epochShift
}

// daysSinceEpoch returns the day-number of the date.
// The arguments are not validated.
func daysSinceEpoch(year, month, day int) int64 {
	days := daysBeforeYear(year)
	for m := 1; m < month; m++ {
		days += int64(DaysIn(year, m))
	}
	return days + int64(day-1)
}

// dateFromDays is the inverse of [daysSinceEpoch] for days between [MinDays]
// and [MaxDays].
func dateFromDays(days int64) (year, month, day int) {
	var y int64
	days += epochShift
	for _, span := range yearSpans {
		if days == 0 {
			break
		}
		// The last day of a 400-year or a 4-year block would be counted
		// as the first day of a block that does not exist.
		if days == 146_096 {
			y += 399
			days = 365
			break
		}
		if days == 1_460 {
			y += 3
			days = 365
			break
		}
		n := days / span.days
		days -= n * span.days
		y += n * span.years
	}
	year = int(y) + 1

	month = 1
	for ; month < 12; month++ {
		n := int64(DaysIn(year, month))
		if n > days {
			break
		}
		days -= n
	}
	return year, month, int(days) + 1
}

// weekdayNumber returns 0 for Monday through 6 for Sunday.
func weekdayNumber(days int64) int {
	n := (days + epochWeekday) % 7
	if n < 0 {
		n += 7
	}
	return int(n)
}

// calendarWeek returns the ISO 8601 week number of the date.
// The arguments are not validated, so the previous year may lie outside
// the supported range.
func calendarWeek(year, month, day int) int {
	first := daysBeforeYear(year)
	firstWeekday := weekdayNumber(first)

	week := int((daysSinceEpoch(year, month, day) - first + int64(firstWeekday)) / 7)
	if firstWeekday < 4 { // January 1 is Monday to Thursday
		week++
	}

	switch week {
	case 0:
		return calendarWeek(year-1, 12, 31)
	case 53:
		last := daysSinceEpoch(year, 12, 31)
		if weekdayNumber(last) < 3 { // December 31 is Monday to Wednesday
			return 1
		}
	}
	return week
}

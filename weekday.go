package datatype

import "fmt"

// Weekday specifies a day of the week.
// Unlike [time.Weekday], the week starts on Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// String returns the English name of the day ("Monday", "Tuesday", ...).
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("%%!Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

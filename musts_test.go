package datatype

import "testing"

func TestMust_Panics(t *testing.T) {
	tests := map[string]func(){
		"MustNewDate":     func() { MustNewDate(2023, 2, 29) },
		"MustParseDate":   func() { MustParseDate("2023-02-29") },
		"MustNewMonth":    func() { MustNewMonth(2023, 13) },
		"MustParseMonth":  func() { MustParseMonth("2023-13") },
		"MustNewAmount":   func() { MustNewAmount(1, -1, Base, EUR) },
		"MustParseAmount": func() { MustParseAmount("1.2.3 EUR") },
		"MustSum":         func() { MustSum() },
		"MustNewRate":     func() { MustNewRate(1, 0, RateType(2)) },
		"MustParseRate":   func() { MustParseRate("1 pct") },
	}
	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%v did not panic", name)
				}
			}()
			f()
		})
	}
}

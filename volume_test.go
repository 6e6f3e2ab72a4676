package datatype

import "testing"

func TestVolume(t *testing.T) {
	tests := []struct {
		v            Volume
		name, symbol string
		multiplier   int64
	}{
		{Base, "Base", "", 1},
		{Thousand, "Thousand", "T", 1_000},
		{Million, "Million", "M", 1_000_000},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.name {
			t.Errorf("Volume(%d).String() = %q, want %q", uint8(tt.v), got, tt.name)
		}
		if got := tt.v.Symbol(); got != tt.symbol {
			t.Errorf("%v.Symbol() = %q, want %q", tt.v, got, tt.symbol)
		}
		if got := tt.v.Multiplier(); got != tt.multiplier {
			t.Errorf("%v.Multiplier() = %v, want %v", tt.v, got, tt.multiplier)
		}
		got, ok := parseVolume(tt.symbol)
		if !ok || got != tt.v {
			t.Errorf("parseVolume(%q) = (%v, %v), want (%v, true)", tt.symbol, got, ok, tt.v)
		}
	}
	if got := Volume(4).String(); got != "Volume(4)" {
		t.Errorf("Volume(4).String() = %q, want \"Volume(4)\"", got)
	}
	if _, ok := parseVolume("K"); ok {
		t.Errorf("parseVolume(\"K\") succeeded")
	}
}

func TestSumVolume(t *testing.T) {
	tests := []struct {
		vols []Volume
		want Volume
	}{
		{[]Volume{Base}, Base},
		{[]Volume{Thousand}, Thousand},
		{[]Volume{Million}, Million},
		{[]Volume{Million, Thousand}, Thousand},
		{[]Volume{Million, Million}, Million},
		{[]Volume{Thousand, Million, Base}, Base},
		{[]Volume{Million, Base, Thousand}, Base},
	}
	for _, tt := range tests {
		if got := sumVolume(tt.vols); got != tt.want {
			t.Errorf("sumVolume(%v) = %v, want %v", tt.vols, got, tt.want)
		}
	}
}

func TestWeekday_String(t *testing.T) {
	tests := []struct {
		w    Weekday
		want string
	}{
		{Monday, "Monday"},
		{Wednesday, "Wednesday"},
		{Sunday, "Sunday"},
		{Weekday(7), "%!Weekday(7)"},
		{Weekday(-1), "%!Weekday(-1)"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("Weekday(%d).String() = %q, want %q", int(tt.w), got, tt.want)
		}
	}
}

package datatype

import (
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y any
			want int
		}{
			{MustParseDate("2024-01-01"), MustParseDate("2024-01-02"), -1},
			{MustParseMonth("2024-02"), MustParseMonth("2024-02"), 0},
			{MustParseAmount("1 TEUR"), MustParseAmount("999.99 EUR"), 1},
			{MustParseRate("12.5 %"), MustParseRate("125 ‰"), 0},
		}
		for _, tt := range tests {
			got, err := Compare(tt.x, tt.y)
			if err != nil {
				t.Errorf("Compare(%v, %v) failed: %v", tt.x, tt.y, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Compare(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x, y    any
			wantErr error
		}{
			{MustParseDate("2024-01-01"), MustParseMonth("2024-01"), ErrTypeMismatch},
			{MustParseDate("2024-01-01"), "2024-01-01", ErrTypeMismatch},
			{MustParseMonth("2024-01"), 24288, ErrTypeMismatch},
			{MustParseRate("1 %"), MustParseAmount("1 EUR"), ErrTypeMismatch},
			{1, 1, ErrTypeMismatch},
			{nil, nil, ErrTypeMismatch},
			{MustParseAmount("1 EUR"), MustParseAmount("1 USD"), ErrCurrencyMismatch},
		}
		for _, tt := range tests {
			_, err := Compare(tt.x, tt.y)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compare(%v, %v) returned %v, want %v", tt.x, tt.y, err, tt.wantErr)
			}
		}
	})
}

func TestTextCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		text string
		v    TextCodec
	}{
		{"2024-02-29", new(Date)},
		{"2024-02", new(Month)},
		{"-12.50 TEUR", new(Amount)},
		{"12.5 ‰", new(Rate)},
	}
	for _, tt := range tests {
		if err := tt.v.UnmarshalText([]byte(tt.text)); err != nil {
			t.Errorf("%T.UnmarshalText(%q) failed: %v", tt.v, tt.text, err)
			continue
		}
		got, err := tt.v.MarshalText()
		if err != nil {
			t.Errorf("%T.MarshalText() failed: %v", tt.v, err)
			continue
		}
		if string(got) != tt.text {
			t.Errorf("%T.MarshalText() = %q, want %q", tt.v, got, tt.text)
		}
		if tt.v.String() != tt.text {
			t.Errorf("%T.String() = %q, want %q", tt.v, tt.v.String(), tt.text)
		}
	}
}

func TestIntCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		n int64
		v IntCodec
	}{
		{0, new(Date)},
		{MaxDays, new(Date)},
		{MinMonthInt, new(Month)},
		{MaxMonthInt, new(Month)},
	}
	for _, tt := range tests {
		if err := tt.v.UnmarshalInt(tt.n); err != nil {
			t.Errorf("%T.UnmarshalInt(%v) failed: %v", tt.v, tt.n, err)
			continue
		}
		got, err := tt.v.MarshalInt()
		if err != nil {
			t.Errorf("%T.MarshalInt() failed: %v", tt.v, err)
			continue
		}
		if got != tt.n {
			t.Errorf("%T.MarshalInt() = %v, want %v", tt.v, got, tt.n)
		}
	}
}

package datatype

import (
	"errors"
	"math"
	"testing"
)

func TestParseSigned(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num          string
			wantMantissa int64
			wantDecimals int
		}{
			{"0", 0, 0},
			{"-0", 0, 0},
			{"00", 0, 0},
			{"0.00", 0, 2},
			{"1", 1, 0},
			{"-1", -1, 0},
			{"12.50", 1250, 2},
			{"-0.05", -5, 2},
			{"007.5", 75, 1},
			{".5", 5, 1},
			{"5.", 5, 0},
			{"9223372036854775807", math.MaxInt64, 0},
			{"-9223372036854775808", math.MinInt64, 0},
			{"0.922337203685477580", 922337203685477580, 18},
			{"0.000000000000000001", 1, 18},
		}
		for _, tt := range tests {
			gotMantissa, gotDecimals, err := parseSigned(tt.num)
			if err != nil {
				t.Errorf("parseSigned(%q) failed: %v", tt.num, err)
				continue
			}
			if gotMantissa != tt.wantMantissa || gotDecimals != tt.wantDecimals {
				t.Errorf("parseSigned(%q) = (%v, %v), want (%v, %v)", tt.num, gotMantissa, gotDecimals, tt.wantMantissa, tt.wantDecimals)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			num     string
			wantErr error
		}{
			"two points":     {"1.2.3", ErrMalformedInput},
			"three points":   {"1..2.", ErrMalformedInput},
			"letters":        {"12a", ErrInvalidDigits},
			"plus sign":      {"+1", ErrInvalidDigits},
			"double minus":   {"--1", ErrInvalidDigits},
			"inner minus":    {"1-2", ErrInvalidDigits},
			"space":          {" 1", ErrInvalidDigits},
			"underscore":     {"1_000", ErrInvalidDigits},
			"exponent":       {"1e5", ErrInvalidDigits},
			"empty":          {"", ErrInvalidDigits},
			"minus only":     {"-", ErrInvalidDigits},
			"point only":     {".", ErrInvalidDigits},
			"too many decs":  {"0.0000000000000000001", ErrOutOfRange},
			"overflow 1":     {"9223372036854775808", ErrOutOfRange},
			"overflow 2":     {"-9223372036854775809", ErrOutOfRange},
			"overflow 3":     {"99999999999999999999", ErrOutOfRange},
			"overflow digit": {"18446744073709551616", ErrOutOfRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, _, err := parseSigned(tt.num)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("parseSigned(%q) returned %v, want %v", tt.num, err, tt.wantErr)
				}
			})
		}
	})
}

func TestEncodeNumber(t *testing.T) {
	tests := []struct {
		mantissa int64
		decimals int
		want     string
	}{
		{0, 0, "0"},
		{0, 1, "0.0"},
		{0, 3, "0.000"},
		{1, 0, "1"},
		{1, 1, "0.1"},
		{-5, 2, "-0.05"},
		{1250, 2, "12.50"},
		{-1250, 2, "-12.50"},
		{100, 2, "1.00"},
		{123, 0, "123"},
		{math.MaxInt64, 0, "9223372036854775807"},
		{math.MinInt64, 0, "-9223372036854775808"},
		{math.MinInt64, 18, "-9.223372036854775808"},
		{math.MaxInt64, 18, "9.223372036854775807"},
		{1, 18, "0.000000000000000001"},
	}
	for _, tt := range tests {
		got := encodeNumber(tt.mantissa, tt.decimals)
		if got != tt.want {
			t.Errorf("encodeNumber(%v, %v) = %q, want %q", tt.mantissa, tt.decimals, got, tt.want)
		}
	}
}

func TestParseDigits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			field string
			want  int
		}{
			{"0", 0},
			{"01", 1},
			{"2024", 2024},
			{"0009", 9},
		}
		for _, tt := range tests {
			got, err := parseDigits(tt.field)
			if err != nil {
				t.Errorf("parseDigits(%q) failed: %v", tt.field, err)
				continue
			}
			if got != tt.want {
				t.Errorf("parseDigits(%q) = %v, want %v", tt.field, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "+1", "-1", " 1", "1a", "1.0", "0x1"}
		for _, field := range tests {
			_, err := parseDigits(field)
			if !errors.Is(err, ErrInvalidDigits) {
				t.Errorf("parseDigits(%q) returned %v, want %v", field, err, ErrInvalidDigits)
			}
		}
	})
}

func TestLsh64(t *testing.T) {
	tests := []struct {
		x      int64
		shift  int
		want   int64
		wantOk bool
	}{
		{0, 100, 0, true},
		{1, 0, 1, true},
		{1, -3, 1, true},
		{1, 18, 1_000_000_000_000_000_000, true},
		{1, 19, 0, false},
		{-9, 18, -9_000_000_000_000_000_000, true},
		{10, 18, 0, false},
		{math.MaxInt64, 1, 0, false},
		{math.MinInt64, 1, 0, false},
	}
	for _, tt := range tests {
		got, ok := lsh64(tt.x, tt.shift)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("lsh64(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.shift, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestAdd64(t *testing.T) {
	tests := []struct {
		x, y   int64
		want   int64
		wantOk bool
	}{
		{1, 2, 3, true},
		{-1, 1, 0, true},
		{math.MaxInt64, 0, math.MaxInt64, true},
		{math.MaxInt64, 1, 0, false},
		{math.MinInt64, -1, 0, false},
		{math.MinInt64, math.MaxInt64, -1, true},
	}
	for _, tt := range tests {
		got, ok := add64(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("add64(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestCmpScaled(t *testing.T) {
	tests := []struct {
		x      int64
		xscale int
		y      int64
		yscale int
		want   int
	}{
		{0, 0, 0, 5, 0},
		{1, 0, 10, 1, 0},
		{1, 0, 11, 1, -1},
		{125, 3, 125, 1, -1},
		{5, -3, 5000, 0, 0},
		{-1, 0, 1, 18, -1},
		// Alignment overflows int64
		{math.MaxInt64, 0, math.MaxInt64, 18, 1},
		{math.MinInt64, 0, math.MinInt64, 18, -1},
		{1, -20, math.MaxInt64, 0, 1},
		{-1, -20, math.MinInt64, 0, -1},
		{1, -18, 1, -18, 0},
	}
	for _, tt := range tests {
		got := cmpScaled(tt.x, tt.xscale, tt.y, tt.yscale)
		if got != tt.want {
			t.Errorf("cmpScaled(%v, %v, %v, %v) = %v, want %v", tt.x, tt.xscale, tt.y, tt.yscale, got, tt.want)
		}
		if got := cmpScaled(tt.y, tt.yscale, tt.x, tt.xscale); got != -tt.want {
			t.Errorf("cmpScaled(%v, %v, %v, %v) = %v, want %v", tt.y, tt.yscale, tt.x, tt.xscale, got, -tt.want)
		}
	}
}

func FuzzParseSigned(f *testing.F) {
	for _, s := range []string{"0", "-0.05", "12.50", "9223372036854775807", "-9223372036854775808", "1.2.3", "1e5"} {
		f.Add(s)
	}

	f.Fuzz(
		func(t *testing.T, num string) {
			mantissa, decimals, err := parseSigned(num)
			if err != nil {
				t.Skip()
				return
			}
			s := encodeNumber(mantissa, decimals)
			gotMantissa, gotDecimals, err := parseSigned(s)
			if err != nil {
				t.Errorf("parseSigned(%q) failed: %v", s, err)
				return
			}
			if gotMantissa != mantissa || gotDecimals != decimals {
				t.Errorf("parseSigned(encodeNumber(%v, %v)) = (%v, %v)", mantissa, decimals, gotMantissa, gotDecimals)
			}
		},
	)
}

func FuzzEncodeNumber(f *testing.F) {
	f.Add(int64(0), 0)
	f.Add(int64(-5), 2)
	f.Add(int64(math.MinInt64), 18)
	f.Add(int64(math.MaxInt64), 7)

	f.Fuzz(
		func(t *testing.T, mantissa int64, decimals int) {
			if decimals < 0 || decimals > MaxScale {
				t.Skip()
				return
			}
			s := encodeNumber(mantissa, decimals)
			gotMantissa, gotDecimals, err := parseSigned(s)
			if err != nil {
				t.Errorf("parseSigned(%q) failed: %v", s, err)
				return
			}
			if gotMantissa != mantissa || gotDecimals != decimals {
				t.Errorf("parseSigned(%q) = (%v, %v), want (%v, %v)", s, gotMantissa, gotDecimals, mantissa, decimals)
			}
		},
	)
}

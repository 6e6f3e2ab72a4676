package datatype

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MaxScale is the maximum number of digits after the decimal point of an
// [Amount] or a [Rate]. It is the largest n for which 10^n fits in an int64.
const MaxScale = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// add64 calculates x + y and checks overflow.
func add64(x, y int64) (z int64, ok bool) {
	z = x + y
	if (y > 0 && z < x) || (y < 0 && z > x) {
		return 0, false
	}
	return z, true
}

// mul64 calculates x * y and checks overflow.
func mul64(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// lsh64 (Left Shift) calculates x * 10^shift and checks overflow.
func lsh64(x int64, shift int) (z int64, ok bool) {
	switch {
	case shift <= 0:
		return x, true
	case x == 0:
		return 0, true
	case shift >= len(pow10):
		return 0, false
	}
	return mul64(x, pow10[shift])
}

// neg64 calculates -x and checks overflow.
func neg64(x int64) (z int64, ok bool) {
	if x == math.MinInt64 {
		return 0, false
	}
	return -x, true
}

// cmpScaled compares x / 10^xscale with y / 10^yscale and returns -1, 0 or +1.
func cmpScaled(x int64, xscale int, y int64, yscale int) int {
	r, ok := cmpScaledFast(x, xscale, y, yscale)
	if !ok {
		r = cmpScaledSlow(x, xscale, y, yscale)
	}
	return r
}

func cmpScaledFast(x int64, xscale int, y int64, yscale int) (int, bool) {
	var ok bool

	// Alignment
	switch {
	case yscale < xscale:
		y, ok = lsh64(y, xscale-yscale)
		if !ok {
			return 0, false
		}
	case xscale < yscale:
		x, ok = lsh64(x, yscale-xscale)
		if !ok {
			return 0, false
		}
	}

	// Comparison
	switch {
	case x < y:
		return -1, true
	case y < x:
		return 1, true
	default:
		return 0, true
	}
}

func cmpScaledSlow(x int64, xscale int, y int64, yscale int) int {
	bx := big.NewInt(x)
	by := big.NewInt(y)
	ten := big.NewInt(10)

	// Alignment
	switch {
	case yscale < xscale:
		by.Mul(by, new(big.Int).Exp(ten, big.NewInt(int64(xscale-yscale)), nil))
	case xscale < yscale:
		bx.Mul(bx, new(big.Int).Exp(ten, big.NewInt(int64(yscale-xscale)), nil))
	}

	return bx.Cmp(by)
}

// parseSigned converts a fixed-point number with an optional leading minus
// sign into a mantissa and a scale.
// Also see function [decodeNumber].
func parseSigned(num string) (mantissa int64, decimals int, err error) {
	neg := false
	if strings.HasPrefix(num, "-") {
		neg = true
		num = num[1:]
	}
	abs, decimals, err := decodeNumber(num)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case neg && abs == 1<<63:
		return math.MinInt64, decimals, nil
	case abs > math.MaxInt64:
		return 0, 0, fmt.Errorf("number %q does not fit in 64 bits: %w", num, ErrOutOfRange)
	case neg:
		return -int64(abs), decimals, nil
	default:
		return int64(abs), decimals, nil
	}
}

// decodeNumber converts an unsigned fixed-point number, such as "123.45", into
// a mantissa (12345) and the number of digits after the decimal point (2).
//
// The digits are parsed as one integer and then formatted again.
// If the result differs from the digits with leading zeros removed, the input
// contained something other than plain decimal digits.
func decodeNumber(num string) (abs uint64, decimals int, err error) {
	parts := strings.Split(num, ".")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("number %q has more than one decimal point: %w", num, ErrMalformedInput)
	}
	whole, frac := parts[0], ""
	if len(parts) == 2 {
		frac = parts[1]
	}

	decimals = len(frac)
	if decimals > MaxScale {
		return 0, 0, fmt.Errorf("number %q has %v digit(s) after the decimal point, at most %v are allowed: %w", num, decimals, MaxScale, ErrOutOfRange)
	}

	digits := whole + frac
	if digits == "" {
		return 0, 0, fmt.Errorf("number %q has no digits: %w", num, ErrInvalidDigits)
	}

	abs, err = strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if isDigits(digits) {
			return 0, 0, fmt.Errorf("number %q does not fit in 64 bits: %w", num, ErrOutOfRange)
		}
		return 0, 0, fmt.Errorf("invalid character in number %q: %w", num, ErrInvalidDigits)
	}

	stripped := strings.TrimLeft(digits, "0")
	if stripped == "" {
		stripped = "0"
	}
	if strconv.FormatUint(abs, 10) != stripped {
		return 0, 0, fmt.Errorf("invalid character in number %q: %w", num, ErrInvalidDigits)
	}

	return abs, decimals, nil
}

// encodeNumber is the inverse of [parseSigned].
// It formats mantissa / 10^decimals without exponent, for example
// encodeNumber(-5, 2) returns "-0.05".
func encodeNumber(mantissa int64, decimals int) string {
	var (
		buf [40]byte
		pos int
		abs uint64
	)

	pos = len(buf) - 1
	if mantissa < 0 {
		abs = uint64(-(mantissa + 1)) + 1
	} else {
		abs = uint64(mantissa)
	}

	// Digits, zero-padded until they reach past the decimal point
	n := 0
	for {
		buf[pos] = byte(abs%10) + '0'
		pos--
		abs /= 10
		n++
		if decimals > 0 && n == decimals {
			buf[pos] = '.'
			pos--
		}
		if abs == 0 && n > decimals {
			break
		}
	}

	// Sign
	if mantissa < 0 {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// parseDigits converts a fixed-width field of decimal digits to an integer.
// Unlike [strconv.Atoi], it rejects signs and surrounding spaces.
func parseDigits(field string) (int, error) {
	if field == "" || !isDigits(field) {
		return 0, fmt.Errorf("invalid character in %q: %w", field, ErrInvalidDigits)
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", field, ErrOutOfRange)
	}
	return n, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

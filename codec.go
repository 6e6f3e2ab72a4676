package datatype

import (
	"encoding"
	"fmt"
)

// TextCodec is implemented by pointers to every value type of this package.
// The text form produced by MarshalText is the canonical one and is accepted
// by UnmarshalText.
type TextCodec interface {
	fmt.Stringer
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// IntCodec is implemented by pointers to the value types with an
// order-preserving integer encoding: [*Date] (day-number) and [*Month]
// (year * 12 + month - 1).
type IntCodec interface {
	MarshalInt() (int64, error)
	UnmarshalInt(n int64) error
}

var (
	_ TextCodec = (*Date)(nil)
	_ TextCodec = (*Month)(nil)
	_ TextCodec = (*Amount)(nil)
	_ TextCodec = (*Rate)(nil)
	_ IntCodec  = (*Date)(nil)
	_ IntCodec  = (*Month)(nil)
)

// Compare compares two values of this package whose types are only known at
// run time, for example after scanning columns into [any].
// It returns -1, 0 or +1 as the Cmp method of the type does.
//
// Compare returns an error if x and y are not of the same type, if the type
// is not comparable, or if both are amounts in different currencies.
func Compare(x, y any) (int, error) {
	switch x := x.(type) {
	case Date:
		if y, ok := y.(Date); ok {
			return x.Cmp(y), nil
		}
	case Month:
		if y, ok := y.(Month); ok {
			return x.Cmp(y), nil
		}
	case Amount:
		if y, ok := y.(Amount); ok {
			return x.Cmp(y)
		}
	case Rate:
		if y, ok := y.(Rate); ok {
			return x.Cmp(y), nil
		}
	}
	return 0, fmt.Errorf("comparing %T with %T: %w", x, y, ErrTypeMismatch)
}

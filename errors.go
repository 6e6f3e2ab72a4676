package datatype

import "errors"

// Sentinel errors returned, possibly wrapped, by the constructors, parsers and
// arithmetic methods of this package.
// Use [errors.Is] to test for them.
var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrInvalidDigits    = errors.New("invalid digits")
	ErrOutOfRange       = errors.New("out of range")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrEmptyOperands    = errors.New("no operands")
	ErrOverflow         = errors.New("integer overflow")
	ErrInexact          = errors.New("inexact conversion")
	ErrIncomplete       = errors.New("incomplete value")
)

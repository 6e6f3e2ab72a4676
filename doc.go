/*
Package datatype implements small immutable value types for business data:
calendar dates, calendar months, monetary amounts and rates.
Every type has exactly one canonical text form, and arithmetic is carried out
on integers, so values survive any number of round trips without loss.

# Representation

[Date] is a struct with three fields: year (1000 to 9999), month and day.
Its text form is "YYYY-MM-DD".
A date can also be encoded as a day-number, the number of days since
1000-01-01, between [MinDays] and [MaxDays].
The encoding preserves order, so it can be used as a sort key or a storage
key.

[Month] is a date without the day.
Its text form is "YYYY-MM" and its integer encoding is year * 12 + month - 1.

[Amount] is a fixed-point number with a currency and a magnitude unit:

  - Mantissa: a signed 64-bit integer.
  - Decimals: the number of digits of the mantissa after the decimal point,
    from 0 to [MaxScale].
  - Volume: [Base] (×1), [Thousand] (×1,000) or [Million] (×1,000,000).
  - Currency: an ISO 4217 [Currency].

Its text form is the number, one space, the volume symbol and the currency
code, for example "12.50 EUR" or "-3.5 TEUR".

[Rate] is a fixed-point number with a [RateType], [Percent] or [Permille].
Its text form is the number, one space and the symbol, for example "12.5 %".

# Calendar

Dates use the proleptic Gregorian calendar, time zones are not supported.
[Date.Weekday] returns the day of the week, and [Date.CalendarWeek] returns
the ISO 8601 week number, where week 1 is the week with the first Thursday
of the year.

# Arithmetic

[Sum] adds amounts that may have different decimals and volumes.
The result has the largest number of decimals among the operands,
and its volume is [Base] if any operand is in [Base], otherwise [Thousand]
if any operand is in [Thousand], otherwise [Million].
Every operand is rescaled to this representation before it is added,
so the result is always exact.
[Amount.Sub] negates its argument and delegates to [Sum].

# Errors

Constructors, parsers and arithmetic methods return errors instead of
panicking, and a failed operation never modifies its receiver.
The errors wrap one of the sentinel errors of this package, such as
[ErrMalformedInput], [ErrInvalidDigits], [ErrOutOfRange],
[ErrCurrencyMismatch], [ErrTypeMismatch] or [ErrEmptyOperands],
and can be tested with [errors.Is].

The zero values of [Date] and [Month] are incomplete: none of their fields
is set. Incomplete values can be completed with their setters, and they
marshal to an empty text and to SQL NULL. Derived queries, such as
[Date.Days] or [Date.Weekday], panic on incomplete values.
*/
package datatype

package datatype

import "fmt"

// Volume is the magnitude unit of an [Amount], such as "in thousands".
type Volume uint8

const (
	Base     Volume = iota // ×1, no symbol
	Thousand               // ×1,000, symbol "T"
	Million                // ×1,000,000, symbol "M"
)

// exponent returns the power of ten of the multiplier.
func (v Volume) exponent() int {
	switch v {
	case Thousand:
		return 3
	case Million:
		return 6
	default:
		return 0
	}
}

// Multiplier returns 1, 1000 or 1000000.
func (v Volume) Multiplier() int64 {
	return pow10[v.exponent()]
}

// Symbol returns the character that prefixes the currency code in the
// text form of an amount: "" for [Base], "T" for [Thousand] and "M" for
// [Million].
func (v Volume) Symbol() string {
	switch v {
	case Thousand:
		return "T"
	case Million:
		return "M"
	default:
		return ""
	}
}

// String returns the name of the volume.
func (v Volume) String() string {
	switch v {
	case Base:
		return "Base"
	case Thousand:
		return "Thousand"
	case Million:
		return "Million"
	default:
		return fmt.Sprintf("Volume(%d)", uint8(v))
	}
}

func (v Volume) valid() bool {
	return v <= Million
}

// parseVolume is the inverse of [Volume.Symbol].
func parseVolume(sym string) (Volume, bool) {
	switch sym {
	case "":
		return Base, true
	case "T":
		return Thousand, true
	case "M":
		return Million, true
	default:
		return 0, false
	}
}

// sumVolume returns the volume of the sum of amounts with the given volumes.
// Any Base operand forces Base, otherwise any Thousand operand forces
// Thousand, otherwise the result is Million.
func sumVolume(vols []Volume) Volume {
	hasThousand := false
	for _, v := range vols {
		switch v {
		case Base:
			return Base
		case Thousand:
			hasThousand = true
		}
	}
	if hasThousand {
		return Thousand
	}
	return Million
}

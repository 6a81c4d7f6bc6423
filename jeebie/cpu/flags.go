package cpu

import "github.com/valerio/go-jeebie-core/jeebie/bit"

// Bit positions of the flags inside F. Bits 3-0 are always zero on hardware.
const (
	ZeroBit      uint8 = 7
	SubtractBit  uint8 = 6
	HalfCarryBit uint8 = 5
	CarryBit     uint8 = 4
)

// Flag masks, one per bit position above.
const (
	ZeroFlag      uint8 = 1 << ZeroBit
	SubtractFlag  uint8 = 1 << SubtractBit
	HalfCarryFlag uint8 = 1 << HalfCarryBit
	CarryFlag     uint8 = 1 << CarryBit
)

// Flags is the decoded form of the F register.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte encodes the flags into the upper nibble of a byte.
// The lower nibble is always zero.
func (f Flags) Byte() uint8 {
	var b uint8
	b = bit.SetTo(ZeroBit, b, f.Zero)
	b = bit.SetTo(SubtractBit, b, f.Subtract)
	b = bit.SetTo(HalfCarryBit, b, f.HalfCarry)
	b = bit.SetTo(CarryBit, b, f.Carry)
	return b
}

// EncodeFlags is Flags.Byte as a function.
func EncodeFlags(f Flags) uint8 {
	return f.Byte()
}

// DecodeFlags reads the four flag bits out of b. The lower nibble is ignored,
// so EncodeFlags(DecodeFlags(b)) drops it.
func DecodeFlags(b uint8) Flags {
	return Flags{
		Zero:      bit.IsSet(ZeroBit, b),
		Subtract:  bit.IsSet(SubtractBit, b),
		HalfCarry: bit.IsSet(HalfCarryBit, b),
		Carry:     bit.IsSet(CarryBit, b),
	}
}

// String renders the flags as ZNHC, with '-' in place of clear flags.
func (f Flags) String() string {
	out := []byte("----")
	if f.Zero {
		out[0] = 'Z'
	}
	if f.Subtract {
		out[1] = 'N'
	}
	if f.HalfCarry {
		out[2] = 'H'
	}
	if f.Carry {
		out[3] = 'C'
	}
	return string(out)
}

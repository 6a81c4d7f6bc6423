package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valerio/go-jeebie-core/jeebie/bit"
)

// ErrUnknownRegister is returned when a register name cannot be resolved.
var ErrUnknownRegister = errors.New("unknown register")

// Registers is the LR35902 register file: eight 8-bit registers that can
// also be accessed as the 16-bit pairs AF, BC, DE and HL.
//
// The zero value is a valid register file with every register cleared.
// Post-boot values are the job of whoever resets the CPU.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	F uint8
	H uint8
	L uint8
}

// AF returns A as the high byte and F as the low byte.
func (r *Registers) AF() uint16 {
	return bit.Combine(r.A, r.F)
}

// BC returns B as the high byte and C as the low byte.
func (r *Registers) BC() uint16 {
	return bit.Combine(r.B, r.C)
}

// DE returns D as the high byte and E as the low byte.
func (r *Registers) DE() uint16 {
	return bit.Combine(r.D, r.E)
}

// HL returns H as the high byte and L as the low byte.
func (r *Registers) HL() uint16 {
	return bit.Combine(r.H, r.L)
}

// SetAF writes the high byte of value into A and the low byte into F.
// All eight bits of F are stored, including the low nibble.
func (r *Registers) SetAF(value uint16) {
	r.A = bit.High(value)
	r.F = bit.Low(value)
}

// SetBC writes the high byte of value into B and the low byte into C.
func (r *Registers) SetBC(value uint16) {
	r.B = bit.High(value)
	r.C = bit.Low(value)
}

// SetDE writes the high byte of value into D and the low byte into E.
func (r *Registers) SetDE(value uint16) {
	r.D = bit.High(value)
	r.E = bit.Low(value)
}

// SetHL writes the high byte of value into H and the low byte into L.
func (r *Registers) SetHL(value uint16) {
	r.H = bit.High(value)
	r.L = bit.Low(value)
}

// Flags decodes the current value of F.
func (r *Registers) Flags() Flags {
	return DecodeFlags(r.F)
}

// SetFlags encodes f into F, clearing the low nibble.
func (r *Registers) SetFlags(f Flags) {
	r.F = f.Byte()
}

// Reg8 names one of the eight 8-bit registers.
type Reg8 uint8

const (
	RegA Reg8 = iota
	RegB
	RegC
	RegD
	RegE
	RegF
	RegH
	RegL
)

// Regs8 lists the 8-bit registers in display order.
var Regs8 = []Reg8{RegA, RegF, RegB, RegC, RegD, RegE, RegH, RegL}

var reg8Names = [...]string{"A", "B", "C", "D", "E", "F", "H", "L"}

func (r Reg8) String() string {
	if int(r) < len(reg8Names) {
		return reg8Names[r]
	}
	return fmt.Sprintf("Reg8(%d)", uint8(r))
}

// ParseReg8 resolves a case-insensitive register name such as "a" or "H".
func ParseReg8(name string) (Reg8, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range reg8Names {
		if n == upper {
			return Reg8(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
}

// Reg16 names one of the four register pairs.
type Reg16 uint8

const (
	RegAF Reg16 = iota
	RegBC
	RegDE
	RegHL
)

// Regs16 lists the register pairs in display order.
var Regs16 = []Reg16{RegAF, RegBC, RegDE, RegHL}

// pair halves, high byte first. The order is fixed by the hardware.
var reg16Halves = [...][2]Reg8{
	RegAF: {RegA, RegF},
	RegBC: {RegB, RegC},
	RegDE: {RegD, RegE},
	RegHL: {RegH, RegL},
}

func (r Reg16) String() string {
	if int(r) < len(reg16Halves) {
		return r.High().String() + r.Low().String()
	}
	return fmt.Sprintf("Reg16(%d)", uint8(r))
}

// High returns the register holding the most significant byte of the pair.
func (r Reg16) High() Reg8 {
	return reg16Halves[r][0]
}

// Low returns the register holding the least significant byte of the pair.
func (r Reg16) Low() Reg8 {
	return reg16Halves[r][1]
}

// ParseReg16 resolves a case-insensitive pair name such as "hl" or "AF".
func ParseReg16(name string) (Reg16, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, r := range Regs16 {
		if r.String() == upper {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
}

func (r *Registers) field(reg Reg8) *uint8 {
	switch reg {
	case RegA:
		return &r.A
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegF:
		return &r.F
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register: %s", reg))
}

// Get returns the value of an 8-bit register.
func (r *Registers) Get(reg Reg8) uint8 {
	return *r.field(reg)
}

// Set overwrites an 8-bit register.
func (r *Registers) Set(reg Reg8, value uint8) {
	*r.field(reg) = value
}

// Get16 returns the value of a register pair.
func (r *Registers) Get16(reg Reg16) uint16 {
	return bit.Combine(r.Get(reg.High()), r.Get(reg.Low()))
}

// Set16 overwrites both halves of a register pair.
func (r *Registers) Set16(reg Reg16, value uint16) {
	r.Set(reg.High(), bit.High(value))
	r.Set(reg.Low(), bit.Low(value))
}

func (r Registers) String() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X [%s]",
		r.AF(), r.BC(), r.DE(), r.HL(), r.Flags())
}

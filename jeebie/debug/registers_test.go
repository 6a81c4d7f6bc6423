package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-jeebie-core/jeebie/cpu"
)

func TestRegisterLines(t *testing.T) {
	r := &cpu.Registers{}
	r.SetAF(0x01B0)
	r.SetBC(0x0013)
	r.SetDE(0x00D8)
	r.SetHL(0x014D)

	want := []string{
		"A: 0x01  F: 0xB0",
		"B: 0x00  C: 0x13",
		"D: 0x00  E: 0xD8",
		"H: 0x01  L: 0x4D",
		"AF: 0x01B0  BC: 0x0013",
		"DE: 0x00D8  HL: 0x014D",
		"Flags: Z-HC",
	}

	assert.Equal(t, want, RegisterLines(r))
}

func TestRegisterLines_flagsIgnoreLowNibble(t *testing.T) {
	r := &cpu.Registers{F: 0x4F}

	lines := RegisterLines(r)

	assert.Equal(t, "A: 0x00  F: 0x4F", lines[0])
	assert.Equal(t, "Flags: -N--", lines[len(lines)-1])
}

func TestFlagsLine(t *testing.T) {
	assert.Equal(t, "Flags: ----", FlagsLine(cpu.Flags{}))
	assert.Equal(t, "Flags: ZNHC", FlagsLine(cpu.DecodeFlags(0xF0)))
}

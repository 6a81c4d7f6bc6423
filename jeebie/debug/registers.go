package debug

import (
	"fmt"

	"github.com/valerio/go-jeebie-core/jeebie/cpu"
)

// RegisterLines renders the register file as fixed-width text lines,
// 8-bit registers first, then the pairs, then the decoded flags.
func RegisterLines(r *cpu.Registers) []string {
	return []string{
		fmt.Sprintf("A: 0x%02X  F: 0x%02X", r.A, r.F),
		fmt.Sprintf("B: 0x%02X  C: 0x%02X", r.B, r.C),
		fmt.Sprintf("D: 0x%02X  E: 0x%02X", r.D, r.E),
		fmt.Sprintf("H: 0x%02X  L: 0x%02X", r.H, r.L),
		fmt.Sprintf("AF: 0x%04X  BC: 0x%04X", r.AF(), r.BC()),
		fmt.Sprintf("DE: 0x%04X  HL: 0x%04X", r.DE(), r.HL()),
		FlagsLine(r.Flags()),
	}
}

// FlagsLine renders decoded flags as "Flags: ZNHC" with '-' for clear bits.
func FlagsLine(f cpu.Flags) string {
	return "Flags: " + f.String()
}

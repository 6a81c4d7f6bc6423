package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli"
	"github.com/valerio/go-jeebie-core/jeebie/cpu"
	"github.com/valerio/go-jeebie-core/jeebie/debug"
	"github.com/valerio/go-jeebie-core/jeebie/render"
)

var errMissingArgument = errors.New("missing argument")

// pairFlags preload register pairs, one flag per pair (--af, --bc, ...).
var pairFlags = []cli.Flag{
	cli.StringFlag{Name: "af", Usage: "Initial value of AF"},
	cli.StringFlag{Name: "bc", Usage: "Initial value of BC"},
	cli.StringFlag{Name: "de", Usage: "Initial value of DE"},
	cli.StringFlag{Name: "hl", Usage: "Initial value of HL"},
}

var pairCommand = cli.Command{
	Name:  "pair",
	Usage: "Combine a high and a low byte into a 16-bit register value",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "high", Usage: "High byte", Value: "0"},
		cli.StringFlag{Name: "low", Usage: "Low byte", Value: "0"},
	},
	Action: func(c *cli.Context) error {
		high, err := parseByte(c.String("high"))
		if err != nil {
			return err
		}
		low, err := parseByte(c.String("low"))
		if err != nil {
			return err
		}

		regs := cpu.Registers{H: high, L: low}
		fmt.Fprintf(c.App.Writer, "0x%04X\n", regs.HL())
		return nil
	},
}

var splitCommand = cli.Command{
	Name:      "split",
	Usage:     "Split a 16-bit value into the two registers of a pair",
	ArgsUsage: "<value>",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "pair", Usage: "Register pair to load (af, bc, de, hl)", Value: "hl"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: value to split", errMissingArgument)
		}

		pair, err := cpu.ParseReg16(c.String("pair"))
		if err != nil {
			return err
		}
		value, err := parseWord(c.Args().First())
		if err != nil {
			return err
		}

		var regs cpu.Registers
		regs.Set16(pair, value)
		fmt.Fprintf(c.App.Writer, "%s=0x%02X %s=0x%02X\n",
			pair.High(), regs.Get(pair.High()), pair.Low(), regs.Get(pair.Low()))
		return nil
	},
}

var flagsCommand = cli.Command{
	Name:  "flags",
	Usage: "Encode or decode the F register",
	Subcommands: []cli.Command{
		{
			Name:  "encode",
			Usage: "Print the F byte for a set of flags",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "zero, z", Usage: "Zero flag"},
				cli.BoolFlag{Name: "subtract, n", Usage: "Subtract flag"},
				cli.BoolFlag{Name: "half-carry", Usage: "Half carry flag"},
				cli.BoolFlag{Name: "carry, c", Usage: "Carry flag"},
			},
			Action: func(c *cli.Context) error {
				f := cpu.Flags{
					Zero:      c.Bool("zero"),
					Subtract:  c.Bool("subtract"),
					HalfCarry: c.Bool("half-carry"),
					Carry:     c.Bool("carry"),
				}
				fmt.Fprintf(c.App.Writer, "0x%02X\n", cpu.EncodeFlags(f))
				return nil
			},
		},
		{
			Name:      "decode",
			Usage:     "Print the flags held in an F byte",
			ArgsUsage: "<byte>",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return fmt.Errorf("%w: byte to decode", errMissingArgument)
				}

				b, err := parseByte(c.Args().First())
				if err != nil {
					return err
				}

				f := cpu.DecodeFlags(b)
				if b&0x0F != 0 {
					slog.Debug("Ignoring low nibble of F", "value", fmt.Sprintf("0x%02X", b))
				}
				fmt.Fprintf(c.App.Writer, "zero=%t subtract=%t half-carry=%t carry=%t (%s)\n",
					f.Zero, f.Subtract, f.HalfCarry, f.Carry, f)
				return nil
			},
		},
	},
}

var dumpCommand = cli.Command{
	Name:  "dump",
	Usage: "Print the register file after loading the given pairs",
	Flags: pairFlags,
	Action: func(c *cli.Context) error {
		regs, err := loadRegisters(c)
		if err != nil {
			return err
		}

		for _, line := range debug.RegisterLines(regs) {
			fmt.Fprintln(c.App.Writer, line)
		}
		return nil
	},
}

var inspectCommand = cli.Command{
	Name:  "inspect",
	Usage: "Open an interactive register inspector in the terminal",
	Flags: pairFlags,
	Action: func(c *cli.Context) error {
		regs, err := loadRegisters(c)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}

		inspector, err := render.NewInspector(screen, regs)
		if err != nil {
			return err
		}

		slog.Info("Starting register inspector", "registers", regs.String())
		if err := inspector.Run(); err != nil {
			return err
		}
		slog.Info("Inspector closed", "registers", regs.String())
		return nil
	},
}

// loadRegisters builds a register file from the pair flags that were set.
func loadRegisters(c *cli.Context) (*cpu.Registers, error) {
	regs := &cpu.Registers{}
	for _, pair := range cpu.Regs16 {
		name := strings.ToLower(pair.String())
		if !c.IsSet(name) {
			continue
		}

		value, err := parseWord(c.String(name))
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		regs.Set16(pair, value)
	}

	slog.Debug("Loaded registers", "registers", regs.String())
	return regs, nil
}

// parseByte accepts decimal, 0x, 0o and 0b forms.
func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q: %w", s, err)
	}
	return uint8(v), nil
}

// parseWord accepts decimal, 0x, 0o and 0b forms.
func parseWord(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid 16-bit value %q: %w", s, err)
	}
	return uint16(v), nil
}

package render

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-jeebie-core/jeebie/cpu"
	"github.com/valerio/go-jeebie-core/jeebie/debug"
)

const helpLine = "up/down select  +/- step  0 clear  z/n/h/c flags  q quit"

// Inspector is a terminal view over a register file that lets the user
// poke at individual registers and flags.
//
// It reads and writes the register file only from the goroutine calling Run.
type Inspector struct {
	screen   tcell.Screen
	regs     *cpu.Registers
	selected int
}

// NewInspector initializes screen and binds it to regs.
func NewInspector(screen tcell.Screen, regs *cpu.Registers) (*Inspector, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	return &Inspector{
		screen: screen,
		regs:   regs,
	}, nil
}

// Selected returns the register the cursor is on.
func (i *Inspector) Selected() cpu.Reg8 {
	return cpu.Regs8[i.selected]
}

// Run draws the inspector and processes input until the user quits.
// The screen is finalized on return.
func (i *Inspector) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		i.screen.Fini()
	}()

	i.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	i.Draw()

	for {
		ev := i.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen finalized elsewhere
			return nil
		case *tcell.EventKey:
			if !i.HandleKey(ev) {
				return nil
			}
			i.Draw()
		case *tcell.EventResize:
			i.screen.Sync()
			i.Draw()
		}
	}
}

// HandleKey applies a key press to the register file.
// It returns false when the key asks the inspector to quit.
func (i *Inspector) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		i.move(-1)
	case tcell.KeyDown:
		i.move(1)
	case tcell.KeyRune:
		return i.handleRune(ev.Rune())
	}
	return true
}

func (i *Inspector) handleRune(r rune) bool {
	reg := i.Selected()

	switch r {
	case 'q':
		return false
	case 'k':
		i.move(-1)
	case 'j':
		i.move(1)
	case '+':
		i.regs.Set(reg, i.regs.Get(reg)+1)
	case '-':
		i.regs.Set(reg, i.regs.Get(reg)-1)
	case '0':
		i.regs.Set(reg, 0)
	case 'z', 'n', 'h', 'c':
		i.toggleFlag(r)
	default:
		return true
	}

	slog.Debug("Register update", "key", string(r), "registers", i.regs.String())
	return true
}

func (i *Inspector) move(delta int) {
	n := len(cpu.Regs8)
	i.selected = (i.selected + delta + n) % n
}

func (i *Inspector) toggleFlag(r rune) {
	f := i.regs.Flags()
	switch r {
	case 'z':
		f.Zero = !f.Zero
	case 'n':
		f.Subtract = !f.Subtract
	case 'h':
		f.HalfCarry = !f.HalfCarry
	case 'c':
		f.Carry = !f.Carry
	}
	i.regs.SetFlags(f)
}

// Lines returns the text the inspector draws, top to bottom.
func (i *Inspector) Lines() []string {
	lines := []string{"Registers"}
	for idx, reg := range cpu.Regs8 {
		cursor := " "
		if idx == i.selected {
			cursor = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %s: 0x%02X  %08b", cursor, reg, i.regs.Get(reg), i.regs.Get(reg)))
	}

	lines = append(lines, "")
	// pairs and flags from the shared dump
	dump := debug.RegisterLines(i.regs)
	lines = append(lines, dump[4:]...)
	lines = append(lines, "", helpLine)
	return lines
}

// Draw renders the current register state and shows it.
func (i *Inspector) Draw() {
	i.screen.Clear()

	width, height := i.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y, line := range i.Lines() {
		if y >= height {
			break
		}
		lineStyle := style
		if y == i.selected+1 {
			lineStyle = selectedStyle
		}
		for x, ch := range []rune(line) {
			if x >= width {
				break
			}
			i.screen.SetContent(x, y, ch, nil, lineStyle)
		}
	}

	i.screen.Show()
}

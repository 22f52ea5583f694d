// Package term prints the display and registers to a terminal.
package term

import (
	"fmt"
	"io"
	"strings"

	"chyp8/emu/cpu"
	"chyp8/emu/screen"

	tm "github.com/buger/goterm"
)

const (
	lit   = '█'
	unlit = ' '
)

// Screen returns the display as 32 lines of 64 block characters framed by
// a border.
func Screen(gfx []byte) string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", screen.Width) + "+\n"
	sb.WriteString(border)
	for row := 0; row < screen.Height; row++ {
		sb.WriteByte('|')
		for col := 0; col < screen.Width; col++ {
			if gfx[row*screen.Width+col] != 0 {
				sb.WriteRune(lit)
			} else {
				sb.WriteRune(unlit)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// Registers formats a machine state as an aligned table.
func Registers(state cpu.State) string {
	table := tm.NewTable(0, 6, 2, ' ', 0)
	fmt.Fprintf(table, "PC\tI\tSP\tDT\tST\tOPCODE\tMODE\n")
	fmt.Fprintf(table, "%03X\t%03X\t%d\t%d\t%d\t%04X\t%s\n",
		state.PC, state.I, state.SP, state.Delay, state.Sound, state.Opcode, state.Mode)

	for x := 0; x < len(state.V); x++ {
		fmt.Fprintf(table, "V%X\t", x)
	}
	fmt.Fprintln(table)
	for _, v := range state.V {
		fmt.Fprintf(table, "%02X\t", v)
	}
	fmt.Fprintln(table)

	if state.SP > 0 {
		fmt.Fprintf(table, "STACK")
		for _, addr := range state.Stack[:state.SP] {
			fmt.Fprintf(table, "\t%03X", addr)
		}
		fmt.Fprintln(table)
	}
	return table.String()
}

// Dump clears the terminal and prints the display and registers.
func Dump(state cpu.State, gfx []byte) {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Print(Screen(gfx))
	tm.Print(Registers(state))
	tm.Flush()
}

// Print writes the display and registers without terminal control codes.
func Print(w io.Writer, state cpu.State, gfx []byte) error {
	_, err := io.WriteString(w, Screen(gfx)+Registers(state))
	return err
}

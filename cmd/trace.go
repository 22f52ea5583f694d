package cmd

import (
	"errors"
	"fmt"
	"io"

	"chyp8/emu/cpu"
	"chyp8/emu/driver"
	"chyp8/emu/term"

	"github.com/spf13/cobra"
)

var (
	traceFrames  int
	traceVerbose bool
	tracePlain   bool
)

var traceCmd = &cobra.Command{
	Use:   "trace `path/ROM`",
	Short: "run a ROM headless and dump the display and registers",
	Args:  cobra.ExactArgs(1),
	RunE:  Trace,
}

func init() {
	traceCmd.Flags().IntVarP(&traceFrames, "frames", "n", 60, "number of frames to run")
	traceCmd.Flags().BoolVar(&traceVerbose, "verbose", false, "print every executed instruction")
	traceCmd.Flags().BoolVar(&tracePlain, "plain", false, "print without terminal control codes")
}

// tracer prints each instruction before handing it to the interpreter.
type tracer struct {
	*cpu.EMU
	out io.Writer
}

func (t tracer) Tick() error {
	if t.Mode() == cpu.Running {
		opcode := uint16(t.Peek(t.PC()))<<8 | uint16(t.Peek(t.PC()+1))
		fmt.Fprintf(t.out, "%03X  %04X  %s\n", t.PC(), opcode, cpu.Decode(opcode))
	}
	return t.EMU.Tick()
}

func Trace(cmd *cobra.Command, args []string) error {
	s, err := settings()
	if err != nil {
		return err
	}
	logger := s.Logger()

	emu := cpu.New(s.CPUOptions(logger)...)
	if err := emu.LoadFile(args[0]); err != nil {
		return err
	}

	var machine driver.Machine = emu
	if traceVerbose {
		machine = tracer{EMU: emu, out: cmd.OutOrStdout()}
	}
	drv, err := driver.New(machine, nil, logger, s.Driver())
	if err != nil {
		return err
	}

	var runErr error
	for i := 0; i < traceFrames; i++ {
		if runErr = drv.Frame(); runErr != nil {
			break
		}
	}

	if tracePlain || traceVerbose {
		if err := term.Print(cmd.OutOrStdout(), emu.State(), emu.Gfx()); err != nil {
			return err
		}
	} else {
		term.Dump(emu.State(), emu.Gfx())
	}

	if runErr != nil && !errors.Is(runErr, cpu.ErrHalted) {
		return runErr
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"chyp8/emu/cpu"

	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print the instruction listing of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading program image: %w", err)
		}
		return cpu.Disassemble(cmd.OutOrStdout(), rom)
	},
}

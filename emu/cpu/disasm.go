package cpu

import (
	"fmt"
	"io"
)

// Disassemble writes one line per 16-bit word of a program image, addressed
// from ProgramStart. An odd trailing byte is listed as data.
func Disassemble(w io.Writer, rom []byte) error {
	addr := uint16(ProgramStart)
	for i := 0; i+1 < len(rom); i += 2 {
		opcode := uint16(rom[i])<<8 | uint16(rom[i+1])
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", addr, opcode, Decode(opcode)); err != nil {
			return err
		}
		addr += 2
	}
	if len(rom)%2 == 1 {
		if _, err := fmt.Fprintf(w, "%03X  %02X    DB 0x%02X\n", addr, rom[len(rom)-1], rom[len(rom)-1]); err != nil {
			return err
		}
	}
	return nil
}

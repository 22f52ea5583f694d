package cpu

import "errors"

var (
	ErrProgramTooLarge = errors.New("program too large")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrHalted          = errors.New("interpreter halted")
)

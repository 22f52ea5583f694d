package cpu

import (
	"errors"
	"fmt"
	"os"

	"chyp8/emu/screen"

	"github.com/retroenv/retrogolib/log"
)

// Mode is the externally visible execution state of the interpreter.
type Mode uint8

const (
	Running Mode = iota
	AwaitingKey
	Halted
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting-key"
	case Halted:
		return "halted"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

type EMU struct {
	opcode  uint16
	memory  Memory
	regs    Registers
	timers  Timers
	keys    Keypad
	display screen.Framebuffer
	mode    Mode
	waitReg uint8 //register receiving the key while awaiting
	sprite  [15]uint8

	random RandomSource
	logger *log.Logger
	strict bool
}

type Option func(*EMU)

func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) {
		emu.logger = logger
	}
}

func WithRandom(random RandomSource) Option {
	return func(emu *EMU) {
		emu.random = random
	}
}

// WithStrict makes Tick report unknown opcodes as ErrUnknownOpcode instead
// of silently skipping them.
func WithStrict(strict bool) Option {
	return func(emu *EMU) {
		emu.strict = strict
	}
}

// New returns a zeroed interpreter with the font loaded and PC at 0x200.
func New(opts ...Option) *EMU {
	emu := &EMU{}
	for _, opt := range opts {
		opt(emu)
	}
	if emu.logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		emu.logger = log.NewWithConfig(cfg)
	}
	if emu.random == nil {
		emu.random = defaultRandom()
	}
	emu.Reset()
	return emu
}

// Reset clears registers, stack, timers, keys and display and reloads the
// font. The previous program is discarded.
func (emu *EMU) Reset() {
	emu.opcode = 0
	emu.memory.reset()
	emu.regs.reset()
	emu.timers = Timers{}
	emu.keys = Keypad{}
	emu.display.Clear()
	emu.mode = Running
	emu.waitReg = 0
}

// Load resets the interpreter and copies rom to 0x200. Keys held on the
// host stay pressed. Nothing is modified when the image does not fit.
func (emu *EMU) Load(rom []byte) error {
	if len(rom) > maxRomSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d bytes", ErrProgramTooLarge, len(rom), maxRomSize)
	}

	keys := emu.keys
	emu.Reset()
	emu.keys = keys
	copy(emu.memory[ProgramStart:], rom)
	emu.logger.Debug("Program loaded", log.Int("size", len(rom)))
	return nil
}

func (emu *EMU) LoadFile(filename string) error {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading program image: %w", err)
	}
	if err := emu.Load(rom); err != nil {
		return fmt.Errorf("loading '%s': %w", filename, err)
	}
	return nil
}

// Tick executes a single fetch-decode-execute cycle. While awaiting a key it
// only polls the keypad. A stack fault halts the interpreter; subsequent
// calls return ErrHalted until Reset or Load.
func (emu *EMU) Tick() error {
	switch emu.mode {
	case Halted:
		return ErrHalted
	case AwaitingKey:
		emu.resumeOnKey()
		return nil
	}

	pc := emu.regs.PC
	emu.opcode = emu.memory.ReadWord(pc)
	emu.regs.PC = (pc + 2) & addrMask

	err := emu.execute(Decode(emu.opcode))
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnknownOpcode) {
		return fmt.Errorf("%w: %04x at 0x%03X", err, emu.opcode, pc)
	}

	emu.mode = Halted
	emu.regs.PC = pc
	emu.logger.Error("Interpreter halted",
		log.Err(err),
		log.String("address", fmt.Sprintf("0x%03X", pc)),
		log.String("opcode", fmt.Sprintf("0x%04X", emu.opcode)))
	return fmt.Errorf("executing %04x at 0x%03X: %w", emu.opcode, pc, err)
}

func (emu *EMU) resumeOnKey() {
	key, ok := emu.keys.First()
	if !ok {
		return
	}
	emu.regs.V[emu.waitReg] = key
	emu.regs.PC = (emu.regs.PC + 2) & addrMask
	emu.mode = Running
}

// Gfx returns the live 64x32 display grid. The slice is overwritten in place
// by later ticks.
func (emu *EMU) Gfx() []byte {
	return emu.display.Pixels()
}

// DrawFlag reports whether the display changed since ClearDrawFlag.
func (emu *EMU) DrawFlag() bool {
	return emu.display.Dirty()
}

func (emu *EMU) ClearDrawFlag() {
	emu.display.Clean()
}

// SetKey records a key press or release. Indices outside 0-15 are ignored.
func (emu *EMU) SetKey(key int, pressed bool) {
	emu.keys.Set(key, pressed)
}

func (emu *EMU) DelayTimer() uint8 {
	return emu.timers.Delay
}

func (emu *EMU) SoundTimer() uint8 {
	return emu.timers.Sound
}

// DecrementTimers is called by the frame driver at 60Hz.
func (emu *EMU) DecrementTimers() {
	emu.timers.Decrement()
}

func (emu *EMU) PC() uint16     { return emu.regs.PC }
func (emu *EMU) I() uint16      { return emu.regs.I }
func (emu *EMU) SP() uint8      { return emu.regs.SP }
func (emu *EMU) Opcode() uint16 { return emu.opcode }
func (emu *EMU) Mode() Mode     { return emu.mode }
func (emu *EMU) Halted() bool   { return emu.mode == Halted }

func (emu *EMU) V(x int) uint8 {
	return emu.regs.V[x&0xF]
}

// Peek reads a memory byte without side effects.
func (emu *EMU) Peek(addr uint16) uint8 {
	return emu.memory.Read(addr)
}

// State is a copy of the machine registers for dumps and debugging.
type State struct {
	Registers
	Timers
	Opcode uint16
	Mode   Mode
}

func (emu *EMU) State() State {
	return State{
		Registers: emu.regs,
		Timers:    emu.timers,
		Opcode:    emu.opcode,
		Mode:      emu.mode,
	}
}

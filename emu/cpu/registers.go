package cpu

const (
	StackSize = 16
	flag      = 0xF
)

// Registers holds V0-VF, the index register, the program counter and the
// return address stack. SP is the number of entries on the stack.
type Registers struct {
	V     [16]uint8
	I     uint16
	PC    uint16
	SP    uint8
	Stack [StackSize]uint16
}

func (r *Registers) reset() {
	*r = Registers{PC: ProgramStart}
}

func (r *Registers) push(addr uint16) error {
	if int(r.SP) >= StackSize {
		return ErrStackOverflow
	}
	r.Stack[r.SP] = addr
	r.SP++
	return nil
}

func (r *Registers) pop() (uint16, error) {
	if r.SP == 0 {
		return 0, ErrStackUnderflow
	}
	r.SP--
	return r.Stack[r.SP], nil
}

// Timers are decremented by the frame driver at 60Hz, never by Tick.
type Timers struct {
	Delay uint8
	Sound uint8
}

func (t *Timers) Decrement() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// Keypad is the pressed state of the 16 hex keys.
type Keypad [16]bool

func (k *Keypad) Set(key int, pressed bool) {
	if key < 0 || key >= len(k) {
		return
	}
	k[key] = pressed
}

// Pressed reports whether a key is held. Values above 0xF name no key and
// are never pressed.
func (k *Keypad) Pressed(key uint8) bool {
	if int(key) >= len(k) {
		return false
	}
	return k[key]
}

// First returns the lowest pressed key.
func (k *Keypad) First() (uint8, bool) {
	for i, pressed := range k {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}

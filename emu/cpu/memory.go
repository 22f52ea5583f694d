package cpu

const (
	MemorySize   = 4096
	ProgramStart = 0x200
	FontStart    = 0x000
	glyphSize    = 5

	maxRomSize = MemorySize - ProgramStart
	addrMask   = MemorySize - 1
)

var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4K address space. Every access wraps at 0x1000 so a
// stray I or PC never indexes outside the array. PC itself is kept within
// 12 bits by the interpreter.
type Memory [MemorySize]uint8

func (m *Memory) reset() {
	*m = Memory{}
	copy(m[FontStart:], FontSet[:])
}

func (m *Memory) Read(addr uint16) uint8 {
	return m[addr&addrMask]
}

func (m *Memory) Write(addr uint16, value uint8) {
	m[addr&addrMask] = value
}

// ReadWord returns the big-endian opcode stored at addr and addr+1.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return uint16(m.Read(addr))<<8 | uint16(m.Read(addr+1))
}

// span copies n bytes starting at addr into buf.
func (m *Memory) span(addr uint16, buf []uint8) []uint8 {
	for i := range buf {
		buf[i] = m.Read(addr + uint16(i))
	}
	return buf
}

// glyphAddress returns the location of the font sprite for a hex digit.
func glyphAddress(digit uint8) uint16 {
	return FontStart + uint16(digit&0xF)*glyphSize
}

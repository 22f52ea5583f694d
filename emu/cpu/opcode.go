package cpu

import "fmt"

// Kind identifies one of the 35 instructions.
type Kind uint8

const (
	Unknown Kind = iota
	Sys          // 0nnn
	Cls          // 00E0
	Ret          // 00EE
	Jp           // 1nnn
	Call         // 2nnn
	SeByte       // 3xkk
	SneByte      // 4xkk
	SeReg        // 5xy0
	LdByte       // 6xkk
	AddByte      // 7xkk
	LdReg        // 8xy0
	Or           // 8xy1
	And          // 8xy2
	Xor          // 8xy3
	AddReg       // 8xy4
	Sub          // 8xy5
	Shr          // 8xy6
	Subn         // 8xy7
	Shl          // 8xyE
	SneReg       // 9xy0
	LdI          // Annn
	JpV0         // Bnnn
	Rnd          // Cxkk
	Drw          // Dxyn
	Skp          // Ex9E
	Sknp         // ExA1
	LdVxDT       // Fx07
	LdVxK        // Fx0A
	LdDTVx       // Fx15
	LdSTVx       // Fx18
	AddI         // Fx1E
	LdF          // Fx29
	LdB          // Fx33
	LdStore      // Fx55
	LdLoad       // Fx65
)

// Instruction is a decoded opcode with all of its operand fields extracted.
// Which fields are meaningful depends on Kind.
type Instruction struct {
	Kind   Kind
	Opcode uint16
	X      uint8
	Y      uint8
	N      uint8
	KK     uint8
	NNN    uint16
}

func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0xF),
		Y:      uint8(opcode >> 4 & 0xF),
		N:      uint8(opcode & 0xF),
		KK:     uint8(opcode & 0xFF),
		NNN:    opcode & 0xFFF,
	}
	ins.Kind = decodeKind(ins)
	return ins
}

func decodeKind(ins Instruction) Kind {
	switch ins.Opcode >> 12 {
	case 0x0:
		switch ins.Opcode {
		case 0x00E0:
			return Cls
		case 0x00EE:
			return Ret
		}
		return Sys
	case 0x1:
		return Jp
	case 0x2:
		return Call
	case 0x3:
		return SeByte
	case 0x4:
		return SneByte
	case 0x5:
		if ins.N == 0 {
			return SeReg
		}
	case 0x6:
		return LdByte
	case 0x7:
		return AddByte
	case 0x8:
		switch ins.N {
		case 0x0:
			return LdReg
		case 0x1:
			return Or
		case 0x2:
			return And
		case 0x3:
			return Xor
		case 0x4:
			return AddReg
		case 0x5:
			return Sub
		case 0x6:
			return Shr
		case 0x7:
			return Subn
		case 0xE:
			return Shl
		}
	case 0x9:
		if ins.N == 0 {
			return SneReg
		}
	case 0xA:
		return LdI
	case 0xB:
		return JpV0
	case 0xC:
		return Rnd
	case 0xD:
		return Drw
	case 0xE:
		switch ins.KK {
		case 0x9E:
			return Skp
		case 0xA1:
			return Sknp
		}
	case 0xF:
		switch ins.KK {
		case 0x07:
			return LdVxDT
		case 0x0A:
			return LdVxK
		case 0x15:
			return LdDTVx
		case 0x18:
			return LdSTVx
		case 0x1E:
			return AddI
		case 0x29:
			return LdF
		case 0x33:
			return LdB
		case 0x55:
			return LdStore
		case 0x65:
			return LdLoad
		}
	}
	return Unknown
}

// String renders the instruction in the usual Cowgod mnemonic syntax.
func (ins Instruction) String() string {
	x, y := ins.X, ins.Y
	switch ins.Kind {
	case Sys:
		return fmt.Sprintf("SYS 0x%03X", ins.NNN)
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jp:
		return fmt.Sprintf("JP 0x%03X", ins.NNN)
	case Call:
		return fmt.Sprintf("CALL 0x%03X", ins.NNN)
	case SeByte:
		return fmt.Sprintf("SE V%X, 0x%02X", x, ins.KK)
	case SneByte:
		return fmt.Sprintf("SNE V%X, 0x%02X", x, ins.KK)
	case SeReg:
		return fmt.Sprintf("SE V%X, V%X", x, y)
	case LdByte:
		return fmt.Sprintf("LD V%X, 0x%02X", x, ins.KK)
	case AddByte:
		return fmt.Sprintf("ADD V%X, 0x%02X", x, ins.KK)
	case LdReg:
		return fmt.Sprintf("LD V%X, V%X", x, y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", x, y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", x, y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", x, y)
	case AddReg:
		return fmt.Sprintf("ADD V%X, V%X", x, y)
	case Sub:
		return fmt.Sprintf("SUB V%X, V%X", x, y)
	case Shr:
		return fmt.Sprintf("SHR V%X", x)
	case Subn:
		return fmt.Sprintf("SUBN V%X, V%X", x, y)
	case Shl:
		return fmt.Sprintf("SHL V%X", x)
	case SneReg:
		return fmt.Sprintf("SNE V%X, V%X", x, y)
	case LdI:
		return fmt.Sprintf("LD I, 0x%03X", ins.NNN)
	case JpV0:
		return fmt.Sprintf("JP V0, 0x%03X", ins.NNN)
	case Rnd:
		return fmt.Sprintf("RND V%X, 0x%02X", x, ins.KK)
	case Drw:
		return fmt.Sprintf("DRW V%X, V%X, %d", x, y, ins.N)
	case Skp:
		return fmt.Sprintf("SKP V%X", x)
	case Sknp:
		return fmt.Sprintf("SKNP V%X", x)
	case LdVxDT:
		return fmt.Sprintf("LD V%X, DT", x)
	case LdVxK:
		return fmt.Sprintf("LD V%X, K", x)
	case LdDTVx:
		return fmt.Sprintf("LD DT, V%X", x)
	case LdSTVx:
		return fmt.Sprintf("LD ST, V%X", x)
	case AddI:
		return fmt.Sprintf("ADD I, V%X", x)
	case LdF:
		return fmt.Sprintf("LD F, V%X", x)
	case LdB:
		return fmt.Sprintf("LD B, V%X", x)
	case LdStore:
		return fmt.Sprintf("LD [I], V%X", x)
	case LdLoad:
		return fmt.Sprintf("LD V%X, [I]", x)
	default:
		return fmt.Sprintf("DW 0x%04X", ins.Opcode)
	}
}

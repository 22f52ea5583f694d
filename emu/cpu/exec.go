package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// execute runs a decoded instruction. PC already points past it, so jumps
// and calls overwrite it with their absolute target and skips add 2.
func (emu *EMU) execute(ins Instruction) error {
	r := &emu.regs
	x, y := ins.X, ins.Y

	switch ins.Kind {
	case Sys:
		// machine code routines are not supported
	case Cls:
		emu.display.Clear()
	case Ret:
		addr, err := r.pop()
		if err != nil {
			return err
		}
		r.PC = addr
	case Jp:
		r.PC = ins.NNN
	case Call:
		if err := r.push(r.PC); err != nil {
			return err
		}
		r.PC = ins.NNN
	case SeByte:
		emu.skipIf(r.V[x] == ins.KK)
	case SneByte:
		emu.skipIf(r.V[x] != ins.KK)
	case SeReg:
		emu.skipIf(r.V[x] == r.V[y])
	case LdByte:
		r.V[x] = ins.KK
	case AddByte:
		r.V[x] += ins.KK
	case LdReg:
		r.V[x] = r.V[y]
	case Or:
		r.V[x] |= r.V[y]
	case And:
		r.V[x] &= r.V[y]
	case Xor:
		r.V[x] ^= r.V[y]
	case AddReg:
		sum := uint16(r.V[x]) + uint16(r.V[y])
		r.V[x] = uint8(sum)
		r.V[flag] = boolToFlag(sum > 0xFF)
	case Sub:
		noBorrow := r.V[x] >= r.V[y]
		r.V[x] -= r.V[y]
		r.V[flag] = boolToFlag(noBorrow)
	case Shr:
		lsb := r.V[x] & 0x01
		r.V[x] >>= 1
		r.V[flag] = lsb
	case Subn:
		noBorrow := r.V[y] >= r.V[x]
		r.V[x] = r.V[y] - r.V[x]
		r.V[flag] = boolToFlag(noBorrow)
	case Shl:
		msb := r.V[x] >> 7
		r.V[x] <<= 1
		r.V[flag] = msb
	case SneReg:
		emu.skipIf(r.V[x] != r.V[y])
	case LdI:
		r.I = ins.NNN
	case JpV0:
		r.PC = (ins.NNN + uint16(r.V[0])) & addrMask
	case Rnd:
		r.V[x] = emu.random.Byte() & ins.KK
	case Drw:
		sprite := emu.memory.span(r.I, emu.sprite[:ins.N])
		collision := emu.display.Draw(r.V[x], r.V[y], sprite)
		r.V[flag] = boolToFlag(collision)
	case Skp:
		emu.skipIf(emu.keys.Pressed(r.V[x]))
	case Sknp:
		emu.skipIf(!emu.keys.Pressed(r.V[x]))
	case LdVxDT:
		r.V[x] = emu.timers.Delay
	case LdVxK:
		key, ok := emu.keys.First()
		if !ok {
			// hold PC on this instruction until a key shows up
			r.PC = (r.PC - 2) & addrMask
			emu.mode = AwaitingKey
			emu.waitReg = x
			return nil
		}
		r.V[x] = key
	case LdDTVx:
		emu.timers.Delay = r.V[x]
	case LdSTVx:
		emu.timers.Sound = r.V[x]
	case AddI:
		r.I += uint16(r.V[x])
	case LdF:
		r.I = glyphAddress(r.V[x])
	case LdB:
		v := r.V[x]
		emu.memory.Write(r.I, v/100)
		emu.memory.Write(r.I+1, v/10%10)
		emu.memory.Write(r.I+2, v%10)
	case LdStore:
		for i := uint8(0); i <= x; i++ {
			emu.memory.Write(r.I+uint16(i), r.V[i])
		}
	case LdLoad:
		for i := uint8(0); i <= x; i++ {
			r.V[i] = emu.memory.Read(r.I + uint16(i))
		}
	default:
		emu.logger.Debug("Unknown opcode",
			log.String("opcode", fmt.Sprintf("0x%04X", ins.Opcode)),
			log.String("address", fmt.Sprintf("0x%03X", (r.PC-2)&addrMask)))
		if emu.strict {
			return ErrUnknownOpcode
		}
	}
	return nil
}

func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.regs.PC = (emu.regs.PC + 2) & addrMask
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// This file is part of Zedcycle.
//
// Zedcycle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zedcycle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zedcycle.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/zedcycle/zedcycle/hardware/cpu/alu"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
)

// execute a MicroOp that is not a bus operation.
func (mc *Processor) execute(op *microcode.MicroOp) {
	switch op.Kind {
	case microcode.MoveToNextProgram:
		mc.advance()

	case microcode.DecodeOperation:
		mc.incrementR()
		mc.decode()

	case microcode.DecodeOperationNoRChange:
		mc.decode()

	case microcode.SetInstructionPage:
		mc.page = mc.set.Page(op.Page)
		mc.ops = mc.page.FetchDecodeExecute
		mc.next = 0

	case microcode.Increment16:
		mc.reg16(op.Source).Add(1)

	case microcode.Decrement16:
		mc.reg16(op.Source).Add(-1)

	case microcode.Move8:
		*mc.reg8(op.Destination) = *mc.reg8(op.Source)

	case microcode.Move16:
		*mc.reg16(op.Destination) = *mc.reg16(op.Source)

	case microcode.AssembleAF:
		mc.temp16 = mc.AF()

	case microcode.DisassembleAF:
		mc.SetAF(mc.temp16.Value())

	case microcode.CalculateIndexAddress:
		mc.Memptr.Load(mc.reg16(op.Source).Value() + uint16(int8(mc.temp8)))

	case microcode.CalculateRSTDestination:
		mc.Memptr.Load(uint16(mc.opcode & 0x38))

	// eight bit arithmetic and logic
	case microcode.ADD8:
		mc.A, mc.Flags = alu.Add8(mc.A, *mc.reg8(op.Source), mc.Flags, false)
	case microcode.ADC8:
		mc.A, mc.Flags = alu.Add8(mc.A, *mc.reg8(op.Source), mc.Flags, true)
	case microcode.SUB8:
		mc.A, mc.Flags = alu.Sub8(mc.A, *mc.reg8(op.Source), mc.Flags, false)
	case microcode.SBC8:
		mc.A, mc.Flags = alu.Sub8(mc.A, *mc.reg8(op.Source), mc.Flags, true)
	case microcode.AND:
		mc.A, mc.Flags = alu.And8(mc.A, *mc.reg8(op.Source))
	case microcode.XOR:
		mc.A, mc.Flags = alu.Xor8(mc.A, *mc.reg8(op.Source))
	case microcode.OR:
		mc.A, mc.Flags = alu.Or8(mc.A, *mc.reg8(op.Source))
	case microcode.CP8:
		mc.Flags = alu.Compare8(mc.A, *mc.reg8(op.Source))

	case microcode.Increment8:
		v := mc.reg8(op.Source)
		*v, mc.Flags = alu.Inc8(*v, mc.Flags)
	case microcode.Decrement8:
		v := mc.reg8(op.Source)
		*v, mc.Flags = alu.Dec8(*v, mc.Flags)

	case microcode.NEG:
		mc.A, mc.Flags = alu.Neg(mc.A)
	case microcode.DAA:
		mc.A, mc.Flags = alu.DAA(mc.A, mc.Flags)
	case microcode.CPL:
		mc.A, mc.Flags = alu.CPL(mc.A, mc.Flags)
	case microcode.CCF:
		mc.Flags = alu.CCF(mc.A, mc.Flags)
	case microcode.SCF:
		mc.Flags = alu.SCF(mc.A, mc.Flags)

	// sixteen bit arithmetic. MEMPTR is the original value of the
	// destination plus one
	case microcode.ADD16, microcode.ADC16, microcode.SBC16:
		d := mc.reg16(op.Destination)
		v := mc.reg16(op.Source).Value()
		mc.Memptr.Load(d.Value() + 1)

		var r uint16
		switch op.Kind {
		case microcode.ADD16:
			r, mc.Flags = alu.Add16(d.Value(), v, mc.Flags)
		case microcode.ADC16:
			r, mc.Flags = alu.Adc16(d.Value(), v, mc.Flags)
		default:
			r, mc.Flags = alu.Sbc16(d.Value(), v, mc.Flags)
		}
		d.Load(r)

	// conditions. a failed condition abandons the rest of the program
	case microcode.TestNZ:
		mc.test(mc.Flags.Zero == 0)
	case microcode.TestZ:
		mc.test(mc.Flags.Zero != 0)
	case microcode.TestNC:
		mc.test(mc.Flags.Carry == 0)
	case microcode.TestC:
		mc.test(mc.Flags.Carry != 0)
	case microcode.TestPO:
		mc.test(mc.Flags.ParityOverflow == 0)
	case microcode.TestPE:
		mc.test(mc.Flags.ParityOverflow != 0)
	case microcode.TestP:
		mc.test(mc.Flags.Sign == 0)
	case microcode.TestM:
		mc.test(mc.Flags.Sign != 0)

	case microcode.DJNZ:
		mc.BC.High--
		mc.test(mc.BC.High != 0)

	// exchanges
	case microcode.ExDEHL:
		mc.DE.Swap(&mc.HL)
	case microcode.ExAFAFDash:
		af := mc.AF()
		mc.SetAF(mc.AFDash.Value())
		mc.AFDash = af
	case microcode.EXX:
		mc.BC.Swap(&mc.BCDash)
		mc.DE.Swap(&mc.DEDash)
		mc.HL.Swap(&mc.HLDash)

	// block transfers
	case microcode.LDI, microcode.LDIR:
		mc.blockLoad(1, op.Kind == microcode.LDIR)
	case microcode.LDD, microcode.LDDR:
		mc.blockLoad(-1, op.Kind == microcode.LDDR)
	case microcode.CPI, microcode.CPIR:
		mc.blockCompare(1, op.Kind == microcode.CPIR)
	case microcode.CPD, microcode.CPDR:
		mc.blockCompare(-1, op.Kind == microcode.CPDR)
	case microcode.INI, microcode.INIR:
		mc.blockInput(1, op.Kind == microcode.INIR)
	case microcode.IND, microcode.INDR:
		mc.blockInput(-1, op.Kind == microcode.INDR)
	case microcode.OUTI:
		mc.blockOutput(1)
	case microcode.OUTD:
		mc.blockOutput(-1)
	case microcode.OUTR:
		mc.repeat(mc.BC.High != 0)

	// bit manipulation
	case microcode.BIT:
		v := *mc.reg8(op.Source)
		bit53 := v
		if mc.page.IsIndexed || mc.opcode&0x07 == 0x06 {
			bit53 = mc.Memptr.High
		}
		mc.Flags = alu.Bit(mc.bitNumber(), v, bit53, mc.Flags)
	case microcode.RES:
		*mc.reg8(op.Source) &^= 1 << mc.bitNumber()
	case microcode.SET:
		*mc.reg8(op.Source) |= 1 << mc.bitNumber()

	// rotates and shifts
	case microcode.RLA:
		mc.A, mc.Flags = alu.RLA(mc.A, mc.Flags)
	case microcode.RLCA:
		mc.A, mc.Flags = alu.RLCA(mc.A, mc.Flags)
	case microcode.RRA:
		mc.A, mc.Flags = alu.RRA(mc.A, mc.Flags)
	case microcode.RRCA:
		mc.A, mc.Flags = alu.RRCA(mc.A, mc.Flags)

	case microcode.RLC, microcode.RRC, microcode.RL, microcode.RR,
		microcode.SLA, microcode.SRA, microcode.SLL, microcode.SRL:
		v := mc.reg8(op.Source)
		*v, mc.Flags = alu.Rotate(alu.Shift(op.Kind-microcode.RLC), *v, mc.Flags)

	case microcode.RLD:
		mc.A, mc.temp8, mc.Flags = alu.RLD(mc.A, mc.temp8, mc.Flags)
		mc.Memptr.Load(mc.HL.Value() + 1)
	case microcode.RRD:
		mc.A, mc.temp8, mc.Flags = alu.RRD(mc.A, mc.temp8, mc.Flags)
		mc.Memptr.Load(mc.HL.Value() + 1)

	// interrupt state
	case microcode.EI:
		mc.iff1 = true
		mc.iff2 = true
		if mc.irqLine {
			mc.requestStatus |= requestIRQ
		}
	case microcode.DI:
		mc.iff1 = false
		mc.iff2 = false
		mc.requestStatus &^= requestIRQ
	case microcode.IM:
		switch mc.opcode & 0x18 {
		case 0x00, 0x08:
			mc.interruptMode = 0
		case 0x10:
			mc.interruptMode = 1
		case 0x18:
			mc.interruptMode = 2
		}

	case microcode.SetInFlags:
		mc.Flags = alu.InFlags(*mc.reg8(op.Source), mc.Flags)
	case microcode.SetAFlags:
		mc.Flags = alu.InterruptRegisterFlags(mc.A, mc.iff2, mc.Flags)
	case microcode.SetZero:
		mc.temp8 = 0

	case microcode.BeginIRQMode0:
		mc.pcIncrement = 0
		mc.beginIRQ()
	case microcode.BeginIRQ:
		mc.beginIRQ()
	case microcode.BeginNMI:
		mc.iff2 = mc.iff1
		mc.iff1 = false
		mc.requestStatus &^= requestIRQ
	case microcode.IncrementR:
		mc.incrementR()
	case microcode.JumpTo66:
		mc.PC.Load(0x66)
	case microcode.RETN:
		mc.iff1 = mc.iff2
		if mc.irqLine && mc.iff1 {
			mc.requestStatus |= requestIRQ
		}
	case microcode.HALT:
		mc.haltMask = 0x00

	case microcode.Reset:
		mc.iff1 = false
		mc.iff2 = false
		mc.interruptMode = 0
		mc.PC.Load(0x0000)
		mc.SP.Load(0xffff)
		mc.SetAF(0xffff)
		mc.IR.Load(0x0000)
	}
}

// decode the opcode in the current instruction page. While halted the opcode
// is replaced with NOP and PC does not advance.
// the top bit of R is only changed by LD R,A.
func (mc *Processor) incrementR() {
	mc.IR.Low = mc.IR.Low&0x80 | (mc.IR.Low+1)&0x7f
}

func (mc *Processor) decode() {
	mc.PC.Add(int(mc.pcIncrement & uint16(mc.haltMask)))
	mc.ops = mc.page.AllOperations
	mc.next = mc.page.Instructions[mc.opcode&mc.haltMask]
}

func (mc *Processor) test(condition bool) {
	if !condition {
		mc.advance()
	}
}

// repeat the current block instruction by moving PC back to its first
// prefix.
func (mc *Processor) repeat(condition bool) {
	if condition {
		mc.PC.Add(-2)
		return
	}
	mc.advance()
}

func (mc *Processor) bitNumber() int {
	return int(mc.opcode>>3) & 0x07
}

func (mc *Processor) beginIRQ() {
	mc.iff1 = false
	mc.iff2 = false
	mc.requestStatus &^= requestIRQ
	mc.temp16.Load(0x38)
}

func (mc *Processor) blockLoad(dir int, repeats bool) {
	mc.BC.Add(-1)
	mc.DE.Add(dir)
	mc.HL.Add(dir)
	mc.Flags = alu.BlockLoad(mc.A, mc.temp8, mc.BC.Value(), mc.Flags)

	if repeats {
		if mc.BC.Value() != 0 {
			mc.PC.Add(-2)
			mc.Memptr.Load(mc.PC.Value() + 1)
			return
		}
		mc.advance()
	}
}

func (mc *Processor) blockCompare(dir int, repeats bool) {
	mc.Memptr.Add(dir)
	mc.HL.Add(dir)
	mc.BC.Add(-1)
	mc.Flags = alu.BlockCompare(mc.A, mc.temp8, mc.BC.Value(), mc.Flags)

	if repeats {
		if mc.BC.Value() != 0 && mc.Flags.Zero == 0 {
			mc.PC.Add(-2)
			mc.Memptr.Load(mc.PC.Value() + 1)
			return
		}
		mc.advance()
	}
}

func (mc *Processor) blockInput(dir int, repeats bool) {
	if !repeats {
		mc.Memptr.Load(uint16(int(mc.BC.Value()) + dir))
	}
	mc.BC.High--
	mc.HL.Add(dir)
	mc.Flags = alu.BlockIO(mc.temp8, mc.BC.High, uint8(int(mc.BC.Low)+dir))

	if repeats {
		mc.repeat(mc.BC.High != 0)
	}
}

func (mc *Processor) blockOutput(dir int) {
	mc.BC.High--
	mc.HL.Add(dir)
	mc.Flags = alu.BlockIO(mc.temp8, mc.BC.High, mc.HL.Low)
	mc.Memptr.Load(uint16(int(mc.BC.Value()) + dir))
}

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
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/hardware/cpu/registers"
)

// reg8 returns a pointer to the eight bit location. Returns nil for
// microcode.None and for sixteen bit locations.
func (mc *Processor) reg8(l microcode.Location) *uint8 {
	switch l {
	case microcode.A:
		return &mc.A
	case microcode.B:
		return &mc.BC.High
	case microcode.C:
		return &mc.BC.Low
	case microcode.D:
		return &mc.DE.High
	case microcode.E:
		return &mc.DE.Low
	case microcode.H:
		return &mc.HL.High
	case microcode.L:
		return &mc.HL.Low
	case microcode.IXh:
		return &mc.IX.High
	case microcode.IXl:
		return &mc.IX.Low
	case microcode.IYh:
		return &mc.IY.High
	case microcode.IYl:
		return &mc.IY.Low
	case microcode.I:
		return &mc.IR.High
	case microcode.R:
		return &mc.IR.Low
	case microcode.PCh:
		return &mc.PC.High
	case microcode.PCl:
		return &mc.PC.Low
	case microcode.SPh:
		return &mc.SP.High
	case microcode.SPl:
		return &mc.SP.Low
	case microcode.MemptrH:
		return &mc.Memptr.High
	case microcode.MemptrL:
		return &mc.Memptr.Low
	case microcode.Temp16H:
		return &mc.temp16.High
	case microcode.Temp16L:
		return &mc.temp16.Low
	case microcode.Temp8:
		return &mc.temp8
	case microcode.Opcode:
		return &mc.opcode
	}
	return nil
}

// reg16 returns a pointer to the sixteen bit location. Returns nil for
// microcode.None and for eight bit locations.
func (mc *Processor) reg16(l microcode.Location) *registers.Pair {
	switch l {
	case microcode.BC:
		return &mc.BC
	case microcode.DE:
		return &mc.DE
	case microcode.HL:
		return &mc.HL
	case microcode.IX:
		return &mc.IX
	case microcode.IY:
		return &mc.IY
	case microcode.SP:
		return &mc.SP
	case microcode.PC:
		return &mc.PC
	case microcode.IR:
		return &mc.IR
	case microcode.Memptr:
		return &mc.Memptr
	case microcode.Temp16:
		return &mc.temp16
	}
	return nil
}

// address of a bus cycle. A cycle without an address location puts zero on
// the address bus.
func (mc *Processor) address(l microcode.Location) uint16 {
	if p := mc.reg16(l); p != nil {
		return p.Value()
	}
	return 0
}

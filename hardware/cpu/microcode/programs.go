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

package microcode

import "github.com/zedcycle/zedcycle/hardware/memory/cpubus"

// fetch program of the unprefixed, CB, ED, DD and FD pages.
func standardFetch() Program {
	return fetchDecode(DecodeOperation, m1(Opcode))
}

func resetProgram() Program {
	return instruction(wait(3), op(Reset))
}

// the NMI program performs an M1 cycle whose opcode is ignored before calling
// address 0x0066.
func nmiProgram() Program {
	return instruction(
		op(BeginNMI),
		[]MicroOp{
			bus(cpubus.ReadOpcodeStart, 3, PC, None, false),
			bus(cpubus.ReadOpcodeWait, 2, PC, None, true),
			bus(cpubus.ReadOpcode, 1, PC, Temp8, false),
			bus(cpubus.Refresh, 4, IR, None, false),
		},
		op(IncrementR), wait(1), push(PC), op(JumpTo66),
	)
}

// in mode 0 the interrupting device supplies an opcode which is executed
// without advancing PC. The acknowledge is a cycle shorter than in the other
// modes because the opcode's own timing follows it.
func irqMode0Program() Program {
	return fetchDecode(DecodeOperation, op(BeginIRQMode0), acknowledge(Opcode, 2))
}

// in mode 1 the processor calls address 0x0038. BeginIRQ puts the address in
// TEMP16.
func irqMode1Program() Program {
	return instruction(
		op(BeginIRQ), acknowledge(Temp8, 4), op(IncrementR),
		push(PC), move16(Temp16, PC), move16(Temp16, Memptr),
	)
}

// in mode 2 the interrupting device supplies the low byte of the address of
// a vector. The high byte comes from the I register.
func irqMode2Program() Program {
	return instruction(
		op(BeginIRQ), acknowledge(Temp16L, 4), op(IncrementR), move8(I, Temp16H), push(PC),
		read(Temp16, MemptrL), inc16(Temp16), read(Temp16, MemptrH),
		move16(Memptr, PC),
	)
}

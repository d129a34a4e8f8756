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

import (
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/memory/cpubus"
)

// the helpers in this file return slices of MicroOps that are joined
// together by instruction() to build a program

func bus(op cpubus.Operation, length clocks.HalfCycles, address Location, value Location, requested bool) MicroOp {
	return MicroOp{
		Kind: BusOperation,
		Cycle: BusCycle{
			Operation:    op,
			Length:       length,
			Address:      address,
			Value:        value,
			WasRequested: requested,
		},
	}
}

func op(kind Kind) []MicroOp {
	return []MicroOp{{Kind: kind}}
}

func opOn(kind Kind, source Location) []MicroOp {
	return []MicroOp{{Kind: kind, Source: source}}
}

func move8(from, to Location) []MicroOp {
	return []MicroOp{{Kind: Move8, Source: from, Destination: to}}
}

func move16(from, to Location) []MicroOp {
	return []MicroOp{{Kind: Move16, Source: from, Destination: to}}
}

func inc16(l Location) []MicroOp {
	return opOn(Increment16, l)
}

func dec16(l Location) []MicroOp {
	return opOn(Decrement16, l)
}

func setPage(id PageID) []MicroOp {
	return []MicroOp{{Kind: SetInstructionPage, Page: id}}
}

func calculateIndex(base Location) []MicroOp {
	return opOn(CalculateIndexAddress, base)
}

// m1 is the opcode fetch and refresh machine cycle. The opcode is read from
// the address in PC into the value location.
func m1(value Location) []MicroOp {
	return []MicroOp{
		bus(cpubus.ReadOpcodeStart, 3, PC, None, false),
		bus(cpubus.ReadOpcodeWait, 2, PC, None, true),
		bus(cpubus.ReadOpcode, 1, PC, value, false),
		bus(cpubus.Refresh, 4, IR, None, false),
	}
}

// read is a three cycle memory read.
func read(address, value Location) []MicroOp {
	return []MicroOp{
		bus(cpubus.ReadStart, 3, address, None, false),
		bus(cpubus.ReadWait, 2, address, None, true),
		bus(cpubus.Read, 3, address, value, false),
	}
}

// write is a three cycle memory write.
func write(address, value Location) []MicroOp {
	return []MicroOp{
		bus(cpubus.WriteStart, 3, address, None, false),
		bus(cpubus.WriteWait, 2, address, None, true),
		bus(cpubus.Write, 3, address, value, false),
	}
}

// input is a four cycle port read. One wait cycle is always inserted.
func input(port, value Location) []MicroOp {
	return []MicroOp{
		bus(cpubus.InputStart, 3, port, None, false),
		bus(cpubus.InputWait, 2, port, None, false),
		bus(cpubus.InputWait, 2, port, None, true),
		bus(cpubus.Input, 3, port, value, false),
	}
}

// output is a four cycle port write. One wait cycle is always inserted.
func output(port, value Location) []MicroOp {
	return []MicroOp{
		bus(cpubus.OutputStart, 3, port, None, false),
		bus(cpubus.OutputWait, 2, port, None, false),
		bus(cpubus.OutputWait, 2, port, None, true),
		bus(cpubus.Output, 3, port, value, false),
	}
}

// acknowledge is the interrupt acknowledge machine cycle, including refresh.
// The value supplied by the interrupting device is put in the value location.
// The automatic wait is the number of half cycles before the optional wait.
func acknowledge(value Location, automatic clocks.HalfCycles) []MicroOp {
	return []MicroOp{
		bus(cpubus.InterruptStart, 3, PC, None, false),
		bus(cpubus.InterruptWait, automatic, PC, None, false),
		bus(cpubus.InterruptWait, 2, PC, None, true),
		bus(cpubus.Interrupt, 3, PC, value, false),
		bus(cpubus.Refresh, 4, IR, None, false),
	}
}

// wait is n cycles of internal operation. A wait of zero cycles is removed
// during assembly.
func wait(n int) []MicroOp {
	return []MicroOp{bus(cpubus.InternalOperation, clocks.Cycles(n).HalfCycles(), None, None, false)}
}

// fetch reads the byte at PC into the value location and increments PC.
func fetch(value Location) []MicroOp {
	return seq(read(PC, value), inc16(PC))
}

// fetch16 reads a little-endian word at PC into the register pair.
func fetch16(pair Location) []MicroOp {
	return seq(fetch(pair.Low()), fetch(pair.High()))
}

// push the register pair to the stack. High byte first.
func push(pair Location) []MicroOp {
	return seq(
		dec16(SP), write(SP, pair.High()),
		dec16(SP), write(SP, pair.Low()),
	)
}

// pop a register pair from the stack. Low byte first.
func pop(pair Location) []MicroOp {
	return seq(
		read(SP, pair.Low()), inc16(SP),
		read(SP, pair.High()), inc16(SP),
	)
}

func seq(parts ...[]MicroOp) []MicroOp {
	var s []MicroOp
	for _, p := range parts {
		s = append(s, p...)
	}
	return s
}

// instruction joins the parts and ends the program with MoveToNextProgram.
func instruction(parts ...[]MicroOp) Program {
	return Program(seq(append(parts, op(MoveToNextProgram))...))
}

// fetchDecode joins the parts and ends the program with the decode operation.
func fetchDecode(decode Kind, parts ...[]MicroOp) Program {
	return Program(seq(append(parts, op(decode))...))
}

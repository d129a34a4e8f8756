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

// Package microcode contains the instruction set of the Z80 described as
// programs of micro-operations.
//
// Every opcode of every instruction page is a Program: a short sequence of
// MicroOp values ending with a terminal operation (MoveToNextProgram,
// DecodeOperation or DecodeOperationNoRChange). Bus activity is described by
// MicroOps of the BusOperation kind. Everything else is internal to the
// processor and takes no time.
//
// The programs are authored once as a Table for each page and then assembled
// with AssemblePage() into an InstructionPage. Assembly removes operations
// that don't apply to the capabilities of the processor: zero length bus
// cycles, optional wait cycles when the wait line is not in use, and the
// displacement calculation of indexed instructions when the page does not
// use an index register.
//
// The assembled InstructionSet for a set of Capabilities is built the first
// time it is requested with For() and is shared by every processor that asks
// for it. An InstructionSet is never modified after it has been built.
//
// Operands are not pointers. Each MicroOp names its operands with a Location
// and the processor resolves the Location to one of its registers at the
// moment the MicroOp is performed.
package microcode

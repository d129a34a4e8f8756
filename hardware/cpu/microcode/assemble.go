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

import "github.com/zedcycle/zedcycle/curated"

// Table is the authored form of an instruction page. One Program for each
// opcode.
type Table [256]Program

// InstructionPage is the assembled form of a Table. All programs are held in
// a single slice and indexed by opcode.
type InstructionPage struct {
	ID PageID

	// offset into AllOperations for every opcode
	Instructions [256]int

	// the programs of every opcode laid end to end
	AllOperations Program

	// the program that fetches and decodes the next opcode of this page
	FetchDecodeExecute Program

	// the page uses an index register in place of HL
	IsIndexed bool
}

// Program returns the program for the opcode. The program runs to the end of
// the backing slice and is terminated by the first terminal operation.
func (pg *InstructionPage) Program(opcode uint8) Program {
	return pg.AllOperations[pg.Instructions[opcode]:]
}

// filter reports whether the MicroOp is removed for the capabilities.
func filter(op MicroOp, caps Capabilities) bool {
	if op.Kind != BusOperation {
		return false
	}
	if op.Cycle.Length == 0 {
		return true
	}
	if op.Cycle.WasRequested && !caps.WaitLine {
		return true
	}
	return false
}

// measure returns the length of the program up to and including the terminal
// operation. Returns -1 if there is no terminal.
func measure(p Program) int {
	for i, op := range p {
		if op.Kind.IsTerminal() {
			return i + 1
		}
	}
	return -1
}

// AssemblePage packs a Table into an InstructionPage. The fetch program is
// copied into the page with CopyProgram().
//
// Bus operations with a length of zero are removed, as are optional wait
// cycles if the capabilities do not include the wait line. IndexedPlaceholder
// operations are removed and, if addOffsets is false, so is everything
// following them up to and including the next CalculateIndexAddress.
func AssemblePage(id PageID, table *Table, fetch Program, addOffsets bool, caps Capabilities) (*InstructionPage, error) {
	pg := &InstructionPage{
		ID:        id,
		IsIndexed: addOffsets,
	}

	var lengths [256]int
	total := 0
	for c := range table {
		lengths[c] = measure(table[c])
		if lengths[c] == -1 {
			return nil, curated.Errorf(UnterminatedProgram, id, c)
		}
		total += lengths[c]
	}

	var offsets [256]int
	pg.AllOperations = make(Program, 0, total)

	for c := range table {
		offsets[c] = len(pg.AllOperations)

		prg := table[c][:lengths[c]]
		for t := 0; t < len(prg); t++ {
			op := prg[t]

			if filter(op, caps) {
				continue
			}

			if op.Kind == IndexedPlaceholder {
				if addOffsets {
					continue
				}
				for t < len(prg) && prg[t].Kind != CalculateIndexAddress {
					t++
				}
				if t >= len(prg) {
					return nil, curated.Errorf(UnmatchedPlaceholder, id, c)
				}
				continue
			}

			pg.AllOperations = append(pg.AllOperations, op)
		}
	}

	// the backing slice is now final so the lookup can be filled in
	pg.Instructions = offsets

	var err error
	pg.FetchDecodeExecute, err = CopyProgram(fetch, caps)
	if err != nil {
		return nil, curated.Errorf("microcode: %s: %v", id, err)
	}

	return pg, nil
}

// CopyProgram returns a copy of the program up to and including the terminal
// operation. Bus operations are filtered in the same way as AssemblePage().
func CopyProgram(p Program, caps Capabilities) (Program, error) {
	n := measure(p)
	if n == -1 {
		return nil, curated.Errorf("microcode: program without terminal")
	}

	c := make(Program, 0, n)
	for _, op := range p[:n] {
		if filter(op, caps) {
			continue
		}
		c = append(c, op)
	}
	return c, nil
}

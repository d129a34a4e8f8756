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

var bitKinds = [4]Kind{RLC, BIT, RES, SET}

// cbKind returns the kind of the CB page opcode.
func cbKind(opcode int) Kind {
	x := opcode >> 6
	if x == 0 {
		return RLC + Kind((opcode>>3)&7)
	}
	return bitKinds[x]
}

func cbTable() *Table {
	var t Table
	for c := range t {
		k := cbKind(c)
		z := c & 7

		if z != 6 {
			t[c] = instruction(opOn(k, unindexed.register(z)))
			continue
		}

		if k == BIT {
			t[c] = instruction(read(HL, Temp8), wait(1), opOn(k, Temp8))
			continue
		}
		t[c] = instruction(read(HL, Temp8), wait(1), opOn(k, Temp8), write(HL, Temp8))
	}
	return &t
}

// indexedCBTable is the table for the DDCB and FDCB pages. The address of the
// operand has already been calculated by the page's fetch program.
//
// Every opcode operates on memory. Opcodes that would otherwise operate on a
// register also copy the result into that register.
func indexedCBTable() *Table {
	var t Table
	for c := range t {
		k := cbKind(c)
		z := c & 7

		if k == BIT {
			t[c] = instruction(read(Memptr, Temp8), wait(1), opOn(k, Temp8))
			continue
		}

		if z == 6 {
			t[c] = instruction(read(Memptr, Temp8), wait(1), opOn(k, Temp8), write(Memptr, Temp8))
			continue
		}

		t[c] = instruction(
			read(Memptr, Temp8), wait(1), opOn(k, Temp8), write(Memptr, Temp8),
			move8(Temp8, unindexed.register(z)),
		)
	}
	return &t
}

// indexedCBFetch is the fetch program of the DDCB and FDCB pages. The
// displacement comes before the opcode and the opcode is not read with an
// M1 cycle.
func indexedCBFetch(index Location) Program {
	return fetchDecode(DecodeOperationNoRChange,
		fetch(Temp8), calculateIndex(index), read(PC, Opcode), wait(2),
	)
}

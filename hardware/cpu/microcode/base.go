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

// indexing describes how the base table is specialised for the unprefixed,
// DD and FD pages.
type indexing struct {
	// HL, IX or IY
	hl Location

	// the halves of hl
	h Location
	l Location

	// the page switched to by the CB prefix
	cb PageID

	// the page adds a displacement to the index register for memory operands
	addOffsets bool
}

var (
	unindexed = indexing{hl: HL, h: H, l: L, cb: CBPage}
	indexedX  = indexing{hl: IX, h: IXh, l: IXl, cb: DDCBPage, addOffsets: true}
	indexedY  = indexing{hl: IY, h: IYh, l: IYl, cb: FDCBPage, addOffsets: true}
)

// address is the location of the memory operand of (HL) instructions.
func (ix indexing) address() Location {
	if ix.addOffsets {
		return Memptr
	}
	return HL
}

// index is the calculation of the memory operand address for (IX+d) and
// (IY+d) instructions. It is removed by assembly for pages that don't use an
// index register.
func (ix indexing) index() []MicroOp {
	return seq(op(IndexedPlaceholder), fetch(Temp8), wait(5), calculateIndex(ix.hl))
}

// register returns the location of the register in the three bit encoding of
// the opcode map. The (HL) encoding, 6, returns None.
func (ix indexing) register(r int) Location {
	switch r {
	case 0:
		return B
	case 1:
		return C
	case 2:
		return D
	case 3:
		return E
	case 4:
		return ix.h
	case 5:
		return ix.l
	case 7:
		return A
	}
	return None
}

// pair returns the location of the register pair in the two bit encoding of
// the opcode map.
func (ix indexing) pair(p int) Location {
	switch p {
	case 0:
		return BC
	case 1:
		return DE
	case 2:
		return ix.hl
	}
	return SP
}

var aluKinds = [8]Kind{ADD8, ADC8, SUB8, SBC8, AND, XOR, OR, CP8}

var conditions = [8]Kind{TestNZ, TestZ, TestNC, TestC, TestPO, TestPE, TestP, TestM}

var accumulatorKinds = [8]Kind{RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF}

func baseTable(ix indexing) *Table {
	var t Table
	for c := range t {
		t[c] = ix.base(c)
	}
	return &t
}

func (ix indexing) base(opcode int) Program {
	x := opcode >> 6
	y := (opcode >> 3) & 7
	z := opcode & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		return ix.block0(y, z, p, q)

	case 1:
		if y == 6 && z == 6 {
			return instruction(op(HALT))
		}

		// memory operands are used with the unindexed register
		if z == 6 {
			return instruction(ix.index(), read(ix.address(), unindexed.register(y)))
		}
		if y == 6 {
			return instruction(ix.index(), write(ix.address(), unindexed.register(z)))
		}
		return instruction(move8(ix.register(z), ix.register(y)))

	case 2:
		if z == 6 {
			return instruction(ix.index(), read(ix.address(), Temp8), opOn(aluKinds[y], Temp8))
		}
		return instruction(opOn(aluKinds[y], ix.register(z)))
	}

	return ix.block3(y, z, p, q)
}

func (ix indexing) block0(y, z, p, q int) Program {
	switch z {
	case 0:
		switch y {
		case 0:
			return instruction()
		case 1:
			return instruction(op(ExAFAFDash))
		case 2:
			return instruction(wait(1), fetch(Temp8), op(DJNZ), wait(5), calculateIndex(PC), move16(Memptr, PC))
		case 3:
			return instruction(fetch(Temp8), wait(5), calculateIndex(PC), move16(Memptr, PC))
		}
		return instruction(fetch(Temp8), op(conditions[y-4]), wait(5), calculateIndex(PC), move16(Memptr, PC))

	case 1:
		rr := ix.pair(p)
		if q == 0 {
			return instruction(fetch16(rr))
		}
		return instruction(wait(4), wait(3), []MicroOp{{Kind: ADD16, Source: rr, Destination: ix.hl}})

	case 2:
		switch y {
		case 0, 2:
			// LD (BC),A and LD (DE),A
			rr := ix.pair(p)
			return instruction(write(rr, A), move16(rr, Memptr), inc16(Memptr), move8(A, MemptrH))
		case 1, 3:
			// LD A,(BC) and LD A,(DE)
			rr := ix.pair(p)
			return instruction(read(rr, A), move16(rr, Memptr), inc16(Memptr))
		case 4:
			return instruction(fetch16(Memptr), write(Memptr, ix.l), inc16(Memptr), write(Memptr, ix.h))
		case 5:
			return instruction(fetch16(Memptr), read(Memptr, ix.l), inc16(Memptr), read(Memptr, ix.h))
		case 6:
			return instruction(fetch16(Memptr), write(Memptr, A), inc16(Memptr), move8(A, MemptrH))
		}
		return instruction(fetch16(Memptr), read(Memptr, A), inc16(Memptr))

	case 3:
		if q == 0 {
			return instruction(wait(2), inc16(ix.pair(p)))
		}
		return instruction(wait(2), dec16(ix.pair(p)))

	case 4, 5:
		k := Increment8
		if z == 5 {
			k = Decrement8
		}
		if y == 6 {
			return instruction(ix.index(), read(ix.address(), Temp8), wait(1), opOn(k, Temp8), write(ix.address(), Temp8))
		}
		return instruction(opOn(k, ix.register(y)))

	case 6:
		if y == 6 {
			// the displacement comes before the immediate value
			w := 0
			if ix.addOffsets {
				w = 2
			}
			return instruction(
				op(IndexedPlaceholder), fetch(Temp8), calculateIndex(ix.hl),
				fetch(Temp8), wait(w), write(ix.address(), Temp8),
			)
		}
		return instruction(fetch(ix.register(y)))
	}

	return instruction(op(accumulatorKinds[y]))
}

func (ix indexing) block3(y, z, p, q int) Program {
	switch z {
	case 0:
		return instruction(wait(1), op(conditions[y]), pop(Memptr), move16(Memptr, PC))

	case 1:
		if q == 0 {
			if p == 3 {
				return instruction(pop(Temp16), op(DisassembleAF))
			}
			return instruction(pop(ix.pair(p)))
		}
		switch p {
		case 0:
			return instruction(pop(Memptr), move16(Memptr, PC))
		case 1:
			return instruction(op(EXX))
		case 2:
			return instruction(move16(ix.hl, PC))
		}
		return instruction(wait(2), move16(ix.hl, SP))

	case 2:
		return instruction(fetch16(Memptr), op(conditions[y]), move16(Memptr, PC))

	case 3:
		switch y {
		case 0:
			return instruction(fetch16(Memptr), move16(Memptr, PC))
		case 1:
			return instruction(setPage(ix.cb))
		case 2:
			return instruction(
				fetch(Temp16L), move8(A, Temp16H), output(Temp16, A),
				move16(Temp16, Memptr), inc16(Memptr), move8(A, MemptrH),
			)
		case 3:
			return instruction(
				fetch(Temp16L), move8(A, Temp16H), input(Temp16, A),
				move16(Temp16, Memptr), inc16(Memptr),
			)
		case 4:
			return instruction(
				read(SP, Temp16L), inc16(SP), read(SP, Temp16H), wait(1),
				write(SP, ix.h), dec16(SP), write(SP, ix.l), wait(2),
				move16(Temp16, ix.hl), move16(ix.hl, Memptr),
			)
		case 5:
			// always HL, even on the index pages
			return instruction(op(ExDEHL))
		case 6:
			return instruction(op(DI))
		}
		return instruction(op(EI))

	case 4:
		return instruction(fetch16(Memptr), op(conditions[y]), wait(1), push(PC), move16(Memptr, PC))

	case 5:
		if q == 0 {
			if p == 3 {
				return instruction(wait(1), op(AssembleAF), push(Temp16))
			}
			return instruction(wait(1), push(ix.pair(p)))
		}
		switch p {
		case 0:
			return instruction(fetch16(Memptr), wait(1), push(PC), move16(Memptr, PC))
		case 1:
			return instruction(setPage(DDPage))
		case 2:
			return instruction(setPage(EDPage))
		}
		return instruction(setPage(FDPage))

	case 6:
		return instruction(fetch(Temp8), opOn(aluKinds[y], Temp8))
	}

	return instruction(wait(1), push(PC), op(CalculateRSTDestination), move16(Memptr, PC))
}

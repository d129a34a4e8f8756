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

var blockKinds = [4][4]Kind{
	{LDI, CPI, INI, OUTI},
	{LDD, CPD, IND, OUTD},
	{LDIR, CPIR, INIR, OUTI},
	{LDDR, CPDR, INDR, OUTD},
}

func edTable() *Table {
	var t Table
	for c := range t {
		t[c] = ed(c)
	}
	return &t
}

func ed(opcode int) Program {
	x := opcode >> 6
	y := (opcode >> 3) & 7
	z := opcode & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 1:
		return ed1(y, z, p, q)
	case 2:
		if z <= 3 && y >= 4 {
			return edBlock(y, z)
		}
	}

	// all other opcodes are eight cycle NOPs
	return instruction()
}

func ed1(y, z, p, q int) Program {
	switch z {
	case 0:
		if y == 6 {
			// IN F,(C) sets the flags only
			return instruction(input(BC, Temp8), opOn(SetInFlags, Temp8), move16(BC, Memptr), inc16(Memptr))
		}
		r := unindexed.register(y)
		return instruction(input(BC, r), opOn(SetInFlags, r), move16(BC, Memptr), inc16(Memptr))

	case 1:
		if y == 6 {
			// OUT (C),0
			return instruction(op(SetZero), output(BC, Temp8), move16(BC, Memptr), inc16(Memptr))
		}
		return instruction(output(BC, unindexed.register(y)), move16(BC, Memptr), inc16(Memptr))

	case 2:
		k := SBC16
		if q == 1 {
			k = ADC16
		}
		return instruction(wait(4), wait(3), []MicroOp{{Kind: k, Source: unindexed.pair(p), Destination: HL}})

	case 3:
		rr := unindexed.pair(p)
		if q == 0 {
			return instruction(fetch16(Memptr), write(Memptr, rr.Low()), inc16(Memptr), write(Memptr, rr.High()))
		}
		return instruction(fetch16(Memptr), read(Memptr, rr.Low()), inc16(Memptr), read(Memptr, rr.High()))

	case 4:
		return instruction(op(NEG))

	case 5:
		// RETN and RETI both restore IFF1 from IFF2
		return instruction(pop(Memptr), move16(Memptr, PC), op(RETN))

	case 6:
		return instruction(op(IM))
	}

	switch y {
	case 0:
		return instruction(wait(1), move8(A, I))
	case 1:
		return instruction(wait(1), move8(A, R))
	case 2:
		return instruction(wait(1), move8(I, A), op(SetAFlags))
	case 3:
		return instruction(wait(1), move8(R, A), op(SetAFlags))
	case 4:
		return instruction(read(HL, Temp8), wait(4), op(RRD), write(HL, Temp8))
	case 5:
		return instruction(read(HL, Temp8), wait(4), op(RLD), write(HL, Temp8))
	}
	return instruction()
}

func edBlock(y, z int) Program {
	k := blockKinds[y-4][z]
	repeat := y >= 6

	switch z {
	case 0:
		if repeat {
			return instruction(read(HL, Temp8), write(DE, Temp8), wait(2), op(k), wait(5))
		}
		return instruction(read(HL, Temp8), write(DE, Temp8), wait(2), op(k))
	case 1:
		if repeat {
			return instruction(read(HL, Temp8), wait(5), op(k), wait(5))
		}
		return instruction(read(HL, Temp8), wait(5), op(k))
	case 2:
		if repeat {
			return instruction(wait(1), input(BC, Temp8), write(HL, Temp8), op(k), wait(5))
		}
		return instruction(wait(1), input(BC, Temp8), write(HL, Temp8), op(k))
	}

	// B is decremented before the output cycle
	if repeat {
		return instruction(wait(1), read(HL, Temp8), op(k), output(BC, Temp8), op(OUTR), wait(5))
	}
	return instruction(wait(1), read(HL, Temp8), op(k), output(BC, Temp8))
}

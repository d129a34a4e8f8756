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

package alu

import "github.com/zedcycle/zedcycle/hardware/cpu/registers"

// BlockLoad returns the flags after one step of LDI, LDD, LDIR or LDDR. The
// value is the byte transferred and bc the value of BC after it has been
// decremented.
func BlockLoad(a, value uint8, bc uint16, f registers.Flags) registers.Flags {
	sum := a + value
	f.Bit53 = sum&0x08 | (sum&0x02)<<4
	f.Subtract = 0
	f.HalfCarry = 0
	f.ParityOverflow = registers.Flag(bc != 0, registers.MaskParityOverflow)
	return f
}

// BlockCompare returns the flags after one step of CPI, CPD, CPIR or CPDR. The
// value is the byte compared and bc the value of BC after it has been
// decremented. The zero flag is set if the byte matched.
func BlockCompare(a, value uint8, bc uint16, f registers.Flags) registers.Flags {
	result := a - value
	half := (a & 0xf) - (value & 0xf)

	f.ParityOverflow = registers.Flag(bc != 0, registers.MaskParityOverflow)
	f.HalfCarry = half & registers.MaskHalfCarry
	f.Subtract = registers.MaskSubtract
	f.SignAndZero(result)

	result -= (half >> 4) & 1
	f.Bit53 = result&0x08 | (result&0x02)<<4
	return f
}

// BlockIO returns the flags after one step of the INI/IND/OUTI/OUTD family.
// The value is the byte transferred and b the value of B after it has been
// decremented. The counterpart is the byte added to the value to derive the
// carry and parity flags: the low byte of BC adjusted by the direction of the
// transfer for input, and the low byte of HL after the step for output.
func BlockIO(value, b, counterpart uint8) registers.Flags {
	f := registers.Flags{
		Subtract: (value >> 6) & registers.MaskSubtract,
	}
	f.SignAndZero(b)
	f.Bit53 = b & registers.MaskBit53

	sum := int(value) + int(counterpart)
	if sum > 0xff {
		f.Carry = registers.MaskCarry
		f.HalfCarry = registers.MaskHalfCarry
	}
	f.ParityOverflow = Parity(uint8(sum&7) ^ b)
	return f
}

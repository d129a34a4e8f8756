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

// Parity returns the parity/overflow flag bit for v. The bit is set if v has
// an even number of bits set.
func Parity(v uint8) uint8 {
	p := v ^ 1
	p ^= p >> 4
	p ^= p << 2
	p ^= p >> 1
	return p & registers.MaskParityOverflow
}

func szp(f *registers.Flags, v uint8) {
	f.SignAndZero(v)
	f.Bit53 = v & registers.MaskBit53
	f.ParityOverflow = Parity(v)
}

func arithmetic(result int, halfResult int, overflow int, subtract uint8, bit53 uint8) registers.Flags {
	f := registers.Flags{
		HalfCarry:      uint8(halfResult) & registers.MaskHalfCarry,
		ParityOverflow: uint8(overflow>>5) & registers.MaskParityOverflow,
		Subtract:       subtract,
		Carry:          uint8(result>>8) & registers.MaskCarry,
		Bit53:          bit53 & registers.MaskBit53,
	}
	f.SignAndZero(uint8(result))
	return f
}

// Add8 adds v to a. If withCarry is true the carry flag is added too.
func Add8(a, v uint8, f registers.Flags, withCarry bool) (uint8, registers.Flags) {
	c := 0
	if withCarry {
		c = int(f.Carry)
	}
	result := int(a) + int(v) + c
	half := int(a&0xf) + int(v&0xf) + c
	overflow := ^(int(v) ^ int(a)) & (result ^ int(a))
	return uint8(result), arithmetic(result, half, overflow, 0, uint8(result))
}

// Sub8 subtracts v from a. If withCarry is true the carry flag is subtracted
// too.
func Sub8(a, v uint8, f registers.Flags, withCarry bool) (uint8, registers.Flags) {
	c := 0
	if withCarry {
		c = int(f.Carry)
	}
	result := int(a) - int(v) - c
	half := int(a&0xf) - int(v&0xf) - c
	overflow := (int(v) ^ int(a)) & (result ^ int(a))
	return uint8(result), arithmetic(result, half, overflow, registers.MaskSubtract, uint8(result))
}

// Compare8 sets the flags as though v was subtracted from a. Bits 5 and 3
// come from v.
func Compare8(a, v uint8) registers.Flags {
	result := int(a) - int(v)
	half := int(a&0xf) - int(v&0xf)
	overflow := (int(v) ^ int(a)) & (result ^ int(a))
	return arithmetic(result, half, overflow, registers.MaskSubtract, v)
}

func logical(r uint8, halfCarry uint8) registers.Flags {
	f := registers.Flags{HalfCarry: halfCarry}
	szp(&f, r)
	return f
}

// And8 returns a AND v.
func And8(a, v uint8) (uint8, registers.Flags) {
	r := a & v
	return r, logical(r, registers.MaskHalfCarry)
}

// Or8 returns a OR v.
func Or8(a, v uint8) (uint8, registers.Flags) {
	r := a | v
	return r, logical(r, 0)
}

// Xor8 returns a XOR v.
func Xor8(a, v uint8) (uint8, registers.Flags) {
	r := a ^ v
	return r, logical(r, 0)
}

// Inc8 increments v. The carry flag is unaffected.
func Inc8(v uint8, f registers.Flags) (uint8, registers.Flags) {
	r := v + 1
	f.SignAndZero(r)
	f.Bit53 = r & registers.MaskBit53
	f.HalfCarry = registers.Flag(v&0xf == 0xf, registers.MaskHalfCarry)
	f.ParityOverflow = registers.Flag(v == 0x7f, registers.MaskParityOverflow)
	f.Subtract = 0
	return r, f
}

// Dec8 decrements v. The carry flag is unaffected.
func Dec8(v uint8, f registers.Flags) (uint8, registers.Flags) {
	r := v - 1
	f.SignAndZero(r)
	f.Bit53 = r & registers.MaskBit53
	f.HalfCarry = registers.Flag(v&0xf == 0x0, registers.MaskHalfCarry)
	f.ParityOverflow = registers.Flag(v == 0x80, registers.MaskParityOverflow)
	f.Subtract = registers.MaskSubtract
	return r, f
}

// Neg returns the two's complement of a.
func Neg(a uint8) (uint8, registers.Flags) {
	result := -int(a)
	half := -int(a & 0xf)
	f := registers.Flags{
		ParityOverflow: registers.Flag(a == 0x80, registers.MaskParityOverflow),
		Subtract:       registers.MaskSubtract,
		Carry:          uint8(result>>8) & registers.MaskCarry,
		HalfCarry:      uint8(half) & registers.MaskHalfCarry,
	}
	r := uint8(result)
	f.SignAndZero(r)
	f.Bit53 = r & registers.MaskBit53
	return r, f
}

// DAA adjusts a for binary coded decimal after an addition or subtraction.
// The direction of the adjustment is taken from the subtract flag.
func DAA(a uint8, f registers.Flags) (uint8, registers.Flags) {
	low := a & 0xf
	high := a >> 4

	var adjust uint8
	if f.Carry != 0 {
		if low > 9 || f.HalfCarry != 0 {
			adjust = 0x66
		} else {
			adjust = 0x60
		}
	} else {
		switch {
		case low > 9:
			if high > 8 {
				adjust = 0x66
			} else {
				adjust = 0x06
			}
		case f.HalfCarry != 0:
			if high > 9 {
				adjust = 0x66
			} else {
				adjust = 0x06
			}
		default:
			if high > 9 {
				adjust = 0x60
			}
		}

		if (low > 9 && high > 8) || (low <= 9 && high > 9) {
			f.Carry = registers.MaskCarry
		}
	}

	if f.Subtract != 0 {
		a -= adjust
		f.HalfCarry = registers.Flag(f.HalfCarry != 0 && low < 6, registers.MaskHalfCarry)
	} else {
		a += adjust
		f.HalfCarry = registers.Flag(low > 9, registers.MaskHalfCarry)
	}

	szp(&f, a)
	return a, f
}

// CPL returns the one's complement of a.
func CPL(a uint8, f registers.Flags) (uint8, registers.Flags) {
	a = ^a
	f.Subtract = registers.MaskSubtract
	f.HalfCarry = registers.MaskHalfCarry
	f.Bit53 = a & registers.MaskBit53
	return a, f
}

// CCF complements the carry flag. The previous carry is copied to the half
// carry flag.
func CCF(a uint8, f registers.Flags) registers.Flags {
	f.HalfCarry = f.Carry << 4
	f.Carry ^= registers.MaskCarry
	f.Subtract = 0
	f.Bit53 = a & registers.MaskBit53
	return f
}

// SCF sets the carry flag.
func SCF(a uint8, f registers.Flags) registers.Flags {
	f.Carry = registers.MaskCarry
	f.HalfCarry = 0
	f.Subtract = 0
	f.Bit53 = a & registers.MaskBit53
	return f
}

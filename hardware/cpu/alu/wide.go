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

// Add16 adds v to d. The sign, zero and parity/overflow flags are unaffected.
func Add16(d, v uint16, f registers.Flags) (uint16, registers.Flags) {
	result := int(d) + int(v)
	half := int(d&0xfff) + int(v&0xfff)
	f.Bit53 = uint8(result>>8) & registers.MaskBit53
	f.Carry = uint8(result>>16) & registers.MaskCarry
	f.HalfCarry = uint8(half>>8) & registers.MaskHalfCarry
	f.Subtract = 0
	return uint16(result), f
}

func wide(result int, half int, overflow int, subtract uint8) registers.Flags {
	hi := uint8(result >> 8)
	f := registers.Flags{
		Sign:           hi & registers.MaskSign,
		Zero:           registers.Flag(uint16(result) == 0, registers.MaskZero),
		Bit53:          hi & registers.MaskBit53,
		HalfCarry:      uint8(half>>8) & registers.MaskHalfCarry,
		ParityOverflow: uint8(overflow>>13) & registers.MaskParityOverflow,
		Subtract:       subtract,
		Carry:          uint8(result>>16) & registers.MaskCarry,
	}
	return f
}

// Adc16 adds v and the carry flag to d.
func Adc16(d, v uint16, f registers.Flags) (uint16, registers.Flags) {
	c := int(f.Carry)
	result := int(d) + int(v) + c
	half := int(d&0xfff) + int(v&0xfff) + c
	overflow := (result ^ int(d)) & ^(int(d) ^ int(v))
	return uint16(result), wide(result, half, overflow, 0)
}

// Sbc16 subtracts v and the carry flag from d.
func Sbc16(d, v uint16, f registers.Flags) (uint16, registers.Flags) {
	c := int(f.Carry)
	result := int(d) - int(v) - c
	half := int(d&0xfff) - int(v&0xfff) - c
	overflow := (result ^ int(d)) & (int(v) ^ int(d))
	return uint16(result), wide(result, half, overflow, registers.MaskSubtract)
}

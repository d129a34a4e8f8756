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

func rotateA(a uint8, carry uint8, f registers.Flags) (uint8, registers.Flags) {
	f.Bit53 = a & registers.MaskBit53
	f.Carry = carry & registers.MaskCarry
	f.Subtract = 0
	f.HalfCarry = 0
	return a, f
}

// RLCA rotates the accumulator left. Bit 7 goes to both bit 0 and carry.
func RLCA(a uint8, f registers.Flags) (uint8, registers.Flags) {
	c := a >> 7
	return rotateA(a<<1|c, c, f)
}

// RRCA rotates the accumulator right. Bit 0 goes to both bit 7 and carry.
func RRCA(a uint8, f registers.Flags) (uint8, registers.Flags) {
	c := a & 1
	return rotateA(a>>1|c<<7, c, f)
}

// RLA rotates the accumulator left through the carry flag.
func RLA(a uint8, f registers.Flags) (uint8, registers.Flags) {
	return rotateA(a<<1|f.Carry, a>>7, f)
}

// RRA rotates the accumulator right through the carry flag.
func RRA(a uint8, f registers.Flags) (uint8, registers.Flags) {
	return rotateA(a>>1|f.Carry<<7, a&1, f)
}

// Shift identifies one of the eight rotate and shift operations of the CB
// page. The value of the Shift is the same as bits 3 to 5 of the opcode.
type Shift int

// List of valid Shift values.
const (
	RLC Shift = iota
	RRC
	RL
	RR
	SLA
	SRA
	SLL
	SRL
)

func (s Shift) String() string {
	switch s {
	case RLC:
		return "RLC"
	case RRC:
		return "RRC"
	case RL:
		return "RL"
	case RR:
		return "RR"
	case SLA:
		return "SLA"
	case SRA:
		return "SRA"
	case SLL:
		return "SLL"
	case SRL:
		return "SRL"
	}
	return "unknown shift"
}

// Rotate performs the rotate or shift operation on v. Unlike the accumulator
// forms all flags are affected.
func Rotate(s Shift, v uint8, f registers.Flags) (uint8, registers.Flags) {
	var r, c uint8

	switch s {
	case RLC:
		c = v >> 7
		r = v<<1 | c
	case RRC:
		c = v & 1
		r = v>>1 | c<<7
	case RL:
		c = v >> 7
		r = v<<1 | f.Carry
	case RR:
		c = v & 1
		r = v>>1 | f.Carry<<7
	case SLA:
		c = v >> 7
		r = v << 1
	case SRA:
		c = v & 1
		r = v>>1 | v&0x80
	case SLL:
		c = v >> 7
		r = v<<1 | 1
	case SRL:
		c = v & 1
		r = v >> 1
	}

	f = registers.Flags{Carry: c}
	szp(&f, r)
	return r, f
}

// RLD rotates the low nibble of a and the byte m left as a twelve bit
// quantity. The new values of a and m are returned.
func RLD(a, m uint8, f registers.Flags) (uint8, uint8, registers.Flags) {
	low := a & 0xf
	a = a&0xf0 | m>>4
	m = m<<4 | low
	return a, m, decimalRotate(a, f)
}

// RRD rotates the low nibble of a and the byte m right as a twelve bit
// quantity. The new values of a and m are returned.
func RRD(a, m uint8, f registers.Flags) (uint8, uint8, registers.Flags) {
	low := a & 0xf
	a = a&0xf0 | m&0xf
	m = m>>4 | low<<4
	return a, m, decimalRotate(a, f)
}

func decimalRotate(a uint8, f registers.Flags) registers.Flags {
	f.Subtract = 0
	f.HalfCarry = 0
	szp(&f, a)
	return f
}

// Bit tests bit n of v. Bits 5 and 3 of the flags are taken from bit53
// rather than from v.
func Bit(n int, v uint8, bit53 uint8, f registers.Flags) registers.Flags {
	r := v & (1 << (n & 7))
	f.SignAndZero(r)
	f.Bit53 = bit53 & registers.MaskBit53
	f.HalfCarry = registers.MaskHalfCarry
	f.Subtract = 0
	f.ParityOverflow = registers.Flag(r == 0, registers.MaskParityOverflow)
	return f
}

// InFlags returns the flags after v is read by an IN r,(C) instruction.
func InFlags(v uint8, f registers.Flags) registers.Flags {
	f.Subtract = 0
	f.HalfCarry = 0
	szp(&f, v)
	return f
}

// InterruptRegisterFlags returns the flags after a is loaded from the I or R
// register. The parity/overflow flag reflects the state of IFF2.
func InterruptRegisterFlags(a uint8, iff2 bool, f registers.Flags) registers.Flags {
	f.Subtract = 0
	f.HalfCarry = 0
	f.SignAndZero(a)
	f.Bit53 = a & registers.MaskBit53
	f.ParityOverflow = registers.Flag(iff2, registers.MaskParityOverflow)
	return f
}

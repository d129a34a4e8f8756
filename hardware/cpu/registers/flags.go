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

package registers

import "strings"

// Bit masks for each flag.
const (
	MaskSign           = 0x80
	MaskZero           = 0x40
	MaskBit5           = 0x20
	MaskHalfCarry      = 0x10
	MaskBit3           = 0x08
	MaskParityOverflow = 0x04
	MaskSubtract       = 0x02
	MaskCarry          = 0x01

	MaskBit53 = MaskBit5 | MaskBit3
)

// Flags is the decomposed Z80 flags register. Each field contains only the
// bits given by the corresponding mask. Use Normalise() after assigning
// fields from unmasked values.
type Flags struct {
	Sign           uint8
	Zero           uint8
	Bit53          uint8
	HalfCarry      uint8
	ParityOverflow uint8
	Subtract       uint8
	Carry          uint8
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

func (f Flags) String() string {
	s := strings.Builder{}

	b := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	b(f.Sign != 0, 'S')
	b(f.Zero != 0, 'Z')
	b(f.Bit53&MaskBit5 != 0, 'Y')
	b(f.HalfCarry != 0, 'H')
	b(f.Bit53&MaskBit3 != 0, 'X')
	b(f.ParityOverflow != 0, 'P')
	b(f.Subtract != 0, 'N')
	b(f.Carry != 0, 'C')

	return s.String()
}

// Value returns the flags as a single byte.
func (f Flags) Value() uint8 {
	return f.Sign | f.Zero | f.Bit53 | f.HalfCarry | f.ParityOverflow | f.Subtract | f.Carry
}

// Load decomposes a byte into the flag fields.
func (f *Flags) Load(v uint8) {
	f.Sign = v & MaskSign
	f.Zero = v & MaskZero
	f.Bit53 = v & MaskBit53
	f.HalfCarry = v & MaskHalfCarry
	f.ParityOverflow = v & MaskParityOverflow
	f.Subtract = v & MaskSubtract
	f.Carry = v & MaskCarry
}

// Normalise masks each field so that it contains only the bits it is
// responsible for.
func (f *Flags) Normalise() {
	f.Sign &= MaskSign
	f.Zero &= MaskZero
	f.Bit53 &= MaskBit53
	f.HalfCarry &= MaskHalfCarry
	f.ParityOverflow &= MaskParityOverflow
	f.Subtract &= MaskSubtract
	f.Carry &= MaskCarry
}

// SignAndZero sets the S and Z flags from the result of an operation.
func (f *Flags) SignAndZero(result uint8) {
	f.Sign = result & MaskSign
	if result == 0 {
		f.Zero = MaskZero
	} else {
		f.Zero = 0
	}
}

// Flag returns a value suitable for a Flags field: mask if b is true, zero
// otherwise.
func Flag(b bool, mask uint8) uint8 {
	if b {
		return mask
	}
	return 0
}

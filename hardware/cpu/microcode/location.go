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

// Location names a register, or half of a register pair, that a MicroOp
// operates on.
type Location int

// List of valid Location values. Eight bit locations come before sixteen bit
// locations.
const (
	None Location = iota

	A
	B
	C
	D
	E
	H
	L
	IXh
	IXl
	IYh
	IYl
	I
	R
	PCh
	PCl
	SPh
	SPl
	MemptrH
	MemptrL
	Temp16H
	Temp16L
	Temp8
	Opcode

	BC
	DE
	HL
	IX
	IY
	SP
	PC
	IR
	Memptr
	Temp16
)

var locationNames = [...]string{
	None:    "none",
	A:       "A",
	B:       "B",
	C:       "C",
	D:       "D",
	E:       "E",
	H:       "H",
	L:       "L",
	IXh:     "IXh",
	IXl:     "IXl",
	IYh:     "IYh",
	IYl:     "IYl",
	I:       "I",
	R:       "R",
	PCh:     "PCh",
	PCl:     "PCl",
	SPh:     "SPh",
	SPl:     "SPl",
	MemptrH: "MEMPTRh",
	MemptrL: "MEMPTRl",
	Temp16H: "TEMP16h",
	Temp16L: "TEMP16l",
	Temp8:   "TEMP8",
	Opcode:  "OPCODE",
	BC:      "BC",
	DE:      "DE",
	HL:      "HL",
	IX:      "IX",
	IY:      "IY",
	SP:      "SP",
	PC:      "PC",
	IR:      "IR",
	Memptr:  "MEMPTR",
	Temp16:  "TEMP16",
}

func (l Location) String() string {
	if l < 0 || int(l) >= len(locationNames) {
		return "unknown location"
	}
	return locationNames[l]
}

// IsWord returns true if the location is a sixteen bit register pair.
func (l Location) IsWord() bool {
	return l >= BC && l <= Temp16
}

// IsByte returns true if the location is an eight bit register.
func (l Location) IsByte() bool {
	return l >= A && l <= Opcode
}

// High returns the location of the high byte of a register pair. Returns None
// if the location is not a register pair.
func (l Location) High() Location {
	switch l {
	case BC:
		return B
	case DE:
		return D
	case HL:
		return H
	case IX:
		return IXh
	case IY:
		return IYh
	case SP:
		return SPh
	case PC:
		return PCh
	case IR:
		return I
	case Memptr:
		return MemptrH
	case Temp16:
		return Temp16H
	}
	return None
}

// Low returns the location of the low byte of a register pair. Returns None
// if the location is not a register pair.
func (l Location) Low() Location {
	switch l {
	case BC:
		return C
	case DE:
		return E
	case HL:
		return L
	case IX:
		return IXl
	case IY:
		return IYl
	case SP:
		return SPl
	case PC:
		return PCl
	case IR:
		return R
	case Memptr:
		return MemptrL
	case Temp16:
		return Temp16L
	}
	return None
}

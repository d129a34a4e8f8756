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

// Package registers implements the register types of the Z80.
//
// Most Z80 registers are eight bits wide and are often used in pairs. The
// Pair type stores two such registers and gives access to the combined
// sixteen bit value. The high and low halves are addressable individually:
//
//	var hl registers.Pair
//	hl.Load(0x1234)
//	hl.High // 0x12
//	hl.Low  // 0x34
//
// The flags register is stored decomposed into its fields. Each field of the
// Flags type holds only the bit (or bits) it represents in the flag byte, so
// the flag byte can be rebuilt by ORing the fields together. See the Flags
// type for the bit assignments.
package registers

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

// Package alu contains the arithmetic and logic of the Z80 expressed as pure
// functions. Each function takes the operands and the current flags and
// returns the result together with the new flags. Flags that an operation
// does not affect are carried over from the flags passed in.
//
// Half-carry is the carry out of bit 3 for eight bit operations and out of
// bit 11 for sixteen bit operations. Overflow for addition is set when the
// operands have the same sign and the result a different sign. For
// subtraction it is set when the operands have different signs and the sign
// of the result differs from the minuend.
//
// Bits 5 and 3 of the flags register (undocumented) are taken from the result
// of an operation with the exception of the compare operation, where they are
// taken from the operand.
package alu

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

// Error patterns. Test for them with curated.Is() or curated.Has().
const (
	// an indexed placeholder has survived assembly. this is always a defect
	// in the instruction tables
	PlaceholderReached = "microcode: indexed placeholder reached (page %s opcode %#02x)"

	// a program in a table does not end with a terminal operation
	UnterminatedProgram = "microcode: program without terminal (page %s opcode %#02x)"

	// an indexed placeholder that should be removed is not followed by an
	// index calculation
	UnmatchedPlaceholder = "microcode: placeholder without index calculation (page %s opcode %#02x)"
)

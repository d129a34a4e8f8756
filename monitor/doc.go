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

// Package monitor is a line based machine code monitor for the all-RAM
// machine. Commands are read from an io.Reader and results written to an
// io.Writer, so the monitor can be driven from a terminal or from a script.
//
// Commands are case insensitive and can be abbreviated to their first letter
// where no ambiguity exists. Addresses accept the forms understood by
// modalflag.ParseAddress(). The HELP command lists everything available.
//
// The SCRIPT command runs a file of monitor commands. The LUA command runs a
// Lua program with functions for stepping the machine and for reading and
// writing memory and registers:
//
//	while not halted() do
//		step()
//	end
//	print(string.format("HL=%04x", reg("HL")))
//
// When a Terminal is supplied the KEYS command puts it into cbreak mode so
// that single key presses step the processor:
//
//	space   step one instruction
//	c       run one cycle
//	r       print registers
//	q, esc  return to the command line
package monitor

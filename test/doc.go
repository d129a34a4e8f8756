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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality and ExpectInequality functions compare like-typed
// values. The ExpectSuccess and ExpectFailure functions test for success and
// failure under generic conditions; the documentation for those functions
// describes the currently supported types.
//
// It is worth describing how the "Expect" functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// The "Demand" functions are the same as their "Expect" equivalents except
// that a failed test is fatal. Use them when later parts of a test depend on
// the value being correct.
//
// All functions take optional tags which are used to prefix failure
// messages. If the first tag is a string with formatting verbs it is used as
// the format for the remaining tags:
//
//	test.ExpectEquality(t, got, want, "opcode %02x", opcode)
//
// The Writer type meanwhile, implements the io.Writer interface and should be
// used to capture output. The Writer.Compare() function can then be used to
// test for equality.
package test

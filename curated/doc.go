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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as the Errorf()
// function in the fmt package.
//
// The pattern doubles as the identity of the error. Packages that need to
// signal a specific condition export the pattern as a constant and callers
// test for it with Is() or Has():
//
//	const PlaceholderReached = "microcode: indexed placeholder reached (page %s opcode %#02x)"
//
//	err := curated.Errorf(PlaceholderReached, page, opcode)
//	if curated.Is(err, PlaceholderReached) {
//		...
//	}
//
// Has() is similar to Is() but checks for the pattern anywhere in a chain of
// curated errors:
//
//	f := curated.Errorf("z80: %v", err)
//	curated.Has(f, PlaceholderReached) // true
//	curated.Is(f, PlaceholderReached)  // false
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Parts are separated by the sub-string ": ", as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
// This means that a function can prefix an error with its package name
// without worrying whether the error it received already carries that prefix:
//
//	curated.Errorf("allram: %v", curated.Errorf("allram: file too large"))
//
// prints as "allram: file too large".
//
// A curated error wrapping an uncurated error can still be inspected with
// the errors.Is() and errors.As() functions of the standard library.
package curated

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

// Package clocks defines the units of time used to drive emulated hardware
// and the constant values that define the speed of common Z80 host clocks.
//
// Two units are defined. Cycles counts whole clock periods, pairs of clock
// signal transitions. HalfCycles counts single clock signal transitions.
// Both are named integer types so the usual arithmetic and comparison
// operators work, but Go will not mix them in a single expression and every
// conversion between the two must go through a method that states what it
// does:
//
//	h := clocks.Cycles(3).HalfCycles() // exactly 6
//	c := h.Cycles()                     // 3, h is unchanged
//	c = h.FlushCycles()                 // 3, h is now 0
//
// A type conversion between the two units compiles but is always wrong.
// clocks.HalfCycles(c) for a Cycles value c drops the factor of two. Only
// untyped constants and plain integers should be converted to either unit.
//
// Conversion from HalfCycles to Cycles is lossy and the methods that do it
// either leave the remainder in place (FlushCycles, DivideCycles) or don't
// mutate at all (Cycles).
//
// Components that are driven by a clock implement either or both of the
// CycleReceiver and HalfCycleReceiver interfaces. The HalfClockReceiver type
// wraps a CycleReceiver so that it can also be driven at half-cycle
// precision.
//
// Alignment rule: RunForCycles() may be called only after an even number of
// half cycles. For example, the following sequence has undefined results:
//
//	r.RunForHalfCycles(1)
//	r.RunForCycles(1)
//
// The easiest way to ensure this as a caller is to only ever use one of the
// two methods. Starting from nothing, the first RunForHalfCycles(1) performs
// the first half of a whole cycle, the second performs the second half, and
// so on.
package clocks

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

package clocks

// Cycles describes an integer number of whole cycles: pairs of clock signal
// transitions.
type Cycles int

// HalfCycles describes an integer number of half cycles: single clock signal
// transitions.
type HalfCycles int

// AsInt returns the number of cycles as a plain integer. Use sparingly and
// only at the boundary with code that has no notion of cycles.
func (c Cycles) AsInt() int {
	return int(c)
}

// HalfCycles returns the exact number of half cycles in the receiver.
func (c Cycles) HalfCycles() HalfCycles {
	return HalfCycles(c) * 2
}

// Inc adds one to the receiver.
func (c *Cycles) Inc() {
	*c++
}

// Dec subtracts one from the receiver.
func (c *Cycles) Dec() {
	*c--
}

// Divide severs from the receiver the effect of dividing by divisor. The
// receiver is left with the remainder and the quotient is returned.
func (c *Cycles) Divide(divisor Cycles) Cycles {
	q := *c / divisor
	*c %= divisor
	return q
}

// Flush returns the current value of the receiver and resets it to zero.
func (c *Cycles) Flush() Cycles {
	v := *c
	*c = 0
	return v
}

// AsInt returns the number of half cycles as a plain integer. Use sparingly
// and only at the boundary with code that has no notion of cycles.
func (h HalfCycles) AsInt() int {
	return int(h)
}

// Cycles returns the number of whole cycles completely covered by the
// receiver. The receiver is not changed.
func (h HalfCycles) Cycles() Cycles {
	return Cycles(h >> 1)
}

// Inc adds one to the receiver.
func (h *HalfCycles) Inc() {
	*h++
}

// Dec subtracts one from the receiver.
func (h *HalfCycles) Dec() {
	*h--
}

// FlushCycles returns the whole cycles in the receiver, leaving behind the odd
// half cycle if there is one.
func (h *HalfCycles) FlushCycles() Cycles {
	c := Cycles(*h >> 1)
	*h &= 1
	return c
}

// Flush returns the number of half cycles in the receiver and resets it to
// zero.
func (h *HalfCycles) Flush() HalfCycles {
	v := *h
	*h = 0
	return v
}

// Divide severs from the receiver the effect of dividing by divisor. The
// receiver is left with the remainder and the quotient is returned.
func (h *HalfCycles) Divide(divisor HalfCycles) HalfCycles {
	q := *h / divisor
	*h %= divisor
	return q
}

// DivideCycles is like Divide() but with a divisor and quotient expressed in
// whole cycles. The remainder left in the receiver is in half cycles.
func (h *HalfCycles) DivideCycles(divisor Cycles) Cycles {
	d := divisor.HalfCycles()
	q := Cycles(*h / d)
	*h %= d
	return q
}

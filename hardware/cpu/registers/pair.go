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

import "fmt"

// Pair is a sixteen bit register made up of two eight bit registers.
type Pair struct {
	High uint8
	Low  uint8
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair(v uint16) Pair {
	return Pair{High: uint8(v >> 8), Low: uint8(v)}
}

func (p Pair) String() string {
	return fmt.Sprintf("%04x", p.Value())
}

// Value returns the sixteen bit value of the pair.
func (p Pair) Value() uint16 {
	return uint16(p.High)<<8 | uint16(p.Low)
}

// Load a sixteen bit value into the pair.
func (p *Pair) Load(v uint16) {
	p.High = uint8(v >> 8)
	p.Low = uint8(v)
}

// Add a signed value to the pair. The result wraps at sixteen bits.
func (p *Pair) Add(v int) {
	p.Load(uint16(int(p.Value()) + v))
}

// Swap exchanges the contents of two pairs.
func (p *Pair) Swap(q *Pair) {
	*p, *q = *q, *p
}

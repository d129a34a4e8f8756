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

package clocks_test

import (
	"testing"

	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/test"
)

type recorder struct {
	calls []clocks.Cycles
	total clocks.Cycles
}

func (r *recorder) RunForCycles(c clocks.Cycles) {
	r.calls = append(r.calls, c)
	r.total += c
}

func TestHalfClockReceiver(t *testing.T) {
	r := &recorder{}
	h := clocks.NewHalfClockReceiver(r)

	// a single half cycle forwards nothing, the wrapped receiver is still
	// called with zero
	h.RunForHalfCycles(1)
	test.ExpectEquality(t, len(r.calls), 1)
	test.ExpectEquality(t, r.calls[0], clocks.Cycles(0))
	test.ExpectEquality(t, h.Residual(), clocks.HalfCycles(1))

	h.RunForHalfCycles(1)
	test.ExpectEquality(t, r.calls[1], clocks.Cycles(1))
	test.ExpectEquality(t, h.Residual(), clocks.HalfCycles(0))

	h.RunForHalfCycles(5)
	test.ExpectEquality(t, r.calls[2], clocks.Cycles(2))
	test.ExpectEquality(t, h.Residual(), clocks.HalfCycles(1))

	h.RunForHalfCycles(3)
	test.ExpectEquality(t, r.calls[3], clocks.Cycles(2))
	test.ExpectEquality(t, h.Residual(), clocks.HalfCycles(0))

	// whole cycles pass straight through
	h.RunForCycles(4)
	test.ExpectEquality(t, r.calls[4], clocks.Cycles(4))
	test.ExpectEquality(t, h.Residual(), clocks.HalfCycles(0))
}

func TestHalfClockReceiverConservation(t *testing.T) {
	r := &recorder{}
	h := clocks.NewHalfClockReceiver(r)

	var fed clocks.HalfCycles
	for i := 0; i < 50; i++ {
		n := clocks.HalfCycles(i % 7)
		fed += n
		h.RunForHalfCycles(n)
		test.ExpectEquality(t, r.total.HalfCycles()+h.Residual(), fed, i)
		test.ExpectSuccess(t, h.Residual() == 0 || h.Residual() == 1, i)
	}
}

// interface conformance
var _ clocks.CycleReceiver = (*clocks.HalfClockReceiver)(nil)
var _ clocks.HalfCycleReceiver = (*clocks.HalfClockReceiver)(nil)

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
	"time"

	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/test"
)

func TestConversion(t *testing.T) {
	test.ExpectEquality(t, clocks.Cycles(3).HalfCycles(), clocks.HalfCycles(6))
	test.ExpectEquality(t, clocks.HalfCycles(7).Cycles(), clocks.Cycles(3))
	test.ExpectEquality(t, clocks.HalfCycles(0).Cycles(), clocks.Cycles(0))

	for i := 0; i < 100; i++ {
		c := clocks.Cycles(i)
		test.ExpectEquality(t, c.HalfCycles().Cycles(), c, i)
	}
}

func TestFlushCycles(t *testing.T) {
	h := clocks.HalfCycles(7)
	test.ExpectEquality(t, h.FlushCycles(), clocks.Cycles(3))
	test.ExpectEquality(t, h, clocks.HalfCycles(1))

	h = clocks.HalfCycles(8)
	test.ExpectEquality(t, h.FlushCycles(), clocks.Cycles(4))
	test.ExpectEquality(t, h, clocks.HalfCycles(0))
}

func TestFlush(t *testing.T) {
	h := clocks.HalfCycles(9)
	test.ExpectEquality(t, h.Flush(), clocks.HalfCycles(9))
	test.ExpectEquality(t, h, clocks.HalfCycles(0))

	c := clocks.Cycles(5)
	test.ExpectEquality(t, c.Flush(), clocks.Cycles(5))
	test.ExpectEquality(t, c, clocks.Cycles(0))
}

func TestDivide(t *testing.T) {
	c := clocks.Cycles(10)
	test.ExpectEquality(t, c.Divide(3), clocks.Cycles(3))
	test.ExpectEquality(t, c, clocks.Cycles(1))

	h := clocks.HalfCycles(10)
	test.ExpectEquality(t, h.Divide(4), clocks.HalfCycles(2))
	test.ExpectEquality(t, h, clocks.HalfCycles(2))

	h = clocks.HalfCycles(11)
	test.ExpectEquality(t, h.DivideCycles(2), clocks.Cycles(2))
	test.ExpectEquality(t, h, clocks.HalfCycles(3))
}

func TestIncDec(t *testing.T) {
	c := clocks.Cycles(0)
	c.Inc()
	c.Inc()
	c.Dec()
	test.ExpectEquality(t, c, clocks.Cycles(1))

	h := clocks.HalfCycles(0)
	h.Dec()
	test.ExpectEquality(t, h, clocks.HalfCycles(-1))
	h.Inc()
	h.Inc()
	test.ExpectEquality(t, h.AsInt(), 1)
}

func TestRates(t *testing.T) {
	test.ExpectEquality(t, clocks.HalfCyclesIn(time.Second, clocks.AmstradCPC), clocks.HalfCycles(8000000))
	test.ExpectEquality(t, clocks.HalfCyclesIn(time.Millisecond, clocks.ZXSpectrum), clocks.HalfCycles(7000))
	test.ExpectEquality(t, clocks.HalfCycles(8000000).Duration(clocks.AmstradCPC), time.Second)
}

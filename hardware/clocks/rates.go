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

import "time"

// Clock rates, in MHz, of some common Z80 hosts.
const (
	ZXSpectrum = 3.5
	ZX81       = 3.25
	MSX        = 3.579545
	AmstradCPC = 4.0
	TRS80      = 1.77408
	SMS        = 3.579545
)

// HalfCyclesIn returns the number of half cycles that elapse in the duration
// for a clock running at rate MHz. The result is truncated.
func HalfCyclesIn(d time.Duration, rate float64) HalfCycles {
	return HalfCycles(d.Seconds() * rate * 2000000)
}

// Duration returns the length of time taken by the number of half cycles for
// a clock running at rate MHz.
func (h HalfCycles) Duration(rate float64) time.Duration {
	return time.Duration(float64(h) / (rate * 2000000) * float64(time.Second))
}

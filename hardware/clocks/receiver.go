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

// CycleReceiver is implemented by components that can be driven in whole
// cycles.
type CycleReceiver interface {
	RunForCycles(Cycles)
}

// HalfCycleReceiver is implemented by components that can be driven in half
// cycles.
type HalfCycleReceiver interface {
	RunForHalfCycles(HalfCycles)
}

// HalfClockReceiver wraps a CycleReceiver so that it can also be driven in
// half cycles. Half cycles are accumulated and only completed whole cycles
// are forwarded to the wrapped receiver.
type HalfClockReceiver struct {
	receiver   CycleReceiver
	halfCycles HalfCycles
}

// NewHalfClockReceiver is the preferred method of initialisation for the
// HalfClockReceiver type.
func NewHalfClockReceiver(receiver CycleReceiver) *HalfClockReceiver {
	return &HalfClockReceiver{
		receiver: receiver,
	}
}

// RunForCycles implements the CycleReceiver interface. The cycles are passed
// directly to the wrapped receiver.
func (h *HalfClockReceiver) RunForCycles(cycles Cycles) {
	h.receiver.RunForCycles(cycles)
}

// RunForHalfCycles implements the HalfCycleReceiver interface.
func (h *HalfClockReceiver) RunForHalfCycles(halfCycles HalfCycles) {
	h.halfCycles += halfCycles
	h.receiver.RunForCycles(h.halfCycles.FlushCycles())
}

// Residual returns the half cycle that has been received but not yet
// forwarded. It is always zero or one.
func (h *HalfClockReceiver) Residual() HalfCycles {
	return h.halfCycles
}

// Receiver returns the wrapped receiver.
func (h *HalfClockReceiver) Receiver() CycleReceiver {
	return h.receiver
}

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

package cpu

import (
	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/clocks"
)

// SetInterruptLine changes the state of the IRQ line. The line is level
// triggered and masked by IFF1.
//
// The offset is the time of the change relative to now and is zero or
// negative. A change made at least one whole cycle ago is treated as having
// been seen when the lines were last sampled.
func (mc *Processor) SetInterruptLine(value bool, offset clocks.HalfCycles) {
	if mc.irqLine == value {
		return
	}
	mc.irqLine = value
	mc.updateIRQRequest()

	if offset <= -2 {
		mc.lastRequestStatus = mc.lastRequestStatus&^requestIRQ | mc.requestStatus&requestIRQ
	}
}

// InterruptLine returns the state of the IRQ line.
func (mc *Processor) InterruptLine() bool {
	return mc.irqLine
}

func (mc *Processor) updateIRQRequest() {
	if mc.irqLine && mc.iff1 {
		mc.requestStatus |= requestIRQ
	} else {
		mc.requestStatus &^= requestIRQ
	}
}

// SetNonMaskableInterruptLine changes the state of the NMI line. A request
// is made every time the line is set. Any negative offset means the request
// was seen when the lines were last sampled.
func (mc *Processor) SetNonMaskableInterruptLine(value bool, offset clocks.HalfCycles) {
	mc.nmiLine = value
	if value {
		mc.requestStatus |= requestNMI
		if offset < 0 {
			mc.lastRequestStatus |= requestNMI
		}
	}
}

// NonMaskableInterruptLine returns the state of the NMI line.
func (mc *Processor) NonMaskableInterruptLine() bool {
	return mc.nmiLine
}

// SetResetLine changes the state of the reset line. The processor is held in
// the reset sequence for as long as the line is held.
func (mc *Processor) SetResetLine(value bool) {
	mc.resetLine = value
	if value {
		mc.requestStatus |= requestReset
	} else {
		mc.requestStatus &^= requestReset
	}
}

// ResetLine returns the state of the reset line.
func (mc *Processor) ResetLine() bool {
	return mc.resetLine
}

// SetBusRequestLine changes the state of the bus request line. While the
// line is held the processor performs only cpubus.BusAcknowledge cycles.
//
// Panics with CapabilityNotEnabled if the processor was not created with the
// BusRequest capability.
func (mc *Processor) SetBusRequestLine(value bool) {
	if !mc.set.Capabilities.BusRequest {
		panic(curated.Errorf(CapabilityNotEnabled, "bus request"))
	}
	mc.busRequestLine = value
}

// BusRequestLine returns the state of the bus request line.
func (mc *Processor) BusRequestLine() bool {
	return mc.busRequestLine
}

// SetWaitLine changes the state of the wait line. While the line is held the
// processor repeats the optional wait cycle of the current machine cycle.
//
// Panics with CapabilityNotEnabled if the processor was not created with the
// WaitLine capability.
func (mc *Processor) SetWaitLine(value bool) {
	if !mc.set.Capabilities.WaitLine {
		panic(curated.Errorf(CapabilityNotEnabled, "wait"))
	}
	mc.waitLine = value
}

// WaitLine returns the state of the wait line.
func (mc *Processor) WaitLine() bool {
	return mc.waitLine
}

// HaltLine returns true if the processor is halted.
func (mc *Processor) HaltLine() bool {
	return mc.haltMask == 0x00
}

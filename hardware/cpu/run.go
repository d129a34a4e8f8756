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
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/logger"
)

// RunForCycles implements the clocks.CycleReceiver interface.
func (mc *Processor) RunForCycles(c clocks.Cycles) {
	mc.RunForHalfCycles(c.HalfCycles())
}

// RunForHalfCycles implements the clocks.HalfCycleReceiver interface.
//
// Machine cycles are performed until the next one would exceed the time
// available. The bus handler's Flush() function is called before returning.
func (mc *Processor) RunForHalfCycles(h clocks.HalfCycles) {
	if mc.fault != nil {
		return
	}

	mc.budget += h

	if mc.ops == nil {
		mc.advance()
	}

	for {
		for mc.set.Capabilities.BusRequest && mc.busRequestLine {
			if mc.budget < busAcknowledgeLength {
				mc.handler.Flush()
				return
			}
			mc.budget -= busAcknowledgeLength
			mc.budget -= mc.handler.PerformMachineCycle(&mc.busAcknowledge)
		}

		op := &mc.ops[mc.next]
		mc.next++

		switch op.Kind {
		case microcode.BusOperation:
			if op.Cycle.WasRequested && !mc.waitLine {
				continue
			}

			if mc.budget < op.Cycle.Length {
				mc.next--
				mc.handler.Flush()
				return
			}

			// an optional wait cycle repeats for as long as the wait line is
			// held
			if op.Cycle.WasRequested {
				mc.next--
			}

			mc.boundary = false
			mc.budget -= op.Cycle.Length
			mc.lastRequestStatus = mc.requestStatus

			mc.cycle.Operation = op.Cycle.Operation
			mc.cycle.Length = op.Cycle.Length
			mc.cycle.Address = mc.address(op.Cycle.Address)
			mc.cycle.Value = mc.reg8(op.Cycle.Value)
			mc.cycle.WasRequested = op.Cycle.WasRequested
			mc.budget -= mc.handler.PerformMachineCycle(&mc.cycle)

		case microcode.IndexedPlaceholder:
			mc.fault = curated.Errorf(microcode.PlaceholderReached, mc.page.ID, mc.opcode)
			logger.Log(mc.log, "z80", mc.fault.Error())
			mc.next--
			mc.handler.Flush()
			return

		default:
			// the internal operations at the start of a program happen with
			// its first bus cycle
			if mc.boundary && !mc.canStart() {
				mc.next--
				mc.handler.Flush()
				return
			}
			mc.execute(op)
		}
	}
}

// canStart returns true if the budget covers the first bus cycle of the
// scheduled program from the current MicroOp onwards.
func (mc *Processor) canStart() bool {
	for i := mc.next - 1; i < len(mc.ops); i++ {
		op := &mc.ops[i]
		if op.Kind != microcode.BusOperation {
			continue
		}
		if op.Cycle.WasRequested && !mc.waitLine {
			continue
		}
		return mc.budget >= op.Cycle.Length
	}
	return true
}

// advance schedules the next program. Any request sampled during the
// previous machine cycle is serviced in preference to the next instruction.
func (mc *Processor) advance() {
	mc.pcIncrement = 1
	mc.page = mc.set.Page(microcode.BasePage)
	mc.next = 0
	mc.boundary = true

	if mc.lastRequestStatus == 0 {
		mc.ops = mc.page.FetchDecodeExecute
		return
	}

	mc.haltMask = 0xff

	switch {
	case mc.lastRequestStatus&(requestReset|requestPowerOn) != 0:
		mc.requestStatus &^= requestPowerOn
		mc.ops = mc.set.Reset
	case mc.lastRequestStatus&requestNMI != 0:
		mc.requestStatus &^= requestNMI
		mc.ops = mc.set.NMI
	default:
		mc.ops = mc.set.IRQ[mc.interruptMode]
	}
}

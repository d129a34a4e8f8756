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

// Package cpu emulates the Zilog Z80 microprocessor at the level of
// individual machine cycles.
//
// The Processor does not own any memory or ports. Every bus transaction, and
// every period of internal operation, is described as a cpubus.MachineCycle
// and passed to the cpubus.Handler supplied to NewProcessor(). The handler
// services the transaction and reports how many additional half cycles it
// took, if any.
//
// The Processor is driven by a budget of time. It performs machine cycles
// until the next cycle would exceed the budget and then returns. The unused
// remainder is carried over to the next call, and execution resumes exactly
// where it stopped, possibly in the middle of an instruction:
//
//	mc := cpu.NewProcessor(handler, microcode.Capabilities{})
//	for {
//		mc.RunForCycles(224)
//		// ... other emulation for the same period
//	}
//
// The Processor implements both clocks.CycleReceiver and
// clocks.HalfCycleReceiver. A caller should only ever use one of the two
// methods (see the clocks package).
//
// A freshly constructed Processor has a pending power-on request and the
// first three cycles it is given are spent in the reset sequence.
//
// Lines
//
// The IRQ, NMI and reset lines are always available. The bus request and
// wait lines are only available if the Processor was created with the
// corresponding capability. The interrupt and NMI setters take an offset
// describing how long ago, in half cycles, the change really happened. A
// change that happened before the most recent sampling of the lines is
// treated as though it was seen by that sampling.
//
// Requests are sampled on every machine cycle but only acted upon at the end
// of an instruction. This gives the Z80's one instruction delay after EI
// without any special handling.
package cpu

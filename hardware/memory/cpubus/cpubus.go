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

// Package cpubus defines the interface between the Z80 and the machine that
// hosts it. The processor describes every bus transaction, and every idle
// period between transactions, as a MachineCycle and passes it to the Handler
// supplied by the host.
//
// Addresses and values are passed by pointer. The Handler reads the value
// pointer on write and output operations and fills it on read, input and
// interrupt-acknowledge operations. Value is nil for operations that carry no
// data.
package cpubus

import (
	"fmt"

	"github.com/zedcycle/zedcycle/hardware/clocks"
)

// MachineCycle describes a single period of bus activity.
type MachineCycle struct {
	Operation Operation

	// the length of the cycle in half cycles
	Length clocks.HalfCycles

	Address uint16
	Value   *uint8

	// a cycle that is performed only because the wait line is being held
	// has WasRequested set
	WasRequested bool
}

func (mc MachineCycle) String() string {
	if mc.Value == nil {
		return fmt.Sprintf("%s [%d] %04x", mc.Operation, mc.Length, mc.Address)
	}
	return fmt.Sprintf("%s [%d] %04x=%02x", mc.Operation, mc.Length, mc.Address, *mc.Value)
}

// IsRead returns true if the value is filled by the Handler.
func (mc MachineCycle) IsRead() bool {
	switch mc.Operation {
	case ReadOpcode, Read, Input, Interrupt:
		return true
	}
	return false
}

// IsWrite returns true if the value is supplied by the processor.
func (mc MachineCycle) IsWrite() bool {
	switch mc.Operation {
	case Write, Output:
		return true
	}
	return false
}

// Handler is implemented by the host of a Z80.
//
// PerformMachineCycle() is called for every machine cycle the processor
// performs. The returned value is the number of additional half cycles the
// cycle took, usually zero. Those extra half cycles are charged against the
// processor's run budget.
//
// Flush() is called at the end of every RunFor() call so that a host that
// batches its own time accounting can settle.
type Handler interface {
	PerformMachineCycle(*MachineCycle) clocks.HalfCycles
	Flush()
}

// HandlerFuncs adapts a pair of functions to the Handler interface. Either
// function may be nil.
type HandlerFuncs struct {
	Cycle func(*MachineCycle) clocks.HalfCycles
	Done  func()
}

// PerformMachineCycle implements the Handler interface.
func (h HandlerFuncs) PerformMachineCycle(mc *MachineCycle) clocks.HalfCycles {
	if h.Cycle == nil {
		return 0
	}
	return h.Cycle(mc)
}

// Flush implements the Handler interface.
func (h HandlerFuncs) Flush() {
	if h.Done != nil {
		h.Done()
	}
}

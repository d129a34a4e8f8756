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
	"fmt"

	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/hardware/cpu/registers"
	"github.com/zedcycle/zedcycle/hardware/memory/cpubus"
	"github.com/zedcycle/zedcycle/logger"
)

// request bits.
type request uint8

const (
	requestPowerOn request = 1 << iota
	requestReset
	requestNMI
	requestIRQ
)

// the length of the bus acknowledge cycle.
const busAcknowledgeLength = clocks.HalfCycles(2)

// Processor is a Z80. The registers are exported and can be read or written
// between calls to RunForCycles() or RunForHalfCycles().
type Processor struct {
	A     uint8
	Flags registers.Flags

	BC registers.Pair
	DE registers.Pair
	HL registers.Pair
	IX registers.Pair
	IY registers.Pair
	SP registers.Pair
	PC registers.Pair
	IR registers.Pair

	// the internal WZ register. it is visible to programs through the
	// undocumented flags of some instructions
	Memptr registers.Pair

	// the shadow registers. the high byte of AFDash is A' and the low byte is
	// F' in its byte form
	AFDash registers.Pair
	BCDash registers.Pair
	DEDash registers.Pair
	HLDash registers.Pair

	// internal scratch registers
	temp8  uint8
	temp16 registers.Pair
	opcode uint8

	handler cpubus.Handler
	set     *microcode.InstructionSet

	// the page of the current instruction
	page *microcode.InstructionPage

	// the scheduled program and the index of the next MicroOp in it. a nil
	// program means that the processor has not yet run
	ops  microcode.Program
	next int

	// half cycles available to spend
	budget clocks.HalfCycles

	// added to PC on decode. zero for the interrupt mode 0 program
	pcIncrement uint16

	// zero while halted
	haltMask uint8

	iff1          bool
	iff2          bool
	interruptMode int

	requestStatus     request
	lastRequestStatus request

	busRequestLine bool
	waitLine       bool
	irqLine        bool
	nmiLine        bool
	resetLine      bool

	// cycles owned by the processor
	busAcknowledge cpubus.MachineCycle
	cycle          cpubus.MachineCycle

	// true until the first bus cycle of a newly scheduled program. internal
	// operations that precede it are held back until it can be afforded
	boundary bool

	fault error
	log   logger.Permission
}

// NewProcessor is the preferred method of initialisation for the Processor
// type. The instruction set for the capabilities is shared with all other
// processors with the same capabilities.
func NewProcessor(handler cpubus.Handler, caps microcode.Capabilities) *Processor {
	mc := &Processor{
		handler:           handler,
		set:               microcode.For(caps),
		haltMask:          0xff,
		log:               logger.Allow,
		pcIncrement:       1,
		requestStatus:     requestPowerOn,
		lastRequestStatus: requestPowerOn,
		busAcknowledge: cpubus.MachineCycle{
			Operation: cpubus.BusAcknowledge,
			Length:    busAcknowledgeLength,
		},
	}
	mc.page = mc.set.Page(microcode.BasePage)
	return mc
}

// Plumb a new handler into the processor.
func (mc *Processor) Plumb(handler cpubus.Handler) {
	mc.handler = handler
}

// SetLogging controls whether the processor adds entries to the central log.
func (mc *Processor) SetLogging(perm logger.Permission) {
	mc.log = perm
}

// Capabilities returns the capabilities the processor was created with.
func (mc *Processor) Capabilities() microcode.Capabilities {
	return mc.set.Capabilities
}

func (mc *Processor) String() string {
	return fmt.Sprintf("AF=%02x%02x BC=%s DE=%s HL=%s IX=%s IY=%s SP=%s PC=%s IR=%s WZ=%s F=%s IM%d IFF=%s",
		mc.A, mc.Flags.Value(), mc.BC, mc.DE, mc.HL, mc.IX, mc.IY, mc.SP, mc.PC, mc.IR, mc.Memptr,
		mc.Flags, mc.interruptMode, iffString(mc.iff1, mc.iff2))
}

func iffString(iff1, iff2 bool) string {
	b := func(v bool) byte {
		if v {
			return '1'
		}
		return '0'
	}
	return string([]byte{b(iff1), b(iff2)})
}

// AF returns the accumulator and flags as a register pair.
func (mc *Processor) AF() registers.Pair {
	return registers.Pair{High: mc.A, Low: mc.Flags.Value()}
}

// SetAF loads the accumulator and flags from a sixteen bit value.
func (mc *Processor) SetAF(v uint16) {
	mc.A = uint8(v >> 8)
	mc.Flags.Load(uint8(v))
}

// InterruptMode returns the current interrupt mode: 0, 1 or 2.
func (mc *Processor) InterruptMode() int {
	return mc.interruptMode
}

// IFF1 returns the state of the interrupt enable flip-flop.
func (mc *Processor) IFF1() bool {
	return mc.iff1
}

// IFF2 returns the state of the second interrupt flip-flop. It holds the
// value of IFF1 while an NMI is being serviced.
func (mc *Processor) IFF2() bool {
	return mc.iff2
}

// SetInterruptState sets the interrupt flip-flops and the interrupt mode. A
// mode outside of the range 0 to 2 is ignored.
func (mc *Processor) SetInterruptState(iff1, iff2 bool, mode int) {
	mc.iff1 = iff1
	mc.iff2 = iff2
	if mode >= 0 && mode <= 2 {
		mc.interruptMode = mode
	}
	mc.updateIRQRequest()
}

// Fault returns the error that stopped the processor, if there is one. A
// processor with a fault does nothing when it is run.
func (mc *Processor) Fault() error {
	return mc.fault
}

// ClearFault forgets the fault that stopped the processor and restarts it at
// the next instruction boundary.
func (mc *Processor) ClearFault() {
	mc.fault = nil
	mc.ops = nil
}

// IsAtInstructionBoundary returns true if the processor is between
// instructions. Prefixed instructions are only complete after every prefix
// has been executed.
func (mc *Processor) IsAtInstructionBoundary() bool {
	return mc.ops == nil || mc.boundary
}

// Budget returns the half cycles that have been supplied but not yet spent.
// The value is negative if the bus handler has added more half cycles than
// were available.
func (mc *Processor) Budget() clocks.HalfCycles {
	return mc.budget
}

// OpcodeAddress returns the address of the opcode being executed. Only
// meaningful at an instruction boundary or during the first cycles of an
// unprefixed instruction.
func (mc *Processor) OpcodeAddress() uint16 {
	return mc.PC.Value()
}

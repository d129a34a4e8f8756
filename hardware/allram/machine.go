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

package allram

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/hardware/memory/cpubus"
	"github.com/zedcycle/zedcycle/logger"
)

// Trap is called when an opcode is fetched from a trapped address. It is
// called before the opcode is read so it can change the opcode and any
// register.
type Trap func(m *Machine, address uint16)

// PortHandler is the delegate for the machine's ports. The full sixteen bit
// address is passed; most hardware decodes only the low byte.
type PortHandler interface {
	In(port uint16) uint8
	Out(port uint16, value uint8)
}

// Machine is a Z80 attached to 64k of RAM.
type Machine struct {
	CPU *cpu.Processor

	memory []uint8

	// the value of the last output to each port, returned by input when
	// there is no port handler
	ports [256]uint8

	traps       map[uint16]Trap
	portHandler PortHandler

	// added to every memory access
	waitStates clocks.HalfCycles

	// supplied during interrupt acknowledge
	vector uint8

	opcodeFetches int

	// every half cycle spent, including wait states
	elapsed clocks.HalfCycles

	stopped atomic.Bool

	// true for the duration of RunUntilStopped()
	running bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The processor completes its power-on reset before the function returns.
func NewMachine(caps microcode.Capabilities) *Machine {
	m := &Machine{
		memory: make([]uint8, 0x10000),
		traps:  make(map[uint16]Trap),
		vector: 0xff,
	}
	m.CPU = cpu.NewProcessor(m, caps)
	m.CPU.RunForCycles(3)
	return m
}

// Label returns the name of the machine.
func (m *Machine) Label() string {
	return "All RAM"
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Peek returns the value at the address without any side effects.
func (m *Machine) Peek(address uint16) uint8 {
	return m.memory[address]
}

// Poke sets the value at the address without any side effects.
func (m *Machine) Poke(address uint16, value uint8) {
	m.memory[address] = value
}

// Peek16 returns the little-endian word at the address.
func (m *Machine) Peek16(address uint16) uint16 {
	return uint16(m.memory[address]) | uint16(m.memory[address+1])<<8
}

// Load copies data into memory at the origin.
func (m *Machine) Load(data []uint8, origin uint16) error {
	if int(origin)+len(data) > len(m.memory) {
		return curated.Errorf(DataTooLarge, len(data), origin)
	}
	copy(m.memory[origin:], data)
	return nil
}

// LoadFile copies the contents of the file into memory at the origin.
func (m *Machine) LoadFile(filename string, origin uint16) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("allram: %v", err)
	}
	err = m.Load(data, origin)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "allram", "loaded %d bytes from %s at %#04x", len(data), filename, origin)
	return nil
}

// SetTrap calls the Trap whenever an opcode is fetched from the address. A
// nil Trap removes any existing trap.
func (m *Machine) SetTrap(address uint16, trap Trap) {
	if trap == nil {
		delete(m.traps, address)
		return
	}
	m.traps[address] = trap
}

// SetPortHandler delegates port traffic. A nil handler restores the default
// behaviour of returning the last value written to the port.
func (m *Machine) SetPortHandler(h PortHandler) {
	m.portHandler = h
}

// SetWaitStates adds the number of half cycles to every memory access.
func (m *Machine) SetWaitStates(h clocks.HalfCycles) {
	m.waitStates = h
}

// SetInterruptVector sets the value supplied during interrupt acknowledge.
// The default is 0xff, which is RST 38h in interrupt mode 0.
func (m *Machine) SetInterruptVector(v uint8) {
	m.vector = v
}

// OpcodeFetches returns the number of opcode fetches since the machine was
// created. Prefixes are counted separately.
func (m *Machine) OpcodeFetches() int {
	return m.opcodeFetches
}

// Elapsed returns the time since the machine was created.
func (m *Machine) Elapsed() clocks.HalfCycles {
	return m.elapsed
}

// Stop the machine. A call to RunUntilStopped() returns at the first
// instruction boundary after the current machine cycle. The flag stays set until Restart() is called, which
// RunUntilStopped() does on entry.
func (m *Machine) Stop() {
	m.stopped.Store(true)
}

// Restart clears the effect of Stop().
func (m *Machine) Restart() {
	m.stopped.Store(false)
}

// Stopped returns true if Stop() has been called since the last Restart().
func (m *Machine) Stopped() bool {
	return m.stopped.Load()
}

// RunForCycles implements the clocks.CycleReceiver interface.
func (m *Machine) RunForCycles(c clocks.Cycles) {
	m.CPU.RunForCycles(c)
}

// RunForHalfCycles implements the clocks.HalfCycleReceiver interface.
func (m *Machine) RunForHalfCycles(h clocks.HalfCycles) {
	m.CPU.RunForHalfCycles(h)
}

// the number of cycles run between checks of the limit.
const slice = clocks.Cycles(1000)

// more than enough time for any instruction without wait states. no
// instruction has more than sixteen memory accesses.
const longestInstruction = clocks.HalfCycles(100)

// RunUntilStopped runs the machine until Stop() is called or the limit is
// reached. A limit of zero means no limit. Any earlier Stop() is cleared on
// entry.
func (m *Machine) RunUntilStopped(limit clocks.Cycles) error {
	m.Restart()
	m.running = true
	defer func() {
		m.running = false
	}()

	var run clocks.Cycles
	for !m.Stopped() {
		if limit > 0 && run >= limit {
			return curated.Errorf(CycleLimitReached, limit)
		}
		m.CPU.RunForCycles(slice)
		run += slice

		if err := m.CPU.Fault(); err != nil {
			return curated.Errorf(ProcessorFault, err)
		}
	}

	// the stop may have happened part way through an instruction
	end := longestInstruction + 16*m.waitStates
	for h := clocks.HalfCycles(0); h < end && !m.CPU.IsAtInstructionBoundary(); h++ {
		m.CPU.RunForHalfCycles(1)
	}
	if err := m.CPU.Fault(); err != nil {
		return curated.Errorf(ProcessorFault, err)
	}

	return nil
}

// PerformMachineCycle implements the cpubus.Handler interface.
func (m *Machine) PerformMachineCycle(c *cpubus.MachineCycle) clocks.HalfCycles {
	var extra clocks.HalfCycles

	switch c.Operation {
	case cpubus.ReadOpcode:
		m.opcodeFetches++
		if trap, ok := m.traps[c.Address]; ok {
			trap(m, c.Address)
		}
		*c.Value = m.memory[c.Address]
		extra = m.waitStates

	case cpubus.Read:
		*c.Value = m.memory[c.Address]
		extra = m.waitStates

	case cpubus.Write:
		m.memory[c.Address] = *c.Value
		extra = m.waitStates

	case cpubus.Input:
		if m.portHandler != nil {
			*c.Value = m.portHandler.In(c.Address)
		} else {
			*c.Value = m.ports[uint8(c.Address)]
		}

	case cpubus.Output:
		m.ports[uint8(c.Address)] = *c.Value
		if m.portHandler != nil {
			m.portHandler.Out(c.Address, *c.Value)
		}

	case cpubus.Interrupt:
		*c.Value = m.vector
	}

	m.elapsed += c.Length + extra

	// consume the rest of the processor's budget so that RunUntilStopped()
	// returns after this cycle
	if m.running && m.stopped.Load() {
		if b := m.CPU.Budget(); b > extra {
			return b
		}
	}

	return extra
}

// Flush implements the cpubus.Handler interface.
func (m *Machine) Flush() {
}

// Dump returns a hex dump of memory. The origin is rounded down to a
// multiple of sixteen.
func (m *Machine) Dump(origin uint16, rows int) string {
	origin &= 0xfff0

	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < rows; y++ {
		a := origin + uint16(y*16)
		s.WriteString(fmt.Sprintf("%04x | ", a))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", m.memory[a+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

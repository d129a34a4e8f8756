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

package cpu_test

import (
	"testing"

	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/hardware/memory/cpubus"
)

// mockBus is a flat 64k of RAM and 256 ports. Ports are selected by the low
// byte of the address.
type mockBus struct {
	internal []uint8
	ports    [256]uint8

	// value supplied during interrupt acknowledge
	vector uint8

	// additional half cycles added to every memory read
	readDelay clocks.HalfCycles

	// every machine cycle seen by the bus
	cycles []cpubus.MachineCycle

	flushes int

	// called after every machine cycle
	onCycle func(c *cpubus.MachineCycle)
}

func newMockBus() *mockBus {
	return &mockBus{
		internal: make([]uint8, 0x10000),
		vector:   0xff,
	}
}

func (bus *mockBus) PerformMachineCycle(c *cpubus.MachineCycle) clocks.HalfCycles {
	var extra clocks.HalfCycles

	switch c.Operation {
	case cpubus.ReadOpcode, cpubus.Read:
		*c.Value = bus.internal[c.Address]
		if c.Operation == cpubus.Read {
			extra = bus.readDelay
		}
	case cpubus.Write:
		bus.internal[c.Address] = *c.Value
	case cpubus.Input:
		*c.Value = bus.ports[uint8(c.Address)]
	case cpubus.Output:
		bus.ports[uint8(c.Address)] = *c.Value
	case cpubus.Interrupt:
		*c.Value = bus.vector
	}

	bus.cycles = append(bus.cycles, *c)

	if bus.onCycle != nil {
		bus.onCycle(c)
	}

	return extra
}

func (bus *mockBus) Flush() {
	bus.flushes++
}

func (bus *mockBus) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		bus.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (bus *mockBus) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if bus.internal[address] != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", bus.internal[address], value, address)
	}
}

// operations returns the operations of the recorded machine cycles and
// forgets them.
func (bus *mockBus) operations() []cpubus.Operation {
	ops := make([]cpubus.Operation, 0, len(bus.cycles))
	for _, c := range bus.cycles {
		ops = append(ops, c.Operation)
	}
	bus.cycles = bus.cycles[:0]
	return ops
}

// newProcessor returns a processor that has completed its power-on reset.
func newProcessor(t *testing.T, caps microcode.Capabilities) (*cpu.Processor, *mockBus) {
	t.Helper()
	bus := newMockBus()
	mc := cpu.NewProcessor(bus, caps)
	mc.RunForCycles(3)
	if !mc.IsAtInstructionBoundary() {
		t.Fatalf("processor not at instruction boundary after reset")
	}
	bus.cycles = bus.cycles[:0]
	return mc, bus
}

// step runs the processor for exactly the number of cycles and checks that
// it has arrived at an instruction boundary.
func step(t *testing.T, mc *cpu.Processor, cycles clocks.Cycles) {
	t.Helper()
	mc.RunForCycles(cycles)
	if !mc.IsAtInstructionBoundary() {
		t.Fatalf("processor not at instruction boundary after %d cycles", cycles)
	}
}

func expectOperations(t *testing.T, got []cpubus.Operation, want ...cpubus.Operation) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("unexpected number of machine cycles: %v (wanted %v)", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("unexpected machine cycle %d: %s (wanted %s)", i, got[i], want[i])
		}
	}
}

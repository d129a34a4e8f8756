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

package allram_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/allram"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/test"
)

type mockPorts struct {
	in  map[uint16]uint8
	out map[uint16]uint8
}

func (p *mockPorts) In(port uint16) uint8 {
	return p.in[port]
}

func (p *mockPorts) Out(port uint16, value uint8) {
	p.out[port] = value
}

func TestLoad(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	test.ExpectSuccess(t, m.Load([]uint8{0x01, 0x02, 0x03}, 0x8000))
	test.ExpectEquality(t, m.Peek(0x8001), 0x02)
	test.ExpectEquality(t, m.Peek16(0x8001), 0x0302)

	err := m.Load(make([]uint8, 0x20), 0xfff0)
	test.ExpectSuccess(t, curated.Is(err, allram.DataTooLarge))

	m.Poke(0x1234, 0xaa)
	test.ExpectEquality(t, m.Peek(0x1234), 0xaa)

	// loading from a file
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0x3e, 0x42}, 0o644))
	test.ExpectSuccess(t, m.LoadFile(fn, 0x0000))
	test.ExpectEquality(t, m.Peek(0x0001), 0x42)

	err = m.LoadFile(filepath.Join(t.TempDir(), "missing.bin"), 0x0000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestPowerOn(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})
	test.ExpectSuccess(t, m.CPU.IsAtInstructionBoundary())
	test.ExpectEquality(t, m.CPU.PC.Value(), 0x0000)
	test.ExpectEquality(t, m.Elapsed(), 6)
	test.ExpectEquality(t, m.Label(), "All RAM")
}

func TestWaitStates(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})
	test.DemandSuccess(t, m.Load([]uint8{0x3e, 0x42, 0x00}, 0x0000))
	m.SetWaitStates(2)

	// one opcode fetch and one read each take an extra cycle
	m.RunForCycles(7)
	test.ExpectEquality(t, m.CPU.A, 0xff)
	m.RunForCycles(2)
	test.ExpectEquality(t, m.CPU.A, 0x42)
	test.ExpectEquality(t, m.CPU.PC.Value(), 0x0002)
	test.ExpectSuccess(t, m.CPU.IsAtInstructionBoundary())
	test.ExpectEquality(t, m.Elapsed(), clocks.Cycles(3+9).HalfCycles())
	test.ExpectEquality(t, m.OpcodeFetches(), 1)
}

func TestPorts(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// OUT (0x10),A; IN A,(0x20)
	test.DemandSuccess(t, m.Load([]uint8{0xd3, 0x10, 0xdb, 0x20}, 0x0000))
	m.CPU.A = 0x55

	p := &mockPorts{
		in:  map[uint16]uint8{0x5520: 0x99},
		out: map[uint16]uint8{},
	}
	m.SetPortHandler(p)

	m.RunForCycles(11)
	test.ExpectEquality(t, p.out[0x5510], 0x55)
	m.RunForCycles(11)
	test.ExpectEquality(t, m.CPU.A, 0x99)

	// without a handler the last output is returned
	m.SetPortHandler(nil)
	test.DemandSuccess(t, m.Load([]uint8{0xdb, 0x10}, 0x0004))
	m.CPU.A = 0x00
	m.RunForCycles(11)
	test.ExpectEquality(t, m.CPU.A, 0x55)
}

func TestTraps(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// NOP; NOP; JP 0
	test.DemandSuccess(t, m.Load([]uint8{0x00, 0x00, 0xc3, 0x00, 0x00}, 0x0000))

	// the trap replaces the opcode before it is read
	var hits int
	m.SetTrap(0x0001, func(m *allram.Machine, address uint16) {
		hits++
		test.ExpectEquality(t, address, 0x0001)
		m.Poke(address, 0x76)
		m.Stop()
	})

	err := m.RunUntilStopped(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hits, 1)
	test.ExpectSuccess(t, m.Stopped())
	test.ExpectSuccess(t, m.CPU.HaltLine())

	// a removed trap is never called
	m = allram.NewMachine(microcode.Capabilities{})
	test.DemandSuccess(t, m.Load([]uint8{0x00, 0x00, 0xc3, 0x00, 0x00}, 0x0000))
	hits = 0
	m.SetTrap(0x0001, func(_ *allram.Machine, _ uint16) {
		hits++
	})
	m.SetTrap(0x0001, nil)
	m.RunForCycles(100)
	test.ExpectEquality(t, hits, 0)
	test.ExpectInequality(t, m.OpcodeFetches(), 0)
}

func TestStopIsPrompt(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// NOP; NOP; JR -4
	test.DemandSuccess(t, m.Load([]uint8{0x00, 0x00, 0x18, 0xfc}, 0x0000))
	m.SetTrap(0x0001, func(m *allram.Machine, _ uint16) {
		m.Stop()
	})

	// the run ends with the instruction that was being fetched when the
	// trap stopped the machine, not at the end of a slice
	begin := m.Elapsed()
	test.ExpectSuccess(t, m.RunUntilStopped(0))
	test.ExpectSuccess(t, m.Stopped())
	test.ExpectSuccess(t, m.CPU.IsAtInstructionBoundary())
	test.ExpectEquality(t, m.Elapsed()-begin, clocks.Cycles(8).HalfCycles())
	test.ExpectEquality(t, m.OpcodeFetches(), 2)
	test.ExpectEquality(t, m.CPU.PC.Value(), 0x0002)
}

func TestRunAfterStop(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// NOP; NOP; JR -4
	test.DemandSuccess(t, m.Load([]uint8{0x00, 0x00, 0x18, 0xfc}, 0x0000))
	m.SetTrap(0x0001, func(m *allram.Machine, _ uint16) {
		m.Stop()
	})
	test.ExpectSuccess(t, m.RunUntilStopped(0))
	test.ExpectSuccess(t, m.Stopped())

	// a second run is not ended by the earlier stop
	m.SetTrap(0x0001, nil)
	err := m.RunUntilStopped(5000)
	test.ExpectSuccess(t, curated.Is(err, allram.CycleLimitReached))
	test.ExpectFailure(t, m.Stopped())

	// nor is a run preceded by a stop from outside the machine
	m.Stop()
	err = m.RunUntilStopped(5000)
	test.ExpectSuccess(t, curated.Is(err, allram.CycleLimitReached))

	m.Stop()
	test.ExpectSuccess(t, m.Stopped())
	m.Restart()
	test.ExpectFailure(t, m.Stopped())
}

func TestStopOutsideRun(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// a stopped machine still runs for the time given to it directly
	m.Stop()
	m.RunForCycles(40)
	test.ExpectEquality(t, m.OpcodeFetches(), 10)
}

func TestCycleLimit(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// JR -2
	test.DemandSuccess(t, m.Load([]uint8{0x18, 0xfe}, 0x0000))
	err := m.RunUntilStopped(5000)
	test.ExpectSuccess(t, curated.Is(err, allram.CycleLimitReached))
}

func TestInterruptVector(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})
	m.CPU.SP.Load(0xf000)
	m.CPU.IR.High = 0x40
	m.CPU.SetInterruptState(true, true, 2)
	m.SetInterruptVector(0x08)
	test.DemandSuccess(t, m.Load([]uint8{0x00, 0x30}, 0x4008))

	m.CPU.SetInterruptLine(true, 0)
	m.RunForCycles(4 + 19)
	test.ExpectEquality(t, m.CPU.PC.Value(), 0x3000)
}

func TestDump(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})
	m.Poke(0x0101, 0xab)
	tw := &test.Writer{}
	_, _ = tw.Write([]byte(m.Dump(0x0105, 1)))
	test.ExpectSuccess(t, tw.Compare(
		"        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n"+
			"      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n"+
			"0100 |  00 ab 00 00 00 00 00 00 00 00 00 00 00 00 00 00"))
}

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

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/hardware/memory/cpubus"
	"github.com/zedcycle/zedcycle/test"
)

func TestPowerOn(t *testing.T) {
	bus := newMockBus()
	mc := cpu.NewProcessor(bus, microcode.Capabilities{})
	test.ExpectSuccess(t, mc.IsAtInstructionBoundary())

	// reset sequence is three cycles long
	mc.RunForCycles(2)
	test.ExpectEquality(t, mc.SP.Value(), 0x0000)
	mc.RunForCycles(1)
	test.ExpectEquality(t, mc.SP.Value(), 0xffff)
	test.ExpectEquality(t, mc.PC.Value(), 0x0000)
	test.ExpectEquality(t, mc.AF().Value(), 0xffff)
	test.ExpectEquality(t, mc.IR.Value(), 0x0000)
	test.ExpectEquality(t, mc.InterruptMode(), 0)
	test.ExpectFailure(t, mc.IFF1())
	test.ExpectFailure(t, mc.IFF2())
	test.ExpectSuccess(t, mc.IsAtInstructionBoundary())
	test.ExpectEquality(t, bus.flushes, 2)
}

func TestMachineCycles(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})

	// LD A,n
	bus.putInstructions(0x0000, 0x3e, 0x42)
	step(t, mc, 7)
	test.ExpectEquality(t, mc.A, 0x42)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)
	expectOperations(t, bus.operations(),
		cpubus.ReadOpcodeStart, cpubus.ReadOpcode, cpubus.Refresh,
		cpubus.ReadStart, cpubus.Read)

	// OUT (n),A puts A on the high byte of the address bus
	bus.putInstructions(0x0002, 0xd3, 0xfe)
	step(t, mc, 11)
	test.ExpectEquality(t, bus.ports[0xfe], 0x42)
	c := bus.cycles[len(bus.cycles)-1]
	test.ExpectEquality(t, c.Operation, cpubus.Output)
	test.ExpectEquality(t, c.Address, 0x42fe)
	expectOperations(t, bus.operations(),
		cpubus.ReadOpcodeStart, cpubus.ReadOpcode, cpubus.Refresh,
		cpubus.ReadStart, cpubus.Read,
		cpubus.OutputStart, cpubus.OutputWait, cpubus.Output)
	test.ExpectEquality(t, mc.Memptr.Value(), 0x42ff)
}

func TestSmallBudget(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	bus.putInstructions(0x0000, 0x3e, 0x42, 0x3e, 0x24)

	// the data phase of the read completes on the final half cycle
	for i := 0; i < 13; i++ {
		mc.RunForHalfCycles(1)
		test.ExpectEquality(t, mc.A, 0xff, "half cycle %d", i)
	}
	mc.RunForHalfCycles(1)
	test.ExpectEquality(t, mc.A, 0x42)
	test.ExpectSuccess(t, mc.IsAtInstructionBoundary())

	// same through the half clock adaptor
	h := clocks.NewHalfClockReceiver(mc)
	h.RunForHalfCycles(7)
	test.ExpectEquality(t, mc.A, 0x42)
	h.RunForHalfCycles(7)
	test.ExpectEquality(t, mc.A, 0x24)
	test.ExpectEquality(t, h.Residual(), 0)
}

func TestBusHandlerDelay(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	bus.readDelay = 2
	bus.putInstructions(0x0000, 0x3e, 0x42, 0x00)

	// the read is performed with the budget available and the delay becomes
	// a debt carried into the next call
	mc.RunForCycles(7)
	test.ExpectEquality(t, mc.A, 0x42)
	test.ExpectEquality(t, mc.Budget(), -2)

	mc.RunForCycles(1)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)
	test.ExpectEquality(t, mc.Budget(), 0)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.PC.Value(), 0x0003)
}

func TestArithmetic(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.Flags.Load(0x00)

	// ADD A,B; ADD A,(HL); ADD A,n
	bus.putInstructions(0x0000, 0x80, 0x86, 0xc6, 0x01)
	bus.internal[0x8000] = 0x4d
	mc.A = 0x10
	mc.BC.High = 0x22
	mc.HL.Load(0x8000)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.A, 0x32)
	test.ExpectEquality(t, mc.Flags.Value(), 0x20)

	step(t, mc, 7)
	test.ExpectEquality(t, mc.A, 0x7f)
	test.ExpectEquality(t, mc.Flags.Value(), 0x28)

	// signed overflow with half carry
	step(t, mc, 7)
	test.ExpectEquality(t, mc.A, 0x80)
	test.ExpectEquality(t, mc.Flags.Value(), 0x94)

	// ADD HL,BC
	bus.putInstructions(0x0004, 0x09)
	mc.HL.Load(0x1000)
	mc.BC.Load(0x0234)
	step(t, mc, 11)
	test.ExpectEquality(t, mc.HL.Value(), 0x1234)
	test.ExpectEquality(t, mc.Memptr.Value(), 0x1001)
}

func TestConditionalBranches(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})

	// DJNZ back to itself
	bus.putInstructions(0x0000, 0x10, 0xfe)
	mc.BC.High = 2

	step(t, mc, 13)
	test.ExpectEquality(t, mc.BC.High, 1)
	test.ExpectEquality(t, mc.PC.Value(), 0x0000)

	step(t, mc, 8)
	test.ExpectEquality(t, mc.BC.High, 0)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)

	// JR NZ is not taken when Z is set and is taken when it isn't
	bus.putInstructions(0x0002, 0x20, 0x10, 0x20, 0x10)
	mc.Flags.Load(0x40)
	step(t, mc, 7)
	test.ExpectEquality(t, mc.PC.Value(), 0x0004)

	mc.Flags.Load(0x00)
	step(t, mc, 12)
	test.ExpectEquality(t, mc.PC.Value(), 0x0016)
	test.ExpectEquality(t, mc.Memptr.Value(), 0x0016)

	// RET C not taken and CALL NC taken
	bus.putInstructions(0x0016, 0xd8, 0xd4, 0x00, 0x90)
	mc.SP.Load(0x9000)
	step(t, mc, 5)
	test.ExpectEquality(t, mc.PC.Value(), 0x0017)
	step(t, mc, 17)
	test.ExpectEquality(t, mc.PC.Value(), 0x9000)
	test.ExpectEquality(t, mc.SP.Value(), 0x8ffe)
	bus.assert(t, 0x8ffe, 0x1a)
	bus.assert(t, 0x8fff, 0x00)
}

func TestBlockTransfer(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})

	// LDIR
	bus.putInstructions(0x0000, 0xed, 0xb0)
	bus.putInstructions(0x1000, 0xaa, 0xbb)
	mc.HL.Load(0x1000)
	mc.DE.Load(0x2000)
	mc.BC.Load(0x0002)

	// repeating iteration
	step(t, mc, 21)
	test.ExpectEquality(t, mc.BC.Value(), 0x0001)
	test.ExpectEquality(t, mc.PC.Value(), 0x0000)
	test.ExpectEquality(t, mc.Memptr.Value(), 0x0001)
	test.ExpectEquality(t, mc.Flags.ParityOverflow, 0x04)
	bus.assert(t, 0x2000, 0xaa)

	// final iteration
	step(t, mc, 16)
	test.ExpectEquality(t, mc.BC.Value(), 0x0000)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)
	test.ExpectEquality(t, mc.HL.Value(), 0x1002)
	test.ExpectEquality(t, mc.DE.Value(), 0x2002)
	test.ExpectEquality(t, mc.Flags.ParityOverflow, 0x00)
	bus.assert(t, 0x2001, 0xbb)

	// CPIR stops on a match
	bus.putInstructions(0x0002, 0xed, 0xb1)
	bus.putInstructions(0x3000, 0x01, 0x02, 0x03)
	mc.HL.Load(0x3000)
	mc.BC.Load(0x0010)
	mc.A = 0x02
	step(t, mc, 21)
	step(t, mc, 16)
	test.ExpectEquality(t, mc.PC.Value(), 0x0004)
	test.ExpectEquality(t, mc.HL.Value(), 0x3002)
	test.ExpectEquality(t, mc.BC.Value(), 0x000e)
	test.ExpectInequality(t, mc.Flags.Zero, 0)
}

func TestIndexed(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.IX.Load(0x4000)

	// LD (IX+5),n
	bus.putInstructions(0x0000, 0xdd, 0x36, 0x05, 0x81)
	step(t, mc, 19)
	bus.assert(t, 0x4005, 0x81)
	test.ExpectEquality(t, mc.Memptr.Value(), 0x4005)

	// SET 1,(IX+5)
	bus.putInstructions(0x0004, 0xdd, 0xcb, 0x05, 0xce)
	step(t, mc, 23)
	bus.assert(t, 0x4005, 0x83)
	test.ExpectEquality(t, mc.PC.Value(), 0x0008)

	// RLC (IX+5),B also copies the result to B
	bus.putInstructions(0x0008, 0xdd, 0xcb, 0x05, 0x00)
	step(t, mc, 23)
	bus.assert(t, 0x4005, 0x07)
	test.ExpectEquality(t, mc.BC.High, 0x07)
	test.ExpectEquality(t, mc.Flags.Carry, 0x01)

	// LD A,(IX-1)
	bus.putInstructions(0x000c, 0xdd, 0x7e, 0xff)
	bus.internal[0x3fff] = 0x99
	step(t, mc, 19)
	test.ExpectEquality(t, mc.A, 0x99)

	// R increments once for each prefix
	test.ExpectEquality(t, mc.IR.Low, 0x08)
}

func TestEILatency(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x8000)
	mc.SetInterruptState(false, false, 1)
	mc.SetInterruptLine(true, 0)

	// EI; NOP; NOP
	bus.putInstructions(0x0000, 0xfb, 0x00, 0x00)

	// the interrupt is not accepted at the end of EI
	step(t, mc, 4)
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)
	test.ExpectSuccess(t, mc.IFF1())

	step(t, mc, 4)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)

	// mode 1
	step(t, mc, 13)
	test.ExpectEquality(t, mc.PC.Value(), 0x0038)
	test.ExpectEquality(t, mc.SP.Value(), 0x7ffe)
	bus.assert(t, 0x7ffe, 0x02)
	bus.assert(t, 0x7fff, 0x00)
	test.ExpectFailure(t, mc.IFF1())
	test.ExpectFailure(t, mc.IFF2())
}

func TestHalt(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x8000)
	mc.SetInterruptState(true, true, 1)
	bus.putInstructions(0x0000, 0x76)

	step(t, mc, 4)
	test.ExpectSuccess(t, mc.HaltLine())
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)

	// halted processor performs NOPs without advancing
	step(t, mc, 40)
	test.ExpectSuccess(t, mc.HaltLine())
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)

	mc.SetInterruptLine(true, 0)
	step(t, mc, 4)
	step(t, mc, 13)
	test.ExpectFailure(t, mc.HaltLine())
	test.ExpectEquality(t, mc.PC.Value(), 0x0038)
	bus.assert(t, 0x7ffe, 0x01)
}

func TestInterruptModes(t *testing.T) {
	// mode 2 takes the low byte of the vector from the bus
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x9000)
	mc.IR.High = 0x80
	bus.vector = 0x10
	bus.putInstructions(0x8010, 0x34, 0x12)
	mc.SetInterruptState(true, true, 2)
	mc.SetInterruptLine(true, 0)

	step(t, mc, 4)
	step(t, mc, 19)
	test.ExpectEquality(t, mc.PC.Value(), 0x1234)
	test.ExpectEquality(t, mc.Memptr.Value(), 0x1234)
	bus.assert(t, 0x8ffe, 0x01)

	// the acknowledge refreshes memory and advances R like an opcode fetch
	test.ExpectEquality(t, mc.IR.Low, 0x02)

	// mode 0 executes the opcode on the bus without advancing PC
	mc, bus = newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x9000)
	bus.vector = 0xff
	mc.SetInterruptState(true, true, 0)
	mc.SetInterruptLine(true, 0)

	step(t, mc, 4)
	step(t, mc, 13)
	test.ExpectEquality(t, mc.PC.Value(), 0x0038)
	bus.assert(t, 0x8ffe, 0x01)
	bus.assert(t, 0x8fff, 0x00)
	test.ExpectEquality(t, mc.IR.Low, 0x02)

	// mode 1
	mc, _ = newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x9000)
	mc.SetInterruptState(true, true, 1)
	mc.SetInterruptLine(true, 0)

	step(t, mc, 4)
	step(t, mc, 13)
	test.ExpectEquality(t, mc.PC.Value(), 0x0038)
	test.ExpectEquality(t, mc.IR.Low, 0x02)
}

func TestBoundaryBeforeInterrupt(t *testing.T) {
	mc, _ := newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x8000)
	mc.SetInterruptState(true, true, 1)
	mc.SetInterruptLine(true, 0)

	// the interrupt is sampled during the NOP but nothing of the
	// acknowledge has happened when the NOP ends
	mc.RunForCycles(4)
	test.ExpectSuccess(t, mc.IsAtInstructionBoundary())
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)
	test.ExpectEquality(t, mc.Budget(), 0)
	test.ExpectSuccess(t, mc.IFF1())
	test.ExpectSuccess(t, mc.IFF2())
	test.ExpectEquality(t, mc.IR.Low, 0x01)

	// not enough time for the first cycle of the acknowledge
	mc.RunForHalfCycles(2)
	test.ExpectSuccess(t, mc.IsAtInstructionBoundary())
	test.ExpectSuccess(t, mc.IFF1())

	// the acknowledge begins
	mc.RunForHalfCycles(1)
	test.ExpectFailure(t, mc.IsAtInstructionBoundary())
	test.ExpectFailure(t, mc.IFF1())
	test.ExpectFailure(t, mc.IFF2())
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)
}

func TestNMI(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x8000)
	mc.SetInterruptState(true, true, 1)
	bus.putInstructions(0x0066, 0xed, 0x45)

	mc.SetNonMaskableInterruptLine(true, 0)
	step(t, mc, 4)
	step(t, mc, 11)
	test.ExpectEquality(t, mc.PC.Value(), 0x0066)
	test.ExpectFailure(t, mc.IFF1())
	test.ExpectSuccess(t, mc.IFF2())
	bus.assert(t, 0x7ffe, 0x01)
	test.ExpectEquality(t, mc.IR.Low, 0x02)

	// RETN
	step(t, mc, 14)
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)
	test.ExpectSuccess(t, mc.IFF1())
}

func TestRequestPriority(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x8000)
	mc.SetInterruptState(true, true, 1)

	// all three requests are sampled during the NOP
	mc.SetResetLine(true)
	mc.SetNonMaskableInterruptLine(true, 0)
	mc.SetInterruptLine(true, 0)
	step(t, mc, 4)
	mc.SetResetLine(false)

	// reset
	mc.PC.Load(0x1234)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.PC.Value(), 0x0000)
	test.ExpectEquality(t, mc.SP.Value(), 0xffff)

	// followed by the NMI
	step(t, mc, 11)
	test.ExpectEquality(t, mc.PC.Value(), 0x0066)
	bus.assert(t, 0xfffd, 0x00)
	bus.assert(t, 0xfffe, 0x00)
}

func TestOffsetInterrupt(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x8000)
	mc.SetInterruptState(true, true, 1)
	bus.putInstructions(0x0000, 0x00, 0x00)

	// raised during the NOP but after the lines were sampled
	mc.RunForCycles(4)
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)
	mc.SetInterruptLine(true, 0)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)
	step(t, mc, 13)
	test.ExpectEquality(t, mc.PC.Value(), 0x0038)

	// raised during the NOP and before the lines were sampled
	mc, bus = newProcessor(t, microcode.Capabilities{})
	mc.SP.Load(0x8000)
	mc.SetInterruptState(true, true, 1)
	bus.putInstructions(0x0000, 0x00, 0x00)
	bus.onCycle = func(c *cpubus.MachineCycle) {
		if c.Operation == cpubus.Refresh {
			mc.SetInterruptLine(true, -2)
		}
	}
	step(t, mc, 4)
	bus.onCycle = nil
	step(t, mc, 13)
	test.ExpectEquality(t, mc.PC.Value(), 0x0038)
}

func TestBusRequest(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{BusRequest: true})
	bus.putInstructions(0x0000, 0x00)

	mc.SetBusRequestLine(true)
	mc.RunForCycles(10)
	test.ExpectEquality(t, len(bus.cycles), 10)
	for _, c := range bus.operations() {
		test.ExpectEquality(t, c, cpubus.BusAcknowledge)
	}
	test.ExpectEquality(t, mc.PC.Value(), 0x0000)

	mc.SetBusRequestLine(false)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)
}

func TestWaitLine(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{WaitLine: true})
	bus.putInstructions(0x0000, 0x3e, 0x42)

	waits := 0
	bus.onCycle = func(c *cpubus.MachineCycle) {
		if c.Operation == cpubus.ReadOpcodeWait {
			waits++
			if waits == 3 {
				mc.SetWaitLine(false)
			}
		}
	}

	// three wait cycles during the opcode fetch
	mc.SetWaitLine(true)
	mc.RunForCycles(9)
	test.ExpectEquality(t, mc.A, 0xff)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x42)
	test.ExpectEquality(t, waits, 3)
}

func TestCapabilities(t *testing.T) {
	mc, _ := newProcessor(t, microcode.Capabilities{})

	expectPanic := func(f func()) {
		t.Helper()
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok {
				t.Fatalf("expected an error value from panic")
			}
			test.ExpectSuccess(t, curated.Is(err, cpu.CapabilityNotEnabled))
		}()
		f()
	}

	expectPanic(func() { mc.SetBusRequestLine(true) })
	expectPanic(func() { mc.SetWaitLine(true) })

	// the other lines are always available
	mc.SetResetLine(true)
	test.ExpectSuccess(t, mc.ResetLine())
	mc.SetInterruptLine(true, 0)
	test.ExpectSuccess(t, mc.InterruptLine())
}

func TestExchanges(t *testing.T) {
	mc, bus := newProcessor(t, microcode.Capabilities{})

	// EX AF,AF'; EXX; EX DE,HL
	bus.putInstructions(0x0000, 0x08, 0xd9, 0xeb)
	mc.SetAF(0x1234)
	mc.AFDash.Load(0x5678)
	mc.BC.Load(0x1111)
	mc.BCDash.Load(0x2222)
	mc.DE.Load(0x3333)
	mc.HL.Load(0x4444)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.AF().Value(), 0x5678)
	test.ExpectEquality(t, mc.AFDash.Value(), 0x1234)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.BC.Value(), 0x2222)
	test.ExpectEquality(t, mc.BCDash.Value(), 0x1111)
	test.ExpectEquality(t, mc.DEDash.Value(), 0x3333)

	mc.DE.Load(0xdddd)
	mc.HL.Load(0xeeee)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.DE.Value(), 0xeeee)
	test.ExpectEquality(t, mc.HL.Value(), 0xdddd)
}

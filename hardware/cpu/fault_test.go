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
	"strings"
	"testing"

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/hardware/memory/cpubus"
	"github.com/zedcycle/zedcycle/logger"
	"github.com/zedcycle/zedcycle/test"
)

// every opcode of the base page is replaced by a program that reaches an
// indexed placeholder.
func faultySet(t *testing.T) *microcode.InstructionSet {
	t.Helper()

	set, err := microcode.Build(microcode.Capabilities{})
	test.DemandSuccess(t, err)

	base := *set.Pages[microcode.BasePage]
	base.AllOperations = microcode.Program{
		{Kind: microcode.IndexedPlaceholder},
		{Kind: microcode.MoveToNextProgram},
	}
	base.Instructions = [256]int{}
	set.Pages[microcode.BasePage] = &base

	test.ExpectSuccess(t, curated.Is(set.Validate(), microcode.PlaceholderReached))

	return set
}

func TestFault(t *testing.T) {
	var cycles int
	bus := cpubus.HandlerFuncs{
		Cycle: func(c *cpubus.MachineCycle) clocks.HalfCycles {
			cycles++
			if c.Value != nil {
				*c.Value = 0x00
			}
			return 0
		},
	}

	mc := NewProcessor(bus, microcode.Capabilities{})
	mc.set = faultySet(t)
	mc.page = mc.set.Page(microcode.BasePage)

	logger.Clear()

	// reset and the opcode fetch
	mc.RunForCycles(3 + 4)
	test.ExpectSuccess(t, curated.Is(mc.Fault(), microcode.PlaceholderReached))
	test.ExpectFailure(t, mc.IsAtInstructionBoundary())

	tw := &test.Writer{}
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "placeholder"))

	// nothing happens while the fault is present
	n := cycles
	mc.RunForCycles(100)
	test.ExpectEquality(t, cycles, n)

	mc.ClearFault()
	test.ExpectSuccess(t, mc.Fault() == nil)
	test.ExpectSuccess(t, mc.IsAtInstructionBoundary())
}

func TestLocations(t *testing.T) {
	mc := NewProcessor(cpubus.HandlerFuncs{}, microcode.Capabilities{})

	for l := microcode.A; l <= microcode.Opcode; l++ {
		test.ExpectSuccess(t, mc.reg8(l) != nil, l)
		test.ExpectSuccess(t, mc.reg16(l) == nil, l)
	}
	for l := microcode.BC; l <= microcode.Temp16; l++ {
		test.ExpectSuccess(t, mc.reg16(l) != nil, l)
		test.ExpectSuccess(t, mc.reg8(l) == nil, l)
	}

	// the halves of a pair are the same memory as the pair
	mc.IX.Load(0x1234)
	test.ExpectEquality(t, *mc.reg8(microcode.IXh), 0x12)
	test.ExpectEquality(t, *mc.reg8(microcode.IXl), 0x34)
	*mc.reg8(microcode.Temp16H) = 0xab
	test.ExpectEquality(t, mc.reg16(microcode.Temp16).Value(), 0xab00)

	test.ExpectEquality(t, mc.address(microcode.None), 0)
	test.ExpectEquality(t, mc.address(microcode.IX), 0x1234)
}

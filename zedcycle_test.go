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

package main

import (
	"testing"
	"time"

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/allram"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu/microcode"
	"github.com/zedcycle/zedcycle/test"
)

func TestExecuteHalt(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// ld b,0; djnz $; halt
	test.DemandSuccess(t, m.Load([]uint8{0x06, 0x00, 0x10, 0xfe, 0x76}, 0x0000))

	e := executor{rate: clocks.ZXSpectrum, stopOnHalt: true}
	test.ExpectSuccess(t, e.execute(m))
	test.ExpectSuccess(t, m.CPU.HaltLine())
	test.ExpectEquality(t, m.CPU.BC.High, 0x00)
}

func TestExecuteLimit(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})

	// jr $
	test.DemandSuccess(t, m.Load([]uint8{0x18, 0xfe}, 0x0000))

	e := executor{rate: clocks.ZXSpectrum, limit: 10000}
	err := e.execute(m)
	test.ExpectSuccess(t, curated.Is(err, allram.CycleLimitReached))
	test.ExpectSuccess(t, m.Elapsed().Cycles() >= 10000)
}

func TestExecuteRealtime(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})
	test.DemandSuccess(t, m.Load([]uint8{0x18, 0xfe}, 0x0000))

	var calls int
	var last time.Duration
	e := executor{
		rate:     1.0,
		limit:    5000,
		realtime: true,
		sleep: func(d time.Duration) {
			calls++
			last = d
		},
	}
	err := e.execute(m)
	test.ExpectSuccess(t, curated.Is(err, allram.CycleLimitReached))

	// five slices of a millisecond each at one MHz, or six if the budget
	// left over at the end of a slice leaves the limit just short. the sleep
	// function does not sleep so the final deadline is the full run away
	test.ExpectSuccess(t, calls >= 5 && calls <= 6)
	test.ExpectSuccess(t, last > 0)
	test.ExpectSuccess(t, last <= 6*time.Millisecond)
}

func TestExecuteStop(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})
	test.DemandSuccess(t, m.Load([]uint8{0x18, 0xfe}, 0x0000))
	m.SetTrap(0x0000, func(m *allram.Machine, _ uint16) {
		m.Stop()
	})

	e := executor{rate: clocks.ZXSpectrum}
	test.ExpectSuccess(t, e.execute(m))
	test.ExpectSuccess(t, m.Stopped())
}

func TestExecuteBadRate(t *testing.T) {
	m := allram.NewMachine(microcode.Capabilities{})
	e := executor{rate: 0}
	test.ExpectFailure(t, e.execute(m))
}

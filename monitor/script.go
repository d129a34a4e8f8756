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

package monitor

import (
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu/registers"
)

// scripts can run other scripts up to this depth.
const maxScriptDepth = 8

// script executes each line of a file as a monitor command. Blank lines and
// lines beginning with # are ignored. The script ends early if a command
// fails or QUIT is reached.
func (mon *Monitor) script(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	if mon.scriptDepth >= maxScriptDepth {
		return curated.Errorf("monitor: script recursion limit reached")
	}
	mon.scriptDepth++
	defer func() {
		mon.scriptDepth--
	}()

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := mon.Command(line); err != nil {
			return curated.Errorf("monitor: %s line %d: %v", filename, i+1, err)
		}
		if mon.quit {
			break
		}
	}

	return nil
}

// runLua runs a Lua program with access to the machine. See the HELP text for the
// functions available.
func (mon *Monitor) runLua(filename string) error {
	L := lua.NewState()
	defer L.Close()

	cpu := mon.machine.CPU

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		s := make([]string, L.GetTop())
		for i := range s {
			s[i] = L.Get(i + 1).String()
		}
		mon.printf("%s\n", strings.Join(s, "\t"))
		return 0
	}))

	L.SetGlobal("step", L.NewFunction(func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		completed := true
		for i := 0; i < n && completed; i++ {
			completed = mon.stepInstruction()
		}
		L.Push(lua.LBool(completed))
		return 1
	}))

	L.SetGlobal("cycles", L.NewFunction(func(L *lua.LState) int {
		mon.machine.RunForCycles(clocks.Cycles(L.OptInt(1, 1)))
		return 0
	}))

	L.SetGlobal("elapsed", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(mon.machine.Elapsed().Cycles()))
		return 1
	}))

	L.SetGlobal("peek", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(mon.machine.Peek(uint16(L.CheckInt(1)))))
		return 1
	}))

	L.SetGlobal("poke", L.NewFunction(func(L *lua.LState) int {
		mon.machine.Poke(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
		return 0
	}))

	L.SetGlobal("reg", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		v, ok := mon.register(name)
		if !ok {
			L.ArgError(1, fmt.Sprintf("unknown register %s", name))
		}
		L.Push(lua.LNumber(v))
		return 1
	}))

	L.SetGlobal("setreg", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !mon.setRegister(name, uint16(L.CheckInt(2))) {
			L.ArgError(1, fmt.Sprintf("unknown register %s", name))
		}
		return 0
	}))

	L.SetGlobal("halted", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(cpu.HaltLine()))
		return 1
	}))

	L.SetGlobal("command", L.NewFunction(func(L *lua.LState) int {
		if err := mon.Command(L.CheckString(1)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	return nil
}

// pair returns the register pair with the name. AF is not a stored pair and
// is handled by the callers.
func (mon *Monitor) pair(name string) *registers.Pair {
	cpu := mon.machine.CPU
	switch name {
	case "BC":
		return &cpu.BC
	case "DE":
		return &cpu.DE
	case "HL":
		return &cpu.HL
	case "IX":
		return &cpu.IX
	case "IY":
		return &cpu.IY
	case "SP":
		return &cpu.SP
	case "PC":
		return &cpu.PC
	case "IR":
		return &cpu.IR
	case "WZ":
		return &cpu.Memptr
	case "AF'":
		return &cpu.AFDash
	case "BC'":
		return &cpu.BCDash
	case "DE'":
		return &cpu.DEDash
	case "HL'":
		return &cpu.HLDash
	}
	return nil
}

// the byte registers and the pair and half they live in.
var halves = map[string]struct {
	pair string
	high bool
}{
	"B": {"BC", true},
	"C": {"BC", false},
	"D": {"DE", true},
	"E": {"DE", false},
	"H": {"HL", true},
	"L": {"HL", false},
	"I": {"IR", true},
	"R": {"IR", false},
}

func (mon *Monitor) register(name string) (uint16, bool) {
	cpu := mon.machine.CPU

	name = strings.ToUpper(name)
	switch name {
	case "A":
		return uint16(cpu.A), true
	case "F":
		return uint16(cpu.Flags.Value()), true
	case "AF":
		return cpu.AF().Value(), true
	}

	if p := mon.pair(name); p != nil {
		return p.Value(), true
	}

	if h, ok := halves[name]; ok {
		p := mon.pair(h.pair)
		if h.high {
			return uint16(p.High), true
		}
		return uint16(p.Low), true
	}

	return 0, false
}

func (mon *Monitor) setRegister(name string, v uint16) bool {
	cpu := mon.machine.CPU

	name = strings.ToUpper(name)
	switch name {
	case "A":
		cpu.A = uint8(v)
		return true
	case "F":
		cpu.Flags.Load(uint8(v))
		return true
	case "AF":
		cpu.SetAF(v)
		return true
	}

	if p := mon.pair(name); p != nil {
		p.Load(v)
		return true
	}

	if h, ok := halves[name]; ok {
		p := mon.pair(h.pair)
		if h.high {
			p.High = uint8(v)
		} else {
			p.Low = uint8(v)
		}
		return true
	}

	return false
}

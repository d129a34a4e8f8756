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

// Package cpm provides enough of the CP/M operating system to run simple
// CP/M programs, such as the Z80 instruction exercisers, on an allram
// Machine.
//
// Only console output is supported: BDOS function 2 (write the character
// in E) and function 9 (write the string at DE, terminated by '$'). A jump
// to address zero, or BDOS function 0, stops the machine.
package cpm

import (
	"io"

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/allram"
	"github.com/zedcycle/zedcycle/logger"
)

// Addresses of the CP/M memory map.
const (
	WarmBoot = 0x0000
	BDOS     = 0x0005
	TPA      = 0x0100

	// top of the transient program area. programs use the word at BDOS+1
	// to find it
	memtop = 0xf000
)

// BDOS function numbers.
const (
	systemReset   = 0
	consoleOutput = 2
	printString   = 9
)

// CPM is the BDOS implementation attached to a machine.
type CPM struct {
	machine *allram.Machine
	console io.Writer

	// number of calls to each function
	calls map[uint8]int
}

// Attach prepares the machine for a CP/M program. Output is written to the
// console.
func Attach(m *allram.Machine, console io.Writer) *CPM {
	c := &CPM{
		machine: m,
		console: console,
		calls:   make(map[uint8]int),
	}

	// a HALT at the warm boot address and a RET at the BDOS entry point. the
	// RET is followed by the address of the top of memory
	m.Poke(WarmBoot, 0x76)
	m.Poke(BDOS, 0xc9)
	m.Poke(BDOS+1, memtop&0xff)
	m.Poke(BDOS+2, memtop>>8)

	m.SetTrap(WarmBoot, c.warmBoot)
	m.SetTrap(BDOS, c.bdos)

	m.CPU.PC.Load(TPA)
	m.CPU.SP.Load(memtop)

	return c
}

// Load a program into the transient program area.
func (c *CPM) Load(program []uint8) error {
	err := c.machine.Load(program, TPA)
	if err != nil {
		return curated.Errorf("cpm: %v", err)
	}
	return nil
}

// LoadFile loads a program from a file into the transient program area.
func (c *CPM) LoadFile(filename string) error {
	err := c.machine.LoadFile(filename, TPA)
	if err != nil {
		return curated.Errorf("cpm: %v", err)
	}
	return nil
}

// Calls returns the number of times the BDOS function has been called.
func (c *CPM) Calls(function uint8) int {
	return c.calls[function]
}

func (c *CPM) warmBoot(m *allram.Machine, _ uint16) {
	logger.Log(logger.Allow, "cpm", "warm boot")
	m.Stop()
}

func (c *CPM) bdos(m *allram.Machine, _ uint16) {
	f := m.CPU.BC.Low
	c.calls[f]++

	switch f {
	case systemReset:
		c.warmBoot(m, WarmBoot)

	case consoleOutput:
		c.write([]uint8{m.CPU.DE.Low})

	case printString:
		a := m.CPU.DE.Value()
		var s []uint8
		for b := m.Peek(a); b != '$'; b = m.Peek(a) {
			s = append(s, b)
			a++
			if a == m.CPU.DE.Value() {
				break
			}
		}
		c.write(s)

	default:
		logger.Logf(logger.Allow, "cpm", "unsupported BDOS function %d", f)
	}
}

func (c *CPM) write(s []uint8) {
	if c.console == nil {
		return
	}
	if _, err := c.console.Write(s); err != nil {
		logger.Logf(logger.Allow, "cpm", "console: %v", err)
	}
}

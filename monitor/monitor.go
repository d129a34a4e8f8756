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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/hardware/allram"
	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/cpu/registers"
	"github.com/zedcycle/zedcycle/logger"
	"github.com/zedcycle/zedcycle/modalflag"
	"github.com/zedcycle/zedcycle/monitor/easyterm"
)

// UnknownCommand is returned by Command() for an unrecognised command.
const UnknownCommand = "monitor: unknown command (%s)"

// BadArgument is returned by Command() when an argument can not be parsed.
const BadArgument = "monitor: bad argument for %s (%v)"

// Terminal is implemented by easyterm.Terminal.
type Terminal interface {
	CBreakMode()
	CanonicalMode()
}

// the longest time allowed for a single instruction before the step is
// abandoned. an instruction stretched by the wait line can exceed it
const maxInstructionLength = clocks.HalfCycles(1000)

// the cycle limit of the RUN command when none is given.
const defaultRunLimit = clocks.Cycles(1000000)

// the number of rows of the MEMORY command when none is given.
const defaultMemoryRows = 8

// Monitor is a simple interactive machine code monitor.
type Monitor struct {
	machine *allram.Machine

	input  *bufio.Reader
	output io.Writer

	// nil if the monitor is not attached to a terminal
	term Terminal

	// nesting of SCRIPT commands
	scriptDepth int

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The term argument can be nil.
func NewMonitor(machine *allram.Machine, input io.Reader, output io.Writer, term Terminal) *Monitor {
	return &Monitor{
		machine: machine,
		input:   bufio.NewReader(input),
		output:  output,
		term:    term,
	}
}

func (mon *Monitor) printf(format string, a ...interface{}) {
	fmt.Fprintf(mon.output, format, a...)
}

// Run reads and executes commands until the QUIT command or the end of the
// input. Errors from individual commands are printed and do not end the loop.
func (mon *Monitor) Run() error {
	mon.printf("%s\n", mon.machine.CPU.String())

	for !mon.quit {
		mon.printf("> ")

		line, err := mon.input.ReadString('\n')
		if err != nil && err != io.EOF {
			return curated.Errorf("monitor: %v", err)
		}

		if cerr := mon.Command(line); cerr != nil {
			mon.printf("%v\n", cerr)
		}

		if err == io.EOF {
			mon.printf("\n")
			return nil
		}
	}

	return nil
}

// Command parses and executes a single command line. An empty line does
// nothing.
func (mon *Monitor) Command(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "HELP", "H", "?":
		mon.printf("%s", help)

	case "QUIT", "Q":
		mon.quit = true

	case "STEP", "S":
		n, err := count(cmd, args, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if !mon.stepInstruction() {
				break
			}
		}
		mon.printf("%s\n", mon.machine.CPU.String())

	case "CYCLES", "C":
		n, err := count(cmd, args, 1)
		if err != nil {
			return err
		}
		mon.machine.RunForCycles(clocks.Cycles(n))
		mon.printf("%s\n", mon.machine.CPU.String())

	case "RUN":
		limit := defaultRunLimit
		if len(args) > 0 {
			n, err := count(cmd, args, 0)
			if err != nil {
				return err
			}
			limit = clocks.Cycles(n)
		}
		err := mon.machine.RunUntilStopped(limit)
		mon.printf("%s\n", mon.machine.CPU.String())
		if err != nil {
			return err
		}

	case "REGISTERS", "R":
		mon.printf("%s\n", mon.machine.CPU.String())

	case "MEMORY", "M":
		address := mon.machine.CPU.PC.Value()
		if len(args) > 0 {
			a, err := modalflag.ParseAddress(args[0])
			if err != nil {
				return curated.Errorf(BadArgument, cmd, err)
			}
			address = a
		}
		rows, err := count(cmd, args[min(1, len(args)):], defaultMemoryRows)
		if err != nil {
			return err
		}
		mon.printf("%s\n", mon.machine.Dump(address, rows))

	case "POKE":
		if len(args) != 2 {
			return curated.Errorf(BadArgument, cmd, "address and value required")
		}
		a, err := modalflag.ParseAddress(args[0])
		if err != nil {
			return curated.Errorf(BadArgument, cmd, err)
		}
		v, err := modalflag.ParseAddress(args[1])
		if err != nil || v > 0xff {
			return curated.Errorf(BadArgument, cmd, "value must be a byte")
		}
		mon.machine.Poke(a, uint8(v))

	case "PC":
		if len(args) != 1 {
			return curated.Errorf(BadArgument, cmd, "address required")
		}
		a, err := modalflag.ParseAddress(args[0])
		if err != nil {
			return curated.Errorf(BadArgument, cmd, err)
		}
		mon.machine.CPU.PC.Load(a)

	case "SET":
		if len(args) != 2 {
			return curated.Errorf(BadArgument, cmd, "register and value required")
		}
		v, err := modalflag.ParseAddress(args[1])
		if err != nil {
			return curated.Errorf(BadArgument, cmd, err)
		}
		if !mon.setRegister(args[0], v) {
			return curated.Errorf(BadArgument, cmd, args[0])
		}

	case "IRQ", "NMI":
		if len(args) != 1 {
			return curated.Errorf(BadArgument, cmd, "ON or OFF required")
		}
		var v bool
		switch strings.ToUpper(args[0]) {
		case "ON":
			v = true
		case "OFF":
		default:
			return curated.Errorf(BadArgument, cmd, args[0])
		}
		if cmd == "IRQ" {
			mon.machine.CPU.SetInterruptLine(v, 0)
		} else {
			mon.machine.CPU.SetNonMaskableInterruptLine(v, 0)
		}

	case "DOT":
		if len(args) != 1 {
			return curated.Errorf(BadArgument, cmd, "filename required")
		}
		if err := mon.dot(args[0]); err != nil {
			return err
		}

	case "SCRIPT":
		if len(args) != 1 {
			return curated.Errorf(BadArgument, cmd, "filename required")
		}
		if err := mon.script(args[0]); err != nil {
			return err
		}

	case "LUA":
		if len(args) != 1 {
			return curated.Errorf(BadArgument, cmd, "filename required")
		}
		if err := mon.runLua(args[0]); err != nil {
			return err
		}

	case "KEYS":
		if err := mon.keys(); err != nil {
			return err
		}

	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

// count parses the first argument as a positive integer.
func count(cmd string, args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, curated.Errorf(BadArgument, cmd, err)
	}
	if n <= 0 {
		return 0, curated.Errorf(BadArgument, cmd, "must be positive")
	}
	return n, nil
}

// stepInstruction runs the machine half a cycle at a time until the processor
// has left and returned to an instruction boundary. Returns false if the
// processor is faulted or the instruction did not complete.
func (mon *Monitor) stepInstruction() bool {
	cpu := mon.machine.CPU

	var left bool
	for h := clocks.HalfCycles(0); h < maxInstructionLength; h++ {
		mon.machine.RunForHalfCycles(1)
		if cpu.Fault() != nil {
			return false
		}
		if !cpu.IsAtInstructionBoundary() {
			left = true
		} else if left {
			return true
		}
	}

	logger.Logf(logger.Allow, "monitor", "instruction at %#04x did not complete", cpu.OpcodeAddress())
	return false
}

// keys steps the processor with single key presses.
func (mon *Monitor) keys() error {
	if mon.term != nil {
		mon.term.CBreakMode()
		defer mon.term.CanonicalMode()
	}

	mon.printf("space: step, c: cycle, r: registers, q: quit\n")

	for {
		b, err := mon.input.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}

		switch b {
		case easyterm.KeySpace:
			mon.stepInstruction()
			mon.printf("%s\n", mon.machine.CPU.String())
		case 'c', 'C':
			mon.machine.RunForCycles(1)
			mon.printf("%s\n", mon.machine.CPU.String())
		case 'r', 'R':
			mon.printf("%s\n", mon.machine.CPU.String())
		case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyCtrlD:
			return nil
		}
	}
}

// snapshot is the processor state drawn by the DOT command.
type snapshot struct {
	AF     registers.Pair
	BC     registers.Pair
	DE     registers.Pair
	HL     registers.Pair
	IX     registers.Pair
	IY     registers.Pair
	SP     registers.Pair
	PC     registers.Pair
	IR     registers.Pair
	Memptr registers.Pair

	Shadow [4]registers.Pair

	Flags registers.Flags

	IFF1          bool
	IFF2          bool
	InterruptMode int

	Lines struct {
		IRQ  bool
		NMI  bool
		Halt bool
	}
}

// dot writes a graphviz description of the processor state to a file.
func (mon *Monitor) dot(filename string) (rerr error) {
	cpu := mon.machine.CPU

	s := &snapshot{
		AF:            cpu.AF(),
		BC:            cpu.BC,
		DE:            cpu.DE,
		HL:            cpu.HL,
		IX:            cpu.IX,
		IY:            cpu.IY,
		SP:            cpu.SP,
		PC:            cpu.PC,
		IR:            cpu.IR,
		Memptr:        cpu.Memptr,
		Shadow:        [4]registers.Pair{cpu.AFDash, cpu.BCDash, cpu.DEDash, cpu.HLDash},
		Flags:         cpu.Flags,
		IFF1:          cpu.IFF1(),
		IFF2:          cpu.IFF2(),
		InterruptMode: cpu.InterruptMode(),
	}
	s.Lines.IRQ = cpu.InterruptLine()
	s.Lines.NMI = cpu.NonMaskableInterruptLine()
	s.Lines.Halt = cpu.HaltLine()

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("monitor: %v", err)
		}
	}()

	memviz.Map(f, s)
	mon.printf("processor state written to %s\n", filename)

	return nil
}

const help = `STEP [n]            step n instructions
CYCLES [n]          run for n cycles
RUN [limit]         run until stopped or limit cycles have passed
REGISTERS           print registers
MEMORY [addr] [n]   dump n rows of memory from addr
POKE addr value     write value to memory
PC addr             set the program counter
SET reg value       set a register (A, F, BC, B, C, ... IX, SP, WZ, AF')
IRQ ON|OFF          set the interrupt line
NMI ON|OFF          set the non-maskable interrupt line
DOT file            write processor state as a graphviz file
SCRIPT file         run monitor commands from a file
LUA file            run a Lua program. functions: print, step, cycles,
                    elapsed, peek, poke, reg, setreg, halted, command
KEYS                step with single key presses
QUIT
`

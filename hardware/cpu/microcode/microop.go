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

package microcode

import (
	"fmt"
	"strings"

	"github.com/zedcycle/zedcycle/hardware/clocks"
	"github.com/zedcycle/zedcycle/hardware/memory/cpubus"
)

// BusCycle is the static description of a machine cycle. The address and
// value are locations that are resolved by the processor when the cycle is
// performed.
type BusCycle struct {
	Operation    cpubus.Operation
	Length       clocks.HalfCycles
	Address      Location
	Value        Location
	WasRequested bool
}

// MicroOp is a single step in a Program.
type MicroOp struct {
	Kind        Kind
	Source      Location
	Destination Location

	// the page to switch to. only used by SetInstructionPage
	Page PageID

	// the machine cycle to perform. only used by BusOperation
	Cycle BusCycle
}

func (op MicroOp) String() string {
	switch op.Kind {
	case BusOperation:
		s := fmt.Sprintf("%s [%d] %s", op.Cycle.Operation, op.Cycle.Length, op.Cycle.Address)
		if op.Cycle.Value != None {
			s = fmt.Sprintf("%s=%s", s, op.Cycle.Value)
		}
		if op.Cycle.WasRequested {
			s = fmt.Sprintf("%s (optional)", s)
		}
		return s
	case SetInstructionPage:
		return fmt.Sprintf("%s %s", op.Kind, op.Page)
	}

	switch {
	case op.Source != None && op.Destination != None:
		return fmt.Sprintf("%s %s -> %s", op.Kind, op.Source, op.Destination)
	case op.Source != None:
		return fmt.Sprintf("%s %s", op.Kind, op.Source)
	}
	return op.Kind.String()
}

// Program is a sequence of MicroOps. An authored program ends with a terminal
// MicroOp.
type Program []MicroOp

func (p Program) String() string {
	s := strings.Builder{}
	for i, op := range p {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(op.String())
	}
	return s.String()
}

// Length returns the sum of the lengths of every bus operation in the
// program, stopping at the first terminal operation.
func (p Program) Length() clocks.HalfCycles {
	var l clocks.HalfCycles
	for _, op := range p {
		if op.Kind == BusOperation {
			l += op.Cycle.Length
		}
		if op.Kind.IsTerminal() {
			break
		}
	}
	return l
}

// Capabilities selects the optional behaviour of a processor.
type Capabilities struct {
	// the bus request line is honoured
	BusRequest bool

	// the wait line is honoured. optional wait cycles are only present in
	// the instruction set when this is true
	WaitLine bool
}

func (c Capabilities) String() string {
	s := []string{}
	if c.BusRequest {
		s = append(s, "bus request")
	}
	if c.WaitLine {
		s = append(s, "wait line")
	}
	if len(s) == 0 {
		return "basic"
	}
	return strings.Join(s, ", ")
}

func (c Capabilities) index() int {
	i := 0
	if c.BusRequest {
		i |= 1
	}
	if c.WaitLine {
		i |= 2
	}
	return i
}

// PageID identifies an instruction page.
type PageID int

// List of valid PageID values.
const (
	BasePage PageID = iota
	CBPage
	EDPage
	DDPage
	FDPage
	DDCBPage
	FDCBPage
	numPages
)

func (id PageID) String() string {
	switch id {
	case BasePage:
		return "base"
	case CBPage:
		return "CB"
	case EDPage:
		return "ED"
	case DDPage:
		return "DD"
	case FDPage:
		return "FD"
	case DDCBPage:
		return "DDCB"
	case FDCBPage:
		return "FDCB"
	}
	return "unknown page"
}

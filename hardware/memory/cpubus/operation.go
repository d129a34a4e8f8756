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

package cpubus

// Operation identifies the type of a MachineCycle. The Start and Wait
// variants describe the leading portion of a cycle and any wait states
// inserted into it. The unadorned variant is the portion of the cycle in which
// data is transferred.
type Operation int

// List of valid Operation values.
const (
	ReadOpcodeStart Operation = iota
	ReadOpcodeWait
	ReadOpcode
	Refresh

	ReadStart
	ReadWait
	Read

	WriteStart
	WriteWait
	Write

	InputStart
	InputWait
	Input

	OutputStart
	OutputWait
	Output

	InterruptStart
	InterruptWait
	Interrupt

	InternalOperation
	BusAcknowledge
)

func (op Operation) String() string {
	switch op {
	case ReadOpcodeStart:
		return "ReadOpcodeStart"
	case ReadOpcodeWait:
		return "ReadOpcodeWait"
	case ReadOpcode:
		return "ReadOpcode"
	case Refresh:
		return "Refresh"
	case ReadStart:
		return "ReadStart"
	case ReadWait:
		return "ReadWait"
	case Read:
		return "Read"
	case WriteStart:
		return "WriteStart"
	case WriteWait:
		return "WriteWait"
	case Write:
		return "Write"
	case InputStart:
		return "InputStart"
	case InputWait:
		return "InputWait"
	case Input:
		return "Input"
	case OutputStart:
		return "OutputStart"
	case OutputWait:
		return "OutputWait"
	case Output:
		return "Output"
	case InterruptStart:
		return "InterruptStart"
	case InterruptWait:
		return "InterruptWait"
	case Interrupt:
		return "Interrupt"
	case InternalOperation:
		return "Internal"
	case BusAcknowledge:
		return "BusAcknowledge"
	}
	return "unknown"
}

// IsWait returns true if the operation is a wait state.
func (op Operation) IsWait() bool {
	switch op {
	case ReadOpcodeWait, ReadWait, WriteWait, InputWait, OutputWait, InterruptWait:
		return true
	}
	return false
}

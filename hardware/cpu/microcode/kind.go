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

// Kind identifies the operation performed by a MicroOp.
type Kind int

// List of valid Kind values.
const (
	BusOperation Kind = iota

	// terminal operations. every program ends with one of these
	MoveToNextProgram
	DecodeOperation
	DecodeOperationNoRChange

	Increment16
	Decrement16
	Move8
	Move16

	AssembleAF
	DisassembleAF

	// eight bit arithmetic and logic in the order they appear in the opcode
	// map. the source is always the operand and the destination always A
	ADD8
	ADC8
	SUB8
	SBC8
	AND
	XOR
	OR
	CP8

	NEG
	Increment8
	Decrement8
	DAA
	CPL
	CCF
	SCF

	ADD16
	ADC16
	SBC16

	// conditions in the order they appear in the opcode map. a condition
	// that isn't met ends the program
	TestNZ
	TestZ
	TestNC
	TestC
	TestPO
	TestPE
	TestP
	TestM

	DJNZ
	CalculateRSTDestination

	ExDEHL
	ExAFAFDash
	EXX

	LDI
	LDD
	LDIR
	LDDR
	CPI
	CPD
	CPIR
	CPDR
	INI
	IND
	INIR
	INDR
	OUTI
	OUTD
	OUTR

	BIT
	RES
	SET

	RLA
	RLCA
	RRA
	RRCA

	// rotate and shifts in the order they appear in the CB page
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SLL
	SRL

	RLD
	RRD

	EI
	DI
	IM

	SetInFlags
	SetAFlags
	SetZero

	BeginIRQMode0
	BeginIRQ
	BeginNMI

	// the refresh counter advances with an acknowledge cycle as it does
	// with an opcode fetch
	IncrementR

	JumpTo66
	RETN
	HALT
	Reset

	SetInstructionPage
	CalculateIndexAddress
	IndexedPlaceholder

	numKinds
)

var kindNames = [numKinds]string{
	BusOperation:             "BusOperation",
	MoveToNextProgram:        "MoveToNextProgram",
	DecodeOperation:          "DecodeOperation",
	DecodeOperationNoRChange: "DecodeOperationNoRChange",
	Increment16:              "Increment16",
	Decrement16:              "Decrement16",
	Move8:                    "Move8",
	Move16:                   "Move16",
	AssembleAF:               "AssembleAF",
	DisassembleAF:            "DisassembleAF",
	ADD8:                     "ADD8",
	ADC8:                     "ADC8",
	SUB8:                     "SUB8",
	SBC8:                     "SBC8",
	AND:                      "AND",
	XOR:                      "XOR",
	OR:                       "OR",
	CP8:                      "CP8",
	NEG:                      "NEG",
	Increment8:               "Increment8",
	Decrement8:               "Decrement8",
	DAA:                      "DAA",
	CPL:                      "CPL",
	CCF:                      "CCF",
	SCF:                      "SCF",
	ADD16:                    "ADD16",
	ADC16:                    "ADC16",
	SBC16:                    "SBC16",
	TestNZ:                   "TestNZ",
	TestZ:                    "TestZ",
	TestNC:                   "TestNC",
	TestC:                    "TestC",
	TestPO:                   "TestPO",
	TestPE:                   "TestPE",
	TestP:                    "TestP",
	TestM:                    "TestM",
	DJNZ:                     "DJNZ",
	CalculateRSTDestination:  "CalculateRSTDestination",
	ExDEHL:                   "ExDEHL",
	ExAFAFDash:               "ExAFAFDash",
	EXX:                      "EXX",
	LDI:                      "LDI",
	LDD:                      "LDD",
	LDIR:                     "LDIR",
	LDDR:                     "LDDR",
	CPI:                      "CPI",
	CPD:                      "CPD",
	CPIR:                     "CPIR",
	CPDR:                     "CPDR",
	INI:                      "INI",
	IND:                      "IND",
	INIR:                     "INIR",
	INDR:                     "INDR",
	OUTI:                     "OUTI",
	OUTD:                     "OUTD",
	OUTR:                     "OUTR",
	BIT:                      "BIT",
	RES:                      "RES",
	SET:                      "SET",
	RLA:                      "RLA",
	RLCA:                     "RLCA",
	RRA:                      "RRA",
	RRCA:                     "RRCA",
	RLC:                      "RLC",
	RRC:                      "RRC",
	RL:                       "RL",
	RR:                       "RR",
	SLA:                      "SLA",
	SRA:                      "SRA",
	SLL:                      "SLL",
	SRL:                      "SRL",
	RLD:                      "RLD",
	RRD:                      "RRD",
	EI:                       "EI",
	DI:                       "DI",
	IM:                       "IM",
	SetInFlags:               "SetInFlags",
	SetAFlags:                "SetAFlags",
	SetZero:                  "SetZero",
	BeginIRQMode0:            "BeginIRQMode0",
	BeginIRQ:                 "BeginIRQ",
	BeginNMI:                 "BeginNMI",
	IncrementR:               "IncrementR",
	JumpTo66:                 "JumpTo66",
	RETN:                     "RETN",
	HALT:                     "HALT",
	Reset:                    "Reset",
	SetInstructionPage:       "SetInstructionPage",
	CalculateIndexAddress:    "CalculateIndexAddress",
	IndexedPlaceholder:       "IndexedPlaceholder",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown kind"
	}
	return kindNames[k]
}

// IsTerminal returns true if the kind ends a program.
func (k Kind) IsTerminal() bool {
	return k == MoveToNextProgram || k == DecodeOperation || k == DecodeOperationNoRChange
}

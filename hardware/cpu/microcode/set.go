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
	"sync"

	"github.com/zedcycle/zedcycle/curated"
)

// InstructionSet is the complete assembled microcode for one combination of
// Capabilities.
type InstructionSet struct {
	Capabilities Capabilities

	Pages [numPages]*InstructionPage

	Reset Program
	NMI   Program
	IRQ   [3]Program
}

// Page returns the page with the ID.
func (set *InstructionSet) Page(id PageID) *InstructionPage {
	return set.Pages[id]
}

// Build assembles a new InstructionSet for the capabilities. Most callers
// should use For() instead.
func Build(caps Capabilities) (*InstructionSet, error) {
	set := &InstructionSet{
		Capabilities: caps,
	}

	type source struct {
		id         PageID
		table      *Table
		fetch      Program
		addOffsets bool
	}

	sources := []source{
		{BasePage, baseTable(unindexed), standardFetch(), false},
		{CBPage, cbTable(), standardFetch(), false},
		{EDPage, edTable(), standardFetch(), false},
		{DDPage, baseTable(indexedX), standardFetch(), true},
		{FDPage, baseTable(indexedY), standardFetch(), true},
		{DDCBPage, indexedCBTable(), indexedCBFetch(IX), true},
		{FDCBPage, indexedCBTable(), indexedCBFetch(IY), true},
	}

	var err error

	for _, s := range sources {
		set.Pages[s.id], err = AssemblePage(s.id, s.table, s.fetch, s.addOffsets, caps)
		if err != nil {
			return nil, err
		}
	}

	set.Reset, err = CopyProgram(resetProgram(), caps)
	if err != nil {
		return nil, curated.Errorf("microcode: reset: %v", err)
	}
	set.NMI, err = CopyProgram(nmiProgram(), caps)
	if err != nil {
		return nil, curated.Errorf("microcode: nmi: %v", err)
	}
	for i, p := range []Program{irqMode0Program(), irqMode1Program(), irqMode2Program()} {
		set.IRQ[i], err = CopyProgram(p, caps)
		if err != nil {
			return nil, curated.Errorf("microcode: irq mode %d: %v", i, err)
		}
	}

	return set, nil
}

// Validate checks that the instruction set contains no operations that should
// have been removed during assembly.
func (set *InstructionSet) Validate() error {
	for _, pg := range set.Pages {
		for c := 0; c < 256; c++ {
			for _, op := range pg.Program(uint8(c)) {
				if op.Kind == IndexedPlaceholder {
					return curated.Errorf(PlaceholderReached, pg.ID, c)
				}
				if op.Kind.IsTerminal() {
					break
				}
			}
		}
	}
	return nil
}

var cache [4]struct {
	once sync.Once
	set  *InstructionSet
}

// For returns the shared InstructionSet for the capabilities. The set is built
// on first use. It panics if the tables cannot be assembled.
func For(caps Capabilities) *InstructionSet {
	c := &cache[caps.index()]
	c.once.Do(func() {
		set, err := Build(caps)
		if err != nil {
			panic(err)
		}
		c.set = set
	})
	return c.set
}

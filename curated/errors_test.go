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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/zedcycle/zedcycle/curated"
	"github.com/zedcycle/zedcycle/test"
)

const testPattern = "test: %d"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("allram: %v", curated.Errorf("allram: file too large"))
	test.ExpectEquality(t, e.Error(), "allram: file too large")

	e = curated.Errorf("z80: %v", curated.Errorf("microcode: bad"))
	test.ExpectEquality(t, e.Error(), "z80: microcode: bad")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.Has(e, testPattern))

	f := curated.Errorf("wrapped: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("allram: %v", io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
}

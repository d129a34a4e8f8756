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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zedcycle/zedcycle/curated"
)

// InvalidAddress is returned by ParseAddress().
const InvalidAddress = "modalflag: not a valid address (%s)"

// address implements the flag.Value interface for sixteen bit addresses.
type address uint16

func (a *address) String() string {
	if a == nil {
		return "0x0000"
	}
	return fmt.Sprintf("0x%04x", uint16(*a))
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = address(v)
	return nil
}

// ParseAddress converts a string to a sixteen bit address. Hexadecimal
// values are indicated with a 0x or $ prefix or an h suffix.
func ParseAddress(s string) (uint16, error) {
	t := strings.ToLower(strings.TrimSpace(s))

	base := 10
	switch {
	case strings.HasPrefix(t, "0x"):
		t = t[2:]
		base = 16
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasSuffix(t, "h"):
		t = t[:len(t)-1]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}
	return uint16(v), nil
}

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

//go:build !statsview
// +build !statsview

package statsview

import (
	"io"

	"github.com/zedcycle/zedcycle/curated"
)

// Launch checks the options and returns the NotAvailable error. Nothing is
// written to output.
func Launch(output io.Writer, opts Options) (string, error) {
	opts, err := opts.normalise()
	if err != nil {
		return "", err
	}
	if _, err := URL(opts.Address); err != nil {
		return "", err
	}
	return "", curated.Errorf(NotAvailable)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}

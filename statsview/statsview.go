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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Launch starts the statistics server in a new goroutine and returns the URL
// of the statistics page. The URL is also written to output.
func Launch(output io.Writer, opts Options) (string, error) {
	opts, err := opts.normalise()
	if err != nil {
		return "", err
	}

	url, err := URL(opts.Address)
	if err != nil {
		return "", err
	}

	viewer.SetConfiguration(
		viewer.WithAddr(opts.Address),
		viewer.WithInterval(int(opts.Interval.Milliseconds())),
	)

	go func() {
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s\n", url)
	return url, nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}

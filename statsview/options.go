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

package statsview

import (
	"fmt"
	"net"
	"time"

	"github.com/zedcycle/zedcycle/curated"
)

// DefaultAddress of the statistics server.
const DefaultAddress = "localhost:12600"

// DefaultInterval between samples of the runtime statistics.
const DefaultInterval = 2 * time.Second

const path = "/debug/statsview"

// Sentinal error patterns.
const (
	BadAddress   = "statsview: bad address (%v)"
	BadInterval  = "statsview: sample interval must be at least a millisecond (%v)"
	NotAvailable = "statsview: not available (build with the statsview tag)"
)

// Options for Launch. The zero value uses DefaultAddress and DefaultInterval.
type Options struct {
	Address  string
	Interval time.Duration
}

func (o Options) normalise() (Options, error) {
	if o.Address == "" {
		o.Address = DefaultAddress
	}
	if o.Interval == 0 {
		o.Interval = DefaultInterval
	}
	if o.Interval < time.Millisecond {
		return o, curated.Errorf(BadInterval, o.Interval)
	}
	return o, nil
}

// URL returns the page served for the address. The port must be present; an
// empty host means localhost.
func URL(address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "", curated.Errorf(BadAddress, err)
	}
	if port == "" {
		return "", curated.Errorf(BadAddress, "missing port")
	}
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(host, port), path), nil
}

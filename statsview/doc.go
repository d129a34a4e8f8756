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

// Package statsview offers a HTTP server running locally with runtime
// statistics of the emulator process. The server is only built when the
// statsview build constraint is present; without it Available() returns false
// and Launch() returns the NotAvailable error.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
//
// The address and sample interval are set with Options. Launch() returns the
// URL of the graphical statistics, which for the DefaultAddress is:
//
//	http://localhost:12600/debug/statsview
//
// Standard Go pprof statistics are served alongside at /debug/pprof/.
//
// Useful for watching allocation behaviour of the processor during a long
// RUN or CPM session.
package statsview

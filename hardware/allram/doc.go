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

// Package allram is a minimal machine built around the Z80: 64k of RAM that
// can be read and written without restriction, and 256 ports. It is used to
// run test programs and exercisers and as the machine behind the monitor.
//
// Opcode fetches from chosen addresses can be trapped, allowing a host
// implementation of an operating system call (see the cpm package). Port
// traffic can be delegated to a PortHandler. Memory accesses can be slowed
// by a fixed number of wait states and the value supplied during interrupt
// acknowledge is configurable.
//
// RunUntilStopped() runs the machine until a trap or another goroutine calls
// Stop(). It returns at the end of the instruction in progress, and each call
// starts by clearing any earlier stop.
//
// The machine is not safe for concurrent use except for Stop(), Restart()
// and Stopped(), which can be called from any goroutine.
package allram

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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own set of flags. The zedcycle
// command uses it for its RUN, CPM, MONITOR and VERSION modes.
//
// Arguments are supplied once with NewArgs() and then consumed by successive
// calls to Parse(). Flags added before a call to Parse() apply to the current
// layer of arguments only:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	echo := md.AddBool("echo", false, "echo log entries to stdout")
//	md.AddSubModes("RUN", "CPM")
//	if r, _ := md.Parse(); r != modalflag.ParseContinue {
//		return
//	}
//
//	switch md.Mode() {
//	case "CPM":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "cycle limit")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a mode. Mode names are case insensitive and are reported in
// upper case.
//
// In addition to the usual flag types, AddAddress() accepts a sixteen bit
// address in decimal, or in hexadecimal with a 0x or $ prefix or an h
// suffix.
package modalflag

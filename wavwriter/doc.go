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

// Package wavwriter records the level of a one bit output port, the kind of
// beeper found on many Z80 machines, and writes it to disk as a WAV file.
//
// The WavWriter type implements the allram.PortHandler interface. Each
// change of level is timestamped with the machine's elapsed half cycles and
// the recording is only rendered to PCM when Close() is called. Audio data is
// therefore buffered in its entirety and the package is probably only
// suitable for testing purposes.
package wavwriter

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

// Package thomharte runs the Z80 single-step tests as created/maintained by
// Thom Harte.
//
// https://github.com/SingleStepTests/z80
//
// The tests are large and are not included as part of the Zedcycle
// repository. Add the instructions you want to test from the v1 directory on
// Github to the z80/v1 directory in this package. The test is skipped if the
// directory is empty or missing.
//
// Only the final state of each test and the number of cycles are compared.
// The per-cycle bus activity in the test data is recorded at the level of
// individual pins, which is finer than the machine cycles seen by a
// cpubus.Handler.
package thomharte

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

package easyterm

// ASCII codes of keys with a meaning in cbreak mode.
const (
	KeyCtrlC     = 3
	KeyCtrlD     = 4
	KeyEnter     = 10
	KeyEsc       = 27
	KeySpace     = 32
	KeyBackspace = 127
)

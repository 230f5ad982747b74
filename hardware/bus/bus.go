// This file is part of Busmaster.
//
// Busmaster is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Busmaster is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Busmaster.  If not, see <https://www.gnu.org/licenses/>.

package bus

// Log is the logging capability required by the bus wrappers.
type Log interface {
	Infof(tag string, pattern string, args ...any)
	Warnf(tag string, pattern string, args ...any)
	Errorf(tag string, pattern string, args ...any)
}

// Sentinal error patterns.
const (
	NotWritable = "%s bus: not writable: %s"
)

// the rune used for a direction mask that is neither all output nor all input
const mixedDirection = '?'

func modeRune(writable bool) rune {
	if writable {
		return 'w'
	}
	return 'r'
}

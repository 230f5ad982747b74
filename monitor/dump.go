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

package monitor

import (
	"fmt"
	"strings"
)

// the number of bytes on each line of a dump
const dumpWidth = 16

// HexDump formats the data as lines of hexadecimal with a printable rendering
// of each byte at the end of the line. The first byte of data is at address.
func HexDump(address uint16, data []uint8) []string {
	var lines []string

	for i := 0; i < len(data); i += dumpWidth {
		end := min(i+dumpWidth, len(data))
		row := data[i:end]

		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%04x ", int(address)+i))
		for j := range dumpWidth {
			if j < len(row) {
				s.WriteString(fmt.Sprintf(" %02x", row[j]))
			} else {
				s.WriteString("   ")
			}
		}
		s.WriteString("  ")
		for _, b := range row {
			s.WriteRune(printable(b))
		}

		lines = append(lines, s.String())
	}

	return lines
}

// printable returns the character for the byte or a dot if the byte is not
// printable ASCII.
func printable(b uint8) rune {
	if b < 0x20 || b > 0x7e {
		return '.'
	}
	return rune(b)
}

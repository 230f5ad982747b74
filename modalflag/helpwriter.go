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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package's default usage
// function so that it can be combined with sub-mode information.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

// the flag package writes this when there are no flags
const emptyUsage = "Usage:\n"

func (hw *helpWriter) help(out io.Writer, path string, subModes []string, additional string) {
	usage := hw.buffer.String()
	noFlags := usage == emptyUsage || usage == ""

	if noFlags && len(subModes) == 0 && additional == "" {
		if path == "" {
			fmt.Fprintln(out, "No help available")
		} else {
			fmt.Fprintf(out, "No help available for %s\n", path)
		}
		return
	}

	header, body, _ := strings.Cut(usage, "\n")
	if header == "" {
		header = "Usage:"
	}
	if path != "" {
		header = fmt.Sprintf("%s for %s mode", header, path)
	}
	fmt.Fprintln(out, header)

	if !noFlags {
		fmt.Fprint(out, body)
	}

	if len(subModes) > 0 {
		if !noFlags {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(out, "    default: %s\n", subModes[0])
	}

	if additional != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, additional)
	}
}

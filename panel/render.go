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

package panel

import (
	"fmt"
	"io"

	"github.com/jetsetilly/busmaster/hardware/busmaster"
	"github.com/jetsetilly/busmaster/hardware/signal"
	"github.com/jetsetilly/busmaster/logger"
	"github.com/jetsetilly/busmaster/monitor"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func readWrite(writable bool) string {
	if writable {
		return "writable"
	}
	return "readable"
}

// renderSignals writes the state of the controller, one item per line.
func renderSignals(w io.Writer, s busmaster.Snapshot) {
	fmt.Fprintf(w, "mastered   %s\n", yesNo(s.Mutable))
	fmt.Fprintf(w, "refresh    %s\n", yesNo(s.Refresh))
	fmt.Fprintf(w, "row        %03d\n", s.Row)
	fmt.Fprintf(w, "strobes    %d\n", s.Refreshes)
	fmt.Fprintf(w, "wait       %s\n", yesNo(s.Wait))
	fmt.Fprintln(w)

	for _, ss := range s.Signals {
		active := ""
		if ss.Level == ss.Signal.Asserted() && (ss.Direction == signal.Output || ss.Signal.InputOnly()) {
			active = " *"
		}
		fmt.Fprintf(w, "%-8s %-6s %-4s%s\n", ss.Signal, ss.Direction, ss.Level, active)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "ADDR     0x%04x %s\n", s.Address, readWrite(s.AddressWritable))
	fmt.Fprintf(w, "DATA     0x%02x   %s\n", s.Data, readWrite(s.DataWritable))
}

// renderMemory writes rows of hex dump starting at base. Memory can only be
// read while the bus is mastered.
func renderMemory(w io.Writer, bc *busmaster.Controller, base uint16, rows int) {
	if !bc.IsMutable() {
		fmt.Fprintln(w, "bus is not mastered. press t")
		return
	}

	n := min(rows*bytesPerRow, 0x10000-int(base))
	if n <= 0 {
		return
	}

	data, err := bc.ReadMemoryBlock(base, n)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	for _, l := range monitor.HexDump(base, data) {
		fmt.Fprintln(w, l)
	}
}

// renderLog writes the most recent entries in the log.
func renderLog(w io.Writer, log *logger.Logger, n int) {
	log.Tail(w, n)
}

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

package delay

import (
	"time"

	"github.com/jetsetilly/busmaster/hardware/clocks"
)

// BusyWait is a CycleDelay that spins until the wall clock equivalent of the
// requested number of cycles has passed.
type BusyWait struct {
	cycle time.Duration
}

// NewBusyWait is the preferred method of initialisation for the BusyWait
// type. The clock speed is in MHz.
func NewBusyWait(mhz float64) *BusyWait {
	return &BusyWait{
		cycle: clocks.CycleDuration(mhz),
	}
}

// Cycles implements the CycleDelay interface.
func (bw *BusyWait) Cycles(n int) {
	if n <= 0 {
		return
	}
	deadline := time.Now().Add(time.Duration(n) * bw.cycle)
	for time.Now().Before(deadline) {
	}
}

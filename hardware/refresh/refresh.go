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

// Package refresh provides the periodic interrupt source that drives DRAM
// refresh.
//
// On the microcontroller the refresh tick is a timer interrupt. Here it is
// modelled by the Source interface. The Ticker implementation calls the tick
// function from its own goroutine, which is the same concurrency hazard as
// the timer interrupt: the tick can arrive at any moment. The Manual
// implementation only ticks when told to and is used for testing.
//
// A Source knows nothing about the bus. Masking the tick during a foreground
// bus cycle is the responsibility of the tick function, which is supplied by
// the busmaster package.
package refresh

import "time"

// Source implementations call the tick function periodically between calls to
// Start() and Stop().
type Source interface {
	// Start arming of the source. Does nothing if the source is already
	// running.
	Start(interval time.Duration, tick func())

	// Stop disarms the source. When Stop() returns the tick function is not
	// running and will not be called again until the next Start(). Does
	// nothing if the source is not running.
	//
	// Stop() must not be called from inside the tick function.
	Stop()

	// Running returns true if the source is armed.
	Running() bool
}

// Rows is the number of DRAM rows that must be refreshed within the refresh
// window.
const Rows = 128

// Window is the time within which every row must be refreshed.
const Window = 2 * time.Millisecond

// Interval is the tick interval that refreshes every row within the window.
const Interval = Window / Rows

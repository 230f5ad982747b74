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

// Package clocks defines the clock speeds of the host CPU. Bus timing in the
// busmaster package is expressed in host CPU cycles. The functions in this
// package convert between cycles and wall clock durations for a given clock.
package clocks

import "time"

// Clock speeds of the Z80 in MHz.
const (
	// the Model I divides the 10.6445MHz crystal by six
	ModelI = 1.77408

	// a popular speed-up modification
	ModelISpeedUp = ModelI * 2
)

// CycleDuration returns the duration of a single cycle for a clock running at
// the specified speed in MHz.
func CycleDuration(mhz float64) time.Duration {
	if mhz <= 0 {
		return 0
	}
	return time.Duration(1000.0 / mhz)
}

// Duration returns the time taken by the number of cycles for a clock running
// at the specified speed in MHz.
func Duration(cycles int, mhz float64) time.Duration {
	if mhz <= 0 {
		return 0
	}
	return time.Duration(float64(cycles) * 1000.0 / mhz)
}

// Cycles returns the number of whole cycles, rounded up, that cover the
// duration for a clock running at the specified speed in MHz.
func Cycles(d time.Duration, mhz float64) int {
	c := float64(d) * mhz / 1000.0
	n := int(c)
	if float64(n) < c {
		n++
	}
	return n
}

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

// Package delay provides the CycleDelay interface and two implementations.
//
// Every hold in a bus cycle is expressed as a number of host CPU cycles
// because the timing budget of the expansion bus is defined relative to the
// host clock. BusyWait spins for the wall clock equivalent of the requested
// cycles. Counter does not wait at all but records what was requested, which
// makes timing behaviour deterministic and testable.
package delay

// CycleDelay implementations wait for the number of host CPU cycles. A delay
// must not sleep or yield. It is called from inside bus cycles that must run
// to completion.
type CycleDelay interface {
	Cycles(n int)
}

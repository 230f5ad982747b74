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

// Package busmaster is the bus controller. It takes the expansion bus away
// from the Model I CPU and sequences the control signals into correctly timed
// memory, IO and refresh cycles.
//
// The Controller has two orthogonal states. The first is mutability. The
// Controller is immutable when it is created. ActivateTestSignal() asserts
// TEST, which suspends the CPU, waits for the bus to settle and then takes
// control of the address bus and the cycle strobes. Only then is the
// Controller mutable. DeactivateTestSignal() reverses the process. There is
// no bus acknowledge line on the Model I so the settle delay is a fixed,
// conservative, number of cycles that can be changed in the Preferences.
//
// The second state is the refresh state, which only exists inside the mutable
// state. While the CPU is suspended it is not refreshing the DRAM and so the
// Controller must. ActivateMemoryRefresh() arms the refresh source, which
// strobes one row every tick. Refresh is disarmed before the Controller
// becomes immutable.
//
// Every memory and IO operation, and every refresh tick, checks the
// mutability state first. Operations are rejected while immutable: an error
// is logged and returned and the bus is not touched.
//
// The refresh tick can arrive at any moment. Foreground bus cycles mask the
// tick for their duration so that a refresh strobe never happens in the
// middle of a cycle. The mask is held for a single byte at a time. Bulk
// operations are sequences of single byte cycles and the refresh tick can
// run between any two of them.
//
// Bus timings are expressed in cycles of the host CPU clock and are passed to
// the CycleDelay given to NewController().
package busmaster

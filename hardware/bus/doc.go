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

// Package bus wraps the two tri-statable busses of the expansion connector.
//
// AddressBus and DataBus each own a single flag that records whether the bus
// is being driven (writable) or is listening (readable). Changing the flag
// reconfigures every line of the bus at once so the bus is never in a mixed
// state. A bus must be explicitly made writable before a value can be written
// to it. Writes to a readable bus are rejected: an error is logged and
// returned and the lines are left as they are.
//
// The one exception is AddressBus.WriteRefreshAddress(). DRAM refresh is only
// ever armed while the address bus is already being driven and the refresh
// strobe must not pay for the check.
//
// State() on both types returns a fixed format diagnostic string. For
// example:
//
//	ADDR<o-w>(0011110000000000)
//	DATA<i-r>(01000001)
//
// The first character is the direction of the lines as read back from the
// port: 'o' for output, 'i' for input or '?' if the lines are mixed. The
// second character is the read/write mode of the wrapper. The bracketed
// value is the value on the bus in binary.
package bus

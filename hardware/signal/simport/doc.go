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

// Package simport is a simulated Model I motherboard behind the signal.Port
// interface. It is used by the tests of every layer above the port and allows
// the program to be run without hardware attached.
//
// The simulation decodes the strobes written to it in the same way the
// motherboard does:
//
//	RAS falling, CAS and RD and WR high    refresh of row (address & 0x7f)
//	CAS falling, RAS low, WR low           memory write
//	RD, RAS and CAS low                    memory read drives the data bus
//	IN low                                 IO read drives the data bus
//	OUT falling                            IO write
//
// ROM is not writable. Unused memory reads as 0xff, as does the data bus when
// nothing is driving it. The keyboard area reads the keyboard matrix rows
// selected by the low eight address lines.
//
// The Model I CPU is modelled for two purposes. Firstly, it acknowledges an
// interrupt after a configurable number of polls of INT_ACK and latches the
// vector that is put on the data bus during the acknowledgement. Secondly, it
// is the other party in bus contention. Any attempt to drive a line that the
// CPU is driving, which is every bus line unless TEST is asserted, increments
// a contention counter. Writing to a line that has not been configured as an
// output increments a violation counter and is otherwise ignored. Sound code
// leaves both counters at zero.
package simport

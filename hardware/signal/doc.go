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

// Package signal defines the named control lines of the Model I expansion bus
// and the Port interface through which the lines and the two busses are
// reached.
//
// A Port implementation is the only thing that touches the physical pins. It
// keeps no state beyond what the pins themselves hold and performs no
// checking of any kind. Every call affects only the one line or bus named by
// the call. All safety is enforced by the bus package and the busmaster
// package.
//
// Because a Port is an interface the protocol layers above it are
// independent of the chip family that is driving the pins. The simport
// sub-package provides a simulated motherboard for testing and for running
// without hardware.
package signal

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

// Package hardware is the base package for the bus mastering of the TRS-80
// Model I. The signal package describes the lines of the expansion connector
// and the Port interface through which they are driven. The bus package
// groups the address and data lines. The busmaster package sequences memory,
// IO, refresh and interrupt cycles on top of those.
//
// The simport package is a simulated Model I motherboard behind the Port
// interface. It is used by the tests and by the monitor when there is no
// real hardware.
package hardware

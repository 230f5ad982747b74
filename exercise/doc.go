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

// Package exercise writes test patterns to the RAM of the machine and reads
// them back. The controller must be idle when Check() is called. Check() will
// master the bus itself and release it once the patterns have completed.
//
// The patterns are:
//
//	walking ones: each byte is written with a single bit set, for every bit
//	address: each byte is written with the XOR of its address bytes
//	inverse address: as above but with every bit inverted
//
// Each pattern covers the whole of the requested range before it is read
// back. A refresh row is serviced by the controller in the normal way while
// the patterns are running, so a failure to retain data over the duration of
// a pattern is caught.
package exercise

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

package signal

// Bus masks for the ConfigureAddressDirection() and ConfigureDataDirection()
// functions of the Port interface. A set bit is an output.
const (
	AddressOutput = uint16(0xffff)
	AddressInput  = uint16(0x0000)
	DataOutput    = uint8(0xff)
	DataInput     = uint8(0x00)
)

// Port is the primitive access layer for the control lines and the two
// busses. Implementations are expected to be unbuffered: a value written is on
// the pins when the call returns.
//
// Writing to a line that has not been configured as an output is a contract
// violation by the caller. Implementations are not required to detect it.
//
// Latch() sets the level an input line will drive once it is configured as an
// output. It has no effect on the pins. Latching a line that is already an
// output is a contract violation.
type Port interface {
	// per signal operations
	ConfigureDirection(sig Signal, dir Direction)
	Write(sig Signal, lvl Level)
	Latch(sig Signal, lvl Level)
	Read(sig Signal) Level
	ReadDirection(sig Signal) Direction

	// 16 bit address bus. a set bit in the direction mask is an output
	ConfigureAddressDirection(mask uint16)
	WriteAddress(v uint16)
	ReadAddress() uint16
	ReadAddressDirection() uint16

	// 8 bit data bus. a set bit in the direction mask is an output
	ConfigureDataDirection(mask uint8)
	WriteData(v uint8)
	ReadData() uint8
	ReadDataDirection() uint8
}

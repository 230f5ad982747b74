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

package bus

import (
	"fmt"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/signal"
)

const addressTag = "address bus"

// AddressBus is the 16 bit address bus. The IO address of the Z80 IN and OUT
// instructions occupies the low eight bits.
type AddressBus struct {
	port     signal.Port
	log      Log
	writable bool
}

// NewAddressBus is the preferred method of initialisation for the AddressBus
// type. The bus is configured as readable.
func NewAddressBus(port signal.Port, log Log) *AddressBus {
	b := &AddressBus{
		port: port,
		log:  log,
	}
	b.port.ConfigureAddressDirection(signal.AddressInput)
	return b
}

// SetAsReadable configures every line of the bus as an input. Does nothing if
// the bus is already readable.
func (b *AddressBus) SetAsReadable() {
	if !b.writable {
		return
	}
	b.port.ConfigureAddressDirection(signal.AddressInput)
	b.writable = false
}

// SetAsWritable configures every line of the bus as an output. Does nothing
// if the bus is already writable.
func (b *AddressBus) SetAsWritable() {
	if b.writable {
		return
	}
	b.port.ConfigureAddressDirection(signal.AddressOutput)
	b.writable = true
}

// IsReadable returns true if the bus is listening.
func (b *AddressBus) IsReadable() bool {
	return !b.writable
}

// IsWritable returns true if the bus is being driven.
func (b *AddressBus) IsWritable() bool {
	return b.writable
}

// ReadMemoryAddress returns the full 16 bit value on the bus.
func (b *AddressBus) ReadMemoryAddress() uint16 {
	return b.port.ReadAddress()
}

// WriteMemoryAddress puts the 16 bit address on the bus.
func (b *AddressBus) WriteMemoryAddress(address uint16) error {
	if !b.writable {
		b.log.Errorf(addressTag, "write memory address 0x%04x while not writable", address)
		return curated.Errorf(NotWritable, "address", fmt.Sprintf("memory address 0x%04x", address))
	}
	b.port.WriteAddress(address)
	return nil
}

// ReadIOAddress returns the low eight bits of the bus.
func (b *AddressBus) ReadIOAddress() uint8 {
	return uint8(b.port.ReadAddress())
}

// WriteIOAddress puts the IO address on the low eight bits of the bus. The
// high eight bits are not changed.
func (b *AddressBus) WriteIOAddress(address uint8) error {
	if !b.writable {
		b.log.Errorf(addressTag, "write IO address 0x%02x while not writable", address)
		return curated.Errorf(NotWritable, "address", fmt.Sprintf("IO address 0x%02x", address))
	}
	b.port.WriteAddress(b.port.ReadAddress()&0xff00 | uint16(address))
	return nil
}

// WriteRefreshAddress puts the DRAM row on the bus. Unlike the other write
// functions the writable flag is not checked. The address bus is always
// writable while refresh is armed.
func (b *AddressBus) WriteRefreshAddress(row uint8) {
	b.port.WriteAddress(uint16(row))
}

// State returns the diagnostic string for the address bus.
func (b *AddressBus) State() string {
	var dir rune
	switch b.port.ReadAddressDirection() {
	case signal.AddressOutput:
		dir = signal.Output.Rune()
	case signal.AddressInput:
		dir = signal.Input.Rune()
	default:
		dir = mixedDirection
	}
	return fmt.Sprintf("ADDR<%c-%c>(%016b)", dir, modeRune(b.writable), b.port.ReadAddress())
}

func (b *AddressBus) String() string {
	return b.State()
}

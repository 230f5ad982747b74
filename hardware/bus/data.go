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

const dataTag = "data bus"

// DataBus is the 8 bit data bus.
type DataBus struct {
	port     signal.Port
	log      Log
	writable bool
}

// NewDataBus is the preferred method of initialisation for the DataBus type.
// The bus is configured as readable.
func NewDataBus(port signal.Port, log Log) *DataBus {
	b := &DataBus{
		port: port,
		log:  log,
	}
	b.port.ConfigureDataDirection(signal.DataInput)
	return b
}

// SetAsReadable configures every line of the bus as an input. Does nothing if
// the bus is already readable.
func (b *DataBus) SetAsReadable() {
	if !b.writable {
		return
	}
	b.port.ConfigureDataDirection(signal.DataInput)
	b.writable = false
}

// SetAsWritable configures every line of the bus as an output. Does nothing
// if the bus is already writable.
func (b *DataBus) SetAsWritable() {
	if b.writable {
		return
	}
	b.port.ConfigureDataDirection(signal.DataOutput)
	b.writable = true
}

// IsReadable returns true if the bus is listening.
func (b *DataBus) IsReadable() bool {
	return !b.writable
}

// IsWritable returns true if the bus is being driven.
func (b *DataBus) IsWritable() bool {
	return b.writable
}

// ReadData returns the value on the bus.
func (b *DataBus) ReadData() uint8 {
	return b.port.ReadData()
}

// WriteData puts the value on the bus.
func (b *DataBus) WriteData(data uint8) error {
	if !b.writable {
		b.log.Errorf(dataTag, "write data 0x%02x while not writable", data)
		return curated.Errorf(NotWritable, "data", fmt.Sprintf("data 0x%02x", data))
	}
	b.port.WriteData(data)
	return nil
}

// State returns the diagnostic string for the data bus.
func (b *DataBus) State() string {
	var dir rune
	switch b.port.ReadDataDirection() {
	case signal.DataOutput:
		dir = signal.Output.Rune()
	case signal.DataInput:
		dir = signal.Input.Rune()
	default:
		dir = mixedDirection
	}
	return fmt.Sprintf("DATA<%c-%c>(%08b)", dir, modeRune(b.writable), b.port.ReadData())
}

func (b *DataBus) String() string {
	return b.State()
}

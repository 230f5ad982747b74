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

package busmaster

import (
	"fmt"

	"github.com/jetsetilly/busmaster/hardware/signal"
)

// cycle timings in host CPU cycles
const (
	// between successive strobes
	strobeHold = 1

	// from CAS to valid data on a memory read
	readAccess = 2

	// CAS is held for a shorter time on a memory write
	writeWindow = 1

	// IN or OUT strobe duration
	ioAccess = 3
)

// ReadMemory performs a single memory read cycle.
func (bc *Controller) ReadMemory(address uint16) (uint8, error) {
	defer bc.maskRefresh()()

	if err := bc.checkMutable(fmt.Sprintf("read memory 0x%04x", address)); err != nil {
		return 0, err
	}

	if err := bc.addr.WriteMemoryAddress(address); err != nil {
		return 0, err
	}

	bc.assert(signal.RAS)
	bc.delay.Cycles(strobeHold)
	bc.assert(signal.RD)
	bc.delay.Cycles(strobeHold)
	bc.assert(signal.MUX)
	bc.delay.Cycles(strobeHold)
	bc.assert(signal.CAS)
	bc.delay.Cycles(readAccess)

	data := bc.data.ReadData()

	bc.deassert(signal.CAS)
	bc.deassert(signal.RD)
	bc.deassert(signal.RAS)
	bc.deassert(signal.MUX)

	return data, nil
}

// WriteMemory performs a single memory write cycle. The data bus is writable
// for the duration of the cycle only.
func (bc *Controller) WriteMemory(address uint16, data uint8) error {
	defer bc.maskRefresh()()

	if err := bc.checkMutable(fmt.Sprintf("write memory 0x%04x", address)); err != nil {
		return err
	}

	if err := bc.addr.WriteMemoryAddress(address); err != nil {
		return err
	}

	bc.data.SetAsWritable()
	defer bc.data.SetAsReadable()
	if err := bc.data.WriteData(data); err != nil {
		return err
	}

	bc.assert(signal.RAS)
	bc.delay.Cycles(strobeHold)
	bc.assert(signal.WR)
	bc.delay.Cycles(strobeHold)
	bc.assert(signal.MUX)
	bc.delay.Cycles(strobeHold)
	bc.assert(signal.CAS)
	bc.delay.Cycles(writeWindow)

	bc.deassert(signal.CAS)
	bc.deassert(signal.WR)
	bc.deassert(signal.RAS)
	bc.deassert(signal.MUX)

	return nil
}

// ReadIO performs a single IO read cycle. The port number is placed on the
// low byte of the address bus.
//
// The DRAM strobes are not used during an IO cycle.
func (bc *Controller) ReadIO(address uint8) (uint8, error) {
	defer bc.maskRefresh()()

	if err := bc.checkMutable(fmt.Sprintf("read IO 0x%02x", address)); err != nil {
		return 0, err
	}

	if err := bc.addr.WriteIOAddress(address); err != nil {
		return 0, err
	}

	bc.assert(signal.IN)
	bc.delay.Cycles(ioAccess)
	data := bc.data.ReadData()
	bc.deassert(signal.IN)

	return data, nil
}

// WriteIO performs a single IO write cycle.
func (bc *Controller) WriteIO(address uint8, data uint8) error {
	defer bc.maskRefresh()()

	if err := bc.checkMutable(fmt.Sprintf("write IO 0x%02x", address)); err != nil {
		return err
	}

	if err := bc.addr.WriteIOAddress(address); err != nil {
		return err
	}

	bc.data.SetAsWritable()
	defer bc.data.SetAsReadable()
	if err := bc.data.WriteData(data); err != nil {
		return err
	}

	bc.assert(signal.OUT)
	bc.delay.Cycles(ioAccess)
	bc.deassert(signal.OUT)

	return nil
}

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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/bus"
	"github.com/jetsetilly/busmaster/hardware/signal"
	"github.com/jetsetilly/busmaster/hardware/signal/simport"
	"github.com/jetsetilly/busmaster/logger"
	"github.com/jetsetilly/busmaster/test"
)

func mastered() *simport.Port {
	p := simport.NewPort()
	p.ConfigureDirection(signal.TEST, signal.Output)
	p.Write(signal.TEST, signal.Low)
	return p
}

func TestAddressDirection(t *testing.T) {
	p := mastered()
	log := logger.NewLogger(100)
	addr := bus.NewAddressBus(p, log)

	test.ExpectSuccess(t, addr.IsReadable())
	test.ExpectEquality(t, p.ReadAddressDirection(), signal.AddressInput)

	// readable and writable are always opposites
	for _, writable := range []bool{true, true, false, true, false, false, true} {
		if writable {
			addr.SetAsWritable()
			test.ExpectEquality(t, p.ReadAddressDirection(), signal.AddressOutput)
		} else {
			addr.SetAsReadable()
			test.ExpectEquality(t, p.ReadAddressDirection(), signal.AddressInput)
		}
		test.ExpectEquality(t, addr.IsWritable(), writable)
		test.ExpectEquality(t, addr.IsReadable(), !writable)
	}

	test.ExpectEquality(t, log.Count(logger.Error), 0)
	test.ExpectEquality(t, p.Contention(), 0)
}

func TestDataDirection(t *testing.T) {
	p := mastered()
	log := logger.NewLogger(100)
	data := bus.NewDataBus(p, log)

	test.ExpectSuccess(t, data.IsReadable())
	for _, writable := range []bool{false, true, true, false} {
		if writable {
			data.SetAsWritable()
			test.ExpectEquality(t, p.ReadDataDirection(), signal.DataOutput)
		} else {
			data.SetAsReadable()
			test.ExpectEquality(t, p.ReadDataDirection(), signal.DataInput)
		}
		test.ExpectEquality(t, data.IsWritable(), writable)
		test.ExpectEquality(t, data.IsReadable(), !writable)
	}
}

func TestAddressWrite(t *testing.T) {
	p := mastered()
	log := logger.NewLogger(100)
	addr := bus.NewAddressBus(p, log)

	addr.SetAsWritable()
	test.ExpectSuccess(t, addr.WriteMemoryAddress(0x3c12))
	test.ExpectEquality(t, addr.ReadMemoryAddress(), 0x3c12)
	test.ExpectEquality(t, addr.ReadIOAddress(), 0x12)

	// an IO address only changes the low byte
	test.ExpectSuccess(t, addr.WriteIOAddress(0xfe))
	test.ExpectEquality(t, addr.ReadMemoryAddress(), 0x3cfe)
	test.ExpectEquality(t, addr.ReadIOAddress(), 0xfe)

	test.ExpectEquality(t, addr.State(), "ADDR<o-w>(0011110011111110)")

	// writing while readable leaves the bus unchanged and logs one error
	addr.SetAsReadable()
	p.SetCPUAddress(0x1234)
	err := addr.WriteIOAddress(0x3f)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.NotWritable))
	test.ExpectEquality(t, log.Count(logger.Error), 1)
	test.ExpectEquality(t, addr.ReadMemoryAddress(), 0x1234)

	err = addr.WriteMemoryAddress(0x4000)
	test.ExpectSuccess(t, curated.Is(err, bus.NotWritable))
	test.ExpectEquality(t, log.Count(logger.Error), 2)
	test.ExpectEquality(t, addr.State(), "ADDR<i-r>(0001001000110100)")

	// the value last written is still held by the port and reappears when the
	// bus is writable again
	addr.SetAsWritable()
	test.ExpectEquality(t, addr.ReadMemoryAddress(), 0x3cfe)
}

func TestRefreshAddress(t *testing.T) {
	p := mastered()
	log := logger.NewLogger(100)
	addr := bus.NewAddressBus(p, log)
	addr.SetAsWritable()

	addr.WriteRefreshAddress(0x7f)
	test.ExpectEquality(t, addr.ReadMemoryAddress(), 0x007f)
	test.ExpectEquality(t, log.Count(logger.Error), 0)
}

func TestDataWrite(t *testing.T) {
	p := mastered()
	log := logger.NewLogger(100)
	data := bus.NewDataBus(p, log)

	// nothing is driving the bus
	test.ExpectEquality(t, data.ReadData(), 0xff)
	test.ExpectEquality(t, data.State(), "DATA<i-r>(11111111)")

	err := data.WriteData(0x42)
	test.ExpectSuccess(t, curated.Is(err, bus.NotWritable))
	test.ExpectEquality(t, log.Count(logger.Error), 1)
	test.ExpectEquality(t, data.ReadData(), 0xff)

	data.SetAsWritable()
	test.ExpectSuccess(t, data.WriteData(0x42))
	test.ExpectEquality(t, data.ReadData(), 0x42)
	test.ExpectEquality(t, data.State(), "DATA<o-w>(01000010)")
	test.ExpectEquality(t, log.Count(logger.Error), 1)
}

func TestMixedDirection(t *testing.T) {
	p := mastered()
	log := logger.NewLogger(100)
	addr := bus.NewAddressBus(p, log)
	data := bus.NewDataBus(p, log)

	p.ConfigureAddressDirection(0x00ff)
	p.ConfigureDataDirection(0x0f)
	test.ExpectEquality(t, addr.State()[:9], "ADDR<?-r>")
	test.ExpectEquality(t, data.State()[:9], "DATA<?-r>")
}

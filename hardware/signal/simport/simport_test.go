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

package simport_test

import (
	"testing"

	"github.com/jetsetilly/busmaster/hardware/signal"
	"github.com/jetsetilly/busmaster/hardware/signal/simport"
	"github.com/jetsetilly/busmaster/test"
)

// master configures the port the way the bus controller does after TEST has
// been asserted
func master(p *simport.Port) {
	p.ConfigureDirection(signal.TEST, signal.Output)
	p.Write(signal.TEST, signal.Low)
	p.ConfigureAddressDirection(signal.AddressOutput)
	for _, sig := range []signal.Signal{signal.RAS, signal.CAS, signal.MUX, signal.RD, signal.WR, signal.IN, signal.OUT} {
		p.ConfigureDirection(sig, signal.Output)
		p.Write(sig, sig.Deasserted())
	}
}

func TestMemoryCycles(t *testing.T) {
	p := simport.NewPort()
	master(p)

	// write cycle
	p.WriteAddress(0x4321)
	p.ConfigureDataDirection(signal.DataOutput)
	p.WriteData(0xa5)
	p.Write(signal.RAS, signal.Low)
	p.Write(signal.WR, signal.Low)
	p.Write(signal.MUX, signal.High)
	p.Write(signal.CAS, signal.Low)
	p.Write(signal.CAS, signal.High)
	p.Write(signal.WR, signal.High)
	p.Write(signal.RAS, signal.High)
	p.Write(signal.MUX, signal.Low)
	p.ConfigureDataDirection(signal.DataInput)
	test.ExpectEquality(t, p.Peek(0x4321), 0xa5)

	// read cycle
	test.ExpectEquality(t, p.ReadData(), 0xff)
	p.Write(signal.RAS, signal.Low)
	p.Write(signal.RD, signal.Low)
	p.Write(signal.MUX, signal.High)
	p.Write(signal.CAS, signal.Low)
	test.ExpectEquality(t, p.ReadData(), 0xa5)
	p.Write(signal.CAS, signal.High)
	p.Write(signal.RD, signal.High)
	p.Write(signal.RAS, signal.High)
	p.Write(signal.MUX, signal.Low)

	// neither cycle counts as a refresh
	test.ExpectEquality(t, p.Refreshes(), 0)
	test.ExpectEquality(t, p.Contention(), 0)
	test.ExpectEquality(t, p.Violations(), 0)
}

func TestROMProtection(t *testing.T) {
	p := simport.NewPort()
	test.ExpectSuccess(t, p.LoadROM([]uint8{0xf3, 0xaf, 0xc3}))
	test.ExpectEquality(t, p.Peek(0x0000), 0xf3)
	test.ExpectFailure(t, p.LoadROM(make([]uint8, 0x3001)))

	master(p)
	p.WriteAddress(0x0001)
	p.ConfigureDataDirection(signal.DataOutput)
	p.WriteData(0x00)
	p.Write(signal.RAS, signal.Low)
	p.Write(signal.WR, signal.Low)
	p.Write(signal.CAS, signal.Low)
	p.Write(signal.CAS, signal.High)
	p.Write(signal.WR, signal.High)
	p.Write(signal.RAS, signal.High)
	test.ExpectEquality(t, p.Peek(0x0001), 0xaf)
}

func TestRefresh(t *testing.T) {
	p := simport.NewPort()
	master(p)

	for row := range 200 {
		p.WriteAddress(uint16(row % 128))
		p.Write(signal.RAS, signal.Low)
		p.Write(signal.RAS, signal.High)
	}
	test.ExpectEquality(t, p.Refreshes(), 200)
	test.ExpectEquality(t, p.RowRefreshes(0), 2)
	test.ExpectEquality(t, p.RowRefreshes(71), 2)
	test.ExpectEquality(t, p.RowRefreshes(72), 1)
	test.ExpectEquality(t, p.RowRefreshes(127), 1)
}

func TestIOCycles(t *testing.T) {
	p := simport.NewPort()
	master(p)
	p.PokeIO(0xff, 0x7f)

	p.WriteAddress(0x00ff)
	p.Write(signal.IN, signal.Low)
	test.ExpectEquality(t, p.ReadData(), 0x7f)
	p.Write(signal.IN, signal.High)

	p.ConfigureDataDirection(signal.DataOutput)
	p.WriteData(0x3c)
	p.WriteAddress(0x00ec)
	p.Write(signal.OUT, signal.Low)
	p.Write(signal.OUT, signal.High)
	test.ExpectEquality(t, p.PeekIO(0xec), 0x3c)
}

func TestKeyboard(t *testing.T) {
	p := simport.NewPort()
	master(p)
	p.SetKeyboardRow(0, 0x02)
	p.SetKeyboardRow(1, 0x10)

	// the keyboard is shadowed so 0x3903 is the same as 0x3803
	p.WriteAddress(0x3903)
	p.Write(signal.RAS, signal.Low)
	p.Write(signal.RD, signal.Low)
	p.Write(signal.CAS, signal.Low)
	test.ExpectEquality(t, p.ReadData(), 0x12)
}

func TestContention(t *testing.T) {
	p := simport.NewPort()

	// driving the address bus without TEST asserted
	p.ConfigureAddressDirection(signal.AddressOutput)
	test.ExpectEquality(t, p.Contention(), 1)
	p.ConfigureAddressDirection(signal.AddressInput)

	// driving an input only line
	p.ConfigureDirection(signal.INT_ACK, signal.Output)
	test.ExpectEquality(t, p.Contention(), 2)
	p.ConfigureDirection(signal.INT_ACK, signal.Input)

	// releasing TEST while still driving RAS
	master(p)
	p.Write(signal.TEST, signal.High)
	test.ExpectSuccess(t, p.Contention() > 2)
}

func TestViolation(t *testing.T) {
	p := simport.NewPort()
	p.Write(signal.WAIT, signal.Low)
	test.ExpectEquality(t, p.Violations(), 1)
	test.ExpectEquality(t, p.Read(signal.WAIT), signal.High)
}

func TestLatch(t *testing.T) {
	p := simport.NewPort()

	// a latched level is not on the pin until the line is an output
	p.Latch(signal.MUX, signal.Low)
	test.ExpectEquality(t, p.Read(signal.MUX), signal.High)
	p.ConfigureDirection(signal.MUX, signal.Output)
	test.ExpectEquality(t, p.Read(signal.MUX), signal.Low)
	test.ExpectEquality(t, p.Violations(), 0)

	p.Latch(signal.MUX, signal.High)
	test.ExpectEquality(t, p.Violations(), 1)
	test.ExpectEquality(t, p.Read(signal.MUX), signal.Low)
}

func TestInterruptAcknowledge(t *testing.T) {
	p := simport.NewPort()
	p.SetAcknowledgeAfter(2)

	// nothing is acknowledged until INT is asserted
	test.ExpectEquality(t, p.Read(signal.INT_ACK), signal.High)

	p.ConfigureDirection(signal.INT, signal.Output)
	p.Write(signal.INT, signal.Low)
	test.ExpectEquality(t, p.Read(signal.INT_ACK), signal.High)
	test.ExpectEquality(t, p.Read(signal.INT_ACK), signal.High)
	test.ExpectEquality(t, p.Read(signal.INT_ACK), signal.Low)

	// driving the data bus during the acknowledgement is not contention
	p.ConfigureDataDirection(signal.DataOutput)
	p.WriteData(0xcf)
	p.ConfigureDataDirection(signal.DataInput)
	p.Write(signal.INT, signal.High)
	test.ExpectEquality(t, p.Contention(), 0)

	v, ok := p.Vector()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0xcf)

	p.SetAcknowledgeAfter(simport.NeverAcknowledge)
	p.Write(signal.INT, signal.Low)
	for range 10 {
		test.ExpectEquality(t, p.Read(signal.INT_ACK), signal.High)
	}
}

func TestTrace(t *testing.T) {
	p := simport.NewPort()
	p.ConfigureDirection(signal.WAIT, signal.Output)
	p.SetTracing(true)
	p.Write(signal.WAIT, signal.Low)
	p.Write(signal.WAIT, signal.High)

	tr := p.Trace()
	test.DemandEquality(t, len(tr), 2)
	test.ExpectEquality(t, tr[0].String(), "WAIT=0")
	test.ExpectEquality(t, tr[1].String(), "WAIT=1")
}

func TestSystemReset(t *testing.T) {
	p := simport.NewPort()
	test.ExpectEquality(t, p.Read(signal.SYS_RES), signal.High)
	p.SetSystemReset(true)
	test.ExpectEquality(t, p.Read(signal.SYS_RES), signal.Low)
}

func TestCPUAddress(t *testing.T) {
	p := simport.NewPort()
	p.SetCPUAddress(0x1234)
	test.ExpectEquality(t, p.ReadAddress(), 0x1234)
	master(p)
	p.WriteAddress(0x5678)
	test.ExpectEquality(t, p.ReadAddress(), 0x5678)
}

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

package simport

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/memory/memorymap"
	"github.com/jetsetilly/busmaster/hardware/signal"
)

// Sentinal error patterns.
const (
	ROMTooLarge = "simport: ROM image too large (%d bytes)"
)

// NeverAcknowledge can be given to SetAcknowledgeAfter() to stop the CPU from
// ever acknowledging an interrupt.
const NeverAcknowledge = -1

// number of DRAM rows
const numRows = 128

// the value read from the data bus when nothing is driving it
const floatingBus = 0xff

// Event is a single write to a signal line. Events are recorded when tracing
// is enabled.
type Event struct {
	Signal signal.Signal
	Level  signal.Level
}

func (e Event) String() string {
	return fmt.Sprintf("%s=%c", e.Signal, e.Level.Rune())
}

// Port is the simulated motherboard. The zero value is not usable. Use
// NewPort().
type Port struct {
	crit sync.Mutex

	// the state of the pins on the controller side of the connector
	dir     [signal.NumSignals]signal.Direction
	level   [signal.NumSignals]signal.Level
	addrDir uint16
	addrOut uint16
	dataDir uint8
	dataOut uint8

	// the motherboard
	memory   [0x10000]uint8
	io       [256]uint8
	keyboard [8]uint8

	// the address the CPU leaves on the bus when it is not mastered
	cpuAddress uint16

	// CPU driven input lines
	sysRes signal.Level

	// interrupt acknowledgement
	ackAfter   int
	ackPolls   int
	vector     uint8
	vectorSeen bool

	// refresh accounting
	refreshes  int
	rows       [numRows]int
	rasRow     uint16
	rasWithCAS bool

	contention int
	violations int

	tracing bool
	trace   []Event
}

// NewPort is the preferred method of initialisation for the Port type. Every
// line starts as an input.
func NewPort() *Port {
	p := &Port{
		sysRes: signal.High,
	}
	for i := range p.level {
		p.level[i] = signal.High
	}
	return p
}

// mastered returns true if TEST is being driven low. must be called with the
// critical section held.
func (p *Port) mastered() bool {
	return p.dir[signal.TEST] == signal.Output && p.level[signal.TEST] == signal.Low
}

// asserted returns true if the signal is being driven to its asserted level.
// must be called with the critical section held.
func (p *Port) asserted(sig signal.Signal) bool {
	return p.dir[sig] == signal.Output && p.level[sig] == sig.Asserted()
}

// acknowledging returns true if the CPU is currently acknowledging an interrupt
// and so expects a vector on the data bus. must be called with the critical
// section held.
func (p *Port) acknowledging() bool {
	return p.asserted(signal.INT) && p.ackAfter >= 0 && p.ackPolls > p.ackAfter
}

// the control lines that the CPU drives while it is not suspended
func cpuDriven(sig signal.Signal) bool {
	switch sig {
	case signal.RAS, signal.CAS, signal.MUX, signal.RD, signal.WR, signal.IN, signal.OUT:
		return true
	}
	return false
}

// ConfigureDirection implements the signal.Port interface.
func (p *Port) ConfigureDirection(sig signal.Signal, dir signal.Direction) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if dir == signal.Output {
		if sig.InputOnly() || (cpuDriven(sig) && !p.mastered()) {
			p.contention++
		}
	}

	p.dir[sig] = dir

	if sig == signal.INT && !p.asserted(signal.INT) {
		p.ackPolls = 0
	}
}

// Write implements the signal.Port interface.
func (p *Port) Write(sig signal.Signal, lvl signal.Level) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.dir[sig] != signal.Output {
		p.violations++
		return
	}

	if p.tracing {
		p.trace = append(p.trace, Event{Signal: sig, Level: lvl})
	}

	prev := p.level[sig]
	p.level[sig] = lvl
	falling := prev == signal.High && lvl == signal.Low

	switch sig {
	case signal.RAS:
		// a refresh is a RAS pulse without a CAS strobe. the row is latched
		// on the falling edge and the refresh is counted on the rising edge
		if falling {
			p.rasRow = p.addrOut & (numRows - 1)
			p.rasWithCAS = false
		} else if prev == signal.Low && lvl == signal.High && !p.rasWithCAS {
			p.rows[p.rasRow]++
			p.refreshes++
		}

	case signal.CAS:
		if falling && p.asserted(signal.RAS) {
			p.rasWithCAS = true
			if p.asserted(signal.WR) {
				p.writeMemory(p.address(), p.data())
			}
		}

	case signal.OUT:
		if falling {
			p.io[uint8(p.address())] = p.data()
		}

	case signal.INT:
		if !p.asserted(signal.INT) {
			p.ackPolls = 0
		}

	case signal.TEST:
		// releasing TEST while still driving any bus line means that both
		// parties are driving the bus
		if !p.mastered() {
			for _, s := range signal.Signals {
				if cpuDriven(s) && p.dir[s] == signal.Output {
					p.contention++
				}
			}
			if p.addrDir != signal.AddressInput {
				p.contention++
			}
			if p.dataDir != signal.DataInput {
				p.contention++
			}
		}
	}
}

// Latch implements the signal.Port interface.
func (p *Port) Latch(sig signal.Signal, lvl signal.Level) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.dir[sig] == signal.Output {
		p.violations++
		return
	}

	p.level[sig] = lvl
}

// Read implements the signal.Port interface.
func (p *Port) Read(sig signal.Signal) signal.Level {
	p.crit.Lock()
	defer p.crit.Unlock()

	switch sig {
	case signal.INT_ACK:
		if !p.asserted(signal.INT) || p.ackAfter < 0 {
			return signal.High
		}
		p.ackPolls++
		if p.ackPolls > p.ackAfter {
			return signal.Low
		}
		return signal.High
	case signal.SYS_RES:
		return p.sysRes
	}

	if p.dir[sig] == signal.Output {
		return p.level[sig]
	}

	// lines are pulled up when nobody is driving them
	return signal.High
}

// ReadDirection implements the signal.Port interface.
func (p *Port) ReadDirection(sig signal.Signal) signal.Direction {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.dir[sig]
}

// ConfigureAddressDirection implements the signal.Port interface.
func (p *Port) ConfigureAddressDirection(mask uint16) {
	p.crit.Lock()
	defer p.crit.Unlock()
	if mask != signal.AddressInput && !p.mastered() {
		p.contention++
	}
	p.addrDir = mask
}

// WriteAddress implements the signal.Port interface.
func (p *Port) WriteAddress(v uint16) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.addrOut = v
}

// ReadAddress implements the signal.Port interface.
func (p *Port) ReadAddress() uint16 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.address()
}

// ReadAddressDirection implements the signal.Port interface.
func (p *Port) ReadAddressDirection() uint16 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.addrDir
}

// ConfigureDataDirection implements the signal.Port interface.
func (p *Port) ConfigureDataDirection(mask uint8) {
	p.crit.Lock()
	defer p.crit.Unlock()
	if mask != signal.DataInput && !p.mastered() && !p.acknowledging() {
		p.contention++
	}
	p.dataDir = mask
}

// WriteData implements the signal.Port interface.
func (p *Port) WriteData(v uint8) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.dataOut = v
	if p.dataDir == signal.DataOutput && p.acknowledging() {
		p.vector = v
		p.vectorSeen = true
	}
}

// ReadData implements the signal.Port interface.
func (p *Port) ReadData() uint8 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.data()
}

// ReadDataDirection implements the signal.Port interface.
func (p *Port) ReadDataDirection() uint8 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.dataDir
}

// address returns the value on the address bus. bits not being driven by the
// controller are driven by the CPU. must be called with the critical section
// held.
func (p *Port) address() uint16 {
	return (p.addrOut & p.addrDir) | (p.cpuAddress &^ p.addrDir)
}

// data returns the value on the data bus. bits not being driven by the
// controller are driven by whatever the motherboard is doing. must be called
// with the critical section held.
func (p *Port) data() uint8 {
	return (p.dataOut & p.dataDir) | (p.motherboardData() &^ p.dataDir)
}

// must be called with the critical section held.
func (p *Port) motherboardData() uint8 {
	if p.asserted(signal.RD) && p.asserted(signal.RAS) && p.asserted(signal.CAS) {
		return p.readMemory(p.address())
	}
	if p.asserted(signal.IN) {
		return p.io[uint8(p.address())]
	}
	return floatingBus
}

// must be called with the critical section held.
func (p *Port) readMemory(address uint16) uint8 {
	switch memorymap.MapAddress(address) {
	case memorymap.Unused:
		return floatingBus
	case memorymap.Keyboard:
		var v uint8
		sel := uint8(address & memorymap.MaskKeyboard)
		for row := range p.keyboard {
			if sel&(1<<row) != 0 {
				v |= p.keyboard[row]
			}
		}
		return v
	}
	return p.memory[address]
}

// must be called with the critical section held.
func (p *Port) writeMemory(address uint16, data uint8) {
	switch memorymap.MapAddress(address) {
	case memorymap.ROM, memorymap.Unused, memorymap.Keyboard:
		return
	}
	p.memory[address] = data
}

// LoadROM copies the ROM image into the ROM area of memory.
func (p *Port) LoadROM(data []uint8) error {
	if len(data) > int(memorymap.MemtopROM)+1 {
		return curated.Errorf(ROMTooLarge, len(data))
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	copy(p.memory[memorymap.OriginROM:], data)
	return nil
}

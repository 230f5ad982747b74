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

import "github.com/jetsetilly/busmaster/hardware/signal"

// Peek returns the value in memory without a bus cycle.
func (p *Port) Peek(address uint16) uint8 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.memory[address]
}

// Poke sets the value in memory without a bus cycle. Unlike a bus cycle, Poke
// can write to the ROM area.
func (p *Port) Poke(address uint16, data uint8) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.memory[address] = data
}

// PeekIO returns the value latched by the IO port.
func (p *Port) PeekIO(address uint8) uint8 {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.io[address]
}

// PokeIO sets the value the IO port will return on an IN cycle.
func (p *Port) PokeIO(address uint8, data uint8) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.io[address] = data
}

// SetKeyboardRow sets the columns that are pressed in a row of the keyboard
// matrix.
func (p *Port) SetKeyboardRow(row int, columns uint8) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.keyboard[row&0x07] = columns
}

// SetCPUAddress sets the address the CPU leaves on the address bus.
func (p *Port) SetCPUAddress(address uint16) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.cpuAddress = address
}

// SetSystemReset sets the level of the SYS_RES line.
func (p *Port) SetSystemReset(asserted bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	if asserted {
		p.sysRes = signal.Low
	} else {
		p.sysRes = signal.High
	}
}

// SetAcknowledgeAfter sets the number of polls of INT_ACK that happen before
// the CPU acknowledges an interrupt. A value of zero acknowledges on the first
// poll. NeverAcknowledge means the interrupt is never acknowledged.
func (p *Port) SetAcknowledgeAfter(polls int) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.ackAfter = polls
}

// Vector returns the most recent interrupt vector put on the data bus during
// an acknowledgement. The boolean is false if there has never been one.
func (p *Port) Vector() (uint8, bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.vector, p.vectorSeen
}

// Refreshes returns the total number of refresh strobes.
func (p *Port) Refreshes() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.refreshes
}

// RowRefreshes returns the number of refresh strobes for a single row.
func (p *Port) RowRefreshes(row int) int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.rows[row%numRows]
}

// Contention returns the number of times a line has been driven by both the
// controller and the CPU.
func (p *Port) Contention() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.contention
}

// Violations returns the number of writes to lines that were not configured as
// outputs.
func (p *Port) Violations() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.violations
}

// SetTracing turns the recording of signal writes on or off. Turning tracing
// on clears any previous trace.
func (p *Port) SetTracing(tracing bool) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.tracing = tracing
	if tracing {
		p.trace = p.trace[:0]
	}
}

// Trace returns a copy of the recorded signal writes.
func (p *Port) Trace() []Event {
	p.crit.Lock()
	defer p.crit.Unlock()
	t := make([]Event, len(p.trace))
	copy(t, p.trace)
	return t
}

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
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/bus"
	"github.com/jetsetilly/busmaster/hardware/delay"
	"github.com/jetsetilly/busmaster/hardware/refresh"
	"github.com/jetsetilly/busmaster/hardware/signal"
)

// error patterns returned by the controller
const (
	NotMutable         = "busmaster: bus not mastered: %s"
	NoRefreshSource    = "busmaster: no refresh source"
	InterruptTimeout   = "busmaster: interrupt 0x%02x not acknowledged after %d polls"
	InvalidLength      = "busmaster: %s: invalid length (%d)"
	OutOfRange         = "busmaster: %s: 0x%04x + %d is outside of the address space"
	ControllerIsClosed = "busmaster: controller is closed"
	InvalidTimeout     = "busmaster: interrupt timeout cannot be negative (%d)"
)

const tag = "busmaster"

// the signals driven by the controller while the bus is mastered. the strobes
// are released before the DRAM lines
var (
	strobeSignals = []signal.Signal{signal.RD, signal.WR, signal.IN, signal.OUT}
	dramSignals   = []signal.Signal{signal.RAS, signal.CAS, signal.MUX}
)

// Controller sequences the expansion bus signals.
type Controller struct {
	port  signal.Port
	delay delay.CycleDelay
	log   bus.Log
	src   refresh.Source

	Prefs *Preferences

	addr *bus.AddressBus
	data *bus.DataBus

	// held for the duration of every foreground bus cycle and every refresh
	// tick. a tick waiting on the mask runs after the cycle has completed
	mask sync.Mutex

	mutable        atomic.Bool
	refreshEnabled atomic.Bool
	row            atomic.Uint32
	strobes        atomic.Uint64
	wait           atomic.Bool
	closed         atomic.Bool
}

// NewController is the preferred method of initialisation for the Controller
// type. All signals and both buses are configured as inputs.
//
// The refresh source may be nil, in which case memory refresh can not be
// activated. If prefs is nil then a new instance of Preferences is created.
func NewController(port signal.Port, dly delay.CycleDelay, src refresh.Source, log bus.Log, prefs *Preferences) (*Controller, error) {
	if prefs == nil {
		var err error
		prefs, err = NewPreferences()
		if err != nil {
			return nil, curated.Errorf("busmaster: %v", err)
		}
	}

	bc := &Controller{
		port:  port,
		delay: dly,
		log:   log,
		src:   src,
		Prefs: prefs,
	}

	for _, sig := range signal.Signals {
		bc.port.ConfigureDirection(sig, signal.Input)
	}
	bc.addr = bus.NewAddressBus(port, log)
	bc.data = bus.NewDataBus(port, log)

	bc.log.Infof(tag, "controller created (settle %d cycles)", bc.Prefs.SettleCycles.Value())

	return bc, nil
}

// Close releases the bus if it is mastered and returns all signals to inputs.
// The Controller can not be used after Close() has been called.
func (bc *Controller) Close() error {
	if bc.closed.Load() {
		return nil
	}

	if bc.mutable.Load() {
		bc.deactivateTestSignal()
	}
	bc.closed.Store(true)

	bc.mask.Lock()
	defer bc.mask.Unlock()

	if bc.wait.Load() {
		bc.releaseWait()
	}
	for _, sig := range signal.Signals {
		bc.port.ConfigureDirection(sig, signal.Input)
	}

	bc.log.Infof(tag, "controller closed")
	return nil
}

// maskRefresh holds the refresh mask. The returned function releases it.
//
// Usage:
//
//	defer bc.maskRefresh()()
func (bc *Controller) maskRefresh() func() {
	bc.mask.Lock()
	return bc.mask.Unlock
}

// checkMutable returns an error if the bus is not mastered or if the
// controller has been closed. The error is also logged.
func (bc *Controller) checkMutable(op string) error {
	if bc.closed.Load() {
		bc.log.Errorf(tag, "%s: controller is closed", op)
		return curated.Errorf(ControllerIsClosed)
	}
	if !bc.mutable.Load() {
		bc.log.Errorf(tag, "%s: bus not mastered", op)
		return curated.Errorf(NotMutable, op)
	}
	return nil
}

func (bc *Controller) assert(sig signal.Signal) {
	bc.port.Write(sig, sig.Asserted())
}

func (bc *Controller) deassert(sig signal.Signal) {
	bc.port.Write(sig, sig.Deasserted())
}

// drive makes the signal an output at its deasserted level. the level is
// latched before the direction changes so the line is never driven asserted.
func (bc *Controller) drive(sig signal.Signal) {
	bc.port.Latch(sig, sig.Deasserted())
	bc.port.ConfigureDirection(sig, signal.Output)
}

// release deasserts the signal and returns it to an input.
func (bc *Controller) release(sig signal.Signal) {
	bc.deassert(sig)
	bc.port.ConfigureDirection(sig, signal.Input)
}

// IsMutable returns true if the bus has been mastered.
func (bc *Controller) IsMutable() bool {
	return bc.mutable.Load()
}

// IsRefreshEnabled returns true if memory refresh is armed.
func (bc *Controller) IsRefreshEnabled() bool {
	return bc.refreshEnabled.Load()
}

// IsWaitActive returns true if the WAIT signal is being asserted by the
// controller.
func (bc *Controller) IsWaitActive() bool {
	return bc.wait.Load()
}

// IsSystemReset returns true if the SYS_RES line is asserted.
func (bc *Controller) IsSystemReset() bool {
	defer bc.maskRefresh()()
	return bc.port.Read(signal.SYS_RES) == signal.SYS_RES.Asserted()
}

// IsInterruptAcknowledged returns true if the INT_ACK line is asserted.
func (bc *Controller) IsInterruptAcknowledged() bool {
	defer bc.maskRefresh()()
	return bc.port.Read(signal.INT_ACK) == signal.INT_ACK.Asserted()
}

// RefreshRow returns the next DRAM row to be refreshed.
func (bc *Controller) RefreshRow() uint8 {
	return uint8(bc.row.Load())
}

// AddressBus returns the address bus. Direction of the bus must not be
// changed by the caller.
func (bc *Controller) AddressBus() *bus.AddressBus {
	return bc.addr
}

// DataBus returns the data bus. Direction of the bus must not be changed by
// the caller.
func (bc *Controller) DataBus() *bus.DataBus {
	return bc.data
}

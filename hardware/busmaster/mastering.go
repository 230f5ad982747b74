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
	"github.com/jetsetilly/busmaster/hardware/signal"
)

// ActivateTestSignal masters the bus. TEST is asserted, suspending the CPU.
// After the settle delay the address bus and the cycle strobes are driven by
// the controller, the strobes in their deasserted state. The data bus remains
// readable.
//
// If the AutoRefresh preference is set, memory refresh is activated once the
// bus has been mastered.
//
// Calling the function when the bus is already mastered does nothing.
func (bc *Controller) ActivateTestSignal() error {
	if bc.closed.Load() {
		return bc.checkMutable("activate TEST")
	}

	if !bc.activateTestSignal() {
		bc.log.Warnf(tag, "activate TEST: bus already mastered")
		return nil
	}

	if bc.Prefs.AutoRefresh.Get().(bool) && bc.src != nil {
		return bc.ActivateMemoryRefresh()
	}

	return nil
}

// returns false if the bus was already mastered.
func (bc *Controller) activateTestSignal() bool {
	defer bc.maskRefresh()()

	if bc.mutable.Load() {
		return false
	}

	bc.drive(signal.TEST)
	bc.assert(signal.TEST)
	bc.delay.Cycles(bc.Prefs.SettleCycles.Value())

	bc.addr.SetAsWritable()
	bc.data.SetAsReadable()

	for _, sig := range dramSignals {
		bc.drive(sig)
	}
	for _, sig := range strobeSignals {
		bc.drive(sig)
	}

	bc.mutable.Store(true)
	bc.log.Infof(tag, "bus mastered")

	return true
}

// DeactivateTestSignal releases the bus to the CPU. Memory refresh is
// deactivated first. The cycle strobes and the address bus are returned to
// inputs before TEST is deasserted, and the function returns after the settle
// delay.
//
// Calling the function when the bus is not mastered does nothing.
func (bc *Controller) DeactivateTestSignal() error {
	if bc.closed.Load() {
		return bc.checkMutable("deactivate TEST")
	}

	if !bc.deactivateTestSignal() {
		bc.log.Warnf(tag, "deactivate TEST: bus not mastered")
	}

	return nil
}

// returns false if the bus was not mastered.
func (bc *Controller) deactivateTestSignal() bool {
	// the refresh source must be stopped before the mask is acquired. stopping
	// the source waits for any tick in progress, and a tick waits on the mask
	bc.stopRefresh()

	defer bc.maskRefresh()()

	if !bc.mutable.Load() {
		return false
	}

	bc.mutable.Store(false)

	for _, sig := range strobeSignals {
		bc.release(sig)
	}
	for _, sig := range dramSignals {
		bc.release(sig)
	}

	bc.data.SetAsReadable()
	bc.addr.SetAsReadable()

	bc.release(signal.TEST)
	bc.delay.Cycles(bc.Prefs.SettleCycles.Value())

	bc.log.Infof(tag, "bus released")

	return true
}

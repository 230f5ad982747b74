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
	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/signal"
)

// the interrupt vector is held on the data bus for this many cycles
const vectorHold = 2

// TriggerInterrupt asserts INT and polls INT_ACK up to timeout times, with a
// delay of one cycle between each poll. A timeout of zero does not time out
// immediately. It means the InterruptTimeout value in the Preferences. A
// negative timeout is an error with the InvalidTimeout pattern and nothing is
// driven.
//
// When the interrupt is acknowledged the code is driven onto the data bus
// for a short while. INT is always deasserted before the function returns.
//
// Returns an error with the InterruptTimeout pattern if the interrupt was not
// acknowledged. This is the only error that is worth retrying.
//
// Note that the CPU will not acknowledge an interrupt while the bus is
// mastered.
func (bc *Controller) TriggerInterrupt(code uint8, timeout int) error {
	if bc.closed.Load() {
		return bc.checkMutable("trigger interrupt")
	}

	if timeout < 0 {
		return curated.Errorf(InvalidTimeout, timeout)
	}
	if timeout == 0 {
		timeout = bc.Prefs.InterruptTimeout.Value()
	}

	defer bc.maskRefresh()()

	bc.drive(signal.INT)
	bc.assert(signal.INT)
	defer bc.release(signal.INT)

	for polls := 1; polls <= timeout; polls++ {
		if bc.port.Read(signal.INT_ACK) == signal.INT_ACK.Asserted() {
			bc.data.SetAsWritable()
			err := bc.data.WriteData(code)
			bc.delay.Cycles(vectorHold)
			bc.data.SetAsReadable()
			if err != nil {
				return err
			}
			bc.log.Infof(tag, "interrupt 0x%02x acknowledged after %d polls", code, polls)
			return nil
		}
		bc.delay.Cycles(1)
	}

	bc.log.Errorf(tag, "interrupt 0x%02x not acknowledged after %d polls", code, timeout)
	return curated.Errorf(InterruptTimeout, code, timeout)
}

// ActivateWaitSignal asserts WAIT. Calling the function when WAIT is already
// asserted does nothing.
func (bc *Controller) ActivateWaitSignal() error {
	if bc.closed.Load() {
		return bc.checkMutable("activate WAIT")
	}

	defer bc.maskRefresh()()

	if bc.wait.Load() {
		bc.log.Warnf(tag, "activate WAIT: already active")
		return nil
	}

	bc.drive(signal.WAIT)
	bc.assert(signal.WAIT)
	bc.wait.Store(true)

	return nil
}

// DeactivateWaitSignal releases WAIT. Calling the function when WAIT is not
// asserted does nothing.
func (bc *Controller) DeactivateWaitSignal() error {
	if bc.closed.Load() {
		return bc.checkMutable("deactivate WAIT")
	}

	defer bc.maskRefresh()()

	if !bc.wait.Load() {
		bc.log.Warnf(tag, "deactivate WAIT: not active")
		return nil
	}

	bc.releaseWait()

	return nil
}

// must be called with the mask held.
func (bc *Controller) releaseWait() {
	bc.release(signal.WAIT)
	bc.wait.Store(false)
}

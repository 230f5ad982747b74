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
	"github.com/jetsetilly/busmaster/hardware/refresh"
	"github.com/jetsetilly/busmaster/hardware/signal"
)

// RAS is held for this many cycles during a refresh strobe
const refreshHold = 1

// ActivateMemoryRefresh arms the refresh source. The bus must be mastered.
// Calling the function when refresh is already active does nothing.
func (bc *Controller) ActivateMemoryRefresh() error {
	if err := bc.checkMutable("activate refresh"); err != nil {
		return err
	}

	if bc.src == nil {
		bc.log.Errorf(tag, "activate refresh: no refresh source")
		return curated.Errorf(NoRefreshSource)
	}

	if bc.refreshEnabled.Swap(true) {
		bc.log.Warnf(tag, "activate refresh: refresh already active")
		return nil
	}

	bc.src.Start(bc.Prefs.Interval(), bc.refreshTick)
	bc.log.Infof(tag, "refresh active (every %v)", bc.Prefs.Interval())

	return nil
}

// DeactivateMemoryRefresh disarms the refresh source. It must not be called
// from the refresh tick. Calling the function when refresh is not active
// does nothing.
func (bc *Controller) DeactivateMemoryRefresh() error {
	if !bc.stopRefresh() {
		bc.log.Warnf(tag, "deactivate refresh: refresh not active")
		return nil
	}
	bc.log.Infof(tag, "refresh not active")
	return nil
}

// stopRefresh must not be called with the mask held. returns false if
// refresh was not active.
func (bc *Controller) stopRefresh() bool {
	if !bc.refreshEnabled.Load() {
		return false
	}
	bc.src.Stop()
	bc.refreshEnabled.Store(false)
	return true
}

func (bc *Controller) refreshTick() {
	// any error has been logged
	_ = bc.RefreshNextRow()
}

// RefreshNextRow strobes the next DRAM row and advances the row counter. It
// is called on every tick of the refresh source but it can also be called
// directly while the bus is mastered.
func (bc *Controller) RefreshNextRow() error {
	defer bc.maskRefresh()()

	if err := bc.checkMutable("refresh"); err != nil {
		return err
	}

	row := bc.row.Load()
	bc.addr.WriteRefreshAddress(uint8(row))
	bc.assert(signal.RAS)
	bc.delay.Cycles(refreshHold)
	bc.deassert(signal.RAS)
	bc.row.Store((row + 1) % refresh.Rows)
	bc.strobes.Add(1)

	return nil
}

// Refreshes returns the number of refresh strobes since the controller was
// created.
func (bc *Controller) Refreshes() uint64 {
	return bc.strobes.Load()
}

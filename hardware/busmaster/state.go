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
	"strings"

	"github.com/jetsetilly/busmaster/hardware/signal"
)

// State returns a single line describing the state of the controller. The
// fields are always in the same order:
//
//	BUS<mutability-refresh>(row) followed by SIGNAL<direction-level> for every
//	signal, in the order of signal.Signals, followed by the address bus state
//	and the data bus state.
//
// Mutability is M (mastered) or I. Refresh is R (active) or -. Row is a three
// digit decimal number.
//
// For example:
//
//	BUS<M-R>(072) RAS<o-1> CAS<o-1> ... ADDR<o-w>(0011110000000000) DATA<i-r>(11111111)
func (bc *Controller) State() string {
	defer bc.maskRefresh()()

	s := strings.Builder{}

	mut := 'I'
	if bc.mutable.Load() {
		mut = 'M'
	}
	ref := '-'
	if bc.refreshEnabled.Load() {
		ref = 'R'
	}
	s.WriteString(fmt.Sprintf("BUS<%c-%c>(%03d)", mut, ref, bc.row.Load()))

	for _, sig := range signal.Signals {
		s.WriteString(fmt.Sprintf(" %s<%c-%c>", sig,
			bc.port.ReadDirection(sig).Rune(),
			bc.port.Read(sig).Rune()))
	}

	s.WriteString(" ")
	s.WriteString(bc.addr.State())
	s.WriteString(" ")
	s.WriteString(bc.data.State())

	return s.String()
}

func (bc *Controller) String() string {
	return bc.State()
}

// SignalState is the direction and level of a single signal.
type SignalState struct {
	Signal    signal.Signal
	Direction signal.Direction
	Level     signal.Level
}

// Snapshot is a copy of the controller state at a single moment.
type Snapshot struct {
	Mutable   bool
	Refresh   bool
	Wait      bool
	Row       uint8
	Refreshes uint64

	Signals []SignalState

	Address         uint16
	AddressWritable bool
	Data            uint8
	DataWritable    bool
}

// Snapshot returns the current state of the controller.
func (bc *Controller) Snapshot() Snapshot {
	defer bc.maskRefresh()()

	s := Snapshot{
		Mutable:         bc.mutable.Load(),
		Refresh:         bc.refreshEnabled.Load(),
		Wait:            bc.wait.Load(),
		Row:             uint8(bc.row.Load()),
		Refreshes:       bc.strobes.Load(),
		Signals:         make([]SignalState, 0, len(signal.Signals)),
		Address:         bc.addr.ReadMemoryAddress(),
		AddressWritable: bc.addr.IsWritable(),
		Data:            bc.data.ReadData(),
		DataWritable:    bc.data.IsWritable(),
	}

	for _, sig := range signal.Signals {
		s.Signals = append(s.Signals, SignalState{
			Signal:    sig,
			Direction: bc.port.ReadDirection(sig),
			Level:     bc.port.Read(sig),
		})
	}

	return s
}

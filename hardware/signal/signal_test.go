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

package signal_test

import (
	"testing"

	"github.com/jetsetilly/busmaster/hardware/signal"
	"github.com/jetsetilly/busmaster/test"
)

func TestSignalLevels(t *testing.T) {
	for _, sig := range signal.Signals {
		if sig == signal.MUX {
			test.ExpectFailure(t, sig.ActiveLow(), sig)
			test.ExpectEquality(t, sig.Asserted(), signal.High, sig)
			test.ExpectEquality(t, sig.Deasserted(), signal.Low, sig)
		} else {
			test.ExpectSuccess(t, sig.ActiveLow(), sig)
			test.ExpectEquality(t, sig.Asserted(), signal.Low, sig)
			test.ExpectEquality(t, sig.Deasserted(), signal.High, sig)
		}
	}
}

func TestSignalNames(t *testing.T) {
	test.DemandEquality(t, len(signal.Signals), int(signal.NumSignals))
	test.ExpectEquality(t, signal.SYS_RES.String(), "SYS_RES")
	test.ExpectEquality(t, signal.INT_ACK.String(), "INT_ACK")
	test.ExpectEquality(t, signal.NumSignals.String(), "signal(12)")

	test.ExpectSuccess(t, signal.SYS_RES.InputOnly())
	test.ExpectSuccess(t, signal.INT_ACK.InputOnly())
	test.ExpectFailure(t, signal.TEST.InputOnly())
}

func TestRunes(t *testing.T) {
	test.ExpectEquality(t, signal.Output.Rune(), 'o')
	test.ExpectEquality(t, signal.Input.Rune(), 'i')
	test.ExpectEquality(t, signal.High.Rune(), '1')
	test.ExpectEquality(t, signal.Low.Rune(), '0')
}

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

package exercise_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/exercise"
	"github.com/jetsetilly/busmaster/hardware/busmaster"
	"github.com/jetsetilly/busmaster/hardware/delay"
	"github.com/jetsetilly/busmaster/hardware/refresh"
	"github.com/jetsetilly/busmaster/hardware/signal/simport"
	"github.com/jetsetilly/busmaster/logger"
	"github.com/jetsetilly/busmaster/test"
)

func newController(t *testing.T) (*simport.Port, *busmaster.Controller) {
	t.Helper()

	port := simport.NewPort()
	prefs, err := busmaster.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.AutoRefresh.Set(false))

	bc, err := busmaster.NewController(port, &delay.Counter{}, &refresh.Manual{}, logger.NewLogger(100), prefs)
	test.DemandSuccess(t, err)

	return port, bc
}

func TestCheck(t *testing.T) {
	port, bc := newController(t)

	for i := range 0x100 {
		port.Poke(0x4000+uint16(i), 0xaa)
	}

	tw := &test.Writer{}
	mismatches, err := exercise.Check(tw, bc, 0x4000, 0x40ff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(mismatches), 0)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "no mismatches\n"))

	// bus has been released and memory restored
	test.ExpectFailure(t, bc.IsMutable())
	for i := range 0x100 {
		test.ExpectEquality(t, port.Peek(0x4000+uint16(i)), 0xaa)
	}

	test.ExpectEquality(t, port.Contention(), 0)
	test.ExpectEquality(t, port.Violations(), 0)
}

func TestCheckReversedRange(t *testing.T) {
	_, bc := newController(t)

	mismatches, err := exercise.Check(&test.Writer{}, bc, 0x80ff, 0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(mismatches), 0)
}

func TestCheckNotRAM(t *testing.T) {
	_, bc := newController(t)

	_, err := exercise.Check(&test.Writer{}, bc, 0x3c00, 0x43ff)
	test.ExpectSuccess(t, curated.Is(err, exercise.NotRAM))
	test.ExpectFailure(t, bc.IsMutable())
}

func TestCheckAlreadyMastered(t *testing.T) {
	_, bc := newController(t)
	test.DemandSuccess(t, bc.ActivateTestSignal())

	// a redundant activation is not an error. the bus is released at the end
	// of the check
	_, err := exercise.Check(&test.Writer{}, bc, 0x4000, 0x400f)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, bc.IsMutable())
}

func TestBulk(t *testing.T) {
	port, bc := newController(t)
	port.Poke(0x5000, 0x11)
	port.Poke(0x51ff, 0x22)

	tw := &test.Writer{}
	test.ExpectSuccess(t, exercise.Bulk(tw, bc, 0x5000))
	test.ExpectEquality(t, tw.String(), "fill and copy from 0x5000 to 0x5100 ok\n")

	test.ExpectFailure(t, bc.IsMutable())
	test.ExpectEquality(t, port.Peek(0x5000), 0x11)
	test.ExpectEquality(t, port.Peek(0x51ff), 0x22)

	err := exercise.Bulk(tw, bc, 0xff80)
	test.ExpectSuccess(t, curated.Is(err, exercise.NotRAM))
}

func TestInterrupt(t *testing.T) {
	port, bc := newController(t)
	test.DemandSuccess(t, bc.ActivateTestSignal())

	tw := &test.Writer{}
	test.ExpectSuccess(t, exercise.Interrupt(tw, bc, 0x38))
	test.ExpectEquality(t, tw.String(), "interrupt 0x38 acknowledged\n")
	test.ExpectFailure(t, bc.IsMutable())

	v, ok := port.Vector()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x38)

	port.SetAcknowledgeAfter(simport.NeverAcknowledge)
	err := exercise.Interrupt(tw, bc, 0x38)
	test.ExpectSuccess(t, curated.Is(err, busmaster.InterruptTimeout))
}

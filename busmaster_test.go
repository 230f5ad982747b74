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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/busmaster/logger"
	"github.com/jetsetilly/busmaster/prefs"
	"github.com/jetsetilly/busmaster/test"
)

func TestVersionMode(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch(tw, []string{"version"}), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Busmaster "))
}

func TestMapMode(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch(tw, []string{"map"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "keyboard"))
}

func TestHelp(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch(tw, []string{"-help"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "MONITOR, PANEL, EXERCISE, MAP, VERSION"))

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"exercise", "-help"}), exitOK)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "-memtop"))
}

func TestModeErrors(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch(tw, []string{"exercise", "-frob"}), exitModeError)

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"exercise", "extra"}), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "* error in EXERCISE mode: too many arguments"))

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"exercise", "-origin", "0x3c00"}), exitModeError)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "not entirely RAM"))
}

func TestExerciseMode(t *testing.T) {
	tw := &test.Writer{}
	code := launch(tw, []string{"exercise",
		"-prefs", "busmaster.settle::0",
		"-origin", "0x4000", "-memtop", "0x40ff",
	})
	test.ExpectEquality(t, code, exitOK)

	out := tw.String()
	test.ExpectSuccess(t, strings.Contains(out, "no mismatches"))
	test.ExpectSuccess(t, strings.Contains(out, "fill and copy from 0x4000 to 0x4100 ok"))
	test.ExpectSuccess(t, strings.Contains(out, "interrupt 0xff acknowledged"))
}

func TestNewPreferences(t *testing.T) {
	log := logger.NewLogger(10)

	p, err := newPreferences("busmaster.settle::5; frob::1", log)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SettleCycles.Value(), 5)
	test.ExpectEquality(t, log.Count(logger.Warn), 1)
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	p, err = newPreferences("", log)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, p.SettleCycles.Value(), 5)
}

func TestSessionFailure(t *testing.T) {
	enabled := true
	disabled := false
	cl := "busmaster.settle::0"
	rom := "/nonexistent/model1.rom"

	opts := options{
		log:       &disabled,
		prefs:     &cl,
		rom:       &rom,
		statsview: &enabled,
	}

	tw := &test.Writer{}
	s, err := newSession(tw, opts)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, s == nil)

	// the stats server is not started for a session that could not be created
	test.ExpectFailure(t, strings.Contains(tw.String(), "stats server"))
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

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
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/busmaster/exercise"
	"github.com/jetsetilly/busmaster/hardware/busmaster"
	"github.com/jetsetilly/busmaster/hardware/delay"
	"github.com/jetsetilly/busmaster/hardware/memory/memorymap"
	"github.com/jetsetilly/busmaster/hardware/refresh"
	"github.com/jetsetilly/busmaster/hardware/signal/simport"
	"github.com/jetsetilly/busmaster/logger"
	"github.com/jetsetilly/busmaster/modalflag"
	"github.com/jetsetilly/busmaster/monitor"
	"github.com/jetsetilly/busmaster/monitor/terminal/easyterm"
	"github.com/jetsetilly/busmaster/monitor/terminal/plainterm"
	"github.com/jetsetilly/busmaster/panel"
	"github.com/jetsetilly/busmaster/prefs"
	"github.com/jetsetilly/busmaster/statsview"
	"github.com/jetsetilly/busmaster/version"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// launch is separate from main() so that the mode selection can be tested.
// returns the value to be used with os.Exit()
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "PANEL", "EXERCISE", "MAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "MONITOR":
		err = runMonitor(output, md)

	case "PANEL":
		err = runPanel(output, md)

	case "EXERCISE":
		err = runExercise(output, md)

	case "MAP":
		fmt.Fprint(output, memorymap.Summary())

	case "VERSION":
		v, rev := version.Version()
		if rev == "" {
			fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
		} else {
			fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, rev)
		}
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// options common to every mode that works with the bus
type options struct {
	log       *bool
	prefs     *string
	rom       *string
	statsview *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		log:       md.AddBool("log", false, "echo log to stderr"),
		prefs:     md.AddString("prefs", "", "preferences for this session. eg. \"busmaster.settle::1000; busmaster.autorefresh::false\""),
		rom:       md.AddString("rom", "", "ROM image to load into the simulated machine"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// session is everything required to work with the bus for the duration of a
// mode
type session struct {
	bc   *busmaster.Controller
	log  *logger.Logger
	stop []func()
}

func (s *session) end() {
	s.bc.Close()
	for i := len(s.stop) - 1; i >= 0; i-- {
		s.stop[i]()
	}
}

func newSession(output io.Writer, opts options) (*session, error) {
	s := &session{
		log: logger.Central(),
	}

	if *opts.log {
		s.log.SetEcho(os.Stderr)
	} else {
		s.log.SetEcho(nil)
	}

	bmprefs, err := newPreferences(*opts.prefs, s.log)
	if err != nil {
		return nil, err
	}

	port := simport.NewPort()
	if *opts.rom != "" {
		data, err := os.ReadFile(*opts.rom)
		if err != nil {
			return nil, err
		}
		err = port.LoadROM(data)
		if err != nil {
			return nil, err
		}
	}

	dly := delay.NewBusyWait(bmprefs.ClockMHz.Value())

	s.bc, err = busmaster.NewController(port, dly, &refresh.Ticker{}, s.log, bmprefs)
	if err != nil {
		return nil, err
	}

	// nothing can fail after this point so the stats server is never left
	// running without a session to stop it
	if *opts.statsview {
		s.stop = append(s.stop, statsview.Launch(output, ""))
	}

	return s, nil
}

// newPreferences creates the busmaster preferences with any values given on
// the command line. the command line values are consumed by the creation of
// the preferences group and anything left over is not a recognised key
func newPreferences(commandLine string, log *logger.Logger) (*busmaster.Preferences, error) {
	if commandLine == "" {
		return busmaster.NewPreferences()
	}

	prefs.PushCommandLineStack(commandLine)
	bmprefs, err := busmaster.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" && err == nil {
		log.Warnf("busmaster", "unused preferences: %s", unused)
	}

	return bmprefs, err
}

func runMonitor(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(output, opts)
	if err != nil {
		return err
	}
	defer s.end()

	term := plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	mon := monitor.NewMonitor(s.bc, term, s.log, &easyterm.KeyWatch{})
	return mon.Run()
}

func runPanel(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// the panel owns the terminal so log echo is never wanted
	*opts.log = false

	s, err := newSession(output, opts)
	if err != nil {
		return err
	}
	defer s.end()

	return panel.NewPanel(s.bc, s.log).Run()
}

func runExercise(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	origin := md.AddString("origin", fmt.Sprintf("0x%04x", memorymap.OriginSystem), "first address to check")
	memtop := md.AddString("memtop", fmt.Sprintf("0x%04x", memorymap.MemtopLower), "last address to check")
	md.AdditionalHelp("Checks RAM with a series of test patterns. Addresses can be given in hex\n(0x or $ prefix) or decimal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	o, err := monitor.ParseAddress(*origin)
	if err != nil {
		return err
	}
	t, err := monitor.ParseAddress(*memtop)
	if err != nil {
		return err
	}

	s, err := newSession(output, opts)
	if err != nil {
		return err
	}
	defer s.end()

	_, err = exercise.Check(output, s.bc, o, t)
	if err != nil {
		return err
	}

	err = exercise.Bulk(output, s.bc, o)
	if err != nil {
		return err
	}

	// RST 38h. the instruction the Model I hardware itself puts on the bus
	err = exercise.Interrupt(output, s.bc, 0xff)
	if err != nil {
		return err
	}

	if !*opts.log {
		s.log.Write(output)
	}

	return nil
}

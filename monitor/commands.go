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

package monitor

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/memory/memorymap"
	"github.com/jetsetilly/busmaster/monitor/terminal"
	"github.com/jetsetilly/busmaster/version"
)

// error patterns for command processing
const (
	UnknownCommand = "monitor: unknown command (%s)"
	WrongArguments = "monitor: wrong number of arguments for %s (usage: %s)"
)

// the number of bytes shown by DUMP when no length is given
const defaultDumpLength = 128

type command struct {
	name    string
	args    string
	help    string
	minArgs int

	// a negative value means no maximum
	maxArgs int

	fn func(m *Monitor, args []string) error
}

func (cmd command) usage() string {
	if cmd.args == "" {
		return cmd.name
	}
	return fmt.Sprintf("%s %s", cmd.name, cmd.args)
}

// initialised in init() because the HELP command refers to the list
var commands []command

func init() {
	commands = []command{
		{"PEEK", "address [length]", "read memory. a single byte by default", 1, 2, (*Monitor).peek},
		{"POKE", "address value [value...]", "write consecutive bytes to memory", 2, -1, (*Monitor).poke},
		{"DUMP", "address [length]", "show memory as hexadecimal and text", 1, 2, (*Monitor).dump},
		{"FILL", "address length value [value...]", "fill memory with a repeating pattern", 3, -1, (*Monitor).fill},
		{"COPY", "source destination length", "copy memory. overlapping areas are copied correctly", 3, 3, (*Monitor).copy},
		{"IN", "port", "read an IO port", 1, 1, (*Monitor).in},
		{"OUT", "port value", "write to an IO port", 2, 2, (*Monitor).out},
		{"INT", "code [polls]", "interrupt the CPU and supply the code when acknowledged", 1, 2, (*Monitor).interrupt},
		{"TEST", "[ON|OFF]", "master or release the bus. with no argument shows the current state", 0, 1, (*Monitor).test},
		{"REFRESH", "[ON|OFF|STEP [count]]", "memory refresh. STEP refreshes rows by hand", 0, 2, (*Monitor).refresh},
		{"WAIT", "[ON|OFF]", "the WAIT signal", 0, 1, (*Monitor).wait},
		{"SYSRES", "", "show the state of the system reset line", 0, 0, (*Monitor).sysres},
		{"STATE", "", "show the state of the controller, every signal and both buses", 0, 0, (*Monitor).state},
		{"WATCH", "[count]", "show the state repeatedly until a key is pressed", 0, 1, (*Monitor).watchState},
		{"LOG", "[count|CLEAR|ECHO ON|ECHO OFF]", "show the most recent log entries", 0, 2, (*Monitor).showLog},
		{"MAP", "[address]", "show the memory map or the area of a single address", 0, 1, (*Monitor).memoryMap},
		{"MEMVIZ", "filename", "write a graphviz representation of the controller state", 1, 1, (*Monitor).memviz},
		{"PREFS", "[key value]", "show or change the controller preferences", 0, 2, (*Monitor).prefs},
		{"VERSION", "", "show the version number", 0, 0, (*Monitor).version},
		{"HELP", "[command]", "list commands or show help for a single command", 0, 1, (*Monitor).help},
		{"QUIT", "", "leave the monitor. the bus is released", 0, 0, (*Monitor).quitMonitor},
	}
}

func lookup(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func (m *Monitor) peek(args []string) error {
	address, err := ParseAddress(args[0])
	if err != nil {
		return err
	}

	n := 1
	if len(args) > 1 {
		n, err = parseLength(args[1])
		if err != nil {
			return err
		}
	}

	if n == 1 {
		v, err := m.bc.ReadMemory(address)
		if err != nil {
			return err
		}
		m.feedback("0x%04x -> 0x%02x", address, v)
		return nil
	}

	return m.dumpMemory(address, n)
}

func (m *Monitor) poke(args []string) error {
	address, err := ParseAddress(args[0])
	if err != nil {
		return err
	}
	data, err := parseBytes(args[1:])
	if err != nil {
		return err
	}
	return m.bc.WriteMemoryBlock(address, data)
}

func (m *Monitor) dump(args []string) error {
	address, err := ParseAddress(args[0])
	if err != nil {
		return err
	}

	n := defaultDumpLength
	if len(args) > 1 {
		n, err = parseLength(args[1])
		if err != nil {
			return err
		}
	}

	// shorten the dump rather than fail at the top of memory
	n = min(n, 0x10000-int(address))

	return m.dumpMemory(address, n)
}

func (m *Monitor) dumpMemory(address uint16, n int) error {
	data, err := m.bc.ReadMemoryBlock(address, n)
	if err != nil {
		return err
	}
	for _, l := range HexDump(address, data) {
		m.term.TermPrintLine(terminal.StyleFeedback, l)
	}
	return nil
}

func (m *Monitor) fill(args []string) error {
	address, err := ParseAddress(args[0])
	if err != nil {
		return err
	}
	n, err := parseLength(args[1])
	if err != nil {
		return err
	}
	pattern, err := parseBytes(args[2:])
	if err != nil {
		return err
	}
	return m.bc.FillMemoryPattern(address, n, pattern)
}

func (m *Monitor) copy(args []string) error {
	src, err := ParseAddress(args[0])
	if err != nil {
		return err
	}
	dst, err := ParseAddress(args[1])
	if err != nil {
		return err
	}
	n, err := parseLength(args[2])
	if err != nil {
		return err
	}
	return m.bc.CopyMemory(src, dst, n)
}

func (m *Monitor) in(args []string) error {
	port, err := parseByte(args[0])
	if err != nil {
		return err
	}
	v, err := m.bc.ReadIO(port)
	if err != nil {
		return err
	}
	m.feedback("port 0x%02x -> 0x%02x", port, v)
	return nil
}

func (m *Monitor) out(args []string) error {
	port, err := parseByte(args[0])
	if err != nil {
		return err
	}
	v, err := parseByte(args[1])
	if err != nil {
		return err
	}
	return m.bc.WriteIO(port, v)
}

func (m *Monitor) interrupt(args []string) error {
	code, err := parseByte(args[0])
	if err != nil {
		return err
	}

	var polls int
	if len(args) > 1 {
		polls, err = parseLength(args[1])
		if err != nil {
			return err
		}
	}

	if err := m.bc.TriggerInterrupt(code, polls); err != nil {
		return err
	}
	m.feedback("interrupt 0x%02x acknowledged", code)
	return nil
}

func (m *Monitor) test(args []string) error {
	if len(args) == 0 {
		if m.bc.IsMutable() {
			m.feedback("TEST is active. bus is mastered")
		} else {
			m.feedback("TEST is not active. bus is released")
		}
		return nil
	}

	on, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	if on {
		return m.bc.ActivateTestSignal()
	}
	return m.bc.DeactivateTestSignal()
}

func (m *Monitor) refresh(args []string) error {
	if len(args) == 0 {
		if m.bc.IsRefreshEnabled() {
			m.feedback("refresh is active. next row is %d", m.bc.RefreshRow())
		} else {
			m.feedback("refresh is not active. next row is %d", m.bc.RefreshRow())
		}
		return nil
	}

	if strings.ToUpper(args[0]) == "STEP" {
		n := 1
		if len(args) > 1 {
			var err error
			n, err = parseLength(args[1])
			if err != nil {
				return err
			}
		}
		for range n {
			if err := m.bc.RefreshNextRow(); err != nil {
				return err
			}
		}
		m.feedback("next row is %d", m.bc.RefreshRow())
		return nil
	}

	if len(args) > 1 {
		return curated.Errorf(WrongArguments, "REFRESH", "REFRESH [ON|OFF|STEP [count]]")
	}

	on, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	if on {
		return m.bc.ActivateMemoryRefresh()
	}
	return m.bc.DeactivateMemoryRefresh()
}

func (m *Monitor) wait(args []string) error {
	if len(args) == 0 {
		if m.bc.IsWaitActive() {
			m.feedback("WAIT is active")
		} else {
			m.feedback("WAIT is not active")
		}
		return nil
	}

	on, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	if on {
		return m.bc.ActivateWaitSignal()
	}
	return m.bc.DeactivateWaitSignal()
}

func (m *Monitor) sysres(_ []string) error {
	if m.bc.IsSystemReset() {
		m.feedback("system reset is active")
	} else {
		m.feedback("system reset is not active")
	}
	return nil
}

func (m *Monitor) state(_ []string) error {
	m.feedback("%s", m.bc.State())
	return nil
}

func (m *Monitor) watchState(args []string) error {
	var n int
	if len(args) > 0 {
		var err error
		n, err = parseLength(args[0])
		if err != nil {
			return err
		}
		if n == 0 {
			return curated.Errorf(OutOfBounds, args[0], 0x10000)
		}
	}
	return m.watch(n, func() {
		m.feedback("%s", m.bc.State())
	})
}

func (m *Monitor) showLog(args []string) error {
	w := lineWriter{term: m.term, style: terminal.StyleLog}

	if len(args) == 0 {
		m.log.Tail(w, defaultLogTail)
		return nil
	}

	switch strings.ToUpper(args[0]) {
	case "CLEAR":
		m.log.Clear()
		return nil
	case "ECHO":
		if len(args) != 2 {
			return curated.Errorf(WrongArguments, "LOG ECHO", "LOG ECHO ON|OFF")
		}
		on, err := parseSwitch(args[1])
		if err != nil {
			return err
		}
		if on {
			m.log.SetEcho(w)
		} else {
			m.log.SetEcho(nil)
		}
		return nil
	}

	n, err := parseLength(args[0])
	if err != nil {
		return err
	}
	m.log.Tail(w, n)
	return nil
}

func (m *Monitor) memoryMap(args []string) error {
	if len(args) == 0 {
		for _, l := range strings.Split(strings.TrimSpace(memorymap.Summary()), "\n") {
			m.feedback("%s", l)
		}
		return nil
	}

	address, err := ParseAddress(args[0])
	if err != nil {
		return err
	}
	m.feedback("0x%04x is %s", address, memorymap.MapAddress(address))
	return nil
}

func (m *Monitor) memviz(args []string) error {
	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("monitor: memviz: %v", err)
	}
	defer f.Close()

	s := m.bc.Snapshot()
	memviz.Map(f, &s)

	m.feedback("controller state written to %s", args[0])
	return nil
}

func (m *Monitor) prefs(args []string) error {
	switch len(args) {
	case 0:
		for _, l := range strings.Split(strings.TrimSpace(m.bc.Prefs.String()), "\n") {
			m.feedback("%s", l)
		}
		return nil
	case 1:
		return curated.Errorf(WrongArguments, "PREFS", "PREFS [key value]")
	}

	if err := m.bc.Prefs.Set(args[0], args[1]); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	m.log.Infof("monitor", "preference %s set to %s", args[0], args[1])
	return nil
}

func (m *Monitor) version(_ []string) error {
	v, rev := version.Version()
	if rev != "" {
		m.feedback("%s %s (%s)", version.ApplicationName, v, rev)
	} else {
		m.feedback("%s %s", version.ApplicationName, v)
	}
	return nil
}

func (m *Monitor) help(args []string) error {
	if len(args) == 0 {
		names := make([]string, 0, len(commands))
		for _, cmd := range commands {
			names = append(names, cmd.name)
		}
		sort.Strings(names)
		m.term.TermPrintLine(terminal.StyleHelp, strings.Join(names, " "))
		return nil
	}

	name := strings.ToUpper(args[0])
	cmd, ok := lookup(name)
	if !ok {
		return curated.Errorf(UnknownCommand, name)
	}
	m.term.TermPrintLine(terminal.StyleHelp, cmd.usage())
	m.term.TermPrintLine(terminal.StyleHelp, cmd.help)
	return nil
}

func (m *Monitor) quitMonitor(_ []string) error {
	m.quit = true
	return nil
}

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
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/busmaster"
	"github.com/jetsetilly/busmaster/logger"
	"github.com/jetsetilly/busmaster/monitor/terminal"
)

// the interval between lines of output in the WATCH command
const watchInterval = 100 * time.Millisecond

// the number of log entries shown by LOG when no number is given
const defaultLogTail = 10

// Monitor is the command line interface to the bus controller.
type Monitor struct {
	bc   *busmaster.Controller
	term terminal.Terminal
	log  *logger.Logger

	// Interrupter for long running commands. may be nil
	intr terminal.Interrupter

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The Interrupter is optional.
func NewMonitor(bc *busmaster.Controller, term terminal.Terminal, log *logger.Logger, intr terminal.Interrupter) *Monitor {
	return &Monitor{
		bc:   bc,
		term: term,
		log:  log,
		intr: intr,
	}
}

// Run reads and executes commands until the QUIT command or until there is
// no more input. Errors from commands are printed to the terminal and do
// not end the loop.
func (m *Monitor) Run() error {
	if err := m.term.Initialise(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer m.term.CleanUp()

	for !m.quit {
		input, err := m.term.TermRead(m.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		if !m.term.IsInteractive() {
			m.term.TermPrintLine(terminal.StyleEcho, input)
		}

		if err := m.Execute(input); err != nil {
			m.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (m *Monitor) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Content: "released",
		Mutable: m.bc.IsMutable(),
	}
	if p.Mutable {
		if m.bc.IsRefreshEnabled() {
			p.Content = "mastered"
		} else {
			p.Content = "mastered, no refresh"
		}
	}
	return p
}

// Execute a single line of input. Blank lines and lines starting with a
// hash are ignored.
func (m *Monitor) Execute(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return nil
	}

	tokens := strings.Fields(input)
	name := strings.ToUpper(tokens[0])
	args := tokens[1:]

	cmd, ok := lookup(name)
	if !ok {
		return curated.Errorf(UnknownCommand, name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return curated.Errorf(WrongArguments, cmd.name, cmd.usage())
	}

	return cmd.fn(m, args)
}

// Quit returns true if the QUIT command has been run.
func (m *Monitor) Quit() bool {
	return m.quit
}

func (m *Monitor) feedback(pattern string, args ...any) {
	m.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf(pattern, args...))
}

// lineWriter sends each complete line written to it to the terminal.
type lineWriter struct {
	term  terminal.Output
	style terminal.Style
}

func (lw lineWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		lw.term.TermPrintLine(lw.style, l)
	}
	return len(p), nil
}

// watch calls f repeatedly until n calls have been made or the user
// interrupts. if n is zero then the command only stops when interrupted.
func (m *Monitor) watch(n int, f func()) error {
	var interrupted <-chan struct{}

	if m.intr != nil {
		var err error
		interrupted, err = m.intr.Begin()
		if err != nil {
			if n == 0 {
				return curated.Errorf("monitor: cannot watch: %v", err)
			}
			interrupted = nil
		} else {
			defer m.intr.End()
		}
	} else if n == 0 {
		return curated.Errorf("monitor: cannot watch without a count on this terminal")
	}

	tk := time.NewTicker(watchInterval)
	defer tk.Stop()

	for i := 0; n == 0 || i < n; i++ {
		f()

		if n > 0 && i == n-1 {
			break
		}

		select {
		case <-interrupted:
			return nil
		case <-tk.C:
		}
	}

	return nil
}

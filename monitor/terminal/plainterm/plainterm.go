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

// Package plainterm implements the Terminal interface for the monitor. It
// keeps the terminal in whatever mode it started, probably cooked mode, and
// offers no line editing beyond what the terminal itself provides.
//
// It is also suitable for use with files and pipes.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/busmaster/monitor/terminal"
	"golang.org/x/term"
)

// the width assumed when the output is not a terminal
const defaultWidth = 80

// PlainTerminal is the default, most basic terminal interface.
type PlainTerminal struct {
	input  *bufio.Reader
	output io.Writer

	inFd  int
	outFd int

	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal creates a terminal on the supplied files. Either argument
// can be nil, in which case os.Stdin or os.Stdout is used.
func NewPlainTerminal(input *os.File, output *os.File) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
		inFd:   int(input.Fd()),
		outFd:  int(output.Fd()),
	}
	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	pt.realInput = term.IsTerminal(pt.inFd)
	pt.realOutput = term.IsTerminal(pt.outFd)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// Width returns the width of the output terminal in characters.
func (pt *PlainTerminal) Width() int {
	if !pt.realOutput {
		return defaultWidth
	}
	w, _, err := term.GetSize(pt.outFd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	switch style {
	case terminal.StyleEcho:
		// the terminal has already echoed the input
		if pt.realInput {
			return
		}
		s = fmt.Sprintf("> %s", s)
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleHelp:
		s = wrap(s, pt.Width())
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if pt.realInput && !pt.silenced {
		pt.output.Write([]byte(prompt.String()))
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(s) > 0 {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// wrap long lines of help text at word boundaries.
func wrap(s string, width int) string {
	var b strings.Builder
	for l, line := range strings.Split(s, "\n") {
		if l > 0 {
			b.WriteString("\n")
		}
		n := 0
		for i, w := range strings.Fields(line) {
			if i > 0 {
				if n+1+len(w) > width {
					b.WriteString("\n")
					n = 0
				} else {
					b.WriteString(" ")
					n++
				}
			}
			b.WriteString(w)
			n += len(w)
		}
	}
	return b.String()
}

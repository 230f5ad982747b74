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

// Package terminal defines the operations required by the monitor's command
// line interface. Implementations are found in the subpackages.
package terminal

import "fmt"

// Style indicates the purpose of a line of output. Implementations decide how
// to present each style, if at all.
type Style int

// List of valid Style values.
const (
	// the input that caused the output
	StyleEcho Style = iota

	// the normal response to a command
	StyleFeedback

	// help text
	StyleHelp

	// entries from the log
	StyleLog

	// errors must be shown even when the terminal has been silenced
	StyleError
)

// Sentinal errors returned by TermRead().
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Prompt is shown by TermRead() before waiting for input.
type Prompt struct {
	Content string
	Mutable bool
}

func (p Prompt) String() string {
	if p.Mutable {
		return fmt.Sprintf("[%s] # ", p.Content)
	}
	return fmt.Sprintf("[%s] > ", p.Content)
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input without the line ending.
	// io.EOF is returned when there is no more input.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive should return true for implementations that are being
	// used by a person.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal is the complete interface used by the monitor.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything.
	Initialise() error

	// Restore the terminal to its original state.
	CleanUp()

	// Silence all output except errors.
	Silence(silenced bool)
}

// Interrupter implementations can notice the user asking for a long running
// command to stop.
type Interrupter interface {
	// Begin watching for an interruption. The returned channel is closed when
	// the interruption happens.
	Begin() (<-chan struct{}, error)

	// End watching for an interruption. End is called once for every
	// successful call to Begin(), even if the interruption has happened.
	End()
}

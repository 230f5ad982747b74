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

package signal

import "fmt"

// Signal is a named single-bit control line on the expansion bus.
type Signal int

// List of valid Signal values. The order of the list is the order in which
// signals appear in diagnostic strings.
const (
	RAS Signal = iota
	CAS
	MUX
	RD
	WR
	IN
	OUT
	INT
	TEST
	WAIT
	SYS_RES
	INT_ACK

	// the number of signals in the list above
	NumSignals
)

// List of all signals, in diagnostic order.
var Signals = []Signal{RAS, CAS, MUX, RD, WR, IN, OUT, INT, TEST, WAIT, SYS_RES, INT_ACK}

func (sig Signal) String() string {
	switch sig {
	case RAS:
		return "RAS"
	case CAS:
		return "CAS"
	case MUX:
		return "MUX"
	case RD:
		return "RD"
	case WR:
		return "WR"
	case IN:
		return "IN"
	case OUT:
		return "OUT"
	case INT:
		return "INT"
	case TEST:
		return "TEST"
	case WAIT:
		return "WAIT"
	case SYS_RES:
		return "SYS_RES"
	case INT_ACK:
		return "INT_ACK"
	}
	return fmt.Sprintf("signal(%d)", int(sig))
}

// ActiveLow returns true if the signal is asserted by pulling the line low.
// MUX is the only active-high signal.
func (sig Signal) ActiveLow() bool {
	return sig != MUX
}

// InputOnly returns true for the signals that are only ever driven by the
// Model I CPU. These signals must never be configured as outputs.
func (sig Signal) InputOnly() bool {
	return sig == SYS_RES || sig == INT_ACK
}

// Asserted returns the level that asserts the signal.
func (sig Signal) Asserted() Level {
	if sig.ActiveLow() {
		return Low
	}
	return High
}

// Deasserted returns the level that deasserts the signal. This is also the
// safe level for a signal that has just been configured as an output.
func (sig Signal) Deasserted() Level {
	if sig.ActiveLow() {
		return High
	}
	return Low
}

// Direction of a signal line or of a single bus bit.
type Direction bool

// List of valid Direction values.
const (
	Input  Direction = false
	Output Direction = true
)

func (dir Direction) String() string {
	if dir == Output {
		return "output"
	}
	return "input"
}

// Rune returns the single character used for the direction in diagnostic
// strings.
func (dir Direction) Rune() rune {
	if dir == Output {
		return 'o'
	}
	return 'i'
}

// Level of a signal line.
type Level bool

// List of valid Level values.
const (
	Low  Level = false
	High Level = true
)

func (lvl Level) String() string {
	if lvl == High {
		return "high"
	}
	return "low"
}

// Rune returns the single character used for the level in diagnostic strings.
func (lvl Level) Rune() rune {
	if lvl == High {
		return '1'
	}
	return '0'
}

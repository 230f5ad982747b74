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
	"strconv"
	"strings"

	"github.com/jetsetilly/busmaster/curated"
)

// error patterns for argument parsing
const (
	NotANumber  = "monitor: not a number (%s)"
	OutOfBounds = "monitor: %s is out of range (maximum %#x)"
)

// parseNumber converts the string to a number no larger than max.
func parseNumber(s string, max uint64) (uint64, error) {
	t := strings.ToLower(s)
	base := 0

	switch {
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasSuffix(t, "h") && len(t) > 1:
		t = t[:len(t)-1]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, 64)
	if err != nil {
		return 0, curated.Errorf(NotANumber, s)
	}
	if v > max {
		return 0, curated.Errorf(OutOfBounds, s, max)
	}

	return v, nil
}

// ParseAddress parses a 16 bit address in any of the accepted number formats.
func ParseAddress(s string) (uint16, error) {
	v, err := parseNumber(s, 0xffff)
	return uint16(v), err
}

func parseByte(s string) (uint8, error) {
	v, err := parseNumber(s, 0xff)
	return uint8(v), err
}

func parseLength(s string) (int, error) {
	v, err := parseNumber(s, 0x10000)
	return int(v), err
}

func parseBytes(args []string) ([]uint8, error) {
	data := make([]uint8, 0, len(args))
	for _, a := range args {
		v, err := parseByte(a)
		if err != nil {
			return nil, err
		}
		data = append(data, v)
	}
	return data, nil
}

// parseSwitch accepts the usual ways of saying on and off.
func parseSwitch(s string) (bool, error) {
	switch strings.ToUpper(s) {
	case "ON", "TRUE", "1", "YES":
		return true, nil
	case "OFF", "FALSE", "0", "NO":
		return false, nil
	}
	return false, curated.Errorf("monitor: expected ON or OFF (%s)", s)
}

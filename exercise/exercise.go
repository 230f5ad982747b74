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

package exercise

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/busmaster"
	"github.com/jetsetilly/busmaster/hardware/memory/memorymap"
)

// Sentinal errors.
const (
	NotRAM       = "exercise: range 0x%04x to 0x%04x is not entirely RAM"
	PatternsFail = "exercise: %d mismatches"
)

// Mismatch records a byte that did not read back as it was written.
type Mismatch struct {
	Pattern string
	Address uint16
	Wrote   uint8
	Read    uint8
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: 0x%04x wrote 0x%02x read 0x%02x", m.Pattern, m.Address, m.Wrote, m.Read)
}

// pattern produces the value for an address
type pattern struct {
	name  string
	value func(address uint16) uint8
}

func patterns() []pattern {
	p := make([]pattern, 0, 10)
	for b := range 8 {
		p = append(p, pattern{
			name: fmt.Sprintf("walking ones (bit %d)", b),
			value: func(_ uint16) uint8 {
				return 0x01 << b
			},
		})
	}
	p = append(p, pattern{
		name: "address",
		value: func(address uint16) uint8 {
			return uint8(address) ^ uint8(address>>8)
		},
	})
	p = append(p, pattern{
		name: "inverse address",
		value: func(address uint16) uint8 {
			return ^(uint8(address) ^ uint8(address>>8))
		},
	})
	return p
}

// the maximum number of mismatches that will be reported to the output
const maxReported = 16

// Check runs the test patterns over the range of addresses, inclusive.
// Mismatches are written to output and returned. The original contents of
// the range are restored before the bus is released.
func Check(output io.Writer, bc *busmaster.Controller, origin uint16, memtop uint16) ([]Mismatch, error) {
	if memtop < origin {
		origin, memtop = memtop, origin
	}
	if !memorymap.IsRAMAddress(origin) || !memorymap.IsRAMAddress(memtop) {
		return nil, curated.Errorf(NotRAM, origin, memtop)
	}
	n := int(memtop) - int(origin) + 1

	err := bc.ActivateTestSignal()
	if err != nil {
		return nil, err
	}
	defer bc.DeactivateTestSignal()

	saved, err := bc.ReadMemoryBlock(origin, n)
	if err != nil {
		return nil, err
	}
	defer bc.WriteMemoryBlock(origin, saved)

	var mismatches []Mismatch
	startTime := time.Now()

	for _, p := range patterns() {
		want := make([]uint8, n)
		for i := range want {
			want[i] = p.value(origin + uint16(i))
		}

		err = bc.WriteMemoryBlock(origin, want)
		if err != nil {
			return mismatches, err
		}

		got, err := bc.ReadMemoryBlock(origin, n)
		if err != nil {
			return mismatches, err
		}

		for i := range got {
			if got[i] != want[i] {
				m := Mismatch{
					Pattern: p.name,
					Address: origin + uint16(i),
					Wrote:   want[i],
					Read:    got[i],
				}
				if len(mismatches) < maxReported {
					fmt.Fprintln(output, m.String())
				}
				mismatches = append(mismatches, m)
			}
		}
	}

	fmt.Fprintf(output, "%d bytes from 0x%04x to 0x%04x checked in %.2fs\n", n, origin, memtop,
		time.Since(startTime).Seconds())

	if len(mismatches) > 0 {
		return mismatches, curated.Errorf(PatternsFail, len(mismatches))
	}

	fmt.Fprintln(output, "no mismatches")
	return nil, nil
}

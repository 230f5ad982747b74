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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/busmaster/hardware/memory/memorymap"
	"github.com/jetsetilly/busmaster/test"
)

func TestMapAddress(t *testing.T) {
	tests := []struct {
		address uint16
		area    memorymap.Area
	}{
		{0x0000, memorymap.ROM},
		{0x2fff, memorymap.ROM},
		{0x3000, memorymap.Unused},
		{0x37df, memorymap.Unused},
		{0x37e0, memorymap.IO},
		{0x37e8, memorymap.IO},
		{0x37ff, memorymap.IO},
		{0x3800, memorymap.Keyboard},
		{0x3bff, memorymap.Keyboard},
		{0x3c00, memorymap.Video},
		{0x3fff, memorymap.Video},
		{0x4000, memorymap.System},
		{0x41ff, memorymap.System},
		{0x4200, memorymap.LowerMemory},
		{0x7fff, memorymap.LowerMemory},
		{0x8000, memorymap.HigherMemory},
		{0xffff, memorymap.HigherMemory},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, memorymap.MapAddress(tt.address), tt.area, tt.address)
		test.ExpectSuccess(t, memorymap.IsArea(tt.address, tt.area), tt.address)
	}
}

// every address must be claimed by exactly one predicate
func TestPredicatesAreExclusive(t *testing.T) {
	predicates := []func(uint16) bool{
		memorymap.IsROMAddress,
		memorymap.IsUnusedAddress,
		memorymap.IsIOAddress,
		memorymap.IsKeyboardAddress,
		memorymap.IsVideoAddress,
		memorymap.IsSystemAddress,
		memorymap.IsLowerMemoryAddress,
		memorymap.IsHigherMemoryAddress,
	}

	for a := 0; a <= 0xffff; a++ {
		var n int
		for _, p := range predicates {
			if p(uint16(a)) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("address %04x is claimed by %d areas", a, n)
		}
	}
}

func TestRAMAddress(t *testing.T) {
	test.ExpectFailure(t, memorymap.IsRAMAddress(0x3fff))
	test.ExpectSuccess(t, memorymap.IsRAMAddress(0x4000))
	test.ExpectSuccess(t, memorymap.IsRAMAddress(0xffff))
	test.ExpectEquality(t, memorymap.VideoSize, 1024)
}

func TestSummary(t *testing.T) {
	s := "0000 -> 2fff\tROM\n" +
		"3000 -> 37df\tunused\n" +
		"37e0 -> 37ff\tI/O\n" +
		"3800 -> 3bff\tkeyboard\n" +
		"3c00 -> 3fff\tvideo\n" +
		"4000 -> 41ff\tsystem\n" +
		"4200 -> 7fff\tlower memory\n" +
		"8000 -> ffff\thigher memory\n"
	test.ExpectEquality(t, memorymap.Summary(), s)
}

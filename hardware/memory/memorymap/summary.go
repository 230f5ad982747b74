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

package memorymap

import (
	"fmt"
	"strings"
)

// the areas of memory in address order
var areas = []struct {
	area   Area
	origin uint16
	memtop uint16
}{
	{ROM, OriginROM, MemtopROM},
	{Unused, OriginUnused, MemtopUnused},
	{IO, OriginIO, MemtopIO},
	{Keyboard, OriginKeyboard, MemtopKeyboard},
	{Video, OriginVideo, MemtopVideo},
	{System, OriginSystem, MemtopSystem},
	{LowerMemory, OriginLower, MemtopLower},
	{HigherMemory, OriginHigher, MemtopHigher},
}

// Summary returns a single multiline string detailing all the areas in memory.
// One line per area in the form "origin -> memtop<tab>name".
func Summary() string {
	s := strings.Builder{}
	for _, a := range areas {
		fmt.Fprintf(&s, "%04x -> %04x\t%s\n", a.origin, a.memtop, a.area)
	}
	return s.String()
}

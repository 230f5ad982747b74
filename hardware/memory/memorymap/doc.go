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

// Package memorymap describes the 16 bit address space of the Model I.
//
//	0x0000 - 0x2fff   ROM
//	0x3000 - 0x37df   unused
//	0x37e0 - 0x37ff   memory mapped I/O
//	0x3800 - 0x3bff   keyboard matrix
//	0x3c00 - 0x3fff   video memory
//	0x4000 - 0x41ff   system memory
//	0x4200 - 0x7fff   lower expansion memory
//	0x8000 - 0xffff   higher expansion memory
//
// The keyboard matrix only decodes the lowest 256 bytes of its area. The
// remaining three quarters of the area shadow the first.
//
// MapAddress() returns the Area an address belongs to. The Is*Address()
// functions are convenient predicates for single areas. None of the functions
// in the package have side effects.
package memorymap

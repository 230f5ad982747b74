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

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case Unused:
		return "unused"
	case IO:
		return "I/O"
	case Keyboard:
		return "keyboard"
	case Video:
		return "video"
	case System:
		return "system"
	case LowerMemory:
		return "lower memory"
	case HigherMemory:
		return "higher memory"
	}

	return "undefined"
}

// The different memory areas in the Model I.
const (
	Undefined Area = iota
	ROM
	Unused
	IO
	Keyboard
	Video
	System
	LowerMemory
	HigherMemory
)

// The origin and memory top for each area of memory.
const (
	OriginROM      = uint16(0x0000)
	MemtopROM      = uint16(0x2fff)
	OriginUnused   = uint16(0x3000)
	MemtopUnused   = uint16(0x37df)
	OriginIO       = uint16(0x37e0)
	MemtopIO       = uint16(0x37ff)
	OriginKeyboard = uint16(0x3800)
	MemtopKeyboard = uint16(0x3bff)
	OriginVideo    = uint16(0x3c00)
	MemtopVideo    = uint16(0x3fff)
	OriginSystem   = uint16(0x4000)
	MemtopSystem   = uint16(0x41ff)
	OriginLower    = uint16(0x4200)
	MemtopLower    = uint16(0x7fff)
	OriginHigher   = uint16(0x8000)
	MemtopHigher   = uint16(0xffff)
)

// MaskKeyboard removes the shadow bits from a keyboard address. The keyboard
// matrix is decoded from the low eight address lines only.
const MaskKeyboard = uint16(0x00ff)

// VideoSize is the number of bytes of video memory. 16 rows of 64 characters.
const VideoSize = int(MemtopVideo-OriginVideo) + 1

// MapAddress returns the area of memory an address belongs to.
func MapAddress(address uint16) Area {
	// note that the order of these filters is important
	switch {
	case address <= MemtopROM:
		return ROM
	case address <= MemtopUnused:
		return Unused
	case address <= MemtopIO:
		return IO
	case address <= MemtopKeyboard:
		return Keyboard
	case address <= MemtopVideo:
		return Video
	case address <= MemtopSystem:
		return System
	case address <= MemtopLower:
		return LowerMemory
	}
	return HigherMemory
}

// IsArea returns true if address is in the specified area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}

// IsROMAddress returns true if address is in the ROM area.
func IsROMAddress(address uint16) bool {
	return address <= MemtopROM
}

// IsUnusedAddress returns true if address is in the unused area between the
// ROM and the memory mapped I/O.
func IsUnusedAddress(address uint16) bool {
	return address >= OriginUnused && address <= MemtopUnused
}

// IsIOAddress returns true if address is in the memory mapped I/O area.
func IsIOAddress(address uint16) bool {
	return address >= OriginIO && address <= MemtopIO
}

// IsKeyboardAddress returns true if address is in the keyboard matrix area,
// including the shadowed copies.
func IsKeyboardAddress(address uint16) bool {
	return address >= OriginKeyboard && address <= MemtopKeyboard
}

// IsVideoAddress returns true if address is in video memory.
func IsVideoAddress(address uint16) bool {
	return address >= OriginVideo && address <= MemtopVideo
}

// IsSystemAddress returns true if address is in system memory.
func IsSystemAddress(address uint16) bool {
	return address >= OriginSystem && address <= MemtopSystem
}

// IsLowerMemoryAddress returns true if address is in lower expansion memory.
func IsLowerMemoryAddress(address uint16) bool {
	return address >= OriginLower && address <= MemtopLower
}

// IsHigherMemoryAddress returns true if address is in higher expansion memory.
func IsHigherMemoryAddress(address uint16) bool {
	return address >= OriginHigher
}

// IsRAMAddress returns true if address is backed by dynamic RAM. That is,
// system memory and both expansion memory areas.
func IsRAMAddress(address uint16) bool {
	return address >= OriginSystem
}

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

package busmaster

import (
	"fmt"

	"github.com/jetsetilly/busmaster/curated"
)

// the size of the memory address space
const addressSpace = 0x10000

// checkBlock returns an error if the length is not positive or if the block
// runs past the top of memory. the error is also logged.
func (bc *Controller) checkBlock(op string, address uint16, n int) error {
	if n <= 0 {
		bc.log.Errorf(tag, "%s: invalid length (%d)", op, n)
		return curated.Errorf(InvalidLength, op, n)
	}
	if int(address)+n > addressSpace {
		bc.log.Errorf(tag, "%s: 0x%04x + %d is outside of the address space", op, address, n)
		return curated.Errorf(OutOfRange, op, address, n)
	}
	return nil
}

// ReadMemoryBlock reads n bytes starting at address. Each byte is a separate
// read cycle. Nothing is returned if any of the cycles fail.
func (bc *Controller) ReadMemoryBlock(address uint16, n int) ([]uint8, error) {
	if err := bc.checkMutable(fmt.Sprintf("read memory block 0x%04x", address)); err != nil {
		return nil, err
	}
	if err := bc.checkBlock("read memory block", address, n); err != nil {
		return nil, err
	}

	data := make([]uint8, n)
	for i := range data {
		v, err := bc.ReadMemory(address + uint16(i))
		if err != nil {
			return nil, err
		}
		data[i] = v
	}

	return data, nil
}

// WriteMemoryBlock writes data starting at address. Each byte is a separate
// write cycle.
func (bc *Controller) WriteMemoryBlock(address uint16, data []uint8) error {
	if err := bc.checkMutable(fmt.Sprintf("write memory block 0x%04x", address)); err != nil {
		return err
	}
	if err := bc.checkBlock("write memory block", address, len(data)); err != nil {
		return err
	}

	for i, v := range data {
		if err := bc.WriteMemory(address+uint16(i), v); err != nil {
			return err
		}
	}

	return nil
}

// CopyMemory copies n bytes from src to dst. Overlapping ranges are allowed
// and are copied in the direction that does not overwrite source bytes before
// they have been read. Overlapping ranges cause a warning to be logged.
func (bc *Controller) CopyMemory(src uint16, dst uint16, n int) error {
	if err := bc.checkMutable(fmt.Sprintf("copy memory 0x%04x to 0x%04x", src, dst)); err != nil {
		return err
	}
	if err := bc.checkBlock("copy memory source", src, n); err != nil {
		return err
	}
	if err := bc.checkBlock("copy memory destination", dst, n); err != nil {
		return err
	}

	s := int(src)
	d := int(dst)
	if s == d {
		return nil
	}

	if s < d+n && d < s+n {
		bc.log.Warnf(tag, "copy memory: overlapping ranges 0x%04x and 0x%04x (%d bytes)", src, dst, n)
	}

	cp := func(i int) error {
		v, err := bc.ReadMemory(uint16(s + i))
		if err != nil {
			return err
		}
		return bc.WriteMemory(uint16(d+i), v)
	}

	if d > s {
		for i := n - 1; i >= 0; i-- {
			if err := cp(i); err != nil {
				return err
			}
		}
	} else {
		for i := range n {
			if err := cp(i); err != nil {
				return err
			}
		}
	}

	return nil
}

// FillMemory writes value to n bytes starting at address.
func (bc *Controller) FillMemory(address uint16, n int, value uint8) error {
	return bc.FillMemoryPattern(address, n, []uint8{value})
}

// FillMemoryPattern writes n bytes starting at address. The pattern is
// repeated as often as required. The final repetition may be incomplete.
func (bc *Controller) FillMemoryPattern(address uint16, n int, pattern []uint8) error {
	if err := bc.checkMutable(fmt.Sprintf("fill memory 0x%04x", address)); err != nil {
		return err
	}
	if len(pattern) == 0 {
		bc.log.Errorf(tag, "fill memory: empty pattern")
		return curated.Errorf(InvalidLength, "fill memory pattern", 0)
	}
	if err := bc.checkBlock("fill memory", address, n); err != nil {
		return err
	}

	for i := range n {
		if err := bc.WriteMemory(address+uint16(i), pattern[i%len(pattern)]); err != nil {
			return err
		}
	}

	return nil
}

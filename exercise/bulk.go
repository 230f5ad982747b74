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
	"bytes"
	"fmt"
	"io"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/busmaster"
	"github.com/jetsetilly/busmaster/hardware/memory/memorymap"
)

// Sentinal errors.
const (
	BulkFail = "exercise: %s: block does not match"
)

// the size of each of the two blocks used by Bulk()
const bulkSize = 0x100

var fillPattern = []uint8{0xde, 0xad, 0xbe, 0xef}

// Bulk fills a block of memory starting at origin with a repeating pattern,
// copies it to the block immediately following and reads both back. Two
// blocks of 256 bytes are used. The original contents are restored.
func Bulk(output io.Writer, bc *busmaster.Controller, origin uint16) error {
	memtop := int(origin) + bulkSize*2 - 1
	if !memorymap.IsRAMAddress(origin) || memtop > 0xffff {
		return curated.Errorf(NotRAM, origin, memtop)
	}
	copyTo := origin + bulkSize

	err := bc.ActivateTestSignal()
	if err != nil {
		return err
	}
	defer bc.DeactivateTestSignal()

	saved, err := bc.ReadMemoryBlock(origin, bulkSize*2)
	if err != nil {
		return err
	}
	defer bc.WriteMemoryBlock(origin, saved)

	err = bc.FillMemoryPattern(origin, bulkSize, fillPattern)
	if err != nil {
		return err
	}

	want := bytes.Repeat(fillPattern, bulkSize/len(fillPattern))

	got, err := bc.ReadMemoryBlock(origin, bulkSize)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return curated.Errorf(BulkFail, "fill")
	}

	err = bc.CopyMemory(origin, copyTo, bulkSize)
	if err != nil {
		return err
	}

	got, err = bc.ReadMemoryBlock(copyTo, bulkSize)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return curated.Errorf(BulkFail, "copy")
	}

	fmt.Fprintf(output, "fill and copy from 0x%04x to 0x%04x ok\n", origin, copyTo)

	return nil
}

// Interrupt releases the bus, if necessary, and triggers an interrupt with
// the supplied code. The default timeout preference is used.
func Interrupt(output io.Writer, bc *busmaster.Controller, code uint8) error {
	if bc.IsMutable() {
		err := bc.DeactivateTestSignal()
		if err != nil {
			return err
		}
	}

	err := bc.TriggerInterrupt(code, 0)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "interrupt 0x%02x acknowledged\n", code)

	return nil
}

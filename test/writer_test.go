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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/busmaster/test"
)

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	test.ExpectSuccess(t, w.Compare(""))
	test.ExpectEquality(t, len(w.Lines()), 0)

	w.Write([]byte("line one\nline two\n"))
	test.ExpectSuccess(t, w.Compare("line one\nline two\n"))
	test.ExpectEquality(t, len(w.Lines()), 2)
	test.ExpectEquality(t, w.Lines()[1], "line two")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failure"))
	test.ExpectEquality(t, uint16(0x3c00), 0x3c00)
	test.ExpectInequality(t, "foo", "bar")
}

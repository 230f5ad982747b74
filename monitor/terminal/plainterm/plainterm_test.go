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

package plainterm

import (
	"testing"

	"github.com/jetsetilly/busmaster/test"
)

func TestWrap(t *testing.T) {
	test.ExpectEquality(t, wrap("PEEK address", 80), "PEEK address")
	test.ExpectEquality(t, wrap("aaaa bbbb cccc", 9), "aaaa bbbb\ncccc")
	test.ExpectEquality(t, wrap("aaaa bbbb\ncc dd", 4), "aaaa\nbbbb\ncc\ndd")

	// words longer than the width are not broken
	test.ExpectEquality(t, wrap("abcdefghij", 4), "abcdefghij")
}

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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))
	test.ExpectSuccess(t, curated.IsAny(e))

	// an uncurated error never matches
	u := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(u))
	test.ExpectFailure(t, curated.Is(u, testError))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(testErrorB, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectFailure(t, curated.Has(e, testErrorB))
}

func TestUnwrap(t *testing.T) {
	u := errors.New("plain error")
	e := curated.Errorf(testError, u)
	test.ExpectSuccess(t, errors.Is(e, u))
	test.ExpectEquality(t, e.Error(), "test error: plain error")
	test.ExpectEquality(t, errors.Unwrap(e), u)

	// the first error in the values is the one unwrapped
	v := errors.New("second error")
	f := curated.Errorf("%d: %v %v", 1, u, v)
	test.ExpectEquality(t, errors.Unwrap(f), u)
	test.ExpectFailure(t, errors.Is(f, v))

	// no error in the values
	g := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, errors.Unwrap(g) == nil)

	// a chain through a curated error reaches the plain error
	h := curated.Errorf(testErrorB, e)
	test.ExpectSuccess(t, errors.Is(h, u))
	test.ExpectSuccess(t, curated.Has(h, testError))
}

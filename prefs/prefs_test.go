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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/prefs"
	"github.com/jetsetilly/busmaster/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("True"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(10))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set(17740))
	test.ExpectEquality(t, v.Value(), 17740)
	test.ExpectSuccess(t, v.Set(" 100 "))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectEquality(t, v.Value(), 100)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Value(), 0.0)
	test.ExpectSuccess(t, v.Set("1.77408"))
	test.ExpectEquality(t, v.String(), "1.77408")
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Value(), 2.0)
	test.ExpectFailure(t, v.Set(true))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// the pre hook vetoes the change
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Value(), 10)
	test.ExpectEquality(t, post, 10)
}

func TestGroup(t *testing.T) {
	var a prefs.Int
	var b prefs.Bool

	grp := prefs.NewGroup()
	test.ExpectSuccess(t, grp.Add("test.b", &b))
	test.ExpectSuccess(t, grp.Add("test.a", &a))
	test.ExpectFailure(t, grp.Add("test.a", &a))

	test.ExpectSuccess(t, grp.Set("test.a", "99"))
	test.ExpectEquality(t, a.Value(), 99)

	err := grp.Set("test.c", 1)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	v, err := grp.Get("test.b")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.(bool), false)

	test.ExpectEquality(t, grp.String(), "test.a :: 99\ntest.b :: false\n")
	test.DemandEquality(t, len(grp.Keys()), 2)
	test.ExpectEquality(t, grp.Keys()[0], "test.a")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("test.a::100; test.b::true; test.unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	var a prefs.Int
	var b prefs.Bool
	grp := prefs.NewGroup()
	test.ExpectSuccess(t, grp.Add("test.a", &a))
	test.ExpectSuccess(t, grp.Add("test.b", &b))
	test.ExpectEquality(t, a.Value(), 100)
	test.ExpectEquality(t, b.Get().(bool), true)

	// values are consumed when they are used
	ok, _ := prefs.GetCommandLinePref("test.a")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "test.unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

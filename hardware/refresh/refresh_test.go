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

package refresh_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/busmaster/hardware/refresh"
	"github.com/jetsetilly/busmaster/test"
)

func TestInterval(t *testing.T) {
	test.ExpectEquality(t, refresh.Interval, 15625*time.Nanosecond)
}

func TestManual(t *testing.T) {
	var m refresh.Manual
	var n int

	test.ExpectFailure(t, m.Running())
	test.ExpectEquality(t, m.Tick(10), 0)

	m.Start(refresh.Interval, func() { n++ })
	test.ExpectSuccess(t, m.Running())
	test.ExpectEquality(t, m.Interval(), refresh.Interval)
	test.ExpectEquality(t, m.Tick(10), 10)
	test.ExpectEquality(t, n, 10)

	// starting a running source does not replace the tick function
	m.Start(refresh.Interval, func() { n += 100 })
	m.Tick(1)
	test.ExpectEquality(t, n, 11)

	m.Stop()
	m.Stop()
	test.ExpectFailure(t, m.Running())
	test.ExpectEquality(t, m.Tick(10), 0)
	test.ExpectEquality(t, n, 11)
}

func TestTicker(t *testing.T) {
	var tk refresh.Ticker
	var n atomic.Int32

	tk.Start(time.Millisecond, func() { n.Add(1) })
	test.ExpectSuccess(t, tk.Running())

	deadline := time.Now().Add(5 * time.Second)
	for n.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectSuccess(t, n.Load() >= 3)

	tk.Stop()
	test.ExpectFailure(t, tk.Running())

	// no more ticks after Stop() has returned
	v := n.Load()
	time.Sleep(10 * time.Millisecond)
	test.ExpectEquality(t, n.Load(), v)

	// stopping twice is fine
	tk.Stop()
}

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

package delay

import "sync"

// Counter is a CycleDelay that does not wait. It records the number of cycles
// requested instead.
type Counter struct {
	crit    sync.Mutex
	total   int
	calls   int
	history []int
}

// Cycles implements the CycleDelay interface.
func (c *Counter) Cycles(n int) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.total += n
	c.calls++
	c.history = append(c.history, n)
}

// Total returns the sum of all cycles requested.
func (c *Counter) Total() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.total
}

// Calls returns the number of times Cycles() has been called.
func (c *Counter) Calls() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.calls
}

// History returns a copy of every request in the order they were made.
func (c *Counter) History() []int {
	c.crit.Lock()
	defer c.crit.Unlock()
	h := make([]int, len(c.history))
	copy(h, c.history)
	return h
}

// Reset forgets all requests.
func (c *Counter) Reset() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.total = 0
	c.calls = 0
	c.history = c.history[:0]
}

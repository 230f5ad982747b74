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

package refresh

import (
	"sync"
	"time"
)

// Manual is a Source that ticks only when Tick() is called. The tick function
// is run in the goroutine that calls Tick().
type Manual struct {
	crit     sync.Mutex
	tick     func()
	interval time.Duration
}

// Start implements the Source interface.
func (m *Manual) Start(interval time.Duration, tick func()) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if m.tick != nil {
		return
	}
	m.tick = tick
	m.interval = interval
}

// Stop implements the Source interface.
func (m *Manual) Stop() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.tick = nil
}

// Running implements the Source interface.
func (m *Manual) Running() bool {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.tick != nil
}

// Interval returns the interval given to the most recent call to Start().
func (m *Manual) Interval() time.Duration {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.interval
}

// Tick calls the tick function n times. Returns the number of ticks that
// happened, which will be zero if the source is not running.
func (m *Manual) Tick(n int) int {
	m.crit.Lock()
	tick := m.tick
	m.crit.Unlock()

	if tick == nil {
		return 0
	}
	for range n {
		tick()
	}
	return n
}

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

// Ticker is a Source driven by a time.Ticker in a dedicated goroutine.
type Ticker struct {
	crit sync.Mutex
	quit chan bool
	done chan bool
}

// Start implements the Source interface.
func (tk *Ticker) Start(interval time.Duration, tick func()) {
	tk.crit.Lock()
	defer tk.crit.Unlock()

	if tk.quit != nil {
		return
	}

	tk.quit = make(chan bool)
	tk.done = make(chan bool)

	go func(quit chan bool, done chan bool) {
		defer close(done)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-quit:
				return
			case <-t.C:
				tick()
			}
		}
	}(tk.quit, tk.done)
}

// Stop implements the Source interface.
func (tk *Ticker) Stop() {
	tk.crit.Lock()
	defer tk.crit.Unlock()

	if tk.quit == nil {
		return
	}

	close(tk.quit)
	<-tk.done
	tk.quit = nil
	tk.done = nil
}

// Running implements the Source interface.
func (tk *Ticker) Running() bool {
	tk.crit.Lock()
	defer tk.crit.Unlock()
	return tk.quit != nil
}

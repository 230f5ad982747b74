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

package easyterm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/term"
	"github.com/pkg/term/termios"
)

// the controlling terminal of the process
const tty = "/dev/tty"

// how often the watching goroutine checks whether it should stop
const pollInterval = 50 * time.Millisecond

// KeyWatch notices key presses on the controlling terminal. The zero value is
// ready to use.
type KeyWatch struct {
	crit sync.Mutex
	t    *term.Term
	quit chan bool
	done chan bool
}

// Begin implements the terminal.Interrupter interface. The terminal is put
// into cbreak mode until End() is called.
func (kw *KeyWatch) Begin() (<-chan struct{}, error) {
	kw.crit.Lock()
	defer kw.crit.Unlock()

	if kw.t != nil {
		return nil, fmt.Errorf("easyterm: already watching")
	}

	t, err := term.Open(tty, term.CBreakMode, term.ReadTimeout(pollInterval))
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	kw.t = t
	kw.quit = make(chan bool)
	kw.done = make(chan bool)
	pressed := make(chan struct{})

	go func(t *term.Term, quit chan bool, done chan bool) {
		defer close(done)
		b := make([]byte, 1)
		for {
			select {
			case <-quit:
				return
			default:
			}

			n, err := t.Read(b)
			if n > 0 {
				close(pressed)
				return
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return
			}
		}
	}(kw.t, kw.quit, kw.done)

	return pressed, nil
}

// End implements the terminal.Interrupter interface. The terminal is restored
// to the mode it was in before Begin() was called and any unread input is
// discarded.
func (kw *KeyWatch) End() {
	kw.crit.Lock()
	defer kw.crit.Unlock()

	if kw.t == nil {
		return
	}

	close(kw.quit)
	<-kw.done

	_ = kw.t.Restore()
	_ = kw.t.Close()
	kw.t = nil

	_ = Flush(os.Stdin)
}

// Flush discards any input in the terminal's buffer that has not been read.
func Flush(f *os.File) error {
	return termios.Tcflush(f.Fd(), termios.TCIFLUSH)
}

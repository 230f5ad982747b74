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

package panel

import (
	"errors"
	"time"

	"github.com/jetsetilly/busmaster/curated"
	"github.com/jetsetilly/busmaster/hardware/busmaster"
	"github.com/jetsetilly/busmaster/logger"
	"github.com/jroimartin/gocui"
)

// names of the gocui views
const (
	signalsView = "signals"
	memoryView  = "memory"
	logView     = "log"
)

// the width of the signals view
const signalsWidth = 30

const bytesPerRow = 16

// how often the views are redrawn
const redrawInterval = 100 * time.Millisecond

// Panel is the full screen front panel.
type Panel struct {
	bc  *busmaster.Controller
	log *logger.Logger

	// the first address in the memory view
	base uint16

	// the number of rows in the memory view. updated by layout()
	rows int
}

// NewPanel is the preferred method of initialisation for the Panel type.
func NewPanel(bc *busmaster.Controller, log *logger.Logger) *Panel {
	return &Panel{
		bc:   bc,
		log:  log,
		base: 0x3c00,
		rows: 16,
	}
}

// Run the panel until the user quits. The terminal is restored before
// returning.
func (pn *Panel) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return curated.Errorf("panel: %v", err)
	}
	defer g.Close()

	g.SetManagerFunc(pn.layout)

	if err := pn.keybindings(g); err != nil {
		return curated.Errorf("panel: %v", err)
	}

	done := make(chan bool)
	defer close(done)

	go func() {
		tk := time.NewTicker(redrawInterval)
		defer tk.Stop()
		for {
			select {
			case <-done:
				return
			case <-tk.C:
				g.Update(pn.redraw)
			}
		}
	}()

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return curated.Errorf("panel: %v", err)
	}

	return nil
}

func (pn *Panel) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	split := maxY * 2 / 3

	if v, err := g.SetView(signalsView, 0, 0, signalsWidth, split); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Signals"
	}

	if v, err := g.SetView(memoryView, signalsWidth+1, 0, maxX-1, split); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Memory"
	}
	pn.rows = max(split-1, 1)

	if v, err := g.SetView(logView, 0, split+1, maxX-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Log"
		v.Wrap = true
	}

	return nil
}

func (pn *Panel) redraw(g *gocui.Gui) error {
	v, err := g.View(signalsView)
	if err != nil {
		return err
	}
	v.Clear()
	renderSignals(v, pn.bc.Snapshot())

	v, err = g.View(memoryView)
	if err != nil {
		return err
	}
	v.Clear()
	renderMemory(v, pn.bc, pn.base, pn.rows)

	v, err = g.View(logView)
	if err != nil {
		return err
	}
	_, h := v.Size()
	v.Clear()
	renderLog(v, pn.log, max(h, 1))

	return nil
}

func (pn *Panel) keybindings(g *gocui.Gui) error {
	bindings := []struct {
		key any
		fn  func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{'t', pn.toggleTest},
		{'r', pn.toggleRefresh},
		{'w', pn.toggleWait},
		{gocui.KeyArrowUp, pn.scroll(-bytesPerRow)},
		{gocui.KeyArrowDown, pn.scroll(bytesPerRow)},
		{gocui.KeyPgup, pn.page(-1)},
		{gocui.KeyPgdn, pn.page(1)},
	}

	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.fn); err != nil {
			return err
		}
	}

	return nil
}

func quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

// errors from the controller have been logged and will appear in the log view
func (pn *Panel) toggleTest(_ *gocui.Gui, _ *gocui.View) error {
	if pn.bc.IsMutable() {
		_ = pn.bc.DeactivateTestSignal()
	} else {
		_ = pn.bc.ActivateTestSignal()
	}
	return nil
}

func (pn *Panel) toggleRefresh(_ *gocui.Gui, _ *gocui.View) error {
	if pn.bc.IsRefreshEnabled() {
		_ = pn.bc.DeactivateMemoryRefresh()
	} else {
		_ = pn.bc.ActivateMemoryRefresh()
	}
	return nil
}

func (pn *Panel) toggleWait(_ *gocui.Gui, _ *gocui.View) error {
	if pn.bc.IsWaitActive() {
		_ = pn.bc.DeactivateWaitSignal()
	} else {
		_ = pn.bc.ActivateWaitSignal()
	}
	return nil
}

func (pn *Panel) scroll(delta int) func(*gocui.Gui, *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		pn.move(delta)
		return nil
	}
}

func (pn *Panel) page(direction int) func(*gocui.Gui, *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		pn.move(direction * pn.rows * bytesPerRow)
		return nil
	}
}

// move the memory window, stopping at either end of memory. the window
// always starts on a row boundary.
func (pn *Panel) move(delta int) {
	b := int(pn.base) + delta
	b = max(b, 0)
	b = min(b, 0x10000-bytesPerRow)
	pn.base = uint16(b &^ (bytesPerRow - 1))
}

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

// Package panel is a full screen front panel for the bus controller. It shows
// the state of every signal, a window onto memory and the most recent log
// entries, all updated continuously.
//
// The panel is drawn with gocui. Keys:
//
//	t          master or release the bus
//	r          memory refresh on or off
//	w          WAIT on or off
//	up/down    move the memory window by one line
//	pgup/pgdn  move the memory window by one page
//	q          quit
//
// All controller operations happen in the gocui main loop. The refresh tick
// is the only other user of the bus.
package panel

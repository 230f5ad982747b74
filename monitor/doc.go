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

// Package monitor is an interactive command line for the bus controller. It
// reads commands from a terminal.Terminal and drives the busmaster.Controller
// accordingly.
//
// Numbers can be given in decimal or in hexadecimal. Hexadecimal numbers are
// prefixed with 0x or $ or suffixed with h. For example, the following all
// refer to the start of video memory:
//
//	15360 0x3c00 $3c00 3c00h
//
// Commands are case insensitive. The HELP command lists all commands.
//
// Errors from the controller are reported by the command that caused them.
// The same errors are also found in the log, which can be viewed with the LOG
// command.
package monitor

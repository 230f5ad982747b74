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

// Package logger is the log used by every part of Busmaster. Entries carry a
// tag, a detail string and a level. Identical consecutive entries are
// collapsed into a single entry with a repeat count.
//
// A Logger instance can be created with NewLogger() and passed to the parts of
// the program that need it. The hardware packages do not import this package.
// Instead they accept any value that satisfies their own small Log interface,
// of which *Logger is one implementation.
//
// There is also a central logger that is used through the package level
// functions. The entry point gives the central logger to the hardware.
//
// Logging can be controlled with the Permission interface. The Allow value
// permits logging unconditionally.
package logger

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

// Package prefs provides typed preference values. Values of type Bool, Int and
// Float can be changed at any time from any goroutine. A hook can be attached
// to a value so that the owner of the value can veto or react to a change.
//
// Values are collected into a Group with a unique key for each value. The
// Group can be listed and values can be set through the Group by key. When a
// value is added to a Group, any value for that key found on the command line
// stack is applied.
//
// The command line stack is populated from a string of key/value pairs:
//
//	"busmaster.settle::40000; busmaster.autorefresh::false"
//
// There is no persistence. Preferences are not read from or written to disk.
package prefs

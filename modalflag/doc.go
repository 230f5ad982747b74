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

// Package modalflag is a wrapper for the flag package in the standard library.
// It adds the concept of modes. A mode is a command line argument that selects
// what the program will do, each mode having its own set of flags. Modes can
// have their own sub-modes.
//
// The arguments are given to NewArgs() and then Parse() is called with no
// arguments. Parse() processes the flags for the current mode and, if
// sub-modes have been added with AddSubModes(), looks at the next argument to
// decide which sub-mode has been selected. The first sub-mode is the default.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "PANEL")
//	log := md.AddBool("log", false, "echo log to stderr")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "PANEL":
//		md.NewMode()
//		rom := md.AddString("rom", "", "ROM image")
//		...
//	}
//
// Mode names are case insensitive. Mode() always returns the name in upper
// case.
package modalflag

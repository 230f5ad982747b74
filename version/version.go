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

// Package version reports the version of the program. The version is a
// triple of major, minor and revision numbers. The vcs revision of the build,
// if available, is reported separately.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Busmaster"

// The version triple. The revision is incremented for every release that does
// not change the bus timing or the diagnostic string formats.
const (
	Major    = 1
	Minor    = 2
	Revision = 0
)

// String returns the version triple formatted as "major.minor.revision".
func String() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Revision)
}

// vcsRevision contains the vcs revision. If the source has been modified but
// has not been committed then the string will be suffixed with "+dirty"
var vcsRevision string

// Version returns the version string and the vcs revision string.
func Version() (string, string) {
	return String(), vcsRevision
}

func init() {
	var rev string
	var modified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				rev = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if rev == "" {
		vcsRevision = "no revision information"
	} else {
		vcsRevision = rev
		if modified {
			vcsRevision = fmt.Sprintf("%s+dirty", vcsRevision)
		}
	}
}

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

// Package test bundles a bunch of functions useful for testing purposes,
// particularly in conjunction with the standard go test harness.
//
// The Expect functions report failure with t.Errorf() and allow the test to
// continue. The Demand functions report failure with t.Fatalf().
//
// The nil type is considered a success value. This is so that a nil error
// value passed to ExpectSuccess() is a success, which is what we nearly always
// want.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output for later comparison.
package test

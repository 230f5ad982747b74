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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The pattern given
// to Errorf() identifies the error and can be tested for with the Is() and
// Has() functions. For example:
//
//	e := curated.Errorf(busmaster.NotMutable, "read memory")
//
//	if curated.Is(e, busmaster.NotMutable) {
//		fmt.Println("rejected")
//	}
//
// Has() is similar but checks if the pattern occurs anywhere in the error
// chain. An error is in the chain if it was given as a placeholder value to
// Errorf().
//
//	f := curated.Errorf("exercise: %v", e)
//
//	curated.Has(f, busmaster.NotMutable) // true
//	curated.Is(f, busmaster.NotMutable)  // false
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Wrapping an error in a pattern with the same
// prefix therefore does not repeat the prefix in the final message.
package curated

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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/busmaster/curated"
)

// Sentinal error patterns.
const (
	UnknownKey   = "prefs: unknown key (%s)"
	DuplicateKey = "prefs: key already in use (%s)"
)

// Group is a collection of preference values, each with a unique key.
type Group struct {
	entries map[string]pref
	keys    []string
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// Add preference value to the group. Any value for the key found on the top of
// the command line stack is applied immediately.
func (grp *Group) Add(key string, p pref) error {
	if _, ok := grp.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	grp.entries[key] = p
	grp.keys = append(grp.keys, key)
	sort.Strings(grp.keys)

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}

// Set the value of the preference with the key.
func (grp *Group) Set(key string, v Value) error {
	p, ok := grp.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Get the value of the preference with the key.
func (grp *Group) Get(key string) (Value, error) {
	p, ok := grp.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Keys returns the sorted list of keys in the group.
func (grp *Group) Keys() []string {
	k := make([]string, len(grp.keys))
	copy(k, grp.keys)
	return k
}

// String returns every key/value pair in the group, one per line, in key
// order.
func (grp *Group) String() string {
	s := strings.Builder{}
	for _, k := range grp.keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, grp.entries[k]))
	}
	return s.String()
}

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

package busmaster

import (
	"fmt"
	"time"

	"github.com/jetsetilly/busmaster/hardware/clocks"
	"github.com/jetsetilly/busmaster/hardware/refresh"
	"github.com/jetsetilly/busmaster/prefs"
)

// Default values for the preferences.
const (
	// ten milliseconds at the Model I clock speed
	DefaultSettleCycles = 17740

	DefaultInterruptTimeout = 1000
	DefaultAutoRefresh      = true
	DefaultClockMHz         = clocks.ModelI
)

// DefaultRefreshInterval is the default value of the RefreshInterval
// preference.
var DefaultRefreshInterval = refresh.Interval

// Preferences for the bus controller.
type Preferences struct {
	grp *prefs.Group

	// the number of host CPU cycles to wait after a change to the TEST line
	SettleCycles prefs.Int

	// the default number of polls TriggerInterrupt() waits for an
	// acknowledgement when it is called with a timeout of zero
	InterruptTimeout prefs.Int

	// the refresh tick interval in nanoseconds
	RefreshInterval prefs.Int

	// arm memory refresh automatically after the bus has been mastered
	AutoRefresh prefs.Bool

	// the host CPU clock speed in MHz. the bus controller itself has no use
	// for this value, it is used to create the CycleDelay given to the
	// controller
	ClockMHz prefs.Float
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values found on the prefs command line stack are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.SettleCycles.SetHookPre(notNegative)
	p.InterruptTimeout.SetHookPre(notNegative)
	p.RefreshInterval.SetHookPre(positive)
	p.ClockMHz.SetHookPre(positive)

	p.SetDefaults()

	if err := p.grp.Add("busmaster.settle", &p.SettleCycles); err != nil {
		return nil, err
	}
	if err := p.grp.Add("busmaster.inttimeout", &p.InterruptTimeout); err != nil {
		return nil, err
	}
	if err := p.grp.Add("busmaster.refreshinterval", &p.RefreshInterval); err != nil {
		return nil, err
	}
	if err := p.grp.Add("busmaster.autorefresh", &p.AutoRefresh); err != nil {
		return nil, err
	}
	if err := p.grp.Add("busmaster.clock", &p.ClockMHz); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.SettleCycles.Set(DefaultSettleCycles)
	_ = p.InterruptTimeout.Set(DefaultInterruptTimeout)
	_ = p.RefreshInterval.Set(int(DefaultRefreshInterval))
	_ = p.AutoRefresh.Set(DefaultAutoRefresh)
	_ = p.ClockMHz.Set(DefaultClockMHz)
}

// Set the preference with the key to the value.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

// Interval returns the RefreshInterval preference as a time.Duration.
func (p *Preferences) Interval() time.Duration {
	return time.Duration(p.RefreshInterval.Value())
}

func notNegative(v prefs.Value) error {
	if v.(int) < 0 {
		return fmt.Errorf("value must not be negative (%d)", v.(int))
	}
	return nil
}

func positive(v prefs.Value) error {
	switch v := v.(type) {
	case int:
		if v <= 0 {
			return fmt.Errorf("value must be positive (%d)", v)
		}
	case float64:
		if v <= 0 {
			return fmt.Errorf("value must be positive (%f)", v)
		}
	}
	return nil
}

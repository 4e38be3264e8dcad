// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences defines the preference values that affect the
// emulation of the console hardware.
package preferences

import (
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// unassigned opcodes are a fatal error rather than being treated as a
	// one byte instruction with no effect
	StrictOpcodes prefs.Bool

	// initialise work RAM and high RAM to random values on power-on
	RandomState prefs.Bool

	// load and save battery backed cartridge RAM
	SaveData prefs.Bool

	// seed for the random number source. zero means that the source is
	// seeded with the current time
	Seed prefs.Int

	// random values generated in the hardware package should use the
	// following number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed uint64
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	p := NewUnsavedPreferences()

	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for k, v := range map[string]*prefs.Bool{
		"hardware.strictopcodes": &p.StrictOpcodes,
		"hardware.randstate":     &p.RandomState,
		"hardware.savedata":      &p.SaveData,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	if err := p.dsk.Add("hardware.randseed", &p.Seed); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if err := p.dsk.Load(); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// NewUnsavedPreferences returns a Preferences instance with default values
// that is not associated with the preferences file. Load() and Save() have no
// effect.
func NewUnsavedPreferences() *Preferences {
	p := &Preferences{}
	p.Seed.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("preferences: random seed cannot be negative (%d)", v)
		}
		return nil
	})
	p.Seed.SetHookPost(func(v prefs.Value) error {
		p.Reseed(uint64(v.(int)))
		return nil
	})
	p.SetDefaults()
	return p
}

// SetDefaults sets the preference values to their default state.
func (p *Preferences) SetDefaults() {
	p.StrictOpcodes.Set(false)
	p.RandomState.Set(false)
	p.SaveData.Set(true)
	p.Seed.Set(0)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed uint64) {
	if seed == 0 {
		p.RandSeed = uint64(time.Now().UnixNano())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewPCG(p.RandSeed, p.RandSeed>>1))
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	err := p.dsk.Load()
	if curated.Is(err, prefs.NoPrefsFile) {
		return nil
	}
	return err
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

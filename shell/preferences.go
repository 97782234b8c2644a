// This file is part of pmpcheck.
//
// pmpcheck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pmpcheck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pmpcheck.  If not, see <https://www.gnu.org/licenses/>.

package shell

import (
	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/prefs"
)

// Preferences defines and collates all the preference values used by the
// shell.
type Preferences struct {
	sh  *Shell
	dsk *prefs.Disk

	// explain every CHECK verdict with the deciding entry
	Explain prefs.Bool

	// echo new log entries to the terminal as they are made
	EchoLog prefs.Bool

	// default number of entries shown by the LOG command
	LogTail prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences(sh *Shell, pth string) (*Preferences, error) {
	p := &Preferences{sh: sh}

	// defaults
	_ = p.LogTail.Set(10)

	// the terminal is not ready until the input loop has started. the echo
	// is applied then if the preference was set beforehand
	p.EchoLog.SetHookPost(func(v prefs.Value) error {
		if sh.running {
			sh.applyEcho(v.(bool))
		}
		return nil
	})

	p.LogTail.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("shell.logtail cannot be negative")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("shell.explain", &p.Explain); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("shell.echolog", &p.EchoLog); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("shell.logtail", &p.LogTail); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

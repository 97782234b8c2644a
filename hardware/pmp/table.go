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

package pmp

import (
	"fmt"

	"github.com/jetsetilly/pmpcheck/curated"
)

// NumEntries is the number of entries in a PMP table.
const NumEntries = 64

// Entry is a single PMP table entry.
type Entry struct {
	Config  Config
	Address uint64
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %#016x", e.Config, e.Address)
}

// Table is the complete, ordered PMP table. The index of an entry is its
// priority, lower indexes being checked first.
type Table [NumEntries]Entry

// Sentinal error patterns.
const (
	TableSize = "pmp table: %s count is %d, must be %d"
)

// NewTable creates a table from the list of configuration bytes and the list
// of address words. Both lists must have exactly NumEntries values.
func NewTable(configs []uint8, addresses []uint64) (*Table, error) {
	if len(configs) != NumEntries {
		return nil, curated.Errorf(TableSize, "config", len(configs), NumEntries)
	}
	if len(addresses) != NumEntries {
		return nil, curated.Errorf(TableSize, "address", len(addresses), NumEntries)
	}

	t := &Table{}
	for i := range t {
		t[i] = Entry{
			Config:  Config(configs[i]),
			Address: addresses[i],
		}
	}
	return t, nil
}

// Regions resolves every entry in the table. The running previous address is
// advanced for every entry, including disabled entries, in the same way as
// Evaluate().
func (t *Table) Regions() [NumEntries]Region {
	var regions [NumEntries]Region
	var prev uint64
	for i, e := range t {
		regions[i] = Resolve(e, prev)
		prev = e.Address
	}
	return regions
}

// AnyEnabled returns true if at least one entry is not in the Off mode.
func (t *Table) AnyEnabled() bool {
	for _, e := range t {
		if e.Config.Enabled() {
			return true
		}
	}
	return false
}

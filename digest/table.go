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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/pmpcheck/hardware/pmp"
)

// size of a single entry in the data that is hashed.
const entrySize = 1 + 8

// Table creates a digest of a pmp.Table. Digests of successive tables can be
// chained by calling Add() more than once without a ResetDigest().
type Table struct {
	digest [sha1.Size]byte
	data   []byte
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		data: make([]byte, sha1.Size+pmp.NumEntries*entrySize),
	}
}

// Hash implements digest.Digest interface.
func (dig *Table) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Table) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Add the table to the digest.
func (dig *Table) Add(t *pmp.Table) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the table data
	copy(dig.data, dig.digest[:])

	i := sha1.Size
	for _, e := range t {
		dig.data[i] = uint8(e.Config)
		binary.BigEndian.PutUint64(dig.data[i+1:], e.Address)
		i += entrySize
	}

	dig.digest = sha1.Sum(dig.data)
}

// Of returns the hash of a single table.
func Of(t *pmp.Table) string {
	dig := NewTable()
	dig.Add(t)
	return dig.Hash()
}

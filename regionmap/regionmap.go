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

package regionmap

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
)

// Sentinal error patterns.
const (
	WriteError = "regionmap: %v"
)

// Write a line for every enabled entry in the table. Disabled entries are
// also written if the all argument is true. A line looks like:
//
//	 3  L NAPOT rwx  0x000000002000ffff  [0x20000000, 0x20080000)
func Write(w io.Writer, t *pmp.Table, all bool) error {
	regions := t.Regions()

	var n int
	for i, e := range t {
		if !all && !e.Config.Enabled() {
			continue
		}

		s := fmt.Sprintf("%2d  %s  %#016x  %s", i, e.Config, e.Address, regions[i])
		if regions[i].Enabled() && regions[i].Empty() {
			s = fmt.Sprintf("%s (empty)", s)
		}

		if _, err := fmt.Fprintln(w, s); err != nil {
			return curated.Errorf(WriteError, err)
		}
		n++
	}

	if n == 0 {
		if _, err := fmt.Fprintln(w, "no enabled entries"); err != nil {
			return curated.Errorf(WriteError, err)
		}
	}

	return nil
}

// node is the structure that is visualised by Graph(). one node per enabled
// entry, linked in priority order.
type node struct {
	Entry  int
	Config string
	Region string
	Next   *node
}

// Graph writes a Graphviz (dot) description of the enabled regions in the
// table, in the order in which they are checked.
func Graph(w io.Writer, t *pmp.Table) {
	regions := t.Regions()

	var head *node
	var tail *node
	for i, e := range t {
		if !e.Config.Enabled() {
			continue
		}
		n := &node{
			Entry:  i,
			Config: e.Config.String(),
			Region: regions[i].String(),
		}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	memviz.Map(w, head)
}

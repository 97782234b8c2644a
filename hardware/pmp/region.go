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
	"math/bits"

	"golang.org/x/exp/constraints"
)

// the smallest NAPOT region is eight bytes. the three least significant bits
// of the address field are implied to be set.
const napotGranuleShift = 3

// na4Size is the size in bytes of an NA4 region.
const na4Size = 4

// Region is the resolved address range of a single PMP entry. The range is
// half-open: Start is the first address covered and End is the first address
// beyond it.
//
// A region that reaches the very top of the 64 bit address space cannot
// express its End value in a uint64. For these regions the Top field is true
// and End is zero.
type Region struct {
	Mode  AddressMode
	Start uint64
	End   uint64
	Top   bool
}

// Enabled returns false for regions resolved from an entry in the Off mode.
func (r Region) Enabled() bool {
	return r.Mode != Off
}

// Empty returns true if the region can contain no address. Disabled regions
// are always empty. A TOR region is empty when its lower bound is not below
// its upper bound.
func (r Region) Empty() bool {
	if r.Mode == Off {
		return true
	}
	return !r.Top && r.Start >= r.End
}

// Contains returns true if the address lies inside the region.
func (r Region) Contains(address uint64) bool {
	if r.Mode == Off {
		return false
	}
	if address < r.Start {
		return false
	}
	return r.Top || address < r.End
}

func (r Region) String() string {
	if r.Mode == Off {
		return "disabled"
	}
	if r.Top {
		return fmt.Sprintf("[%#x, 2^64)", r.Start)
	}
	return fmt.Sprintf("[%#x, %#x)", r.Start, r.End)
}

// Resolve the region covered by an entry. The prev argument is the raw
// address field of the entry immediately before this one in the table (or
// zero for the first entry). It is only used by the TOR mode.
//
// Regions that would extend beyond the top of the address space are clamped
// to the top of the address space and have the Top field set.
func Resolve(e Entry, prev uint64) Region {
	switch e.Config.Mode() {
	case TOR:
		return Region{Mode: TOR, Start: prev, End: e.Address}

	case NA4:
		end := e.Address + na4Size
		if end < e.Address {
			return Region{Mode: NA4, Start: e.Address, Top: true}
		}
		return Region{Mode: NA4, Start: e.Address, End: end}

	case NAPOT:
		return resolveNAPOT(e.Address)
	}

	return Region{Mode: Off}
}

// NAPOTTrailingOnes returns the number of consecutive set bits starting from
// the least significant bit of a NAPOT encoded address.
func NAPOTTrailingOnes(address uint64) int {
	return bits.TrailingZeros64(^address)
}

func resolveNAPOT(address uint64) Region {
	shift := NAPOTTrailingOnes(address) + napotGranuleShift

	// the whole of the address space
	if shift >= 64 {
		return Region{Mode: NAPOT, Top: true}
	}

	size := uint64(1) << shift
	base := alignDown(address, size)

	end := base + size
	if end == 0 {
		return Region{Mode: NAPOT, Start: base, Top: true}
	}

	return Region{Mode: NAPOT, Start: base, End: end}
}

// alignDown clears the bits of v below the power-of-two size.
func alignDown[U constraints.Unsigned](v, size U) U {
	return v &^ (size - 1)
}

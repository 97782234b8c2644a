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

package pmp_test

import (
	"testing"

	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/test"
)

func TestResolveOff(t *testing.T) {
	r := pmp.Resolve(pmp.Entry{Config: 0x07, Address: 0x1000}, 0)
	test.ExpectEquality(t, r.Mode, pmp.Off)
	test.ExpectFailure(t, r.Enabled())
	test.ExpectSuccess(t, r.Empty())
	test.ExpectFailure(t, r.Contains(0x1000))
	test.ExpectFailure(t, r.Contains(0))
	test.ExpectEquality(t, r.String(), "disabled")
}

func TestResolveTOR(t *testing.T) {
	e := pmp.Entry{Config: pmp.NewConfig(true, true, true, pmp.TOR, false), Address: 0x2000}

	r := pmp.Resolve(e, 0x1000)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.TOR, Start: 0x1000, End: 0x2000})
	test.ExpectSuccess(t, r.Contains(0x1000))
	test.ExpectSuccess(t, r.Contains(0x1fff))
	test.ExpectFailure(t, r.Contains(0x2000))
	test.ExpectFailure(t, r.Contains(0x0fff))
	test.ExpectEquality(t, r.String(), "[0x1000, 0x2000)")

	// first entry in the table has a previous address of zero
	r = pmp.Resolve(e, 0)
	test.ExpectSuccess(t, r.Contains(0))

	// lower bound not below the upper bound matches nothing
	r = pmp.Resolve(e, 0x2000)
	test.ExpectSuccess(t, r.Enabled())
	test.ExpectSuccess(t, r.Empty())
	test.ExpectFailure(t, r.Contains(0x2000))

	r = pmp.Resolve(e, 0x3000)
	test.ExpectSuccess(t, r.Empty())
	test.ExpectFailure(t, r.Contains(0x2800))
}

func TestResolveNA4(t *testing.T) {
	e := pmp.Entry{Config: pmp.NewConfig(true, false, false, pmp.NA4, false), Address: 0x1000}

	// the previous address has no effect
	for _, prev := range []uint64{0, 0x800, 0xffffffffffffffff} {
		r := pmp.Resolve(e, prev)
		test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NA4, Start: 0x1000, End: 0x1004}, prev)
	}

	r := pmp.Resolve(e, 0)
	test.ExpectSuccess(t, r.Contains(0x1000))
	test.ExpectSuccess(t, r.Contains(0x1003))
	test.ExpectFailure(t, r.Contains(0x1004))
	test.ExpectFailure(t, r.Contains(0x0fff))
}

func TestResolveNA4Top(t *testing.T) {
	e := pmp.Entry{Config: pmp.NewConfig(true, false, false, pmp.NA4, false), Address: 0xfffffffffffffffc}
	r := pmp.Resolve(e, 0)
	test.ExpectSuccess(t, r.Top)
	test.ExpectEquality(t, r.Start, uint64(0xfffffffffffffffc))
	test.ExpectSuccess(t, r.Contains(0xfffffffffffffffc))
	test.ExpectSuccess(t, r.Contains(0xffffffffffffffff))
	test.ExpectFailure(t, r.Contains(0xfffffffffffffffb))
	test.ExpectEquality(t, r.String(), "[0xfffffffffffffffc, 2^64)")

	e.Address = 0xfffffffffffffffe
	r = pmp.Resolve(e, 0)
	test.ExpectSuccess(t, r.Top)
	test.ExpectSuccess(t, r.Contains(0xffffffffffffffff))
	test.ExpectFailure(t, r.Contains(0xfffffffffffffffd))
}

func TestResolveNAPOT(t *testing.T) {
	napot := pmp.NewConfig(true, true, true, pmp.NAPOT, false)

	// 0x87 is 0b10000111, three trailing ones. the region is 2^6 bytes
	r := pmp.Resolve(pmp.Entry{Config: napot, Address: 0x87}, 0)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Start: 0x80, End: 0xc0})
	test.ExpectSuccess(t, r.Contains(0x80))
	test.ExpectSuccess(t, r.Contains(0xbf))
	test.ExpectFailure(t, r.Contains(0xc0))
	test.ExpectFailure(t, r.Contains(0x7f))

	// no trailing ones is the minimum region size of eight bytes
	r = pmp.Resolve(pmp.Entry{Config: napot, Address: 0x1000}, 0)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Start: 0x1000, End: 0x1008})

	// the low bits of the address are cleared even when there are no
	// trailing ones
	r = pmp.Resolve(pmp.Entry{Config: napot, Address: 0x1006}, 0)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Start: 0x1000, End: 0x1008})

	// five trailing ones
	r = pmp.Resolve(pmp.Entry{Config: napot, Address: 0x8000001f}, 0)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Start: 0x80000000, End: 0x80000100})
}

func TestNAPOTTrailingOnes(t *testing.T) {
	test.ExpectEquality(t, pmp.NAPOTTrailingOnes(0), 0)
	test.ExpectEquality(t, pmp.NAPOTTrailingOnes(0x86), 0)
	test.ExpectEquality(t, pmp.NAPOTTrailingOnes(0x87), 3)
	test.ExpectEquality(t, pmp.NAPOTTrailingOnes(0x8000001f), 5)
	test.ExpectEquality(t, pmp.NAPOTTrailingOnes(0xffffffffffffffff), 64)
}

func TestResolveNAPOTSaturation(t *testing.T) {
	napot := pmp.NewConfig(true, true, true, pmp.NAPOT, false)

	// every combination of trailing ones that gives a region of 2^64 bytes or
	// more covers the whole address space
	for _, a := range []uint64{
		0xffffffffffffffff,
		0x7fffffffffffffff,
		0x3fffffffffffffff,
		0x1fffffffffffffff,
	} {
		r := pmp.Resolve(pmp.Entry{Config: napot, Address: a}, 0)
		test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Top: true}, a)
		test.ExpectSuccess(t, r.Contains(0), a)
		test.ExpectSuccess(t, r.Contains(0xffffffffffffffff), a)
	}

	// sixty trailing ones is a region of 2^63 bytes. the upper half of the
	// address space ends at the top of the address space
	r := pmp.Resolve(pmp.Entry{Config: napot, Address: 0xefffffffffffffff}, 0)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Start: 0x8000000000000000, Top: true})
	test.ExpectSuccess(t, r.Contains(0xffffffffffffffff))
	test.ExpectFailure(t, r.Contains(0x7fffffffffffffff))

	// the last 64 byte region in the address space
	r = pmp.Resolve(pmp.Entry{Config: napot, Address: 0xffffffffffffffc7}, 0)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Start: 0xffffffffffffffc0, Top: true})

	// the 64 byte region immediately below it
	r = pmp.Resolve(pmp.Entry{Config: napot, Address: 0xffffffffffffff87}, 0)
	test.ExpectEquality(t, r, pmp.Region{Mode: pmp.NAPOT, Start: 0xffffffffffffff80, End: 0xffffffffffffffc0})
}

func TestRegionsFold(t *testing.T) {
	var tab pmp.Table
	tab[0] = pmp.Entry{Config: 0, Address: 0x1000}
	tab[1] = pmp.Entry{Config: pmp.NewConfig(true, false, false, pmp.TOR, false), Address: 0x2000}
	tab[2] = pmp.Entry{Config: pmp.NewConfig(true, false, false, pmp.NA4, false), Address: 0x3000}
	tab[3] = pmp.Entry{Config: pmp.NewConfig(true, false, false, pmp.TOR, false), Address: 0x4000}

	regions := tab.Regions()
	test.ExpectEquality(t, regions[0], pmp.Region{Mode: pmp.Off})
	test.ExpectEquality(t, regions[1], pmp.Region{Mode: pmp.TOR, Start: 0x1000, End: 0x2000})
	test.ExpectEquality(t, regions[2], pmp.Region{Mode: pmp.NA4, Start: 0x3000, End: 0x3004})
	test.ExpectEquality(t, regions[3], pmp.Region{Mode: pmp.TOR, Start: 0x3000, End: 0x4000})

	// entry 4 is disabled with an address of zero. a TOR entry following it
	// starts at zero
	tab[5] = pmp.Entry{Config: pmp.NewConfig(true, false, false, pmp.TOR, false), Address: 0x500}
	regions = tab.Regions()
	test.ExpectEquality(t, regions[5], pmp.Region{Mode: pmp.TOR, Start: 0, End: 0x500})
}

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

func TestConfigAccessors(t *testing.T) {
	c := pmp.Config(0x9f)
	test.ExpectSuccess(t, c.Readable())
	test.ExpectSuccess(t, c.Writable())
	test.ExpectSuccess(t, c.Executable())
	test.ExpectSuccess(t, c.Locked())
	test.ExpectSuccess(t, c.Enabled())
	test.ExpectEquality(t, c.Mode(), pmp.NAPOT)
	test.ExpectEquality(t, c.String(), "L NAPOT rwx")

	c = pmp.Config(0x11)
	test.ExpectSuccess(t, c.Readable())
	test.ExpectFailure(t, c.Writable())
	test.ExpectFailure(t, c.Executable())
	test.ExpectFailure(t, c.Locked())
	test.ExpectEquality(t, c.Mode(), pmp.NA4)
	test.ExpectEquality(t, c.String(), "- NA4   r--")

	c = pmp.Config(0x00)
	test.ExpectFailure(t, c.Enabled())
	test.ExpectEquality(t, c.Mode(), pmp.Off)
	test.ExpectEquality(t, c.String(), "- OFF   ---")

	// reserved bits are ignored
	c = pmp.Config(0x6a)
	test.ExpectEquality(t, c.Mode(), pmp.TOR)
	test.ExpectSuccess(t, c.Writable())
	test.ExpectFailure(t, c.Readable())
	test.ExpectFailure(t, c.Locked())
}

func TestNewConfig(t *testing.T) {
	test.ExpectEquality(t, pmp.NewConfig(true, true, true, pmp.NAPOT, true), pmp.Config(0x9f))
	test.ExpectEquality(t, pmp.NewConfig(true, false, false, pmp.NA4, false), pmp.Config(0x11))
	test.ExpectEquality(t, pmp.NewConfig(false, false, false, pmp.Off, false), pmp.Config(0x00))
	test.ExpectEquality(t, pmp.NewConfig(false, true, true, pmp.TOR, false), pmp.Config(0x0e))

	// every byte with the reserved bits clear survives being unpacked and
	// packed again
	for v := 0; v < 256; v++ {
		c := pmp.Config(v)
		if v&0x60 != 0 {
			continue
		}
		n := pmp.NewConfig(c.Readable(), c.Writable(), c.Executable(), c.Mode(), c.Locked())
		test.ExpectEquality(t, n, c, v)
	}
}

func TestPermits(t *testing.T) {
	c := pmp.NewConfig(true, false, true, pmp.TOR, false)
	test.ExpectSuccess(t, c.Permits(pmp.Read))
	test.ExpectFailure(t, c.Permits(pmp.Write))
	test.ExpectSuccess(t, c.Permits(pmp.Execute))
	test.ExpectFailure(t, c.Permits(pmp.Operation(99)))
}

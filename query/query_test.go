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

package query_test

import (
	"testing"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/query"
	"github.com/jetsetilly/pmpcheck/test"
)

func TestAddress(t *testing.T) {
	a, err := query.ParseAddress("0x80000000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint64(0x80000000))

	a, err = query.ParseAddress("0XFFFFFFFFFFFFFFFF")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint64(0xffffffffffffffff))

	for _, s := range []string{"80000000", "", "0x", "0xg", "$ff", "0x10000000000000000"} {
		_, err = query.ParseAddress(s)
		test.ExpectSuccess(t, curated.Is(err, query.BadAddress), s)
	}
}

func TestPrivilege(t *testing.T) {
	for s, p := range map[string]pmp.Privilege{
		"M": pmp.Machine, "m": pmp.Machine, "machine": pmp.Machine,
		"S": pmp.Supervisor, "s": pmp.Supervisor, "Supervisor": pmp.Supervisor,
		"U": pmp.User, "u": pmp.User, "USER": pmp.User,
	} {
		v, err := query.ParsePrivilege(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, v, p, s)
	}

	_, err := query.ParsePrivilege("H")
	test.ExpectSuccess(t, curated.Is(err, query.BadPrivilege))
}

func TestOperation(t *testing.T) {
	for s, o := range map[string]pmp.Operation{
		"R": pmp.Read, "r": pmp.Read, "read": pmp.Read,
		"W": pmp.Write, "w": pmp.Write, "Write": pmp.Write,
		"X": pmp.Execute, "x": pmp.Execute, "exec": pmp.Execute, "EXECUTE": pmp.Execute,
	} {
		v, err := query.ParseOperation(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, v, o, s)
	}

	_, err := query.ParseOperation("RW")
	test.ExpectSuccess(t, curated.Is(err, query.BadOperation))
}

func TestParse(t *testing.T) {
	q, err := query.Parse([]string{"0x2000", "U", "W"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, pmp.Query{Address: 0x2000, Privilege: pmp.User, Operation: pmp.Write})

	_, err = query.Parse([]string{"0x2000", "U"})
	test.ExpectSuccess(t, curated.Is(err, query.WrongArgCount))

	_, err = query.Parse([]string{"0x2000", "U", "W", "extra"})
	test.ExpectSuccess(t, curated.Is(err, query.WrongArgCount))

	_, err = query.Parse([]string{"2000", "U", "W"})
	test.ExpectSuccess(t, curated.Is(err, query.BadAddress))

	_, err = query.Parse([]string{"0x2000", "Q", "W"})
	test.ExpectSuccess(t, curated.Is(err, query.BadPrivilege))

	_, err = query.Parse([]string{"0x2000", "U", "Z"})
	test.ExpectSuccess(t, curated.Is(err, query.BadOperation))
}

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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/pmpcheck/digest"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/test"
)

func TestTableDigest(t *testing.T) {
	var a pmp.Table
	var b pmp.Table

	test.ExpectEquality(t, digest.Of(&a), digest.Of(&b))
	test.ExpectEquality(t, len(digest.Of(&a)), 40)

	b[63].Address = 1
	test.ExpectInequality(t, digest.Of(&a), digest.Of(&b))

	b[63].Address = 0
	b[0].Config = pmp.NewConfig(true, false, false, pmp.TOR, false)
	test.ExpectInequality(t, digest.Of(&a), digest.Of(&b))
}

func TestChaining(t *testing.T) {
	var tab pmp.Table

	dig := digest.NewTable()
	dig.Add(&tab)
	first := dig.Hash()

	// the same table added twice gives a different hash
	dig.Add(&tab)
	test.ExpectInequality(t, dig.Hash(), first)

	// which is the same every time
	dig.ResetDigest()
	dig.Add(&tab)
	test.ExpectEquality(t, dig.Hash(), first)
	dig.Add(&tab)
	second := dig.Hash()

	dig.ResetDigest()
	dig.Add(&tab)
	dig.Add(&tab)
	test.ExpectEquality(t, dig.Hash(), second)
}

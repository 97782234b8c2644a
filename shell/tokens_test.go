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
	"testing"

	"github.com/jetsetilly/pmpcheck/test"
)

func TestTokens(t *testing.T) {
	tk := tokeniseInput("  entry   3 $1f  0x87 ")
	test.ExpectEquality(t, tk.String(), "ENTRY 3 0x1f 0x87")
	test.ExpectEquality(t, tk.num(), 4)

	s, ok := tk.get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "ENTRY")
	test.ExpectEquality(t, tk.remaining(), 3)

	s, ok = tk.peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "3")
	test.ExpectEquality(t, tk.remaining(), 3)

	tk.get()
	tk.get()
	tk.get()
	_, ok = tk.get()
	test.ExpectFailure(t, ok)
	_, ok = tk.peek()
	test.ExpectFailure(t, ok)

	// comments and empty lines have no tokens
	test.ExpectEquality(t, tokeniseInput("# CHECK 0x0 M R").num(), 0)
	test.ExpectEquality(t, tokeniseInput("   ").num(), 0)

	// a lone dollar sign is not a hex value
	test.ExpectEquality(t, tokeniseInput("LOG $").String(), "LOG $")
}

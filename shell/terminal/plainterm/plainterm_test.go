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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pmpcheck/shell/terminal"
	"github.com/jetsetilly/pmpcheck/shell/terminal/plainterm"
	"github.com/jetsetilly/pmpcheck/test"
)

func TestPlainTerminal(t *testing.T) {
	tw := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("CHECK 0x0 M R\n"), tw)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())
	test.ExpectFailure(t, pt.IsRealTerminal())

	// no prompt is printed because the input is not a real terminal
	buffer := make([]byte, 256)
	n, err := pt.TermRead(buffer, terminal.Prompt{Content: "boot"}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buffer[:n]), "CHECK 0x0 M R\n")
	test.ExpectEquality(t, tw.String(), "")

	pt.TermPrintLine(terminal.StyleEcho, "CHECK 0x0 M R")
	pt.TermPrintLine(terminal.StyleFeedback, "Access Allowed")
	pt.TermPrintLine(terminal.StyleError, "bad address")
	test.ExpectEquality(t, tw.String(), "Access Allowed\n* bad address\n")

	tw.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "Access Allowed")
	pt.TermPrintLine(terminal.StyleError, "bad address")
	test.ExpectEquality(t, tw.String(), "* bad address\n")
}

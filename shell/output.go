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
	"strings"

	"github.com/jetsetilly/pmpcheck/shell/terminal"
)

// styleWriter is an io.Writer that sends every complete line written to it to
// the terminal in the specified style.
type styleWriter struct {
	term    terminal.Output
	style   terminal.Style
	partial strings.Builder
}

func (sw *styleWriter) Write(p []byte) (int, error) {
	sw.partial.Write(p)

	s := sw.partial.String()
	i := strings.LastIndexByte(s, '\n')
	if i < 0 {
		return len(p), nil
	}

	for _, l := range strings.Split(s[:i], "\n") {
		sw.term.TermPrintLine(sw.style, l)
	}

	sw.partial.Reset()
	sw.partial.WriteString(s[i+1:])

	return len(p), nil
}

// flush prints any incomplete line.
func (sw *styleWriter) flush() {
	if sw.partial.Len() > 0 {
		sw.term.TermPrintLine(sw.style, sw.partial.String())
		sw.partial.Reset()
	}
}

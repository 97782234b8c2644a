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
	"fmt"
	"strings"
)

type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

func (tk tokens) all() []string {
	return tk.tokens
}

func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk tokens) num() int {
	return len(tk.tokens)
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func (tk tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// tokeniseInput divides the input into space separated tokens. the first
// token, the command keyword, is normalised to upper case. hex values
// written with the $ prefix are normalised to the 0x prefix.
func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "#") {
		return tk
	}

	tk.tokens = strings.Fields(input)

	for i := range tk.tokens {
		if strings.HasPrefix(tk.tokens[i], "$") && len(tk.tokens[i]) > 1 {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	if len(tk.tokens) > 0 {
		tk.tokens[0] = strings.ToUpper(tk.tokens[0])
	}

	return tk
}

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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt so that
// repeated calls to Complete() cycle through the possible completions.
type TabCompletion struct {
	cmds *Commands

	matches   []string
	matchIdx  int
	prefix    string
	lastGuess string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{
		cmds: cmds,
	}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the templates. Repeated calls
// to Complete() without an intervening call to Reset() cycle through the
// possible matches.
func (tc *TabCompletion) Complete(input string) string {
	// continue cycling through matches of the previous attempt
	if len(tc.matches) > 0 && input == tc.lastGuess {
		tc.matchIdx = (tc.matchIdx + 1) % len(tc.matches)
		tc.lastGuess = tc.prefix + tc.matches[tc.matchIdx] + " "
		return tc.lastGuess
	}

	tc.Reset()

	words := strings.Fields(input)
	if len(words) == 0 {
		return input
	}

	// completing a new word if the input ends with a space
	if strings.HasSuffix(input, " ") {
		words = append(words, "")
	}

	last := strings.ToUpper(words[len(words)-1])

	var candidates []string
	if len(words) == 1 {
		candidates = tc.cmds.Keywords()
	} else {
		i, ok := tc.cmds.index[strings.ToUpper(words[0])]
		if !ok {
			return input
		}
		items := tc.cmds.cmds[i].items()
		arg := len(words) - 2
		if arg >= len(items) {
			return input
		}
		candidates = items[arg].choices
	}

	for _, c := range candidates {
		if strings.HasPrefix(c, last) {
			tc.matches = append(tc.matches, c)
		}
	}
	if len(tc.matches) == 0 {
		return input
	}

	// the command keyword is normalised. other arguments are preserved as
	// typed
	if len(words) > 1 {
		words[0] = strings.ToUpper(words[0])
		tc.prefix = strings.Join(words[:len(words)-1], " ") + " "
	}

	tc.lastGuess = tc.prefix + tc.matches[0] + " "
	return tc.lastGuess
}

// Reset is used to clear an outstanding completion.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.matchIdx = 0
	tc.prefix = ""
	tc.lastGuess = ""
}

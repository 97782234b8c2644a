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

package colorterm

import (
	"unicode"
)

// lineEditor holds the state of the line being edited by TermRead().
type lineEditor struct {
	line   []rune
	cursor int

	// history is not owned by the editor. histIdx is len(history) when the
	// user is editing a new line
	history []string
	histIdx int

	// the line being edited before the user started browsing history
	pending []rune
}

func newLineEditor(history []string) *lineEditor {
	return &lineEditor{
		line:    make([]rune, 0, 80),
		history: history,
		histIdx: len(history),
	}
}

func (ed *lineEditor) String() string {
	return string(ed.line)
}

// insert a printable character at the cursor position. returns false if the
// character was not inserted.
func (ed *lineEditor) insert(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	ed.line = append(ed.line, 0)
	copy(ed.line[ed.cursor+1:], ed.line[ed.cursor:])
	ed.line[ed.cursor] = r
	ed.cursor++
	return true
}

// backspace removes the character before the cursor.
func (ed *lineEditor) backspace() bool {
	if ed.cursor == 0 {
		return false
	}
	ed.line = append(ed.line[:ed.cursor-1], ed.line[ed.cursor:]...)
	ed.cursor--
	return true
}

// delete removes the character under the cursor.
func (ed *lineEditor) delete() bool {
	if ed.cursor >= len(ed.line) {
		return false
	}
	ed.line = append(ed.line[:ed.cursor], ed.line[ed.cursor+1:]...)
	return true
}

func (ed *lineEditor) left() bool {
	if ed.cursor == 0 {
		return false
	}
	ed.cursor--
	return true
}

func (ed *lineEditor) right() bool {
	if ed.cursor >= len(ed.line) {
		return false
	}
	ed.cursor++
	return true
}

func (ed *lineEditor) home() {
	ed.cursor = 0
}

func (ed *lineEditor) end() {
	ed.cursor = len(ed.line)
}

// set replaces the line and places the cursor at the end.
func (ed *lineEditor) set(s string) {
	ed.line = append(ed.line[:0], []rune(s)...)
	ed.cursor = len(ed.line)
}

// historyUp replaces the line with the previous entry in the history.
func (ed *lineEditor) historyUp() bool {
	if ed.histIdx == 0 {
		return false
	}
	if ed.histIdx == len(ed.history) {
		ed.pending = append(ed.pending[:0], ed.line...)
	}
	ed.histIdx--
	ed.set(ed.history[ed.histIdx])
	return true
}

// historyDown replaces the line with the next entry in the history, or with
// the line that was being edited before browsing started.
func (ed *lineEditor) historyDown() bool {
	if ed.histIdx >= len(ed.history) {
		return false
	}
	ed.histIdx++
	if ed.histIdx == len(ed.history) {
		ed.set(string(ed.pending))
	} else {
		ed.set(ed.history[ed.histIdx])
	}
	return true
}

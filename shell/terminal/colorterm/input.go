//go:build unix

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
	"io"
	"os"
	"unicode/utf8"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/shell/terminal"
	"github.com/jetsetilly/pmpcheck/shell/terminal/colorterm/easyterm"
	"github.com/jetsetilly/pmpcheck/shell/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if err := ct.EasyTerm.CBreakMode(); err != nil {
		return 0, err
	}
	defer func() {
		_ = ct.EasyTerm.CanonicalMode()
	}()

	ed := newLineEditor(ct.commandHistory)
	p := prompt.String()

	redraw := func() {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(ed.String())
		ct.EasyTerm.TermPrint(ansi.CursorMove(ed.cursor - len(ed.line)))
		_ = ct.EasyTerm.Flush()
	}

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	redraw()

	var signal chan os.Signal
	if events != nil {
		signal = events.Signal
	}

	// escape sequences are collected over more than one rune
	var esc []rune

	for {
		var rr readRune

		select {
		case sig := <-signal:
			ct.EasyTerm.TermPrint("\n")
			_ = ct.EasyTerm.Flush()
			return 0, events.Handle(sig)
		case rr = <-ct.reader:
		}

		if rr.err != nil {
			return 0, rr.err
		}
		r := rr.r

		if esc != nil {
			esc = append(esc, r)
			if !ct.escape(ed, esc) {
				esc = nil
				redraw()
			}
			continue // for loop
		}

		// any key other than tab ends the current round of tab completion
		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			_ = ct.EasyTerm.Flush()
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(ed.line) == 0 {
				ct.EasyTerm.TermPrint("\n")
				_ = ct.EasyTerm.Flush()
				return 0, io.EOF
			}

		case easyterm.KeySuspend:
			easyterm.SuspendProcess()

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				ed.set(ct.tabCompletion.Complete(ed.String()))
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")
			_ = ct.EasyTerm.Flush()

			s := ed.String()
			ct.addHistory(s)

			// leave room for the line terminator
			n := 0
			for _, r := range s {
				if n+utf8.RuneLen(r) >= len(buffer) {
					break // for loop
				}
				n += utf8.EncodeRune(buffer[n:], r)
			}
			buffer[n] = '\n'
			return n + 1, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			ed.backspace()

		case easyterm.KeyEsc:
			esc = []rune{}

		default:
			if !easyterm.IsControl(r) {
				ed.insert(r)
			}
		}

		redraw()
	}
}

// escape handles the runes following KeyEsc. returns true if more runes are
// required to complete the sequence.
func (ct *ColorTerminal) escape(ed *lineEditor, esc []rune) bool {
	if esc[0] != easyterm.EscCursor {
		return false
	}
	if len(esc) < 2 {
		return true
	}

	switch esc[1] {
	case easyterm.CursorUp:
		ed.historyUp()
	case easyterm.CursorDown:
		ed.historyDown()
	case easyterm.CursorForward:
		ed.right()
	case easyterm.CursorBackward:
		ed.left()
	case easyterm.EscHome:
		ed.home()
	case easyterm.EscEnd:
		ed.end()
	case easyterm.EscDelete:
		// delete key is ESC [ 3 ~
		if len(esc) < 3 {
			return true
		}
		ed.delete()
	}

	return false
}

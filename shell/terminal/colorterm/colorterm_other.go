//go:build !unix

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
	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/shell/terminal"
)

// ColorTerminal is not supported on this platform. Initialise() will always
// return an error.
type ColorTerminal struct{}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{}
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: not supported on this platform")
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(terminal.TabCompletion) {}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(bool) {}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return false
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(terminal.Style, string) {}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead([]byte, terminal.Prompt, *terminal.ReadEvents) (int, error) {
	return 0, curated.Errorf("colorterm: not supported on this platform")
}

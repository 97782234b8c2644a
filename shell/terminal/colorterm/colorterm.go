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

// Package colorterm implements the Terminal interface for the pmpcheck shell.
// It supports color output, history and tab completion.
package colorterm

import (
	"os"

	"github.com/jetsetilly/pmpcheck/shell/terminal"
	"github.com/jetsetilly/pmpcheck/shell/terminal/colorterm/easyterm"
)

// maximum number of entries in the command history.
const maxHistory = 100

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader runeReader

	commandHistory []string
	tabCompletion  terminal.TabCompletion

	silenced bool
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{}
}

// Initialise performs any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0, maxHistory)
	ct.reader = initRuneReader(os.Stdin)

	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// addHistory appends the input to the command history. consecutive duplicates
// are not added.
func (ct *ColorTerminal) addHistory(input string) {
	if input == "" {
		return
	}
	if len(ct.commandHistory) > 0 && ct.commandHistory[len(ct.commandHistory)-1] == input {
		return
	}
	ct.commandHistory = append(ct.commandHistory, input)
	if len(ct.commandHistory) > maxHistory {
		ct.commandHistory = ct.commandHistory[1:]
	}
}

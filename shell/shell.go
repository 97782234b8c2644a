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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/logger"
	"github.com/jetsetilly/pmpcheck/paths"
	"github.com/jetsetilly/pmpcheck/prefs"
	"github.com/jetsetilly/pmpcheck/shell/commandline"
	"github.com/jetsetilly/pmpcheck/shell/terminal"
	"github.com/jetsetilly/pmpcheck/tableloader"
)

// size of the buffer handed to TermRead()
const inputBufferSize = 256

// Shell is the interactive front end to a PMP table.
type Shell struct {
	term terminal.Terminal

	cmds *commandline.Commands
	tab  *commandline.TabCompletion

	// Prefs is exported so that the preferences can be changed before the
	// input loop is started
	Prefs *Preferences

	// the table under test. always non-nil. an all-zero table until a table
	// has been loaded
	table    *pmp.Table
	loader   tableloader.Loader
	loaded   bool
	modified bool

	events terminal.ReadEvents

	// set to false by the QUIT command
	running bool
}

// NewShell is the preferred method of initialisation for the Shell type.
//
// The prefsFile argument is the path of the preferences file. If it is empty
// the default file in the pmpcheck resource directory is used.
func NewShell(term terminal.Terminal, prefsFile string) (*Shell, error) {
	sh := &Shell{
		term:  term,
		table: &pmp.Table{},
	}
	sh.events = terminal.NewReadEvents(sh.handleSignal)

	var err error

	sh.cmds, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, curated.Errorf("shell: %v", err)
	}
	err = sh.cmds.AddHelp(cmdHelp, helps)
	if err != nil {
		return nil, curated.Errorf("shell: %v", err)
	}
	sh.tab = commandline.NewTabCompletion(sh.cmds)

	if prefsFile == "" {
		prefsFile, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("shell: %v", err)
		}
	}

	sh.Prefs, err = newPreferences(sh, prefsFile)
	if err != nil {
		return nil, curated.Errorf("shell: %v", err)
	}

	return sh, nil
}

// Load a table file into the shell, replacing the current table.
func (sh *Shell) Load(filename string) error {
	ld := tableloader.NewLoader(filename)
	t, err := ld.Load()
	if err != nil {
		return err
	}

	sh.table = t
	sh.loader = ld
	sh.loaded = true
	sh.modified = false

	logger.Logf(logger.Allow, "shell", "loaded %s", ld.Filename)

	return nil
}

// Table returns the table under test.
func (sh *Shell) Table() *pmp.Table {
	return sh.table
}

func (sh *Shell) handleSignal(sig os.Signal) error {
	if sig == os.Interrupt {
		return curated.Errorf(terminal.UserInterrupt)
	}
	return nil
}

func (sh *Shell) buildPrompt() terminal.Prompt {
	p := terminal.Prompt{
		Type:     terminal.PromptTypeCommand,
		Modified: sh.modified,
	}
	if sh.loaded {
		p.Content = sh.loader.ShortName()
	} else {
		p.Content = "no table"
	}
	return p
}

// Start the input loop. The function returns when the QUIT command is
// entered or when the input is exhausted.
func (sh *Shell) Start() error {
	err := sh.term.Initialise()
	if err != nil {
		return curated.Errorf("shell: %v", err)
	}
	defer sh.term.CleanUp()

	sh.term.RegisterTabCompletion(sh.tab)

	signal.Notify(sh.events.Signal, os.Interrupt)
	defer signal.Stop(sh.events.Signal)

	defer logger.SetEcho(nil)

	buffer := make([]byte, inputBufferSize)

	// input that has been read but which has not yet been terminated by a
	// newline
	var pending strings.Builder

	sh.running = true
	sh.applyEcho(sh.Prefs.EchoLog.Get().(bool))

	for sh.running {
		n, err := sh.term.TermRead(buffer, sh.buildPrompt(), &sh.events)

		// a read can return data alongside an error
		if n > 0 {
			pending.Write(buffer[:n])
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				sh.processPending(&pending, true)
				return nil
			}

			if curated.Is(err, terminal.UserInterrupt) {
				// the input loop is left by an interrupt only when there is
				// nobody there to type QUIT
				if !sh.term.IsInteractive() {
					return nil
				}
				pending.Reset()
				sh.term.TermPrintLine(terminal.StyleFeedback, "use QUIT to leave the shell")
				continue // for loop
			}

			if curated.Is(err, terminal.UserAbort) {
				return nil
			}

			return curated.Errorf("shell: %v", err)
		}

		sh.processPending(&pending, false)
	}

	return nil
}

// processPending executes every newline terminated line in pending. The
// unterminated remainder is left in pending unless final is true, in which
// case it is executed too.
func (sh *Shell) processPending(pending *strings.Builder, final bool) {
	s := pending.String()
	pending.Reset()

	i := strings.LastIndexByte(s, '\n')
	if final {
		i = len(s)
	} else {
		pending.WriteString(s[i+1:])
	}
	if i < 0 {
		return
	}

	for _, l := range strings.Split(s[:i], "\n") {
		if !sh.running {
			return
		}
		sh.processInput(l)
	}
}

// processInput handles a single line of input.
func (sh *Shell) processInput(input string) {
	input = strings.TrimRight(input, "\r\x00")

	tokens := tokeniseInput(input)
	if tokens.num() == 0 {
		return
	}

	sh.term.TermPrintLine(terminal.StyleEcho, input)

	if err := sh.cmds.Validate(tokens.all()); err != nil {
		sh.printError(err)
		return
	}

	if err := sh.parseCommand(tokens); err != nil {
		sh.printError(err)
	}
}

func (sh *Shell) printError(err error) {
	logger.Log(logger.Allow, "shell", err)
	sh.term.TermPrintLine(terminal.StyleError, err.Error())
}

func (sh *Shell) printLine(style terminal.Style, s string, a ...any) {
	sh.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// applyEcho sends new log entries to the terminal.
func (sh *Shell) applyEcho(echo bool) {
	if echo {
		logger.SetEcho(&styleWriter{term: sh.term, style: terminal.StyleLog})
	} else {
		logger.SetEcho(nil)
	}
}

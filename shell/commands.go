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
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/logger"
	"github.com/jetsetilly/pmpcheck/paths"
	"github.com/jetsetilly/pmpcheck/query"
	"github.com/jetsetilly/pmpcheck/regionmap"
	"github.com/jetsetilly/pmpcheck/script"
	"github.com/jetsetilly/pmpcheck/shell/terminal"
	"github.com/jetsetilly/pmpcheck/tableloader"
)

// Sentinal error patterns.
const (
	BadIndex  = "shell: entry index must be between 0 and %d (%s)"
	BadConfig = "shell: configuration byte must be between 0x00 and 0xff (%s)"
	SaveError = "shell: could not save table: %v"
)

// extension given to table files saved without a filename.
const tableExtension = ".pmp"

// parseCommand dispatches the tokens, which have already been validated
// against the command templates.
func (sh *Shell) parseCommand(tokens *tokens) error {
	command, _ := tokens.get()

	switch command {
	default:
		return curated.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		keyword, ok := tokens.get()
		if ok {
			sh.printLine(terminal.StyleHelp, "%s", sh.cmds.Help(keyword))
		} else {
			sh.printLine(terminal.StyleHelp, "%s", sh.cmds.HelpOverview())
		}

	case cmdQuit:
		sh.running = false

	case cmdCheck:
		return sh.check(tokens)

	case cmdRegions:
		all, _ := tokens.get()
		sw := &styleWriter{term: sh.term, style: terminal.StyleTable}
		err := regionmap.Write(sw, sh.table, strings.ToUpper(all) == "ALL")
		sw.flush()
		return err

	case cmdEntry:
		return sh.entry(tokens)

	case cmdLoad:
		filename, _ := tokens.get()
		if err := sh.Load(filename); err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "table loaded from %s", sh.loader.Filename)

	case cmdSave:
		return sh.save(tokens)

	case cmdScript:
		filename, _ := tokens.get()
		sw := &styleWriter{term: sh.term, style: terminal.StyleFeedback}
		res, err := script.Run(filename, sh.table, sw)
		sw.flush()
		if err != nil {
			return err
		}
		if res.Failed > 0 {
			sh.printLine(terminal.StyleFault, "%s", res)
		} else {
			sh.printLine(terminal.StyleAllowed, "%s", res)
		}

	case cmdLog:
		n := sh.Prefs.LogTail.Get().(int)
		if arg, ok := tokens.get(); ok {
			v, err := strconv.Atoi(arg)
			if err != nil || v < 0 {
				return curated.Errorf("LOG: count must be a positive number (%s)", arg)
			}
			n = v
		}
		sw := &styleWriter{term: sh.term, style: terminal.StyleLog}
		logger.Tail(sw, n)
		sw.flush()

	case cmdPref:
		return sh.pref(tokens)
	}

	return nil
}

func (sh *Shell) check(tokens *tokens) error {
	args := tokens.all()[1:]
	q, err := query.Parse(args)
	if err != nil {
		return err
	}

	d := sh.table.Explain(q)
	if d.Verdict == pmp.Allowed {
		sh.printLine(terminal.StyleAllowed, "Access Allowed")
	} else {
		sh.printLine(terminal.StyleFault, "Access fault")
	}

	if sh.Prefs.Explain.Get().(bool) {
		sh.printLine(terminal.StyleFeedback, "%s", d)
	}

	logger.Logf(logger.Allow, "shell", "%s: %s", q, d.Verdict)

	return nil
}

func (sh *Shell) entry(tokens *tokens) error {
	arg, _ := tokens.get()
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 0 || idx >= pmp.NumEntries {
		return curated.Errorf(BadIndex, pmp.NumEntries-1, arg)
	}

	if tokens.remaining() > 0 {
		cfgArg, _ := tokens.get()
		cfg, err := query.ParseAddress(cfgArg)
		if err != nil || cfg > 0xff {
			return curated.Errorf(BadConfig, cfgArg)
		}

		addrArg, _ := tokens.get()
		addr, err := query.ParseAddress(addrArg)
		if err != nil {
			return err
		}

		sh.table[idx] = pmp.Entry{Config: pmp.Config(cfg), Address: addr}
		sh.modified = true

		logger.Logf(logger.Allow, "shell", "entry %d set to %s", idx, sh.table[idx])
	}

	e := sh.table[idx]
	r := sh.table.Regions()[idx]
	sh.printLine(terminal.StyleTable, "%2d  %s  %#016x  %s", idx, e.Config, e.Address, r)

	return nil
}

func (sh *Shell) save(tokens *tokens) error {
	filename, ok := tokens.get()
	if !ok {
		if sh.loaded {
			filename = sh.loader.Filename
		} else {
			filename = fmt.Sprintf("%s%s", paths.UniqueFilename("table", ""), tableExtension)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	err = tableloader.Write(f, sh.table)
	if err != nil {
		f.Close()
		return curated.Errorf(SaveError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(SaveError, err)
	}

	sh.loader = tableloader.NewLoader(filename)
	sh.loaded = true
	sh.modified = false

	logger.Logf(logger.Allow, "shell", "saved %s", filename)
	sh.printLine(terminal.StyleFeedback, "table saved to %s", filename)

	return nil
}

func (sh *Shell) pref(tokens *tokens) error {
	key, ok := tokens.get()
	if !ok {
		for _, l := range strings.Split(strings.TrimSpace(sh.Prefs.String()), "\n") {
			sh.printLine(terminal.StyleFeedback, "%s", l)
		}
		return nil
	}

	value, ok := tokens.get()
	if !ok {
		switch strings.ToUpper(key) {
		case "SAVE":
			if err := sh.Prefs.Save(); err != nil {
				return err
			}
			sh.printLine(terminal.StyleFeedback, "preferences saved")
			return nil
		case "LOAD":
			if err := sh.Prefs.Load(); err != nil {
				return err
			}
			sh.printLine(terminal.StyleFeedback, "preferences loaded")
			return nil
		}

		v, err := sh.Prefs.dsk.Get(key)
		if err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "%s :: %v", key, v)
		return nil
	}

	if err := sh.Prefs.dsk.Set(key, value); err != nil {
		return err
	}
	v, _ := sh.Prefs.dsk.Get(key)
	sh.printLine(terminal.StyleFeedback, "%s :: %v", key, v)

	return nil
}

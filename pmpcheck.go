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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/logger"
	"github.com/jetsetilly/pmpcheck/modalflag"
	"github.com/jetsetilly/pmpcheck/prefs"
	"github.com/jetsetilly/pmpcheck/query"
	"github.com/jetsetilly/pmpcheck/regionmap"
	"github.com/jetsetilly/pmpcheck/regression"
	"github.com/jetsetilly/pmpcheck/script"
	"github.com/jetsetilly/pmpcheck/shell"
	"github.com/jetsetilly/pmpcheck/shell/terminal"
	"github.com/jetsetilly/pmpcheck/shell/terminal/colorterm"
	"github.com/jetsetilly/pmpcheck/shell/terminal/plainterm"
	"github.com/jetsetilly/pmpcheck/statsview"
	"github.com/jetsetilly/pmpcheck/tableloader"
	"github.com/jetsetilly/pmpcheck/version"
	"golang.org/x/term"
)

// exit status values.
const (
	exitOK      = 0
	exitUsage   = 1
	exitLoad    = 2
	exitFault   = 3
	exitScript  = 4
	exitRegress = 5
	exitOther   = 10
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// launch is separate from main() so that it can be tested. the return value
// is the exit status of the program.
func launch(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CHECK", "REGIONS", "SCRIPT", "SHELL", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitUsage
	}

	// the status returned by a mode is ignored if there is also an error
	status := exitOK

	switch md.Mode() {
	case "CHECK":
		status, err = check(md, stdout, stderr)

	case "REGIONS":
		err = regions(md, stdout)

	case "SCRIPT":
		status, err = runScript(md, stdout, stderr)

	case "SHELL":
		err = runShell(md, stdin, stdout)

	case "REGRESS":
		status, err = regress(md, stdin, stdout)

	case "VERSION":
		err = showVersion(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.Mode(), err)
		return exitStatus(err)
	}

	return status
}

// exitStatus returns the exit status for the class of error.
func exitStatus(err error) int {
	for _, pattern := range []string{
		query.BadAddress,
		query.BadPrivilege,
		query.BadOperation,
		query.WrongArgCount,
		modalflag.ArgCount,
		modalflag.FlagError,
		regression.InvalidKey,
	} {
		if curated.Has(err, pattern) {
			return exitUsage
		}
	}

	for _, pattern := range []string{
		tableloader.Truncated,
		tableloader.Malformed,
		tableloader.FileError,
	} {
		if curated.Has(err, pattern) {
			return exitLoad
		}
	}

	return exitOther
}

// parseMode parses the flags of a mode that has no sub-modes. returns false if
// processing should stop, which may be because help has been printed.
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, err
	}
	return true, nil
}

func loadTable(filename string) (*pmp.Table, error) {
	ld := tableloader.NewLoader(filename)
	return ld.Load()
}

func check(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) (int, error) {
	md.NewMode()
	md.Usage("<table file> <0xaddress> <M|S|U> <R|W|X>")

	log := md.AddBool("log", false, "echo log to stderr")
	explain := md.AddBool("explain", false, "print the deciding entry and the reason for the verdict")
	status := md.AddBool("status", false, "exit with a non-zero status if the access faults")

	if ok, err := parseMode(md); !ok {
		return 0, err
	}

	if *log {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	if err := md.ExpectArgs(4, 4); err != nil {
		return 0, err
	}

	q, err := query.Parse(md.RemainingArgs()[1:])
	if err != nil {
		return 0, err
	}

	t, err := loadTable(md.GetArg(0))
	if err != nil {
		return 0, err
	}

	d := t.Explain(q)
	if d.Verdict == pmp.Allowed {
		fmt.Fprintln(stdout, "Access Allowed")
	} else {
		fmt.Fprintln(stdout, "Access fault")
	}

	if *explain {
		fmt.Fprintln(stdout, d)
	}

	logger.Logf(logger.Allow, "pmpcheck", "%s: %s", q, d)

	if *status && d.Verdict == pmp.Fault {
		return exitFault, nil
	}

	return exitOK, nil
}

func regions(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	md.Usage("<table file>")

	all := md.AddBool("all", false, "include disabled entries")
	memviz := md.AddString("memviz", "", "write a graphviz rendering of the table to the named file")

	if ok, err := parseMode(md); !ok {
		return err
	}

	if err := md.ExpectArgs(1, 1); err != nil {
		return err
	}

	t, err := loadTable(md.GetArg(0))
	if err != nil {
		return err
	}

	if err := regionmap.Write(stdout, t, *all); err != nil {
		return err
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		regionmap.Graph(f, t)
	}

	return nil
}

func runScript(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) (int, error) {
	md.NewMode()
	md.Usage("<table file> <script file>")

	log := md.AddBool("log", false, "echo log to stderr")

	if ok, err := parseMode(md); !ok {
		return 0, err
	}

	if *log {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	if err := md.ExpectArgs(2, 2); err != nil {
		return 0, err
	}

	t, err := loadTable(md.GetArg(0))
	if err != nil {
		return 0, err
	}

	res, err := script.Run(md.GetArg(1), t, stdout)
	if err != nil {
		return 0, err
	}

	fmt.Fprintln(stdout, res)

	if res.Failed > 0 {
		return exitScript, nil
	}

	return exitOK, nil
}

func runShell(md *modalflag.Modes, stdin io.Reader, stdout io.Writer) error {
	md.NewMode()
	md.Usage("[table file]")

	termType := md.AddString("term", "", "terminal type to use in shell mode: COLOR, PLAIN (default depends on the terminal)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsOverride := md.AddString("prefs", "", "preference values to use for this session: key::value; key::value")

	if ok, err := parseMode(md); !ok {
		return err
	}

	if err := md.ExpectArgs(0, 1); err != nil {
		return err
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	if *stats {
		statsview.Launch(stdout)
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		trm = colorterm.NewColorTerminal()
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(stdin, stdout)
	case "":
		if isTerminal(stdin) && isTerminal(stdout) {
			trm = colorterm.NewColorTerminal()
		} else {
			trm = plainterm.NewPlainTerminal(stdin, stdout)
		}
	default:
		fmt.Fprintf(stdout, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		trm = plainterm.NewPlainTerminal(stdin, stdout)
	}

	sh, err := shell.NewShell(trm, "")
	if err != nil {
		return err
	}

	if md.GetArg(0) != "" {
		if err := sh.Load(md.GetArg(0)); err != nil {
			return err
		}
	}

	return sh.Start()
}

func regress(md *modalflag.Modes, stdin io.Reader, stdout io.Writer) (int, error) {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	if ok, err := parseMode(md); !ok {
		return 0, err
	}

	dbPath, err := regression.DefaultDBPath()
	if err != nil {
		return 0, err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		md.Usage("[key ...|FAILS]")

		verbose := md.AddBool("verbose", false, "output more detail (eg. the reason for a failure)")
		db := md.AddString("db", dbPath, "regression database file")

		if ok, err := parseMode(md); !ok {
			return 0, err
		}

		sum, err := regression.RegressRun(stdout, *verbose, *db, md.RemainingArgs())
		if err != nil {
			return 0, err
		}
		if !sum.Passed() {
			return exitRegress, nil
		}

	case "LIST":
		md.NewMode()

		db := md.AddString("db", dbPath, "regression database file")

		if ok, err := parseMode(md); !ok {
			return 0, err
		}

		if err := md.ExpectArgs(0, 0); err != nil {
			return 0, err
		}

		if err := regression.RegressList(stdout, *db); err != nil {
			return 0, err
		}

	case "DELETE":
		md.NewMode()
		md.Usage("<key>")

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")
		db := md.AddString("db", dbPath, "regression database file")

		if ok, err := parseMode(md); !ok {
			return 0, err
		}

		if err := md.ExpectArgs(1, 1); err != nil {
			return 0, err
		}

		// use stdin for confirmation unless "yes" flag has been sent
		confirmation := stdin
		if *answerYes {
			confirmation = &yesReader{}
		}

		if err := regression.RegressDelete(stdout, confirmation, *db, md.GetArg(0)); err != nil {
			return 0, err
		}

	case "ADD":
		md.NewMode()
		md.Usage("<table file> <0xaddress> <M|S|U> <R|W|X>")

		notes := md.AddString("notes", "", "additional annotation for the database")
		db := md.AddString("db", dbPath, "regression database file")

		md.AdditionalHelp(`The access is checked against the table when the entry is added and the
verdict is recorded as the expected result. The table is fingerprinted so that
changes to the table file are detected by later runs.`)

		if ok, err := parseMode(md); !ok {
			return 0, err
		}

		if err := md.ExpectArgs(4, 4); err != nil {
			return 0, err
		}

		q, err := query.Parse(md.RemainingArgs()[1:])
		if err != nil {
			return 0, err
		}

		reg := &regression.CheckRegression{
			Table: md.GetArg(0),
			Query: q,
			Notes: *notes,
		}

		if err := regression.RegressAdd(stdout, *db, reg); err != nil {
			return 0, err
		}
	}

	return exitOK, nil
}

// yesReader always returns 'y' when it is read.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = 'y'
	return 1, nil
}

func showVersion(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()

	if ok, err := parseMode(md); !ok {
		return err
	}

	if err := md.ExpectArgs(0, 0); err != nil {
		return err
	}

	fmt.Fprintln(stdout, version.Version())

	return nil
}

func isTerminal(v any) bool {
	if f, ok := v.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

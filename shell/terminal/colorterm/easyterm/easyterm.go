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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Sentinal error patterns.
const (
	TermiosError = "easyterm: %v"
)

// TermGeometry is the width and height of the terminal.
type TermGeometry struct {
	Width  uint16
	Height uint16
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *bufio.Writer
	outFd  uintptr

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the EasyTerm struct. The terminal attributes of
// the input file are recorded so that the terminal can be returned to
// canonical mode with CleanUp().
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || outputFile == nil {
		return curated.Errorf(TermiosError, "input and output must both be specified")
	}

	et.input = inputFile
	et.output = bufio.NewWriter(outputFile)
	et.outFd = outputFile.Fd()

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return curated.Errorf(TermiosError, err)
	}

	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	_ = et.Flush()
	_ = et.CanonicalMode()
}

// Geometry returns the current width and height of the terminal.
func (et *EasyTerm) Geometry() (TermGeometry, error) {
	ws, err := unix.IoctlGetWinsize(int(et.outFd), unix.TIOCGWINSZ)
	if err != nil {
		return TermGeometry{}, curated.Errorf(TermiosError, err)
	}
	return TermGeometry{Width: ws.Col, Height: ws.Row}, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() error {
	return et.setAttr(&et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() error {
	return et.setAttr(&et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() error {
	return et.setAttr(&et.cbreakAttr)
}

func (et *EasyTerm) setAttr(attr *unix.Termios) error {
	if et.input == nil {
		return nil
	}
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, attr); err != nil {
		return curated.Errorf(TermiosError, err)
	}
	return nil
}

// TermPrint writes string to the output buffer. The buffer is not flushed
// until Flush() is called.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}

// Flush makes sure the terminal's output buffer has been sent to the terminal.
func (et *EasyTerm) Flush() error {
	if et.output == nil {
		return nil
	}
	return et.output.Flush()
}

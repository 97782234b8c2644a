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

package terminal

import (
	"os"

	"github.com/jetsetilly/pmpcheck/curated"
)

// Patterns returned by TermRead() when the user interrupts or abandons input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Input is implemented by anything the shell can read command lines from.
type Input interface {
	// TermRead fills buffer with the next piece of input and returns the
	// number of bytes written. A complete line ends with a newline. As with
	// io.Reader, data may be returned alongside an error, including io.EOF. Any
	// signal arriving on events while the read is pending should be passed
	// to ReadEvents.Handle() and the result returned.
	TermRead(buffer []byte, prompt Prompt, events *ReadEvents) (int, error)

	// IsInteractive is false for terminals reading from a file or pipe.
	IsInteractive() bool
}

// Output is implemented by anything the shell can print to.
type Output interface {
	TermPrintLine(Style, string)
}

// TabCompletion is implemented by the command line package and given to a
// terminal with RegisterTabCompletion().
type TabCompletion interface {
	Complete(input string) string
	Reset()
}

// Terminal is the full interface used by the shell.
type Terminal interface {
	Input
	Output

	// Initialise prepares the terminal for use. CleanUp undoes whatever
	// Initialise did, for example leaving cbreak mode.
	Initialise() error
	CleanUp()

	RegisterTabCompletion(TabCompletion)

	// Silence suppresses everything other than StyleError output.
	Silence(silenced bool)
}

// ReadEvents carries the asynchronous events a terminal should watch for
// while waiting for input.
type ReadEvents struct {
	Signal        chan os.Signal
	SignalHandler func(os.Signal) error
}

// NewReadEvents creates a ReadEvents instance with a buffered signal
// channel. The handler may be nil, in which case every signal is treated
// as a user interrupt.
func NewReadEvents(handler func(os.Signal) error) ReadEvents {
	return ReadEvents{
		Signal:        make(chan os.Signal, 1),
		SignalHandler: handler,
	}
}

// Handle passes the signal to the SignalHandler.
func (ev *ReadEvents) Handle(sig os.Signal) error {
	if ev.SignalHandler == nil {
		return curated.Errorf(UserInterrupt)
	}
	return ev.SignalHandler(sig)
}

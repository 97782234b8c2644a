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

package test

import (
	"strings"
	"sync"
)

// CompareWriter captures output so that it can be compared with expected
// output. It is safe to write to a CompareWriter from more than one
// goroutine, which is useful when it is being used as the echo writer of a
// logger.
type CompareWriter struct {
	crit   sync.Mutex
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.buffer.Reset()
}

// Compare buffered output with predefined/example string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == tw.String()
}

// Lines returns the buffered output as a list of lines. A trailing newline
// does not produce an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := tw.String()
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// CompareLines compares the buffered output with the list of lines. Each line
// in the buffer must be terminated by a newline.
func (tw *CompareWriter) CompareLines(lines ...string) bool {
	if len(lines) == 0 {
		return tw.Compare("")
	}
	return tw.Compare(strings.Join(lines, "\n") + "\n")
}

func (tw *CompareWriter) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.buffer.String()
}

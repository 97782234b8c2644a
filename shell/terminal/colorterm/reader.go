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
	"bufio"
	"os"
)

type readRune struct {
	r   rune
	err error
}

// runeReader is fed by a goroutine reading from the input file. reading
// through a channel means that TermRead() can wait for input and for signals
// at the same time.
type runeReader chan readRune

func initRuneReader(f *os.File) runeReader {
	ch := make(runeReader)

	go func() {
		b := bufio.NewReader(f)
		for {
			r, _, err := b.ReadRune()
			ch <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return ch
}

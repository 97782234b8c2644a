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

package tableloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/logger"
)

// Sentinal error patterns.
const (
	Truncated = "tableloader: truncated table: %d lines read, %d required"
	Malformed = "tableloader: malformed %s on line %d: %v"
	FileError = "tableloader: %v"

	// reasons given in Malformed errors
	EmptyValue = "empty line"
	NotHex     = "not a 64-bit hex value (%q)"
	NotByte    = "%#x is larger than a byte"
)

// NumLines is the number of lines in a complete table file.
const NumLines = pmp.NumEntries * 2

// maximum value of a configuration byte.
const maxConfig = 0xff

// Loader is used to specify the table file to load.
type Loader struct {
	// filename of the table file
	Filename string

	// number of lines that were ignored after the end of the table. only
	// valid after a successful call to Load()
	Ignored int
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (tl Loader) ShortName() string {
	s := path.Base(tl.Filename)
	return strings.TrimSuffix(s, path.Ext(tl.Filename))
}

// Load the file named in the Loader and decode it into a table.
func (tl *Loader) Load() (*pmp.Table, error) {
	f, err := os.Open(tl.Filename)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	tab, ignored, err := read(f)
	if err != nil {
		return nil, err
	}
	tl.Ignored = ignored

	logger.Logf(logger.Allow, "tableloader", "loaded %s", tl.ShortName())

	return tab, nil
}

// Read a table from the io.Reader.
func Read(r io.Reader) (*pmp.Table, error) {
	tab, _, err := read(r)
	return tab, err
}

func read(r io.Reader) (*pmp.Table, int, error) {
	tab := &pmp.Table{}

	scanner := bufio.NewScanner(r)

	var n int
	for n < NumLines && scanner.Scan() {
		line := n + 1
		v, err := parseHex(scanner.Text())

		if n < pmp.NumEntries {
			if err != nil {
				return nil, 0, curated.Errorf(Malformed, "config", line, err)
			}
			if v > maxConfig {
				return nil, 0, curated.Errorf(Malformed, "config", line, curated.Errorf(NotByte, v))
			}
			tab[n].Config = pmp.Config(v)
		} else {
			if err != nil {
				return nil, 0, curated.Errorf(Malformed, "address", line, err)
			}
			tab[n-pmp.NumEntries].Address = v
		}

		n++
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, curated.Errorf(FileError, err)
	}

	if n < NumLines {
		return nil, 0, curated.Errorf(Truncated, n, NumLines)
	}

	var ignored int
	for scanner.Scan() {
		ignored++
	}
	if ignored > 0 {
		logger.Logf(logger.Allow, "tableloader", "ignored %d lines after end of table", ignored)
	}

	return tab, ignored, nil
}

// parseHex accepts a hexadecimal number with or without the 0x prefix.
func parseHex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return 0, curated.Errorf(EmptyValue)
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, curated.Errorf(NotHex, s)
	}

	return v, nil
}

// Write the table to the io.Writer in the same format as expected by Read().
func Write(w io.Writer, t *pmp.Table) error {
	b := bufio.NewWriter(w)

	for _, e := range t {
		if _, err := fmt.Fprintf(b, "%#02x\n", uint8(e.Config)); err != nil {
			return curated.Errorf(FileError, err)
		}
	}
	for _, e := range t {
		if _, err := fmt.Fprintf(b, "%#x\n", e.Address); err != nil {
			return curated.Errorf(FileError, err)
		}
	}

	if err := b.Flush(); err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

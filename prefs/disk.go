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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/pmpcheck/curated"
)

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	UnknownKey  = "prefs: unknown preference (%s)"
	DiskError   = "prefs: %v"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, KeySep) {
		return curated.Errorf(DiskError, fmt.Sprintf("illegal key (%q)", key))
	}

	dsk.entries[key] = p
	return nil
}

// Keys returns the sorted list of preference keys added to the Disk.
func (dsk *Disk) Keys() []string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	return dsk.keys()
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Set the preference identified by key. Changes are not written to disk until
// Save() is called.
func (dsk *Disk) Set(key string, value Value) error {
	dsk.crit.Lock()
	p, ok := dsk.entries[key]
	dsk.crit.Unlock()

	if !ok {
		return curated.Errorf(UnknownKey, key)
	}

	return p.Set(value)
}

// Get the value of the preference identified by key.
func (dsk *Disk) Get(key string) (Value, error) {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	p, ok := dsk.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries already in the file that
// have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	entries, err := readFile(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, entries[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// priority over the values in the file.
//
// If saveOnFail is true and the file does not exist then a new file is
// created with the current values. Otherwise a missing file is returned as a
// NoPrefsFile error.
func (dsk *Disk) Load(saveOnFail bool) error {
	entries, err := readFile(dsk.path)
	if err != nil {
		if !curated.Is(err, NoPrefsFile) || !saveOnFail {
			return err
		}
		// command line values are for this session only and are applied
		// after the defaults have been written
		if err := dsk.Save(); err != nil {
			return err
		}
		return dsk.applyCommandLine()
	}

	dsk.crit.Lock()
	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				dsk.crit.Unlock()
				return curated.Errorf(DiskError, err)
			}
		}
	}
	dsk.crit.Unlock()

	return dsk.applyCommandLine()
}

func (dsk *Disk) applyCommandLine() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}
	return nil
}

// readFile returns the key/value pairs in the prefs file.
func readFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, path)
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) (map[string]string, error) {
	entries := make(map[string]string)

	scanner := bufio.NewScanner(r)

	// the boilerplate line is required
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, "not a valid prefs file")
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return entries, nil
}

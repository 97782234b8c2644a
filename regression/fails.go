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

package regression

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
)

// the keyword that can be used in place of the list of previous fails.
const failsKeyword = "FAILS"

// the fails file sits alongside the database file.
func failsPath(dbPath string) string {
	return fmt.Sprintf("%s.fails", dbPath)
}

func saveFails(dbPath string, keys []string) error {
	sort.Strings(keys)
	keys = slices.Compact(keys)

	f, err := os.Create(failsPath(dbPath))
	if err != nil {
		return curated.Errorf("regression: save fails: %v", err)
	}

	w := bufio.NewWriter(f)
	for _, v := range keys {
		fmt.Fprintln(w, v)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf("regression: save fails: %v", err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf("regression: save fails: %v", err)
	}

	return nil
}

func loadFails(dbPath string) ([]string, error) {
	b, err := os.ReadFile(failsPath(dbPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return []string{}, curated.Errorf("regression: load fails: %v", err)
	}

	keys := strings.Split(string(b), "\n")

	keys = slices.DeleteFunc(keys, func(s string) bool {
		return len(strings.TrimSpace(s)) == 0
	})

	sort.Strings(keys)
	keys = slices.Compact(keys)

	return keys, nil
}

// addFailsToKeys replaces the FAILS keyword in the list of keys with the
// keys of the entries that failed in the previous run.
func addFailsToKeys(dbPath string, keys []string) ([]string, error) {
	n := slices.IndexFunc(keys, func(s string) bool {
		return strings.ToUpper(s) == failsKeyword
	})
	if n < 0 {
		return keys, nil
	}

	keys = slices.Delete(slices.Clone(keys), n, n+1)

	prevFails, err := loadFails(dbPath)
	if err != nil {
		return keys, err
	}

	if len(prevFails) == 0 {
		return keys, curated.Errorf(NoPreviousFails)
	}

	keys = append(keys, prevFails...)
	sort.Strings(keys)
	keys = slices.Compact(keys)

	return keys, nil
}

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

package database

// SelectAll entries in the database, in key order. onSelect can be nil.
//
// onSelect() should return true if select process is to continue. Continue
// flag is ignored if error is not nil.
//
// Returns the number of entries selected.
func (db Session) SelectAll(onSelect func(key int, ent Entry) (bool, error)) (int, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If the list of keys
// is empty then all keys are matched (SelectAll() may be more appropriate in
// that case). onSelect can be nil. Keys that are not in the database are
// ignored.
//
// Returns the number of entries selected.
func (db Session) SelectKeys(onSelect func(key int, ent Entry) (bool, error), keys ...int) (int, error) {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	filter := make(map[int]bool, len(keys))
	for _, k := range keys {
		filter[k] = true
	}

	var n int
	for _, key := range db.SortedKeyList() {
		if len(filter) > 0 && !filter[key] {
			continue // for loop
		}

		n++
		cont, err := onSelect(key, db.entries[key])
		if err != nil {
			return n, err
		}
		if !cont {
			break // for loop
		}
	}

	return n, nil
}

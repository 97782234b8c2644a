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

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/pmpcheck/curated"
)

// Sentinal error patterns.
const (
	DatabaseError  = "database: %v"
	NotAvailable   = "database: key not available (%d)"
	ReadOnly       = "database: session is read only"
	UnknownType    = "database: unrecognised entry type (%s) on line %d"
	MalformedEntry = "database: malformed record on line %d: %v"
)

// Activity is used to specify the type of activity that will be happening
// during the session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// number of fields at the start of every record.
const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init function is
// called once the database file has been opened but before the entries have
// been read. It should register the entry types.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	var err error
	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, curated.Errorf(DatabaseError, "database file does not exist")
		}
		return nil, curated.Errorf(DatabaseError, err)
	}

	// closing of db.dbfile requires a call to EndSession()

	if err := init(db); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	if err := db.readDBFile(); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Entries are written to the database file
// if commitChanges is true and the session was not started with
// ActivityReading.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return nil
	}

	if commitChanges && db.activity != ActivityReading {
		if err := db.writeDBFile(); err != nil {
			db.dbfile.Close()
			db.dbfile = nil
			return err
		}
	}

	// end session by closing file
	err := db.dbfile.Close()
	db.dbfile = nil
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

func (db *Session) writeDBFile() error {
	if err := db.dbfile.Truncate(0); err != nil {
		return curated.Errorf(DatabaseError, err)
	}
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	w := csv.NewWriter(db.dbfile)

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		rec := make([]string, 0, numLeaderFields+len(ser))
		rec = append(rec, recordKey(key), ent.EntryType())
		rec = append(rec, ser...)

		if err := w.Write(rec); err != nil {
			return curated.Errorf(DatabaseError, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

func recordKey(key int) string {
	return strconv.Itoa(key)
}

func (db *Session) readDBFile() error {
	// clobbers the contents of db.entries
	db.entries = make(map[int]Entry, len(db.entries))

	// make sure we're at the beginning of the file
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	r := csv.NewReader(db.dbfile)

	// each entry type has its own number of fields
	r.FieldsPerRecord = -1

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break // for loop
		}

		if err != nil {
			// csv errors include the line number
			return curated.Errorf(DatabaseError, err)
		}
		line, _ := r.FieldPos(0)

		if len(rec) < numLeaderFields {
			return curated.Errorf(MalformedEntry, line, "missing key or entry type")
		}

		key, err := strconv.Atoi(rec[leaderFieldKey])
		if err != nil || key < 0 {
			return curated.Errorf(MalformedEntry, line, "invalid key")
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf(MalformedEntry, line, "duplicate key")
		}

		deserialise, ok := db.entryTypes[rec[leaderFieldID]]
		if !ok {
			return curated.Errorf(UnknownType, rec[leaderFieldID], line)
		}

		ent, err := deserialise(SerialisedEntry(rec[numLeaderFields:]))
		if err != nil {
			return curated.Errorf(MalformedEntry, line, err)
		}

		db.entries[key] = ent
	}

	return nil
}

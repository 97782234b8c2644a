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

// Package database is a very simple way of storing structured and arbitrary
// entry types. It's as simple as simple can be but is still useful in helping
// to organise what is essentially a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file on the local disk. The
// second argument is a description of the type of activity that will be
// happening during the session. ActivityCreating creates the database file if
// it does not already exist, otherwise it is treated the same as
// ActivityModifying. If we don't want to modify the database at all, then we
// can use ActivityReading.
//
// The third argument is the database initialisation function. The database
// can handle arbitrary entry types and the initialisation function must
// register the types that might be found in the database:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", deserialiseFoo)
//	}
//
// The deserialise function takes the fields of a single record as its only
// argument and returns a new database.Entry:
//
//	func deserialiseFoo(fields database.SerialisedEntry) (database.Entry, error) {
//		ent := &fooEntry{}
//		ent.numOfFoos = fields[0]
//		return ent, nil
//	}
//
// Fields are numbered from zero. The database record contains other fields,
// namely the key and the entry type, but these are not passed to the
// deserialise function.
//
// The database file is a CSV file with one record per line. Fields that
// contain the separator or quotation marks are quoted as required.
package database

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
	"fmt"
	"io"
	"strconv"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/database"
	"github.com/jetsetilly/pmpcheck/logger"
	"github.com/jetsetilly/pmpcheck/paths"
)

// Sentinal error patterns.
const (
	InvalidKey      = "regression: invalid key (%s)"
	NoPreviousFails = "regression: no previous fails"
)

// location of the regression database in the pmpcheck resource directory.
const (
	regressionPath   = "regression"
	regressionDBFile = "db"
)

// DefaultDBPath returns the path of the regression database in the pmpcheck
// resource directory.
func DefaultDBPath() (string, error) {
	return paths.ResourcePath(regressionPath, regressionDBFile)
}

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the
	// newRegression flag is true when the regressor is being added to the
	// database. the string return value explains a failure
	regress(newRegression bool, output io.Writer) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(checkEntryType, deserialiseCheckEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the regression database. The
// confirmation reader is used to confirm the deletion.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	reg, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", reg)

	confirm := make([]byte, 32)
	n, err := confirmation.Read(confirm)
	if err != nil && err != io.EOF {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if n == 0 || (confirm[0] != 'y' && confirm[0] != 'Y') {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)
	logger.Logf(logger.Allow, "regression", "deleted #%03d", v)

	return nil
}

// RegressAdd adds a new regressor to the database. The regressor is run once
// to establish the expected result.
func RegressAdd(output io.Writer, dbPath string, reg Regressor) error {
	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	ok, msg, err := reg.regress(true, output)
	if err != nil || !ok {
		db.EndSession(false)
		if err == nil {
			err = curated.Errorf("regression: %s", msg)
		}
		return err
	}

	key, err := db.Add(reg)
	if err != nil {
		db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "added: #%03d %s\n", key, reg)
	logger.Logf(logger.Allow, "regression", "added #%03d %s", key, reg)

	return nil
}

// Summary of a regression run.
type Summary struct {
	Succeed int
	Fail    int
	Error   int
	Skipped int
}

func (sum Summary) String() string {
	s := fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", sum.Succeed, sum.Fail, sum.Skipped)
	if sum.Error > 0 {
		s = fmt.Sprintf("%s [with %d errors]", s, sum.Error)
	}
	return s
}

// Passed returns true if there were no failures and no errors.
func (sum Summary) Passed() bool {
	return sum.Fail == 0 && sum.Error == 0
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty list means that every entry
// should be tested. The special key FAILS selects the entries that failed in
// the previous run.
func RegressRun(output io.Writer, verbose bool, dbPath string, filterKeys []string) (Summary, error) {
	var sum Summary

	filterKeys, err := addFailsToKeys(dbPath, filterKeys)
	if err != nil {
		return sum, err
	}

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return sum, curated.Errorf(InvalidKey, k)
		}
		keys = append(keys, v)
	}

	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return sum, err
	}
	defer db.EndSession(false)

	var fails []string

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf("regression: database entry #%03d is not a regressor", key)
		}

		ok, msg, err := reg.regress(false, output)

		switch {
		case err != nil:
			sum.Error++
			fails = append(fails, strconv.Itoa(key))
			fmt.Fprintf(output, "  ERROR: #%03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "    %v\n", err)
			}
			logger.Logf(logger.Allow, "regression", "#%03d: %v", key, err)

		case !ok:
			sum.Fail++
			fails = append(fails, strconv.Itoa(key))
			fmt.Fprintf(output, "failure: #%03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "    %s\n", msg)
			}
			logger.Logf(logger.Allow, "regression", "#%03d: %s", key, msg)

		default:
			sum.Succeed++
			fmt.Fprintf(output, "succeed: #%03d %s\n", key, reg)
		}

		return true, nil
	}

	n, err := db.SelectKeys(onSelect, keys...)
	if err != nil {
		return sum, err
	}
	sum.Skipped = db.NumEntries() - n

	fmt.Fprintln(output, sum)

	if err := saveFails(dbPath, fails); err != nil {
		return sum, err
	}

	return sum, nil
}

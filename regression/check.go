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
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/database"
	"github.com/jetsetilly/pmpcheck/digest"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/query"
	"github.com/jetsetilly/pmpcheck/tableloader"
)

const checkEntryType = "check"

// Sentinal error patterns for check entries read from the database.
const (
	CheckFieldCount = "check: wrong number of fields (%d)"
	CheckVerdict    = "check: unrecognised verdict (%s)"
)

// field indexes of a serialised CheckRegression.
const (
	checkFieldTable int = iota
	checkFieldDigest
	checkFieldAddress
	checkFieldPrivilege
	checkFieldOperation
	checkFieldVerdict
	checkFieldNotes
	numCheckFields
)

// CheckRegression is a single access check against a table file.
type CheckRegression struct {
	Table string
	Query pmp.Query
	Notes string

	// set when the regression is added to the database
	digest  string
	verdict pmp.Verdict
}

func deserialiseCheckEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numCheckFields {
		return nil, curated.Errorf(CheckFieldCount, len(fields))
	}

	reg := &CheckRegression{
		Table:  fields[checkFieldTable],
		digest: fields[checkFieldDigest],
		Notes:  fields[checkFieldNotes],
	}

	var err error

	reg.Query, err = query.Parse([]string{
		fields[checkFieldAddress],
		fields[checkFieldPrivilege],
		fields[checkFieldOperation],
	})
	if err != nil {
		return nil, err
	}

	switch fields[checkFieldVerdict] {
	case pmp.Allowed.String():
		reg.verdict = pmp.Allowed
	case pmp.Fault.String():
		reg.verdict = pmp.Fault
	default:
		return nil, curated.Errorf(CheckVerdict, fields[checkFieldVerdict])
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg CheckRegression) EntryType() string {
	return checkEntryType
}

// Serialise implements the database.Entry interface.
func (reg CheckRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Table,
		reg.digest,
		fmt.Sprintf("%#x", reg.Query.Address),
		reg.Query.Privilege.String(),
		reg.Query.Operation.String(),
		reg.verdict.String(),
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg CheckRegression) CleanUp() error {
	// no cleanup necessary
	return nil
}

// String implements the database.Entry interface.
func (reg CheckRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s: %s", reg.EntryType(), shortName(reg.Table), reg.Query))
	if reg.digest != "" {
		s.WriteString(fmt.Sprintf(" is %s", reg.verdict))
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

func shortName(filename string) string {
	return tableloader.NewLoader(filename).ShortName()
}

// regress implements the Regressor interface.
func (reg *CheckRegression) regress(newRegression bool, _ io.Writer) (bool, string, error) {
	ld := tableloader.NewLoader(reg.Table)
	t, err := ld.Load()
	if err != nil {
		return false, "", err
	}

	dig := digest.Of(t)
	d := t.Explain(reg.Query)

	if newRegression {
		reg.digest = dig
		reg.verdict = d.Verdict
		return true, "", nil
	}

	if dig != reg.digest {
		return false, "table has changed", nil
	}

	if d.Verdict != reg.verdict {
		return false, fmt.Sprintf("verdict is now %s", d), nil
	}

	return true, "", nil
}

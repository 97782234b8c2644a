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

package pmp

import "fmt"

// Privilege is the privilege level of the hart making the access.
type Privilege int

// List of valid Privilege values.
const (
	Machine Privilege = iota
	Supervisor
	User
)

func (p Privilege) String() string {
	switch p {
	case Machine:
		return "Machine"
	case Supervisor:
		return "Supervisor"
	case User:
		return "User"
	}
	return fmt.Sprintf("unknown privilege (%d)", int(p))
}

// Valid returns true if the value is one of the listed Privilege values.
func (p Privilege) Valid() bool {
	return p >= Machine && p <= User
}

// Operation is the type of memory access.
type Operation int

// List of valid Operation values.
const (
	Read Operation = iota
	Write
	Execute
)

func (o Operation) String() string {
	switch o {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Execute:
		return "Execute"
	}
	return fmt.Sprintf("unknown operation (%d)", int(o))
}

// Valid returns true if the value is one of the listed Operation values.
func (o Operation) Valid() bool {
	return o >= Read && o <= Execute
}

// Query describes a single memory access.
type Query struct {
	Address   uint64
	Privilege Privilege
	Operation Operation
}

func (q Query) String() string {
	return fmt.Sprintf("%s %#x (%s mode)", q.Operation, q.Address, q.Privilege)
}

// Valid returns true if both the privilege and operation fields are valid.
func (q Query) Valid() bool {
	return q.Privilege.Valid() && q.Operation.Valid()
}

// Verdict is the outcome of an evaluation.
type Verdict int

// List of valid Verdict values.
const (
	Allowed Verdict = iota
	Fault
)

func (v Verdict) String() string {
	if v == Allowed {
		return "Allowed"
	}
	return "Fault"
}

// Reason explains how a Verdict was arrived at.
type Reason int

// List of valid Reason values.
const (
	// the matching entry is locked. the permission bits apply to all
	// privilege levels
	ReasonLocked Reason = iota

	// the matching entry is unlocked and the access is from machine mode
	ReasonMachine

	// the matching entry is unlocked and the access is from supervisor or
	// user mode
	ReasonPermission

	// no entry matched and the access is from machine mode
	ReasonNoMatchMachine

	// no entry matched, the access is not from machine mode and at least one
	// entry is enabled
	ReasonNoMatchDenied

	// no entry matched and every entry is disabled
	ReasonNoMatchUnrestricted
)

func (r Reason) String() string {
	switch r {
	case ReasonLocked:
		return "locked entry"
	case ReasonMachine:
		return "unlocked entry, machine mode"
	case ReasonPermission:
		return "unlocked entry"
	case ReasonNoMatchMachine:
		return "no matching entry, machine mode"
	case ReasonNoMatchDenied:
		return "no matching entry"
	case ReasonNoMatchUnrestricted:
		return "no matching entry, no enabled entries"
	}
	return fmt.Sprintf("unknown reason (%d)", int(r))
}

// NoMatch is the value of the Decision.Entry field when no entry in the table
// matched the address.
const NoMatch = -1

// Decision is the result of Table.Explain().
type Decision struct {
	Verdict Verdict
	Reason  Reason

	// index of the deciding entry or NoMatch. the Config and Region fields
	// are only meaningful if Entry is not NoMatch
	Entry  int
	Config Config
	Region Region
}

func (d Decision) String() string {
	if d.Entry == NoMatch {
		return fmt.Sprintf("%s: %s", d.Verdict, d.Reason)
	}
	return fmt.Sprintf("%s: %s %d %s %s", d.Verdict, d.Reason, d.Entry, d.Config, d.Region)
}

// scan is the state carried from one entry to the next during an evaluation.
type scan struct {
	prev       uint64
	anyEnabled bool
}

// step resolves the region for an entry and returns the state for the next
// entry. the previous address always advances, even for disabled entries.
func (s scan) step(e Entry) (Region, scan) {
	r := Resolve(e, s.prev)
	return r, scan{
		prev:       e.Address,
		anyEnabled: s.anyEnabled || r.Enabled(),
	}
}

// Evaluate the query against the table.
func (t *Table) Evaluate(q Query) Verdict {
	return t.Explain(q).Verdict
}

// Explain evaluates the query against the table and returns the verdict along
// with information about how the verdict was reached.
func (t *Table) Explain(q Query) Decision {
	var s scan
	var r Region

	for i, e := range t {
		r, s = s.step(e)
		if r.Contains(q.Address) {
			d := Decision{
				Entry:  i,
				Config: e.Config,
				Region: r,
			}
			d.Verdict, d.Reason = permit(e.Config, q)
			return d
		}
	}

	d := Decision{Entry: NoMatch}
	switch {
	case q.Privilege == Machine:
		d.Verdict = Allowed
		d.Reason = ReasonNoMatchMachine
	case s.anyEnabled:
		d.Verdict = Fault
		d.Reason = ReasonNoMatchDenied
	default:
		d.Verdict = Allowed
		d.Reason = ReasonNoMatchUnrestricted
	}
	return d
}

// permit applies the permission rules of a matching entry.
func permit(c Config, q Query) (Verdict, Reason) {
	if c.Locked() {
		return verdict(c.Permits(q.Operation)), ReasonLocked
	}
	if q.Privilege == Machine {
		return Allowed, ReasonMachine
	}
	return verdict(c.Permits(q.Operation)), ReasonPermission
}

func verdict(permitted bool) Verdict {
	if permitted {
		return Allowed
	}
	return Fault
}

// Check is a convenience function that evaluates an access described by its
// individual parts.
func Check(t *Table, address uint64, priv Privilege, op Operation) Verdict {
	return t.Evaluate(Query{Address: address, Privilege: priv, Operation: op})
}

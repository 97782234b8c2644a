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

package query

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
)

// Sentinal error patterns.
const (
	BadAddress    = "query: address must be hex with 0x prefix: %s"
	BadPrivilege  = "query: privilege must be M, S or U: %s"
	BadOperation  = "query: operation must be R, W or X: %s"
	WrongArgCount = "query: expected address, privilege and operation: got %d arguments"
)

// ParseAddress parses a hexadecimal address. The 0x prefix is required.
func ParseAddress(s string) (uint64, error) {
	s = strings.TrimSpace(s)

	h, ok := strings.CutPrefix(s, "0x")
	if !ok {
		h, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || h == "" {
		return 0, curated.Errorf(BadAddress, s)
	}

	a, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return 0, curated.Errorf(BadAddress, s)
	}

	return a, nil
}

// ParsePrivilege parses a privilege level.
func ParsePrivilege(s string) (pmp.Privilege, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MACHINE":
		return pmp.Machine, nil
	case "S", "SUPERVISOR":
		return pmp.Supervisor, nil
	case "U", "USER":
		return pmp.User, nil
	}
	return 0, curated.Errorf(BadPrivilege, s)
}

// ParseOperation parses a memory operation.
func ParseOperation(s string) (pmp.Operation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R", "READ":
		return pmp.Read, nil
	case "W", "WRITE":
		return pmp.Write, nil
	case "X", "EXEC", "EXECUTE":
		return pmp.Execute, nil
	}
	return 0, curated.Errorf(BadOperation, s)
}

// Parse a query from exactly three arguments: address, privilege and
// operation, in that order.
func Parse(args []string) (pmp.Query, error) {
	if len(args) != 3 {
		return pmp.Query{}, curated.Errorf(WrongArgCount, len(args))
	}

	var q pmp.Query
	var err error

	q.Address, err = ParseAddress(args[0])
	if err != nil {
		return pmp.Query{}, err
	}
	q.Privilege, err = ParsePrivilege(args[1])
	if err != nil {
		return pmp.Query{}, err
	}
	q.Operation, err = ParseOperation(args[2])
	if err != nil {
		return pmp.Query{}, err
	}

	return q, nil
}

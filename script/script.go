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

package script

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/hardware/pmp"
	"github.com/jetsetilly/pmpcheck/logger"
	"github.com/jetsetilly/pmpcheck/query"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "script: %v"
)

// Result of running a script.
type Result struct {
	Passed int
	Failed int
}

func (r Result) String() string {
	return fmt.Sprintf("%d passed, %d failed", r.Passed, r.Failed)
}

// Run the named Lua script against the table. Output from the script is
// written to the io.Writer.
func Run(filename string, t *pmp.Table, output io.Writer) (Result, error) {
	return run(t, output, func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

// RunString is the same as Run() except that the script is supplied as a
// string.
func RunString(src string, t *pmp.Table, output io.Writer) (Result, error) {
	return run(t, output, func(L *lua.LState) error {
		return L.DoString(src)
	})
}

// env is the state shared by the functions exported to Lua.
type env struct {
	tab     *pmp.Table
	regions [pmp.NumEntries]pmp.Region
	output  io.Writer
	result  Result
}

func run(t *pmp.Table, output io.Writer, do func(*lua.LState) error) (Result, error) {
	e := &env{
		tab:     t,
		regions: t.Regions(),
		output:  output,
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("NUM_ENTRIES", lua.LNumber(pmp.NumEntries))
	L.SetGlobal("check", L.NewFunction(e.check))
	L.SetGlobal("expect", L.NewFunction(e.expect))
	L.SetGlobal("region", L.NewFunction(e.region))
	L.SetGlobal("log", L.NewFunction(e.log))
	L.SetGlobal("print", L.NewFunction(e.print))

	if err := do(L); err != nil {
		return e.result, curated.Errorf(ScriptError, err)
	}

	logger.Logf(logger.Allow, "script", "%s", e.result)

	return e.result, nil
}

// query builds a pmp.Query from the first three arguments on the Lua stack.
// raises a Lua error if any argument is invalid.
func (e *env) query(L *lua.LState) pmp.Query {
	var q pmp.Query
	var err error

	switch v := L.CheckAny(1).(type) {
	case lua.LNumber:
		f := float64(v)
		if f < 0 {
			L.ArgError(1, "address cannot be negative")
		}
		if f >= 1<<64 || f != math.Trunc(f) {
			L.ArgError(1, "address is not an exact 64-bit value. use a hex string for addresses above 2^53")
		}
		q.Address = uint64(f)
	case lua.LString:
		q.Address, err = query.ParseAddress(string(v))
		if err != nil {
			L.ArgError(1, err.Error())
		}
	default:
		L.ArgError(1, "address must be a number or a string")
	}

	q.Privilege, err = query.ParsePrivilege(L.CheckString(2))
	if err != nil {
		L.ArgError(2, err.Error())
	}

	q.Operation, err = query.ParseOperation(L.CheckString(3))
	if err != nil {
		L.ArgError(3, err.Error())
	}

	return q
}

func (e *env) check(L *lua.LState) int {
	d := e.tab.Explain(e.query(L))
	L.Push(lua.LBool(d.Verdict == pmp.Allowed))
	L.Push(lua.LString(d.String()))
	return 2
}

func (e *env) expect(L *lua.LState) int {
	q := e.query(L)

	var want pmp.Verdict
	switch strings.ToLower(L.CheckString(4)) {
	case "allowed", "allow":
		want = pmp.Allowed
	case "fault", "denied", "deny":
		want = pmp.Fault
	default:
		L.ArgError(4, `verdict must be "allowed" or "fault"`)
	}

	d := e.tab.Explain(q)
	if d.Verdict == want {
		e.result.Passed++
		L.Push(lua.LTrue)
		return 1
	}

	e.result.Failed++
	msg := strings.TrimSpace(fmt.Sprintf("%s FAIL: %s: wanted %s, got %s", L.Where(1), q, want, d))
	logger.Log(logger.Allow, "script", msg)
	fmt.Fprintln(e.output, msg)

	L.Push(lua.LFalse)
	return 1
}

func (e *env) region(L *lua.LState) int {
	i := L.CheckInt(1)
	if i < 0 || i >= pmp.NumEntries {
		L.ArgError(1, fmt.Sprintf("entry must be between 0 and %d", pmp.NumEntries-1))
	}

	r := e.regions[i]
	if !r.Enabled() {
		L.Push(lua.LNil)
		return 1
	}

	c := e.tab[i].Config

	tbl := L.NewTable()
	tbl.RawSetString("mode", lua.LString(r.Mode.String()))
	// bounds are hex strings. a Lua number is a float64 and is only exact
	// up to 2^53
	tbl.RawSetString("start", lua.LString(fmt.Sprintf("%#x", r.Start)))
	tbl.RawSetString("finish", lua.LString(fmt.Sprintf("%#x", r.End)))
	tbl.RawSetString("top", lua.LBool(r.Top))
	tbl.RawSetString("locked", lua.LBool(c.Locked()))
	tbl.RawSetString("r", lua.LBool(c.Readable()))
	tbl.RawSetString("w", lua.LBool(c.Writable()))
	tbl.RawSetString("x", lua.LBool(c.Executable()))

	L.Push(tbl)
	return 1
}

func (e *env) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (e *env) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, n)
	for i := 1; i <= n; i++ {
		s[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(e.output, strings.Join(s, "\t"))
	return 0
}

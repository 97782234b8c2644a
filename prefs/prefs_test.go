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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/prefs"
	"github.com/jetsetilly/pmpcheck/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "pmpcheck_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("on"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(1))
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// failure conditions
	err = v.Set("---")
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
	err = v.Set(1.0)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("shell.explain", &b))
	test.ExpectSuccess(t, dsk.Add("shell.logtail", &n))

	// no file yet
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// file is created
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "shell.explain :: false\nshell.logtail :: 0\n")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, n.Set(20))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, b.Get(), prefs.Value(false))

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectEquality(t, n.Get(), prefs.Value(20))
}

func TestLoadCommandLine(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("shell.explain", &b))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("shell.explain::true")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))

	// command line values are only used once
	test.ExpectSuccess(t, b.Set(false))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get(), prefs.Value(false))
}

func TestLoadCommandLine_newFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("shell.explain", &b))

	prefs.PushCommandLineStack("shell.explain::true")
	defer prefs.PopCommandLineStack()

	// the file does not exist so it is created with the default value. the
	// command line value applies to the session but is not written
	test.DemandSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "shell.explain :: false"))
	test.ExpectFailure(t, strings.Contains(string(data), "shell.explain :: true"))
}

func TestSetByKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, dsk.Set("foo", "bar"))
	test.ExpectEquality(t, s.String(), "bar")

	v, err := dsk.Get("foo")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, prefs.Value("bar"))

	err = dsk.Set("baz", "qux")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	test.ExpectEquality(t, dsk.String(), "foo :: bar\n")
	test.ExpectEquality(t, len(dsk.Keys()), 1)

	test.ExpectFailure(t, dsk.Add("", &s))
}

func TestHooks(t *testing.T) {
	var b prefs.Bool
	var seen []prefs.Value

	b.SetHookPre(func(v prefs.Value) error {
		if v == false {
			return fmt.Errorf("refused")
		}
		return nil
	})
	b.SetHookPost(func(v prefs.Value) error {
		seen = append(seen, v)
		return nil
	})

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectFailure(t, b.Set(false))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectEquality(t, len(seen), 1)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// setting a string after setting a maximum length will result in the set
	// string being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

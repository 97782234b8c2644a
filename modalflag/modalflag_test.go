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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/modalflag"
	"github.com/jetsetilly/pmpcheck/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-foo"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectSuccess(t, curated.Is(err, modalflag.FlagError))
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"regions", "-all", "table.pmp"})
	md.AddSubModes("check", "regions")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "REGIONS")

	md.NewMode()
	all := md.AddBool("all", false, "show all entries")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *all, true)
	test.ExpectEquality(t, md.GetArg(0), "table.pmp")
	test.ExpectEquality(t, md.Path(), "REGIONS")
}

func TestDefaultMode(t *testing.T) {
	// first argument is not a mode
	md := modalflag.Modes{}
	md.NewArgs([]string{"table.pmp", "0x0", "M", "R"})
	md.AddSubModes("CHECK", "REGIONS")
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "CHECK")

	md.NewMode()
	_, _ = md.Parse()
	test.ExpectEquality(t, len(md.RemainingArgs()), 4)

	// first argument is a flag belonging to the default mode
	md = modalflag.Modes{}
	md.NewArgs([]string{"-explain", "table.pmp", "0x0", "M", "R"})
	md.AddSubModes("CHECK", "REGIONS")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CHECK")

	md.NewMode()
	explain := md.AddBool("explain", false, "explain verdict")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *explain, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 4)
}

func TestExpectArgs(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"a", "b"})
	md.Usage("<a> <b>")
	_, _ = md.Parse()

	test.ExpectSuccess(t, md.ExpectArgs(2, 2))
	test.ExpectSuccess(t, md.ExpectArgs(0, -1))
	test.ExpectSuccess(t, curated.Is(md.ExpectArgs(3, 3), modalflag.ArgCount))
	test.ExpectSuccess(t, curated.Is(md.ExpectArgs(0, 1), modalflag.ArgCount))
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpUsage(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"regions", "-help"})
	md.AddSubModes("CHECK", "REGIONS")
	_, _ = md.Parse()

	md.NewMode()
	md.Usage("<table file>")
	md.AdditionalHelp("disabled entries are hidden")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage for REGIONS mode: <table file>\n" +
		"\n" +
		"disabled entries are hidden\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

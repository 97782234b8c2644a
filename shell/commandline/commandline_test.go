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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/pmpcheck/curated"
	"github.com/jetsetilly/pmpcheck/shell/commandline"
	"github.com/jetsetilly/pmpcheck/test"
)

func TestTabCompletion(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"TEST [arg]",
		"TEST1 [arg]",
		"FOO (bar|baz) wibble",
	})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	completion := tc.Complete("TE")
	test.ExpectEquality(t, completion, "TEST ")

	// next completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST1 ")

	// cycle back to the first completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "TEST ")

	tc.Reset()
	completion = tc.Complete("TEST a")
	test.ExpectEquality(t, completion, "TEST ARG ")

	tc.Reset()
	completion = tc.Complete("foo ba")
	test.ExpectEquality(t, completion, "FOO BAR ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "FOO BAZ ")

	// the completion will preserve earlier arguments but not the whitespace
	tc.Reset()
	completion = tc.Complete("FOO   bar     wib")
	test.ExpectEquality(t, completion, "FOO bar WIBBLE ")

	// nothing to complete
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("XYZ"), "XYZ")
	test.ExpectEquality(t, tc.Complete("FOO bar wibble x"), "FOO bar wibble x")
	test.ExpectEquality(t, tc.Complete(""), "")
}

func TestTabCompletion_placeholders(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"TEST %value (foo|bar)",
	})
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	test.ExpectEquality(t, tc.Complete("TEST 100 f"), "TEST 100 FOO ")

	// placeholders cannot be completed
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("TEST 1"), "TEST 1")
}

func TestTemplateErrors(t *testing.T) {
	for _, tmpl := range []string{
		"",
		"TEST [a",
		"TEST a]",
		"TEST [a [b]]",
		"TEST [a] b",
		"TEST %",
		"TEST a||b",
	} {
		_, err := commandline.ParseCommandTemplate([]string{tmpl})
		test.ExpectSuccess(t, curated.Is(err, commandline.TemplateError), tmpl)
	}

	_, err := commandline.ParseCommandTemplate([]string{"TEST", "test"})
	test.ExpectSuccess(t, curated.Is(err, commandline.TemplateError))

	_, err = commandline.ParseCommandTemplate([]string{"TEST %"})
	test.ExpectSuccess(t, curated.Has(err, commandline.NoLabel))

	_, err = commandline.ParseCommandTemplate([]string{"TEST a||b"})
	test.ExpectSuccess(t, curated.Has(err, commandline.EmptyKeyword))
}

func TestValidation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"CHECK %address %privilege %operation",
		"REGIONS [ALL]",
		"ENTRY %index [%config %address]",
		"QUIT",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate([]string{}))
	test.ExpectSuccess(t, cmds.Validate([]string{"check", "0x0", "M", "R"}))
	test.ExpectSuccess(t, cmds.Validate([]string{"REGIONS"}))
	test.ExpectSuccess(t, cmds.Validate([]string{"REGIONS", "all"}))
	test.ExpectSuccess(t, cmds.Validate([]string{"ENTRY", "3"}))
	test.ExpectSuccess(t, cmds.Validate([]string{"ENTRY", "3", "0x1f", "0x87"}))
	test.ExpectSuccess(t, cmds.Validate([]string{"QUIT"}))

	err = cmds.Validate([]string{"WIBBLE"})
	test.ExpectSuccess(t, curated.Is(err, commandline.UnknownCommand))

	err = cmds.Validate([]string{"CHECK", "0x0", "M"})
	test.ExpectSuccess(t, curated.Is(err, commandline.MissingArgument))

	err = cmds.Validate([]string{"ENTRY", "3", "0x1f"})
	test.ExpectSuccess(t, curated.Is(err, commandline.MissingArgument))

	err = cmds.Validate([]string{"REGIONS", "some"})
	test.ExpectSuccess(t, curated.Is(err, commandline.BadArgument))

	err = cmds.Validate([]string{"QUIT", "now"})
	test.ExpectSuccess(t, curated.Is(err, commandline.TooManyArgs))
}

func TestHelp(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"REGIONS [ALL]",
		"CHECK %address %privilege %operation",
	})
	test.DemandSuccess(t, err)

	err = cmds.AddHelp("HELP", map[string]string{
		"CHECK": "Check an access.",
	})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cmds.String(), "CHECK <address> <privilege> <operation>\n"+
		"HELP [(CHECK|HELP|REGIONS)]\n"+
		"REGIONS [ALL]")

	test.ExpectEquality(t, cmds.HelpOverview(), "CHECK     HELP      REGIONS")
	test.ExpectEquality(t, cmds.Help("check"), "Check an access.\n\n  Usage: CHECK <address> <privilege> <operation>")
	test.ExpectEquality(t, cmds.Help("REGIONS"), "no help for REGIONS")

	test.ExpectSuccess(t, cmds.Validate([]string{"HELP", "regions"}))

	err = cmds.AddHelp("HELP", nil)
	test.ExpectSuccess(t, curated.Is(err, commandline.TemplateError))
}

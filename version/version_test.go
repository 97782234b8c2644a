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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/pmpcheck/test"
)

func TestVersion(t *testing.T) {
	inf := fromSettings("", "", nil)
	test.ExpectEquality(t, inf.Version, "local")
	test.ExpectEquality(t, inf.Revision, "no revision information")
	test.ExpectFailure(t, inf.Release)
	test.ExpectEquality(t, inf.String(), "pmpcheck local (no revision information)")

	inf = fromSettings("", "go1.26.0", []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abcdef"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, inf.Version, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abcdef+dirty")
	test.ExpectEquality(t, inf.String(), "pmpcheck unreleased (abcdef+dirty) built with go1.26.0")

	inf = fromSettings("v1.0.0", "", []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abcdef"},
	})
	test.ExpectSuccess(t, inf.Release)
	test.ExpectEquality(t, inf.String(), "pmpcheck v1.0.0")
}

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

// Package version reports the version of the pmpcheck binary. The version
// number is set at build time with:
//
//	go build -ldflags "-X github.com/jetsetilly/pmpcheck/version.number=v1.0.0"
//
// Without a version number the version is reported as "unreleased" if the
// binary was built from a version controlled source tree and "local"
// otherwise. Revision information is taken from the build information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "pmpcheck"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	// the version number, "unreleased" or "local"
	Version string

	// the vcs revision, suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// the Go version used to build the binary
	GoVersion string

	// whether this is a numbered release
	Release bool
}

func (inf Info) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", ApplicationName, inf.Version))
	if !inf.Release {
		s.WriteString(fmt.Sprintf(" (%s)", inf.Revision))
	}
	if inf.GoVersion != "" {
		s.WriteString(fmt.Sprintf(" built with %s", inf.GoVersion))
	}
	return s.String()
}

// Version returns the build information for the running binary.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(number, "", nil)
	}
	return fromSettings(number, info.GoVersion, info.Settings)
}

func fromSettings(number string, goVersion string, settings []debug.BuildSetting) Info {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	inf := Info{
		Version:   number,
		GoVersion: goVersion,
		Release:   number != "",
	}

	if vcsRevision == "" {
		inf.Revision = "no revision information"
	} else {
		inf.Revision = vcsRevision
		if vcsModified {
			inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
		}
	}

	if number == "" {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}

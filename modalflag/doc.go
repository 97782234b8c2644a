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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Unlike flag.FlagSet, the arguments are given to the NewArgs() function and
// Parse() is called with no arguments. This allows the argument list to be
// parsed in stages, one stage for every mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CHECK", "REGIONS")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "CHECK":
//		md.NewMode()
//		explain := md.AddBool("explain", false, "explain the verdict")
//		...
//	}
//
// The first sub-mode in the list is the default mode. The default mode is
// chosen if the first argument is not one of the listed sub-modes, or if the
// first argument is a flag that has not been defined for the current stage.
// In the second case the flag is parsed again by the next stage. Sub-mode
// comparisons are case insensitive.
//
// Non-flag arguments are retrieved with the RemainingArgs() and GetArg()
// functions. Help messages are printed automatically when the -help flag is
// found.
package modalflag

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

// Package logger is the central log for pmpcheck. Packages that load tables,
// parse input or run scripts add entries to the log. The hardware/pmp package
// never logs; it is free of side effects.
//
// An entry is made up of a tag and a detail. The tag identifies the area of
// the program making the entry and the detail is the message itself:
//
//	logger.Logf(logger.Allow, "tableloader", "ignored %d trailing lines", n)
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
//
// Every logging request is accompanied by a Permission. The Allow permission
// always succeeds but other implementations can be used to silence logging in
// some contexts. For example, a script can be run with logging disabled.
//
// The detail argument of the Log() function can be of any type. Errors are
// logged using the result of Error() and fmt.Stringer implementations with the
// result of String(). Other types are formatted with the %v verb.
//
// The central log can be echoed to an io.Writer as entries are added, with
// SetEcho(). This is how the -log command line flag is implemented.
package logger

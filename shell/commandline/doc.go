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

// Package commandline parses command templates and uses them to validate user
// input and to provide tab completion.
//
// A template is the command keyword followed by a description of each
// argument:
//
//	CHECK %address %privilege %operation
//	REGIONS [ALL]
//	ENTRY %index [%config %address]
//	LOG [%count]
//	TERM (PLAIN|COLOR)
//
// An argument beginning with a percent sign is a placeholder and accepts any
// value. The text after the percent sign is used in usage strings. Keywords
// separated by a vertical bar are a choice of keywords. Choices can be
// enclosed in parentheses for clarity. Arguments inside square brackets are
// optional. An optional group of more than one argument must either be given
// in full or not at all. Optional arguments must come after any required
// arguments.
//
// Keyword comparisons are case insensitive.
package commandline

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

// Package shell is an interactive command line for exploring and verifying a
// PMP table. Commands are read through an implementation of the
// terminal.Terminal interface and results are written back through the same
// interface.
//
// The shell holds a single table. The table can be loaded from a file, edited
// one entry at a time and saved again. Accesses are checked against the table
// with the CHECK command and Lua verification scripts can be run against it
// with the SCRIPT command. The HELP command lists every command.
//
// Hexadecimal values can be written with either the 0x prefix or the $
// prefix. Lines beginning with # are ignored.
package shell

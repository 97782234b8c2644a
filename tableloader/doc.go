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

// Package tableloader reads and writes PMP tables in the plain text format
// used by the pmpcheck tool.
//
// A table file has exactly 128 lines of hexadecimal text. The first 64 lines
// are the configuration bytes of entries 0 to 63 and the next 64 lines are the
// address words of the same entries. A line may have a 0x prefix and any
// surrounding white space is ignored:
//
//	0x1f
//	0x00
//	...
//	0x80000fff
//
// Lines beyond line 128 are ignored.
//
// The Loader type is used to specify the file that is to be loaded:
//
//	tl := tableloader.NewLoader("tables/boot.pmp")
//	tab, err := tl.Load()
//
// The Read() and Write() functions work with any io.Reader or io.Writer.
package tableloader

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

// Package query parses the textual description of a memory access into a
// pmp.Query.
//
// Addresses must be written in hexadecimal with the 0x prefix. Privilege
// levels are given as M, S or U and operations as R, W or X. The longer names
// (machine, supervisor, user, read, write, execute) are also accepted. Case is
// not significant for privilege levels or operations.
package query

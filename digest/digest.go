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

// Package digest is used to create fingerprints of PMP tables. Two tables
// with the same entries produce the same fingerprint regardless of how the
// table files were formatted.
package digest

// Digest implementations compute a hash of the data they have been given.
type Digest interface {
	Hash() string
	ResetDigest()
}

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

// Package regression keeps a database of access checks and their expected
// verdicts. Each check names a table file, an access and the verdict that
// was produced when the check was added. A fingerprint of the table is also
// stored so that a change to the table file is reported as such, rather than
// as a simple change of verdict.
//
// Checks are added with RegressAdd(), listed with RegressList() and removed
// with RegressDelete(). RegressRun() reruns every check, or a selection of
// checks by key. The keys of failing checks are remembered and can be rerun
// by giving the special key FAILS.
package regression

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

// Package script runs Lua scripts that verify the behaviour of a PMP table.
// Scripts are run with the Run() function and have access to the following
// globals:
//
//	NUM_ENTRIES                     the number of entries in a table
//	check(addr, priv, op)           returns allowed (bool) and a reason (string)
//	expect(addr, priv, op, verdict) records a pass or failure
//	region(i)                       returns a table describing entry i, or nil
//	                                if the entry is disabled
//	log(msg)                        adds a message to the central log
//	print(...)                      writes to the output
//
// Addresses can be given as a number or as a hex string with the 0x prefix.
// Lua numbers are floating point and cannot represent every 64 bit address so
// the string form should be preferred for large addresses. Privilege levels
// and operations are strings in the same form accepted on the command line
// (eg. "M", "supervisor", "W", "exec"). The verdict argument of expect() is
// either "allowed" or "fault".
//
// The table returned by region() has the fields mode, start, finish, top,
// locked, r, w and x. The finish field is the first address beyond the
// region and is zero when top is true.
//
// A failed expectation does not stop the script. The number of passed and
// failed expectations is returned in the Result.
package script

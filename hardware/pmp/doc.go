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

// Package pmp models a physical memory protection table of the kind found in
// RISC-V processors. The table is an ordered list of NumEntries entries, each
// made up of a configuration byte and an address word.
//
// The configuration byte is decoded by the accessor functions of the Config
// type:
//
//	bit 0     R  readable
//	bit 1     W  writable
//	bit 2     X  executable
//	bits 3-4  A  addressing mode (Off, TOR, NA4, NAPOT)
//	bits 5-6     reserved and ignored
//	bit 7     L  locked
//
// The Resolve() function turns a single entry into a Region. Most addressing
// modes need only the entry itself but the TOR mode takes the lower bound of
// the region from the address field of the preceding entry. The preceding
// address is the raw address field of entry i-1 regardless of that entry's
// own mode. For entry zero the preceding address is zero.
//
// An access is described by the Query type and is checked with the
// Table.Evaluate() function. The table is scanned from entry zero upwards and
// the first entry whose region contains the address decides the outcome:
//
//	locked entries grant the access only if the permission bit for the
//	operation is set, whatever the privilege level
//
//	unlocked entries grant every Machine mode access and grant Supervisor
//	and User mode accesses according to the permission bit
//
// If no entry matches then Machine mode accesses are allowed. Supervisor and
// User mode accesses are allowed only if every entry in the table is
// disabled.
//
// Table.Explain() performs the same evaluation but also reports the entry
// that made the decision and the reason for it.
//
// None of the functions in the package retain or modify state. A Table can be
// shared between goroutines and evaluated concurrently.
package pmp

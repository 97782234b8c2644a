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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and a list of values in the same
// way as fmt.Errorf().
//
// The pattern is kept alongside the values and is only formatted when the
// Error() function is called. This allows errors to be compared against a
// sentinal pattern with the Is() and Has() functions. Packages that produce
// errors should declare their patterns as string constants. For example:
//
//	const Truncated = "tableloader: table truncated in %s section (line %d)"
//
//	err := curated.Errorf(Truncated, "address", 100)
//	if curated.Is(err, Truncated) {
//		...
//	}
//
// Has() looks through the values of the error, and the values of any curated
// error in those values, for the pattern. This means an error can be wrapped
// many times without losing the ability to identify the original cause:
//
//	err = curated.Errorf("check: %v", err)
//	curated.Has(err, Truncated) // true
//	curated.Is(err, Truncated)  // false
//
// The second feature of curated errors is the de-duplication of the error
// chain. We think of chains as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// If the first two parts of a chain are the same then the first part is
// removed. This means that code does not need to worry about the context of
// the function that creates the error. For example, a loader that wraps its
// own error with its own prefix:
//
//	tableloader: tableloader: cannot open file
//
// is printed as:
//
//	tableloader: cannot open file
//
// The Unwrap() function returns the first plain error found in the values list,
// allowing errors.Is() and errors.As() from the standard library to find
// errors that were wrapped with the %v verb.
package curated

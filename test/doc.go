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

// Package test bundles functions that are useful when writing tests with the
// standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report a failure with t.Fatalf() and
// are useful when the value being tested is needed by later parts of the test.
// For example, testing that the lengths of two slices are equal before
// iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The documentation for those functions describes the
// currently supported types.
//
// It is worth describing how these functions handle the nil type because it is
// not obvious. The nil type is considered a success and consequently will cause
// ExpectFailure() to fail and ExpectSuccess() to succeed. Because of how errors
// usually work (nil to indicate no error) we *need* to interpret nil in this
// way.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The CompareWriter.Compare() function can then be used to
// test for equality.
//
// All functions accept an optional list of tags. The tags are prepended to any
// failure message and are useful for identifying which iteration of a table
// driven test has failed.
package test

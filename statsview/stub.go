//go:build !statsview

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

package statsview

import (
	"io"
)

// Launch is a stub that writes a message explaining that the statsview server
// has not been built.
func Launch(output io.Writer) {
	io.WriteString(output, "stats server not available in this build (use the statsview build tag)\n")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}

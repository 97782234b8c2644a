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

package easyterm

// Control keys as they arrive from a terminal in cbreak mode.
const (
	KeyInterrupt      = 'C' & 0x1f // ctrl-c
	KeyEndOfFile      = 'D' & 0x1f // ctrl-d
	KeyBackspace      = '\b'
	KeyTab            = '\t'
	KeyLineFeed       = '\n'
	KeyCarriageReturn = '\r'
	KeySuspend        = 'Z' & 0x1f // ctrl-z
	KeyEsc            = 0x1b
	KeyDelete         = 0x7f
)

// Second rune of an escape sequence. EscCursor is the CSI introducer and is
// followed by one of the cursor or editing runes below.
const (
	EscCursor = '['
)

// Final runes of a CSI sequence. EscDelete is followed by a '~'.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	EscHome        = 'H'
	EscEnd         = 'F'
	EscDelete      = '3'
)

// IsControl returns true if the rune is an ASCII control code and should not
// be inserted into an input line.
func IsControl(r rune) bool {
	return r < 0x20 || r == KeyDelete
}

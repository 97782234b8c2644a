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

package pmp

import (
	"fmt"
	"strings"
)

// AddressMode is the value of the A field of the configuration byte.
type AddressMode uint8

// List of valid AddressMode values.
const (
	// Off entries are disabled and match no address.
	Off AddressMode = iota

	// TOR (top of range) entries cover the addresses from the address field
	// of the preceding entry up to, but not including, the entry's own
	// address field.
	TOR

	// NA4 entries cover the four bytes starting at the address field.
	NA4

	// NAPOT entries cover a naturally aligned power-of-two region. The size
	// of the region is encoded in the trailing one bits of the address field.
	NAPOT
)

func (m AddressMode) String() string {
	switch m {
	case Off:
		return "OFF"
	case TOR:
		return "TOR"
	case NA4:
		return "NA4"
	case NAPOT:
		return "NAPOT"
	}
	return fmt.Sprintf("unknown address mode (%d)", uint8(m))
}

// bit layout of the configuration byte.
const (
	cfgRead      = 0x01
	cfgWrite     = 0x02
	cfgExecute   = 0x04
	cfgModeMask  = 0x18
	cfgModeShift = 3
	cfgLocked    = 0x80
)

// Config is the configuration byte of a PMP entry.
type Config uint8

// NewConfig packs the individual fields into a configuration byte.
func NewConfig(r, w, x bool, mode AddressMode, locked bool) Config {
	var c Config
	if r {
		c |= cfgRead
	}
	if w {
		c |= cfgWrite
	}
	if x {
		c |= cfgExecute
	}
	c |= Config(mode<<cfgModeShift) & cfgModeMask
	if locked {
		c |= cfgLocked
	}
	return c
}

// Readable returns the state of the R bit.
func (c Config) Readable() bool {
	return c&cfgRead == cfgRead
}

// Writable returns the state of the W bit.
func (c Config) Writable() bool {
	return c&cfgWrite == cfgWrite
}

// Executable returns the state of the X bit.
func (c Config) Executable() bool {
	return c&cfgExecute == cfgExecute
}

// Mode returns the addressing mode encoded in the A field.
func (c Config) Mode() AddressMode {
	return AddressMode((c & cfgModeMask) >> cfgModeShift)
}

// Locked returns the state of the L bit.
func (c Config) Locked() bool {
	return c&cfgLocked == cfgLocked
}

// Enabled is true for every addressing mode other than Off.
func (c Config) Enabled() bool {
	return c.Mode() != Off
}

// Permits returns the permission bit that corresponds to the operation.
func (c Config) Permits(op Operation) bool {
	switch op {
	case Read:
		return c.Readable()
	case Write:
		return c.Writable()
	case Execute:
		return c.Executable()
	}
	return false
}

// String returns the configuration byte in a form similar to:
//
//	L NAPOT rwx
//
// with a dash in place of any flag that is not set.
func (c Config) String() string {
	s := strings.Builder{}

	if c.Locked() {
		s.WriteRune('L')
	} else {
		s.WriteRune('-')
	}
	s.WriteRune(' ')
	s.WriteString(fmt.Sprintf("%-5s", c.Mode()))
	s.WriteRune(' ')

	if c.Readable() {
		s.WriteRune('r')
	} else {
		s.WriteRune('-')
	}
	if c.Writable() {
		s.WriteRune('w')
	} else {
		s.WriteRune('-')
	}
	if c.Executable() {
		s.WriteRune('x')
	} else {
		s.WriteRune('-')
	}

	return s.String()
}

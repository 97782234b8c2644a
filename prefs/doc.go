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

// Package prefs facilitates the storage of preferred values. Preference
// values are of the types defined in this package (Bool, String and Int).
// They are registered with a Disk instance under a key and can then be saved
// to and loaded from a preferences file.
//
//	var explain prefs.Bool
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("shell.explain", &explain)
//	err = dsk.Load(true)
//
// The preferences file is a text file with one preference per line, in the
// form:
//
//	key :: value
//
// The first line of the file is a warning that the file should not be edited
// by hand. Entries in the file that have not been added to the Disk instance
// are preserved when the file is saved, so more than one Disk instance can use
// the same file.
//
// Values can also be given on the command line. A command line group is a
// string of key/value pairs separated by semi-colons and is added with
// PushCommandLineStack(). Command line values override the values loaded by
// Disk.Load() and are used only once.
package prefs

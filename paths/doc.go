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

// Package paths contains functions to prepare paths to pmpcheck resources.
//
// The ResourcePath() function returns the supplied resource prepended with the
// appropriate configuration directory. For example, the following will return
// the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base resource path is ".pmpcheck" in the current
// working directory. For builds made with the "release" build tag the user's
// configuration directory is used, as returned by os.UserConfigDir(). In both
// cases the directory (and any sub-directory) is created if it does not exist.
//
// In the example above, for a release build on a modern Linux system, the path
// returned will be:
//
//	/home/user/.config/pmpcheck/preferences
package paths

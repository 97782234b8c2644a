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

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/pmpcheck/curated"
)

// Sentinal error patterns.
const (
	PathError = "paths: %v"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path for pmpcheck resources. The subPth
// directory is created if necessary. An empty resource string returns the
// directory path only.
func ResourcePath(subPth string, resource string) (string, error) {
	base, err := baseDir()
	if err != nil {
		return "", curated.Errorf(PathError, err)
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", curated.Errorf(PathError, err)
	}

	return filepath.Join(pth, resource), nil
}

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

package shell

// shell keywords
const (
	cmdCheck   = "CHECK"
	cmdRegions = "REGIONS"
	cmdEntry   = "ENTRY"
	cmdLoad    = "LOAD"
	cmdSave    = "SAVE"
	cmdScript  = "SCRIPT"
	cmdLog     = "LOG"
	cmdPref    = "PREF"
	cmdQuit    = "QUIT"
	cmdHelp    = "HELP"
)

var commandTemplate = []string{
	cmdCheck + " %address %privilege %operation",
	cmdRegions + " [ALL]",
	cmdEntry + " %index [%config %address]",
	cmdLoad + " %file",
	cmdSave + " [%file]",
	cmdScript + " %file",
	cmdLog + " [%count]",
	cmdPref + " [%key] [%value]",
	cmdQuit,
}

var helps = map[string]string{
	cmdCheck: `Check an access against the table. The address must be hexadecimal. The
privilege is one of M, S or U and the operation is one of R, W or X.`,
	cmdRegions: `List the decoded table. Only enabled entries are listed unless ALL is given.`,
	cmdEntry: `Show a single entry of the table. If a configuration byte and an address are
given then the entry is replaced.`,
	cmdLoad:   `Load a table from a file.`,
	cmdSave:   `Save the table to a file. If no file is given then the table is saved to the
file it was loaded from, or to a new file if it was never loaded.`,
	cmdScript: `Run a Lua verification script against the table.`,
	cmdLog:    `Show the most recent entries in the log.`,
	cmdPref: `Show or change preferences. With no arguments all preferences are listed.
PREF SAVE writes the preferences to disk and PREF LOAD reads them back.`,
	cmdQuit: `Leave the shell.`,
	cmdHelp: `Lists commands and provides help for individual commands.`,
}

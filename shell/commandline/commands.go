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

package commandline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/pmpcheck/curated"
)

// Sentinal error patterns.
const (
	TemplateError   = "template: %s: %s"
	UnknownCommand  = "unrecognised command (%s)"
	MissingArgument = "%s: missing argument (%s)"
	BadArgument     = "%s: unrecognised argument (%s)"
	TooManyArgs     = "%s: too many arguments (%s)"

	// reasons given in TemplateError errors
	NoLabel      = "placeholder has no label"
	EmptyKeyword = "empty keyword"
)

// item is a single argument. an item with no choices is a placeholder.
type item struct {
	label   string
	choices []string
}

func (it item) isPlaceholder() bool {
	return len(it.choices) == 0
}

func (it item) matches(s string) bool {
	if it.isPlaceholder() {
		return true
	}
	s = strings.ToUpper(s)
	for _, c := range it.choices {
		if c == s {
			return true
		}
	}
	return false
}

func (it item) String() string {
	if it.isPlaceholder() {
		return fmt.Sprintf("<%s>", it.label)
	}
	if len(it.choices) == 1 {
		return it.choices[0]
	}
	return fmt.Sprintf("(%s)", strings.Join(it.choices, "|"))
}

// group is one or more items that must be given together.
type group struct {
	optional bool
	items    []item
}

func (g group) String() string {
	s := make([]string, len(g.items))
	for i := range g.items {
		s[i] = g.items[i].String()
	}
	if g.optional {
		return fmt.Sprintf("[%s]", strings.Join(s, " "))
	}
	return strings.Join(s, " ")
}

// command is a parsed template.
type command struct {
	tag    string
	groups []group
}

// Usage returns a usage string for the command.
func (cmd command) Usage() string {
	s := strings.Builder{}
	s.WriteString(cmd.tag)
	for _, g := range cmd.groups {
		s.WriteString(" ")
		s.WriteString(g.String())
	}
	return s.String()
}

// items returns every item in order, flattening the groups.
func (cmd command) items() []item {
	var items []item
	for _, g := range cmd.groups {
		items = append(items, g.items...)
	}
	return items
}

// Commands is a collection of parsed templates.
type Commands struct {
	cmds  []command
	index map[string]int

	helpCommand string
	helps       map[string]string
}

// ParseCommandTemplate creates a new instance of Commands from a list of
// templates.
func ParseCommandTemplate(templates []string) (*Commands, error) {
	cmds := &Commands{
		index: make(map[string]int),
	}

	for _, t := range templates {
		cmd, err := parseTemplate(t)
		if err != nil {
			return nil, err
		}
		if _, ok := cmds.index[cmd.tag]; ok {
			return nil, curated.Errorf(TemplateError, cmd.tag, "defined more than once")
		}
		cmds.index[cmd.tag] = len(cmds.cmds)
		cmds.cmds = append(cmds.cmds, cmd)
	}

	sort.Slice(cmds.cmds, func(i, j int) bool {
		return cmds.cmds[i].tag < cmds.cmds[j].tag
	})
	for i, c := range cmds.cmds {
		cmds.index[c.tag] = i
	}

	return cmds, nil
}

func parseTemplate(template string) (command, error) {
	words := strings.Fields(template)
	if len(words) == 0 {
		return command{}, curated.Errorf(TemplateError, template, "empty template")
	}

	cmd := command{tag: strings.ToUpper(words[0])}

	var open *group
	var seenOptional bool

	for _, w := range words[1:] {
		startGroup := strings.HasPrefix(w, "[")
		endGroup := strings.HasSuffix(w, "]")
		w = strings.TrimSuffix(strings.TrimPrefix(w, "["), "]")

		if startGroup {
			if open != nil {
				return command{}, curated.Errorf(TemplateError, cmd.tag, "nested optional group")
			}
			open = &group{optional: true}
			seenOptional = true
		} else if open == nil && seenOptional {
			return command{}, curated.Errorf(TemplateError, cmd.tag, "required argument after optional argument")
		}

		it, err := parseItem(w)
		if err != nil {
			return command{}, curated.Errorf(TemplateError, cmd.tag, err)
		}

		if open != nil {
			open.items = append(open.items, it)
			if endGroup {
				cmd.groups = append(cmd.groups, *open)
				open = nil
			}
		} else {
			if endGroup {
				return command{}, curated.Errorf(TemplateError, cmd.tag, "unopened optional group")
			}
			cmd.groups = append(cmd.groups, group{items: []item{it}})
		}
	}

	if open != nil {
		return command{}, curated.Errorf(TemplateError, cmd.tag, "unclosed optional group")
	}

	return cmd, nil
}

func parseItem(w string) (item, error) {
	if strings.HasPrefix(w, "%") {
		if len(w) == 1 {
			return item{}, curated.Errorf(NoLabel)
		}
		return item{label: w[1:]}, nil
	}

	w = strings.TrimSuffix(strings.TrimPrefix(w, "("), ")")
	choices := strings.Split(strings.ToUpper(w), "|")
	for _, c := range choices {
		if c == "" {
			return item{}, curated.Errorf(EmptyKeyword)
		}
	}
	return item{choices: choices}, nil
}

func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.Usage())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Keywords returns the list of command keywords in alphabetical order.
func (cmds Commands) Keywords() []string {
	k := make([]string, len(cmds.cmds))
	for i, c := range cmds.cmds {
		k[i] = c.tag
	}
	return k
}

// Usage returns the usage string for the command.
func (cmds Commands) Usage(keyword string) string {
	if i, ok := cmds.index[strings.ToUpper(keyword)]; ok {
		return cmds.cmds[i].Usage()
	}
	return ""
}

// Validate the tokens against the templates. The first token is the command
// keyword.
func (cmds Commands) Validate(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	tag := strings.ToUpper(tokens[0])
	i, ok := cmds.index[tag]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}
	cmd := cmds.cmds[i]

	args := tokens[1:]
	for _, g := range cmd.groups {
		if len(args) == 0 {
			if g.optional {
				return nil
			}
			return curated.Errorf(MissingArgument, tag, g)
		}

		// an optional group that starts with a keyword choice that does not
		// match is an unrecognised argument
		for j, it := range g.items {
			if j >= len(args) {
				return curated.Errorf(MissingArgument, tag, g)
			}
			if !it.matches(args[j]) {
				return curated.Errorf(BadArgument, tag, args[j])
			}
		}
		args = args[len(g.items):]
	}

	if len(args) > 0 {
		return curated.Errorf(TooManyArgs, tag, strings.Join(args, " "))
	}

	return nil
}

// AddHelp adds a help command. The help command takes any of the other
// command keywords as an optional argument. The helps map contains the help
// text for each keyword.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	helpCommand = strings.ToUpper(helpCommand)
	if _, ok := cmds.index[helpCommand]; ok {
		return curated.Errorf(TemplateError, helpCommand, "already defined")
	}

	keywords := append(cmds.Keywords(), helpCommand)
	sort.Strings(keywords)

	cmd, err := parseTemplate(fmt.Sprintf("%s [%s]", helpCommand, strings.Join(keywords, "|")))
	if err != nil {
		return err
	}

	cmds.cmds = append(cmds.cmds, cmd)
	sort.Slice(cmds.cmds, func(i, j int) bool {
		return cmds.cmds[i].tag < cmds.cmds[j].tag
	})
	for i, c := range cmds.cmds {
		cmds.index[c.tag] = i
	}

	cmds.helpCommand = helpCommand
	cmds.helps = helps

	return nil
}

// HelpOverview returns a columnised list of all commands.
func (cmds Commands) HelpOverview() string {
	longest := 0
	for _, c := range cmds.cmds {
		if len(c.tag) > longest {
			longest = len(c.tag)
		}
	}

	cols := 80 / (longest + 3)
	colFmt := fmt.Sprintf("%%-%ds", longest+3)

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		s.WriteString(fmt.Sprintf(colFmt, c.tag))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}

	return strings.TrimRight(s.String(), " \n")
}

// Help returns the help text and usage for the command.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	helpTxt, ok := cmds.helps[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}

	s := strings.Builder{}
	s.WriteString(helpTxt)
	if u := cmds.Usage(keyword); u != "" {
		s.WriteString("\n\n  Usage: ")
		s.WriteString(u)
	}

	return s.String()
}

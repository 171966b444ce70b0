package shell

import (
	"strings"
	"unicode"
)

// Command is a parsed input line.
type Command struct {
	Name     string
	Argument string
}

// Parse splits line on its first run of whitespace. The name is lower-cased;
// the argument keeps its case and is trimmed.
func Parse(line string) Command {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return Command{Name: strings.ToLower(line)}
	}
	return Command{
		Name:     strings.ToLower(line[:i]),
		Argument: strings.TrimSpace(line[i:]),
	}
}

// CommandKind enumerates the recognised commands.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdHelp
	CmdAbout
	CmdSkills
	CmdProjects
	CmdNotes
	CmdGame
	CmdScores
	CmdLs
	CmdClear
	CmdQuit
	CmdGitHub
	CmdLinkedIn
	CmdEmail
)

// commandTable lists every recognised name in help order.
var commandTable = []struct {
	name string
	kind CommandKind
}{
	{"help", CmdHelp},
	{"about", CmdAbout},
	{"whoami", CmdAbout},
	{"skills", CmdSkills},
	{"projects", CmdProjects},
	{"notes", CmdNotes},
	{"game", CmdGame},
	{"scores", CmdScores},
	{"ls", CmdLs},
	{"clear", CmdClear},
	{"quit", CmdQuit},
	{"github", CmdGitHub},
	{"linkedin", CmdLinkedIn},
	{"email", CmdEmail},
}

var commandKinds = func() map[string]CommandKind {
	m := make(map[string]CommandKind, len(commandTable))
	for _, c := range commandTable {
		m[c.name] = c.kind
	}
	return m
}()

// Lookup resolves a lower-case command name. Unrecognised names give CmdUnknown.
func Lookup(name string) CommandKind {
	return commandKinds[name]
}

// Kind resolves the command's name.
func (c Command) Kind() CommandKind {
	return Lookup(c.Name)
}

// CommandNames returns every recognised name, aliases included, in help order.
func CommandNames() []string {
	names := make([]string, len(commandTable))
	for i, c := range commandTable {
		names[i] = c.name
	}
	return names
}

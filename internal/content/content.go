// Package content loads the read-only documents the shell answers from: the
// profile (about text, skills, notes, contacts, prompt) and the project
// metadata produced by the site's build job.
package content

import (
	"regexp"
	"strings"
)

// Profile is the owner's static content, read from content.yaml.
type Profile struct {
	Prompt   string       `yaml:"prompt"`
	Banner   string       `yaml:"banner"`
	Welcome  string       `yaml:"welcome"`
	About    About        `yaml:"about"`
	Skills   []SkillGroup `yaml:"skills"`
	Notes    []Note       `yaml:"notes"`
	Contacts Contacts     `yaml:"contacts"`
}

// About is the bio shown by the about command.
type About struct {
	Title string   `yaml:"title"`
	Bio   string   `yaml:"bio"`
	Focus []string `yaml:"focus"`
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Title string  `yaml:"title"`
	Items []Skill `yaml:"items"`
}

// Skill is a named skill with a level from 0 to 3.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Note is a published note. Title may be left empty, in which case it is
// derived from File.
type Note struct {
	Title string `yaml:"title"`
	File  string `yaml:"file"`
}

// DisplayTitle returns the note title, deriving one from the file name when unset.
func (n Note) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return NoteTitle(n.File)
}

// Contacts holds the external links opened by the contact commands.
type Contacts struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
}

var noteTitleRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`_`), " "},
	{regexp.MustCompile(`([a-z0-9])([A-Z])`), "$1 $2"},
	{regexp.MustCompile(`([A-Z])([A-Z][a-z])`), "$1 $2"},
	{regexp.MustCompile(`([a-zA-Z])(\d)`), "$1 $2"},
	{regexp.MustCompile(`(\d)([a-zA-Z])`), "$1 $2"},
	{regexp.MustCompile(`\(`), " ("},
	{regexp.MustCompile(`\s{2,}`), " "},
}

// NoteTitle turns a note file name such as "OperatingSystems_2023.pdf" into
// a readable title ("Operating Systems 2023").
func NoteTitle(file string) string {
	name := file
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name = name[:len(name)-len(".pdf")]
	}
	for _, r := range noteTitleRules {
		name = r.re.ReplaceAllString(name, r.repl)
	}
	return strings.TrimSpace(name)
}

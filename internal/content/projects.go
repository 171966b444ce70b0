package content

import "strings"

// ProjectLists names the repositories to show, as "owner/name" strings.
type ProjectLists struct {
	Didactic []string `yaml:"didactic"`
	Personal []string `yaml:"personal"`
}

// ProjectMeta is one repository record from projectsMeta.json.
type ProjectMeta struct {
	FullName          string   `yaml:"full_name"`
	Name              string   `yaml:"name"`
	HTMLURL           string   `yaml:"html_url"`
	DefaultBranch     string   `yaml:"default_branch"`
	Languages         []string `yaml:"languages"`
	Description       string   `yaml:"description"`
	ReadmeTitle       string   `yaml:"readmeTitle"`
	ReadmeDescription string   `yaml:"readmeDescription"`
	ReadmeCover       string   `yaml:"readmeCover"`
	CoverURL          string   `yaml:"coverUrl"`
}

// ProjectsMeta is the document written by the metadata build job.
type ProjectsMeta struct {
	GeneratedAt string        `yaml:"generatedAt"`
	Didactic    []ProjectMeta `yaml:"didactic"`
	Personal    []ProjectMeta `yaml:"personal"`
}

// NoDescription is shown for projects without any description.
const NoDescription = "No description yet."

// Project is a display-ready project record.
type Project struct {
	Title       string
	Description string
	Tags        []string
}

// Title returns the README title, else the repository name.
func (m ProjectMeta) Title() string {
	if t := strings.TrimSpace(m.ReadmeTitle); t != "" {
		return t
	}
	if m.Name != "" {
		return m.Name
	}
	if i := strings.LastIndex(m.FullName, "/"); i >= 0 {
		return m.FullName[i+1:]
	}
	return m.FullName
}

// Summary returns the README description, else the repository description.
func (m ProjectMeta) Summary() string {
	if d := strings.TrimSpace(m.ReadmeDescription); d != "" {
		return d
	}
	if d := strings.TrimSpace(m.Description); d != "" {
		return d
	}
	return NoDescription
}

// Project converts the record for display.
func (m ProjectMeta) Project() Project {
	return Project{
		Title:       m.Title(),
		Description: m.Summary(),
		Tags:        m.Languages,
	}
}

// Catalog pairs the name lists with the metadata document.
type Catalog struct {
	Lists ProjectLists
	Meta  ProjectsMeta
}

// Ordered returns personal projects in personal-list order followed by
// didactic projects in didactic-list order.
func (c Catalog) Ordered() []Project {
	var out []Project
	out = append(out, order(c.Meta.Personal, c.Lists.Personal)...)
	out = append(out, order(c.Meta.Didactic, c.Lists.Didactic)...)
	return out
}

// Empty reports whether there is no project to show.
func (c Catalog) Empty() bool {
	return len(c.Ordered()) == 0
}

// order keeps the records named in names, in names order, matching full
// names case-insensitively. Records missing from names are not shown.
func order(metas []ProjectMeta, names []string) []Project {
	byName := make(map[string]ProjectMeta, len(metas))
	for _, m := range metas {
		key := strings.ToLower(m.FullName)
		if _, dup := byName[key]; !dup {
			byName[key] = m
		}
	}

	out := make([]Project, 0, len(names))
	for _, name := range names {
		if m, ok := byName[strings.ToLower(name)]; ok {
			out = append(out, m.Project())
		}
	}
	return out
}

package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ProfileFile      = "content.yaml"
	ProjectListsFile = "projectLists.json"
	ProjectsMetaFile = "projectsMeta.json"
)

//go:embed defaults/content.yaml
var defaultProfileYAML []byte

//go:embed defaults/projectLists.json
var defaultProjectListsJSON []byte

//go:embed defaults/projectsMeta.json
var defaultProjectsMetaJSON []byte

// LoadProfile loads the owner profile.
// Search order: customPath -> ~/.webterm/content.yaml -> ./configs/content.yaml -> embedded default
func LoadProfile(customPath string) (Profile, error) {
	var p Profile
	if err := load(customPath, ProfileFile, defaultProfileYAML, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadCatalog loads the project name lists and metadata. When dir is set
// both documents are read from it; otherwise each one follows the same
// search order as LoadProfile. JSON documents are parsed as YAML, of which
// JSON is a subset.
func LoadCatalog(dir string) (Catalog, error) {
	var c Catalog

	listsPath, metaPath := "", ""
	if dir != "" {
		listsPath = filepath.Join(dir, ProjectListsFile)
		metaPath = filepath.Join(dir, ProjectsMetaFile)
	}

	if err := load(listsPath, ProjectListsFile, defaultProjectListsJSON, &c.Lists); err != nil {
		return Catalog{}, err
	}
	if err := load(metaPath, ProjectsMetaFile, defaultProjectsMetaJSON, &c.Meta); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// load decodes the first readable, well-formed candidate into out. An
// explicit customPath must exist and parse; the other locations are skipped
// on any error.
func load(customPath, filename string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("content: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("content: parse %s: %w", customPath, err)
		}
		return nil
	}

	// Try user directory, then the local configs directory
	for _, path := range []string{userPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("content: parse embedded %s: %w", filename, err)
	}
	return nil
}

// userPath returns the path to a user document, or empty if home is unavailable.
func userPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".webterm", filename)
}

package project

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
)

// Manifest is the subset of velo.json the doctor looks at.
type Manifest struct {
	Name         string            `json:"name"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// DependencyNames returns the declared dependencies in sorted order.
func (m *Manifest) DependencyNames() []string {
	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewProjectError(ProjectErrorTypeManifest, "", ERROR_READ_MANIFEST, err).WithPath(path)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, NewProjectError(ProjectErrorTypeManifest, "", ERROR_PARSE_MANIFEST, err).WithPath(path)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, NewProjectError(ProjectErrorTypeManifest, "", ERROR_MANIFEST_NO_NAME, nil).WithPath(path)
	}
	return &manifest, nil
}

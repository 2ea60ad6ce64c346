package manifests

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/reusee/e5"
	"github.com/samber/lo"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Manifest is the content of a project.zom file.
//
//	## Project Info
//	- name: demo
//	- version: 0.1.0
//	## Dependencies
//	- linalg: 1.2
type Manifest struct {
	ProjectInfo     map[string]string
	Dependencies    map[string]string
	BuildSettings   map[string]string
	RuntimeSettings map[string]string
	CustomSettings  map[string]string
}

func newManifest() *Manifest {
	return &Manifest{
		ProjectInfo:     make(map[string]string),
		Dependencies:    make(map[string]string),
		BuildSettings:   make(map[string]string),
		RuntimeSettings: make(map[string]string),
		CustomSettings:  make(map[string]string),
	}
}

func (m *Manifest) section(name string) map[string]string {
	switch name {
	case "Project Info":
		return m.ProjectInfo
	case "Dependencies":
		return m.Dependencies
	case "Build Settings":
		return m.BuildSettings
	case "Runtime Settings":
		return m.RuntimeSettings
	case "Custom Settings":
		return m.CustomSettings
	}
	return nil
}

// Parse reads a manifest. Lines outside a known section and lines that are not `- key: value` are ignored.
func Parse(r io.Reader) (*Manifest, error) {
	m := newManifest()
	var current map[string]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {

		case strings.HasPrefix(line, "##"):
			current = m.section(strings.TrimSpace(line[2:]))

		case strings.HasPrefix(line, "-"):
			key, value, ok := strings.Cut(line[1:], ":")
			if !ok || current == nil {
				continue
			}
			current[strings.TrimSpace(key)] = strings.TrimSpace(value)

		}
	}
	if err := scanner.Err(); err != nil {
		return nil, wrap(err)
	}
	return m, nil
}

func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	return Parse(f)
}

func (m *Manifest) Name() string {
	return lo.CoalesceOrEmpty(m.ProjectInfo["name"], "Unknown")
}

func (m *Manifest) Version() string {
	return lo.CoalesceOrEmpty(m.ProjectInfo["version"], "0.0.0")
}

// DependencyNames returns the dependency names in sorted order.
func (m *Manifest) DependencyNames() []string {
	names := lo.Keys(m.Dependencies)
	slices.Sort(names)
	return names
}

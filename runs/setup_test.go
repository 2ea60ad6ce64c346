package runs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/zom/configs"
)

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.zom")
	if err := os.WriteFile(path, []byte(`
## Project Info
- name: demo
- version: 1.0.0

## Dependencies
- stats: 0.3
- linalg: 1.2
`), 0644); err != nil {
		t.Fatal(err)
	}

	scope, buf := testScope(t, func() configs.ManifestPath {
		return configs.ManifestPath(path)
	})
	scope.Call(func(
		setup Setup,
	) {
		manifest, err := setup(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if manifest.Name() != "demo" {
			t.Fatalf("got %v", manifest.Name())
		}
	})

	output := buf.String()
	if !strings.Contains(output, "name=demo version=1.0.0") {
		t.Fatalf("got %q", output)
	}
	linalg := strings.Index(output, "name=linalg")
	stats := strings.Index(output, "name=stats")
	if linalg < 0 || stats < 0 || linalg > stats {
		t.Fatalf("got %q", output)
	}
}

func TestSetupWithoutManifest(t *testing.T) {
	scope, buf := testScope(t, func() configs.ManifestPath {
		return configs.ManifestPath(filepath.Join(t.TempDir(), "project.zom"))
	})
	scope.Call(func(
		setup Setup,
	) {
		manifest, err := setup(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if manifest != nil {
			t.Fatalf("got %v", manifest)
		}
	})
	if !strings.Contains(buf.String(), "using default environment setup") {
		t.Fatalf("got %q", buf.String())
	}
}

package runs

import (
	"context"

	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/manifests"
)

// Setup loads the project manifest and reports what it declares.
// It returns nil when there is no manifest.
type Setup func(ctx context.Context) (*manifests.Manifest, error)

func (Module) Setup(
	getManifest manifests.GetManifest,
	logger logs.Logger,
) Setup {
	return func(ctx context.Context) (*manifests.Manifest, error) {
		manifest, err := getManifest()
		if err != nil {
			return nil, err
		}
		if manifest == nil {
			logger.DebugContext(ctx, "using default environment setup")
			return nil, nil
		}
		logger.InfoContext(ctx, "project",
			"name", manifest.Name(),
			"version", manifest.Version(),
		)
		for _, name := range manifest.DependencyNames() {
			logger.InfoContext(ctx, "loading basket",
				"name", name,
				"version", manifest.Dependencies[name],
			)
		}
		return manifest, nil
	}
}

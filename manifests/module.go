package manifests

import (
	"errors"
	"io/fs"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/zom/configs"
	"github.com/reusee/zom/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

// GetManifest loads the configured manifest. A missing file yields nil and no error.
type GetManifest func() (*Manifest, error)

func (Module) GetManifest(
	path configs.ManifestPath,
	logger logs.Logger,
) GetManifest {
	return func() (*Manifest, error) {
		if _, err := os.Stat(string(path)); errors.Is(err, fs.ErrNotExist) {
			logger.Info("manifest not found, using default configuration", "path", path)
			return nil, nil
		}
		m, err := Load(string(path))
		if err != nil {
			return nil, err
		}
		logger.Debug("manifest loaded", "path", path)
		return m, nil
	}
}

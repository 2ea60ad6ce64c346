package runs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/zom/configs"
)

// ReadSource reads a program from path, or from stdin if path is "-".
// At most MaxSourceBytes are accepted.
type ReadSource func(path string) (string, error)

func (Module) ReadSource(
	maxBytes configs.MaxSourceBytes,
) ReadSource {
	return func(path string) (string, error) {
		var r io.Reader
		if path == "-" {
			r = os.Stdin
		} else {
			f, err := os.Open(path)
			if err != nil {
				return "", wrap(err)
			}
			defer f.Close()
			r = f
		}
		content, err := io.ReadAll(io.LimitReader(r, int64(maxBytes)+1))
		if err != nil {
			return "", wrap(err)
		}
		if len(content) > int(maxBytes) {
			return "", fmt.Errorf("%s: %w: limit %d", path, ErrSourceTooLarge, maxBytes)
		}
		return string(content), nil
	}
}

package tokefile

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/spf13/afero"
)

// DefaultNames are the file names searched, in order, for a tokefile.
var DefaultNames = []string{"tokefile", "Tokefile", "tokefile.toml", "Tokefile.toml"}

// Discover returns the path of the first file in dir whose name appears in
// names. Directories with a matching name are skipped.
func Discover(fs afero.Fs, dir string, names []string) (string, error) {
	if len(names) == 0 {
		names = DefaultNames
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := fs.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		logger := logging.GetLogger("tokefile")
		logger.Debug().Str("path", path).Msg("Found tokefile")
		return path, nil
	}

	return "", errors.Newf(errors.ErrConfigNotFound,
		"no tokefile found in %s (looked for %s)", dir, strings.Join(names, ", ")).
		WithDetail("dir", dir)
}

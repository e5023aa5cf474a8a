package tokefile

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates the tokefile at path.
func Load(fs afero.Fs, path string) (*Document, error) {
	logger := logging.GetLogger("tokefile").With().Str("path", path).Logger()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read tokefile %s", path)
	}

	raw, err := Parse(data, formatFor(path))
	if err != nil {
		return nil, err
	}

	doc, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	doc.Path = path

	logger.Debug().
		Int("targets", len(doc.Targets)).
		Int("vars", len(doc.Vars)).
		Msg("Tokefile loaded")

	return doc, nil
}

// Format is the syntax of a tokefile.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse turns tokefile source into a generic tree.
func Parse(data []byte, format Format) (map[string]interface{}, error) {
	raw := make(map[string]interface{})

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = toml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "error parsing tokefile")
	}

	return raw, nil
}

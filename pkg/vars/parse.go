package vars

import (
	"strings"

	"github.com/arthur-debert/toke/pkg/errors"
)

// ParseCLI parses KEY=VALUE arguments. Each argument must split on "=" into
// exactly two parts.
func ParseCLI(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, "=")
		if len(parts) != 2 {
			return nil, errors.Newf(errors.ErrInvalidVariable, "invalid variable format: %s", arg).
				WithDetail("argument", arg)
		}
		out[parts[0]] = parts[1]
	}
	return out, nil
}

// Merge layers the given mappings, later ones overriding earlier ones.
// Call it as Merge(global, local, cli).
func Merge(layers ...map[string]string) map[string]string {
	size := 0
	for _, l := range layers {
		size += len(l)
	}

	merged := make(map[string]string, size)
	for _, l := range layers {
		for k, v := range l {
			merged[k] = v
		}
	}
	return merged
}

// Package wildcards expands command templates containing positional @@
// markers into one concrete command per row of wildcard values.
package wildcards

import (
	"strings"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/graph"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/arthur-debert/toke/pkg/tokefile"
)

// Marker is the positional placeholder replaced by one wildcard value.
const Marker = "@@"

// Expand returns the commands of cmd for the given resolved sources. Row i
// replaces, for each source in order, the first remaining Marker with the
// source's i-th value. Without sources the result is cmd alone.
func Expand(cmd string, sources []tokefile.Wildcard) ([]string, error) {
	if len(sources) == 0 {
		return []string{cmd}, nil
	}

	if markers := strings.Count(cmd, Marker); markers != len(sources) {
		return nil, errors.New(errors.ErrWildcardInvalid,
			"invalid tokefile, the number of wildcards in the cmd value must be the same as the number of wildcards in the wildcards value").
			WithDetail("markers", markers).
			WithDetail("sources", len(sources))
	}

	rows := -1
	for i, src := range sources {
		if !src.IsList {
			return nil, errors.Newf(errors.ErrWildcardInvalid, "wildcard %d did not resolve to a list of values", i).
				WithDetail("index", i).
				WithDetail("value", src.Command)
		}
		if rows == -1 {
			rows = len(src.Values)
		} else if len(src.Values) != rows {
			return nil, errors.New(errors.ErrWildcardInvalid,
				"invalid tokefile, all wildcards must have the same number of elements/iterations").
				WithDetail("index", i).
				WithDetail("expected", rows).
				WithDetail("got", len(src.Values))
		}
	}

	commands := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		c := cmd
		for _, src := range sources {
			c = strings.Replace(c, Marker, src.Values[row], 1)
		}
		commands = append(commands, c)
	}
	return commands, nil
}

// Commands returns the commands a resolved target runs. A target with
// neither cmd nor wildcards runs nothing.
func Commands(t *tokefile.Target) ([]string, error) {
	if t.Cmd == "" && !t.HasWildcards() {
		return nil, nil
	}

	commands, err := Expand(t.Cmd, t.Wildcards)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWildcardInvalid, "cannot expand target '%s'", t.Name).
			WithDetail("target", t.Name)
	}
	return commands, nil
}

// Plan expands every target reachable from root, keyed by target name, so
// that any expansion error surfaces before a command runs. The dependency
// graph must be acyclic.
func Plan(doc *tokefile.Document, root string) (map[string][]string, error) {
	logger := logging.GetLogger("wildcards")

	plan := make(map[string][]string)
	for _, name := range graph.Reachable(doc, root) {
		target, _ := doc.Target(name)
		commands, err := Commands(target)
		if err != nil {
			return nil, err
		}
		plan[name] = commands

		logger.Debug().
			Str("target", name).
			Int("commands", len(commands)).
			Msg("Planned target")
	}
	return plan, nil
}

package tokefile

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
)

// rawTarget mirrors a target table before conversion.
type rawTarget struct {
	Cmd       *string                `mapstructure:"cmd"`
	Deps      []string               `mapstructure:"deps"`
	Vars      map[string]interface{} `mapstructure:"vars"`
	Wildcards []interface{}          `mapstructure:"wildcards"`
	Desc      string                 `mapstructure:"desc"`
}

// Decode converts a generic tree into a Document.
func Decode(raw map[string]interface{}) (*Document, error) {
	doc := &Document{
		Vars:    make(map[string]string),
		Targets: make(map[string]*Target),
	}

	if rawVars, ok := raw["vars"]; ok {
		table, ok := rawVars.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigInvalid, "vars must be a table, got %s", describe(rawVars))
		}
		vars, err := decodeVars(table)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid global vars")
		}
		doc.Vars = vars
	}

	rawTargets, ok := raw["targets"]
	if !ok {
		return nil, errors.New(errors.ErrConfigInvalid, "no targets found in tokefile")
	}
	targets, ok := rawTargets.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigInvalid, "targets must be a table, got %s", describe(rawTargets))
	}

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		target, err := decodeTarget(name, targets[name])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid target '%s'", name).
				WithDetail("target", name)
		}
		doc.Targets[name] = target
	}

	return doc, nil
}

func decodeTarget(name string, value interface{}) (*Target, error) {
	table, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("target must be a table, got %s", describe(value))
	}

	var rt rawTarget
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &rt,
		Metadata: &md,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(table); err != nil {
		return nil, err
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		logger := logging.GetLogger("tokefile")
		logger.Warn().
			Str("target", name).
			Strs("keys", md.Unused).
			Msg("Ignoring unknown target keys")
	}

	target := &Target{
		Name: name,
		Deps: rt.Deps,
		Desc: rt.Desc,
	}
	if rt.Cmd != nil {
		target.Cmd = *rt.Cmd
	}

	target.Vars, err = decodeVars(rt.Vars)
	if err != nil {
		return nil, fmt.Errorf("invalid vars: %w", err)
	}

	for i, w := range rt.Wildcards {
		wildcard, err := decodeWildcard(w)
		if err != nil {
			return nil, fmt.Errorf("wildcard %d: %w", i, err)
		}
		target.Wildcards = append(target.Wildcards, wildcard)
	}

	return target, nil
}

func decodeWildcard(value interface{}) (Wildcard, error) {
	switch v := value.(type) {
	case string:
		return Wildcard{Command: v}, nil
	case []interface{}:
		values := make([]string, 0, len(v))
		for j, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return Wildcard{}, fmt.Errorf("element %d must be a string, got %s", j, describe(elem))
			}
			values = append(values, s)
		}
		return Wildcard{Values: values, IsList: true}, nil
	default:
		return Wildcard{}, fmt.Errorf("must be a command string or a list of strings, got %s", describe(value))
	}
}

func decodeVars(table map[string]interface{}) (map[string]string, error) {
	vars := make(map[string]string, len(table))
	for name, value := range table {
		s, err := scalarString(value)
		if err != nil {
			return nil, fmt.Errorf("variable '%s': %w", name, err)
		}
		vars[name] = s
	}
	return vars, nil
}

// scalarString renders a scalar variable value as text.
func scalarString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case fmt.Stringer:
		// go-toml local dates and times
		return v.String(), nil
	default:
		return "", fmt.Errorf("must be a scalar, got %s", describe(value))
	}
}

func describe(value interface{}) string {
	switch value.(type) {
	case map[string]interface{}:
		return "a table"
	case []interface{}:
		return "an array"
	case nil:
		return "nothing"
	default:
		return fmt.Sprintf("%T", value)
	}
}

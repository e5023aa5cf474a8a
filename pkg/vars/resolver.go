package vars

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/arthur-debert/toke/pkg/shell"
	"github.com/arthur-debert/toke/pkg/tokefile"
)

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Warning is a non-fatal problem found while resolving a target.
type Warning struct {
	Target  string
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Resolver substitutes variables, running `!command` values through an
// Executor.
type Resolver struct {
	exec shell.Executor
	// Strict turns malformed wildcard sources into WILDCARD_INVALID errors
	// instead of warnings.
	Strict bool
}

// NewResolver creates a Resolver evaluating commands with exec.
func NewResolver(exec shell.Executor) *Resolver {
	return &Resolver{exec: exec}
}

// Substitute rewrites the ${name} placeholders of s that mapping defines.
// Undefined placeholders are left verbatim.
func (r *Resolver) Substitute(ctx context.Context, s string, mapping map[string]string) (string, error) {
	return r.newPass("").substitute(ctx, s, mapping)
}

// ResolveDocument rewrites cmd and wildcards of every target in doc using
// the merged global, local and cli variables. The returned warnings describe
// wildcard sources that were left untouched.
func (r *Resolver) ResolveDocument(ctx context.Context, doc *tokefile.Document, cli map[string]string) ([]Warning, error) {
	logger := logging.GetLogger("vars")

	var warnings []Warning
	for _, name := range doc.Names() {
		target, _ := doc.Target(name)
		mapping := Merge(doc.Vars, target.Vars, cli)
		p := r.newPass(name)

		cmd, err := p.substitute(ctx, target.Cmd, mapping)
		if err != nil {
			return warnings, errors.Wrapf(err, errors.ErrCommandSpawn, "cannot resolve cmd of target '%s'", name)
		}
		target.Cmd = cmd

		if err := p.resolveWildcards(ctx, target, mapping); err != nil {
			return warnings, err
		}
		warnings = append(warnings, p.warnings...)

		logger.Debug().
			Str("target", name).
			Str("cmd", target.Cmd).
			Int("wildcards", len(target.Wildcards)).
			Msg("Resolved target")
	}
	return warnings, nil
}

// pass is the resolution of one target. Command outputs are cached for the
// duration of the pass only.
type pass struct {
	r        *Resolver
	target   string
	cache    map[string]shell.Result
	warnings []Warning
}

func (r *Resolver) newPass(target string) *pass {
	return &pass{r: r, target: target, cache: make(map[string]shell.Result)}
}

func (p *pass) substitute(ctx context.Context, s string, mapping map[string]string) (string, error) {
	out := s
	for _, m := range placeholder.FindAllStringSubmatch(s, -1) {
		value, ok := mapping[m[1]]
		if !ok {
			continue
		}
		if command, isCmd := strings.CutPrefix(value, tokefile.CommandPrefix); isCmd {
			res, err := p.evaluate(ctx, command)
			if err != nil {
				return s, err
			}
			value = strings.TrimRightFunc(res.Stdout, unicode.IsSpace)
		}
		out = strings.ReplaceAll(out, m[0], value)
	}
	return out, nil
}

func (p *pass) evaluate(ctx context.Context, command string) (shell.Result, error) {
	if res, ok := p.cache[command]; ok {
		return res, nil
	}

	logger := logging.GetLogger("vars")
	logging.LogCommand(logger, command, nil)

	res, err := p.r.exec.Output(ctx, command)
	if err != nil {
		return res, err
	}
	if res.ExitCode != 0 {
		logger.Warn().
			Str("target", p.target).
			Str("command", command).
			Int("exitCode", res.ExitCode).
			Msg("Shell-evaluated value exited non-zero, using its output anyway")
	}

	p.cache[command] = res
	return res, nil
}

func (p *pass) resolveWildcards(ctx context.Context, target *tokefile.Target, mapping map[string]string) error {
	for i, w := range target.Wildcards {
		switch {
		case w.IsList:
			values := make([]string, len(w.Values))
			for j, v := range w.Values {
				if strings.HasPrefix(v, tokefile.CommandPrefix) {
					if err := p.invalid(i, v); err != nil {
						return err
					}
					values[j] = v
					continue
				}
				resolved, err := p.substitute(ctx, v, mapping)
				if err != nil {
					return errors.Wrapf(err, errors.ErrCommandSpawn, "cannot resolve wildcard %d of target '%s'", i, target.Name)
				}
				values[j] = resolved
			}
			target.Wildcards[i] = tokefile.Wildcard{Values: values, IsList: true}

		case w.IsCommand():
			command, err := p.substitute(ctx, strings.TrimPrefix(w.Command, tokefile.CommandPrefix), mapping)
			if err != nil {
				return errors.Wrapf(err, errors.ErrCommandSpawn, "cannot resolve wildcard %d of target '%s'", i, target.Name)
			}
			res, err := p.evaluate(ctx, command)
			if err != nil {
				return errors.Wrapf(err, errors.ErrCommandSpawn, "cannot evaluate wildcard %d of target '%s'", i, target.Name)
			}
			target.Wildcards[i] = tokefile.Wildcard{
				Values: strings.Split(strings.TrimSpace(res.Stdout), "\n"),
				IsList: true,
			}

		default:
			if err := p.invalid(i, w.Command); err != nil {
				return err
			}
		}
	}
	return nil
}

// invalid reports a malformed wildcard value: a warning normally, a
// WILDCARD_INVALID error in strict mode.
func (p *pass) invalid(index int, value string) error {
	msg := fmt.Sprintf("invalid wildcard format on target %s: %s, it must either be a command (string starting with !) or an array",
		p.target, value)
	if p.r.Strict {
		return errors.New(errors.ErrWildcardInvalid, msg).
			WithDetail("target", p.target).
			WithDetail("index", index)
	}
	p.warnings = append(p.warnings, Warning{Target: p.target, Message: msg})
	return nil
}

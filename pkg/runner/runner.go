package runner

import (
	"context"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/arthur-debert/toke/pkg/shell"
	"github.com/arthur-debert/toke/pkg/tokefile"
	"github.com/arthur-debert/toke/pkg/wildcards"
)

// Tracer announces each command before it runs.
type Tracer interface {
	Trace(prefix, command string)
}

// Options tunes a Runner.
type Options struct {
	// TracePrefix precedes each traced command.
	TracePrefix string
	// DryRun traces commands with DryRunPrefix instead of running them.
	DryRun       bool
	DryRunPrefix string
}

// Runner executes targets of one resolved Document.
type Runner struct {
	exec   shell.Executor
	doc    *tokefile.Document
	plan   map[string][]string
	tracer Tracer
	opts   Options
}

// New creates a Runner. plan holds the expanded commands per target, as
// returned by wildcards.Plan; targets missing from it are expanded on
// demand. tracer may be nil.
func New(exec shell.Executor, doc *tokefile.Document, plan map[string][]string, tracer Tracer, opts Options) *Runner {
	if plan == nil {
		plan = make(map[string][]string)
	}
	return &Runner{exec: exec, doc: doc, plan: plan, tracer: tracer, opts: opts}
}

// Validate returns a TARGET_NOT_FOUND error, with the closest target names
// as suggestions, when doc does not declare name.
func Validate(doc *tokefile.Document, name string) error {
	if _, ok := doc.Target(name); ok {
		return nil
	}

	err := errors.Newf(errors.ErrTargetNotFound, "target '%s' not found in tokefile", name).
		WithDetail("target", name)
	if suggestions := Suggest(name, doc.Names()); len(suggestions) > 0 {
		err = err.WithDetail("did you mean", suggestions)
	}
	return err
}

// Run executes the named target and its dependencies.
func (r *Runner) Run(ctx context.Context, name string) error {
	if err := Validate(r.doc, name); err != nil {
		return err
	}

	logger := logging.GetLogger("runner")
	done := logging.LogOperationStart(logger, "run "+name)
	defer done()

	return r.run(ctx, name, 0)
}

func (r *Runner) run(ctx context.Context, name string, depth int) error {
	logger := logging.GetLogger("runner")

	target, ok := r.doc.Target(name)
	if !ok {
		logger.Debug().Str("dep", name).Msg("Skipping undeclared dependency")
		return nil
	}

	for _, dep := range target.Deps {
		if err := r.run(ctx, dep, depth+1); err != nil {
			return err
		}
	}

	commands, err := r.commands(target)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("target", name).
		Int("depth", depth).
		Int("commands", len(commands)).
		Msg("Running target")

	for _, command := range commands {
		if err := r.execute(ctx, name, command); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) commands(target *tokefile.Target) ([]string, error) {
	if commands, ok := r.plan[target.Name]; ok {
		return commands, nil
	}
	commands, err := wildcards.Commands(target)
	if err != nil {
		return nil, err
	}
	r.plan[target.Name] = commands
	return commands, nil
}

func (r *Runner) execute(ctx context.Context, target, command string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed, "run interrupted before command '%s'", command).
			WithDetail("target", target)
	}

	if r.opts.DryRun {
		r.trace(r.opts.DryRunPrefix, command)
		return nil
	}
	r.trace(r.opts.TracePrefix, command)

	code, err := r.exec.Run(ctx, command)
	if err != nil {
		return err
	}
	if code == 0 {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrapf(ctxErr, errors.ErrCommandFailed, "command '%s' interrupted", command).
			WithDetail("target", target).
			WithDetail("command", command)
	}
	return errors.Newf(errors.ErrCommandFailed, "command '%s' failed with exit code %d", command, code).
		WithDetail("target", target).
		WithDetail("command", command).
		WithDetail("exit_code", code)
}

func (r *Runner) trace(prefix, command string) {
	if r.tracer != nil {
		r.tracer.Trace(prefix, command)
	}
}

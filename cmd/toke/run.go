package toke

import (
	"fmt"
	"os"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/graph"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/arthur-debert/toke/pkg/runner"
	"github.com/arthur-debert/toke/pkg/shell"
	"github.com/arthur-debert/toke/pkg/style"
	"github.com/arthur-debert/toke/pkg/tokefile"
	"github.com/arthur-debert/toke/pkg/vars"
	"github.com/arthur-debert/toke/pkg/wildcards"
	"github.com/spf13/cobra"
)

func (a *app) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case a.completion != "":
		return writeCompletion(cmd.Root(), a.completion, out)
	case a.syntax:
		_, err := fmt.Fprint(out, style.RenderSyntax(a.useColor, 0))
		return err
	}

	if !a.list && len(args) == 0 {
		return errors.New(errors.ErrInvalidInput, MsgErrNoTarget)
	}

	var cli map[string]string
	if len(args) > 0 {
		var err error
		if cli, err = vars.ParseCLI(args[1:]); err != nil {
			return err
		}
	}

	doc, err := a.loadDocument()
	if err != nil {
		return err
	}

	if a.list {
		table, err := style.RenderTargetList(doc)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, MsgErrRenderTargets)
		}
		_, err = fmt.Fprintln(out, table)
		return err
	}

	return a.runTarget(cmd, doc, args[0], cli)
}

// runTarget validates doc, resolves it and runs name. Every validation
// step completes before the first target command runs.
func (a *app) runTarget(cmd *cobra.Command, doc *tokefile.Document, name string, cli map[string]string) error {
	ctx := cmd.Context()
	logger := logging.GetLogger("toke")

	if err := graph.DetectCycles(doc); err != nil {
		return err
	}

	if a.settings.Strict {
		if err := graph.ValidateDeps(doc); err != nil {
			return err
		}
	} else {
		for _, m := range graph.MissingDeps(doc) {
			a.printer.Warn(fmt.Sprintf(MsgWarnMissingDep, m.Dep, m.Target))
		}
	}

	if err := runner.Validate(doc, name); err != nil {
		return err
	}

	exec := shell.New(shell.Options{
		Path:    a.settings.Shell,
		Flag:    a.settings.ShellFlag,
		Timeout: a.settings.CommandTimeout,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})

	resolver := vars.NewResolver(exec)
	resolver.Strict = a.settings.Strict
	warnings, err := resolver.ResolveDocument(ctx, doc, cli)
	for _, w := range warnings {
		a.printer.Warn(w.String())
	}
	if err != nil {
		return err
	}

	plan, err := wildcards.Plan(doc, name)
	if err != nil {
		return err
	}

	logger.Info().
		Str("tokefile", doc.Path).
		Str("target", name).
		Bool("dryRun", a.dryRun).
		Msg("Running target")

	r := runner.New(exec, doc, plan, a.printer, runner.Options{
		TracePrefix:  a.settings.TracePrefix,
		DryRun:       a.dryRun,
		DryRunPrefix: a.settings.DryRunPrefix,
	})
	return r.Run(ctx, name)
}

// loadDocument reads the tokefile named by --file, or the first default
// name found in the working directory.
func (a *app) loadDocument() (*tokefile.Document, error) {
	path := a.file
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, MsgErrWorkingDir)
		}
		if path, err = tokefile.Discover(a.fs, dir, a.settings.Discovery.Names); err != nil {
			return nil, err
		}
	}
	return tokefile.Load(a.fs, path)
}

package toke

import (
	"context"
	"io"
	"os"

	"github.com/arthur-debert/toke/internal/version"
	"github.com/arthur-debert/toke/pkg/config"
	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/arthur-debert/toke/pkg/paths"
	"github.com/arthur-debert/toke/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Streams are the process streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// app holds flag values and the state shared by one invocation.
type app struct {
	verbosity  int
	file       string
	list       bool
	dryRun     bool
	strict     bool
	color      string
	syntax     bool
	completion string

	fs       afero.Fs
	settings *config.Settings
	useColor bool
	printer  *style.Printer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newApp(afero.NewOsFs()).command()
}

func newApp(fs afero.Fs) *app {
	return &app{fs: fs}
}

func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Strs("args", args).Msg("Command started")
			return nil
		},
		RunE:              a.run,
		ValidArgsFunction: a.complete,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.file, "file", "f", "", MsgFlagFile)
	flags.BoolVarP(&a.list, "list", "l", false, MsgFlagList)
	flags.BoolVarP(&a.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	flags.BoolVar(&a.strict, "strict", false, MsgFlagStrict)
	flags.StringVar(&a.color, "color", "", MsgFlagColor)
	flags.BoolVar(&a.syntax, "syntax", false, MsgFlagSyntax)
	flags.StringVar(&a.completion, "completion", "", MsgFlagCompletion)

	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("completion", cobra.FixedCompletions(
		[]string{"bash", "zsh", "fish", "powershell"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.MarkFlagFilename("file")

	return rootCmd
}

// setup loads settings and configures logging and diagnostics output.
func (a *app) setup(cmd *cobra.Command) error {
	p := paths.New()

	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("strict") {
		overrides["strict"] = a.strict
	}
	if cmd.Flags().Changed("color") {
		overrides["color"] = a.color
	}

	settings, err := config.Load(config.LoadOptions{
		UserConfigPath: p.ConfigFilePath(),
		Overrides:      overrides,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigInvalid, MsgErrLoadSettings).
			WithDetail("path", p.ConfigFilePath())
	}
	a.settings = settings

	stderr := cmd.ErrOrStderr()
	a.useColor = style.DetectColor(settings.Color, asFile(stderr))
	style.Configure(a.useColor)
	a.printer = style.NewPrinter(stderr, a.useColor)

	logOpts := logging.Options{Console: stderr, NoColor: !a.useColor}
	if settings.Log.File {
		logOpts.LogFile = p.LogFilePath()
	}
	logging.SetupLogger(a.verbosity, logOpts)

	return nil
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

// Execute runs toke with args and returns the process exit code.
func Execute(ctx context.Context, args []string, streams Streams) int {
	a := newApp(afero.NewOsFs())
	return a.execute(ctx, args, streams)
}

func (a *app) execute(ctx context.Context, args []string, streams Streams) int {
	rootCmd := a.command()
	if args == nil {
		// cobra falls back to os.Args for nil args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	if streams.In != nil {
		rootCmd.SetIn(streams.In)
	}
	if streams.Out != nil {
		rootCmd.SetOut(streams.Out)
	}
	if streams.Err != nil {
		rootCmd.SetErr(streams.Err)
	}

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	printer := a.printer
	if printer == nil {
		printer = style.NewPrinter(rootCmd.ErrOrStderr(), false)
	}
	printer.Error(err)
	switch {
	case errors.IsErrorCode(err, errors.ErrConfigNotFound):
		printer.Hint(MsgHintNoTokefile)
	case errors.IsErrorCode(err, errors.ErrTargetNotFound):
		printer.Hint(MsgHintListTargets)
	}

	log.Debug().Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	return errors.ExitCode(err)
}

package shell

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/logging"
	"github.com/rs/zerolog"
)

// waitDelay bounds how long a killed command may hold its output pipes open.
const waitDelay = 2 * time.Second

// Executor is the capability to run shell command strings.
type Executor interface {
	// Run executes command with the configured streams attached and waits
	// for it. A non-zero exit is reported through the returned code, not
	// the error; the error is set only when the shell could not be run.
	Run(ctx context.Context, command string) (exitCode int, err error)

	// Output executes command and returns its captured stdout.
	Output(ctx context.Context, command string) (Result, error)
}

// Result is the outcome of a captured command.
type Result struct {
	Stdout   string
	ExitCode int
}

// Options configures a Shell.
type Options struct {
	// Path is the shell binary, "sh" when empty.
	Path string
	// Flag precedes the command string, "-c" when empty.
	Flag string
	// Timeout bounds each command; zero means no limit.
	Timeout time.Duration

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Shell is the Executor backed by real child processes.
type Shell struct {
	path    string
	flag    string
	timeout time.Duration
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  zerolog.Logger
}

// New creates a Shell, defaulting to `sh -c` and the process streams.
func New(opts Options) *Shell {
	s := &Shell{
		path:    opts.Path,
		flag:    opts.Flag,
		timeout: opts.Timeout,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		logger:  logging.GetLogger("shell"),
	}
	if s.path == "" {
		s.path = "sh"
	}
	if s.flag == "" {
		s.flag = "-c"
	}
	if s.stdin == nil {
		s.stdin = os.Stdin
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	return s
}

// Run implements Executor.
func (s *Shell) Run(ctx context.Context, command string) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.path, s.flag, command)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	logging.LogCommand(s.logger, s.path, cmd.Args[1:])
	return s.wait(cmd, command)
}

// Output implements Executor. The command's stderr is forwarded to the
// diagnostic stream.
func (s *Shell) Output(ctx context.Context, command string) (Result, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, s.path, s.flag, command)
	cmd.Stdout = &stdout
	cmd.Stderr = s.stderr

	logging.LogCommand(s.logger, s.path, cmd.Args[1:])
	code, err := s.wait(cmd, command)
	if err != nil {
		return Result{}, err
	}

	s.logger.Trace().
		Str("command", command).
		Str("stdout", stdout.String()).
		Int("exitCode", code).
		Msg("Captured command output")

	return Result{Stdout: stdout.String(), ExitCode: code}, nil
}

func (s *Shell) wait(cmd *exec.Cmd, command string) (int, error) {
	cmd.WaitDelay = waitDelay
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	s.logger.Error().
		Err(err).
		Str("shell", s.path).
		Str("command", command).
		Msg("Failed to start shell")

	return -1, errors.Wrapf(err, errors.ErrCommandSpawn, "failed to execute shell %s", s.path).
		WithDetail("command", command)
}

func (s *Shell) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// Package shell runs command strings through a shell.
//
// Every process toke starts goes through an Executor: target commands are
// run with Run, which streams to the process's own stdin/stdout/stderr,
// and shell-evaluated variables and wildcards are run with Output, which
// captures stdout. Tests substitute testutil.FakeExecutor to script results
// and assert on invocations without spawning processes.
package shell

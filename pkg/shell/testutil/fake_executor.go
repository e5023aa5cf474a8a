package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/toke/pkg/shell"
)

// CallKind distinguishes streamed runs from captured evaluations.
type CallKind string

const (
	CallRun    CallKind = "run"
	CallOutput CallKind = "output"
)

// Call records one invocation of the fake.
type Call struct {
	Kind    CallKind
	Command string
}

// FakeExecutor is a scripted shell.Executor.
// Commands without a scripted result succeed with empty output.
type FakeExecutor struct {
	mu sync.Mutex

	// Outputs maps a command to the result Output returns for it.
	Outputs map[string]shell.Result
	// ExitCodes maps a command to the code Run returns for it.
	ExitCodes map[string]int
	// Errors maps a command to a spawn error returned by Run and Output.
	Errors map[string]error

	calls []Call
}

// NewFakeExecutor creates an empty FakeExecutor.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		Outputs:   make(map[string]shell.Result),
		ExitCodes: make(map[string]int),
		Errors:    make(map[string]error),
	}
}

// Run implements shell.Executor.
func (f *FakeExecutor) Run(_ context.Context, command string) (int, error) {
	f.record(CallRun, command)
	if err, ok := f.Errors[command]; ok {
		return -1, err
	}
	return f.ExitCodes[command], nil
}

// Output implements shell.Executor.
func (f *FakeExecutor) Output(_ context.Context, command string) (shell.Result, error) {
	f.record(CallOutput, command)
	if err, ok := f.Errors[command]; ok {
		return shell.Result{}, err
	}
	return f.Outputs[command], nil
}

// Calls returns every invocation in order.
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Ran returns the commands passed to Run, in order.
func (f *FakeExecutor) Ran() []string {
	return f.commands(CallRun)
}

// Evaluated returns the commands passed to Output, in order.
func (f *FakeExecutor) Evaluated() []string {
	return f.commands(CallOutput)
}

func (f *FakeExecutor) commands(kind CallKind) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if c.Kind == kind {
			out = append(out, c.Command)
		}
	}
	return out
}

func (f *FakeExecutor) record(kind CallKind, command string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Kind: kind, Command: command})
}

var _ shell.Executor = (*FakeExecutor)(nil)

package toke

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "A declarative task runner"
	MsgRootUse   = "toke [flags] <target> [KEY=VALUE ...]"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFile       = "Tokefile to use instead of searching the current directory"
	MsgFlagList       = "List the targets of the tokefile and exit"
	MsgFlagDryRun     = "Print the commands that would run without running them"
	MsgFlagStrict     = "Fail on undeclared dependencies and malformed wildcards"
	MsgFlagColor      = "Color diagnostics: auto, always or never"
	MsgFlagSyntax     = "Print the tokefile format reference and exit"
	MsgFlagCompletion = "Print a completion script for bash, zsh, fish or powershell and exit"

	// Warnings
	MsgWarnMissingDep = "dep '%s' of target '%s' is not declared"

	// Hints
	MsgHintNoTokefile  = "create a tokefile here or name one with --file"
	MsgHintListTargets = "run toke --list to see the declared targets"

	// Error messages
	MsgErrNoTarget      = "no target given, usage: " + MsgRootUse
	MsgErrLoadSettings  = "failed to load settings"
	MsgErrWorkingDir    = "cannot determine the current directory"
	MsgErrUnknownShell  = "unsupported completion shell %q, use bash, zsh, fish or powershell"
	MsgErrRenderTargets = "failed to render target list"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")
)

// Package paths provides centralized path handling for toke.
// It resolves the XDG config and state directories used for the user
// settings file and the log file, honouring TOKE_* overrides.
package paths

package config

import (
	"fmt"
	"time"
)

// Color modes accepted by the color setting
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings is the resolved configuration of the toke tool.
type Settings struct {
	Shell          string            `koanf:"shell"`
	ShellFlag      string            `koanf:"shell_flag"`
	Strict         bool              `koanf:"strict"`
	Color          string            `koanf:"color"`
	TracePrefix    string            `koanf:"trace_prefix"`
	DryRunPrefix   string            `koanf:"dry_run_prefix"`
	CommandTimeout time.Duration     `koanf:"command_timeout"`
	Log            LogSettings       `koanf:"log"`
	Discovery      DiscoverySettings `koanf:"discovery"`
}

// LogSettings controls the log file.
type LogSettings struct {
	File bool `koanf:"file"`
}

// DiscoverySettings lists the tokefile names searched, in order, when no
// explicit file is given.
type DiscoverySettings struct {
	Names []string `koanf:"names"`
}

// Validate checks value ranges that the decoder cannot enforce.
func (s *Settings) Validate() error {
	if s.Shell == "" {
		return fmt.Errorf("shell must not be empty")
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, s.Color)
	}
	if s.CommandTimeout < 0 {
		return fmt.Errorf("command_timeout must not be negative, got %s", s.CommandTimeout)
	}
	if len(s.Discovery.Names) == 0 {
		return fmt.Errorf("discovery.names must list at least one file name")
	}
	return nil
}

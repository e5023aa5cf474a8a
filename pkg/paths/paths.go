package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvTokeConfigDir overrides the XDG config directory for toke
	EnvTokeConfigDir = "TOKE_CONFIG_DIR"

	// EnvTokeStateDir overrides the XDG state directory for toke
	EnvTokeStateDir = "TOKE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// TokeDirName is the directory name for toke-specific files
	TokeDirName = "toke"

	// ConfigFileName is the name of the user settings file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "toke.log"
)

// Paths provides centralized path management for toke
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance, resolving directories from the environment.
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvTokeConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, TokeDirName)
	}

	if stateDir := os.Getenv(EnvTokeStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, TokeDirName)
	}

	return p
}

func (p *paths) ConfigDir() string { return p.xdgConfig }

func (p *paths) StateDir() string { return p.xdgState }

// ConfigFilePath returns the location of the optional user settings file.
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the location of the append-only log file.
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, path[1:])
}

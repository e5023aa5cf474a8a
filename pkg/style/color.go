package style

import (
	"os"

	"github.com/arthur-debert/toke/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// DetectColor reports whether output to f should be colored. In auto mode
// color is used only on a terminal that supports it and when NO_COLOR is
// unset.
func DetectColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if f == nil || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return false
	}

	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

// Profile returns the termenv profile to render with.
func Profile(enabled bool) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	if p := termenv.EnvColorProfile(); p != termenv.Ascii {
		return p
	}
	return termenv.ANSI
}

// Configure applies the color decision to the pterm and lipgloss defaults.
func Configure(enabled bool) {
	if enabled {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
	lipgloss.SetColorProfile(Profile(enabled))
}

package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of one output stream.
type Styles struct {
	Prefix  lipgloss.Style
	Command lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the styles bound to renderer r, so color decisions
// follow that renderer's profile.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Prefix: r.NewStyle().
			Foreground(PrimaryColor),
		Command: r.NewStyle().
			Foreground(CommandColor).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(WarningColor).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(MutedColor),
	}
}

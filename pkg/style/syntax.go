package style

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed syntax.md
var syntaxReference string

// SyntaxReference returns the tokefile format reference as markdown.
func SyntaxReference() string {
	return syntaxReference
}

// RenderSyntax renders the tokefile format reference for the terminal.
// Without color the notty style is used. Width 0 keeps glamour's default.
func RenderSyntax(color bool, width int) string {
	var options []glamour.TermRendererOption
	if color {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return SyntaxReference()
	}

	rendered, err := renderer.Render(SyntaxReference())
	if err != nil {
		return SyntaxReference()
	}
	return rendered
}

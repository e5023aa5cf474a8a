package style

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Printer writes the user-facing diagnostics of a run: trace lines,
// warnings and the final error.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to w, colored when color is set.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(Profile(color))
	return &Printer{w: w, styles: NewStyles(r)}
}

// Trace announces a command about to run.
func (p *Printer) Trace(prefix, command string) {
	fmt.Fprintln(p.w, p.styles.Prefix.Render(prefix)+p.styles.Command.Render(command))
}

// Warn prints a non-fatal problem.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, p.styles.Warning.Render("warning:")+" "+msg)
}

// Hint prints a follow-up suggestion, usually after Error.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.w, p.styles.Muted.Render("hint: "+msg))
}

// Error prints err followed by its details, one per line.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(p.w, p.styles.Error.Render("error:")+" "+err.Error())

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintln(p.w, p.styles.Muted.Render(fmt.Sprintf("  %s: %v", k, details[k])))
	}
}

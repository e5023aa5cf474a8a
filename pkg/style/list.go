package style

import (
	"strings"

	"github.com/arthur-debert/toke/pkg/tokefile"
	"github.com/pterm/pterm"
)

// RenderTargetList renders the targets of doc as a table of name,
// dependencies and description.
func RenderTargetList(doc *tokefile.Document) (string, error) {
	names := doc.Names()
	if len(names) == 0 {
		return "No targets found", nil
	}

	data := pterm.TableData{{"TARGET", "DEPS", "DESCRIPTION"}}
	for _, name := range names {
		t, _ := doc.Target(name)
		data = append(data, []string{name, strings.Join(t.Deps, ", "), t.Desc})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		Srender()
}

package tokefile

import (
	"sort"
	"strings"
)

// CommandPrefix marks a value whose remainder is a shell command to evaluate.
const CommandPrefix = "!"

// Document is a loaded tokefile.
type Document struct {
	// Path is the file the document was loaded from.
	Path string
	// Vars are the global variables.
	Vars map[string]string
	// Targets maps target name to target.
	Targets map[string]*Target
}

// Target is a named unit of work.
type Target struct {
	Name string
	// Cmd is the command template. Empty when the target has no cmd.
	Cmd string
	// Deps are run, in order, before the target's own commands.
	Deps []string
	// Vars override global variables for this target.
	Vars map[string]string
	// Wildcards are the value sources for the @@ markers in Cmd.
	Wildcards []Wildcard
	// Desc is a one-line description shown when listing targets.
	Desc string
}

// Wildcard is one value source of a target. Before resolution it is either
// a command string (Command) or a literal list (Values with IsList set);
// resolution turns command sources into lists.
type Wildcard struct {
	Command string
	Values  []string
	IsList  bool
}

// IsCommand reports whether the source is a `!command` string.
func (w Wildcard) IsCommand() bool {
	return !w.IsList && strings.HasPrefix(w.Command, CommandPrefix)
}

// Target returns the named target.
func (d *Document) Target(name string) (*Target, bool) {
	t, ok := d.Targets[name]
	return t, ok
}

// Names returns all target names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Targets))
	for name := range d.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasWildcards reports whether the target declares any wildcard source.
func (t *Target) HasWildcards() bool {
	return len(t.Wildcards) > 0
}

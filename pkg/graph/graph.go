package graph

import (
	"strings"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/arthur-debert/toke/pkg/tokefile"
)

// DetectCycles returns a CYCLE_DETECTED error for the first dependency chain
// that revisits a target already on the current path. Targets are walked in
// name order so the reported cycle is stable.
func DetectCycles(doc *tokefile.Document) error {
	w := &walker{doc: doc, onPath: make(map[string]bool)}
	for _, name := range doc.Names() {
		if err := w.visit(name); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	doc    *tokefile.Document
	onPath map[string]bool
	path   []string
}

func (w *walker) visit(name string) error {
	if w.onPath[name] {
		chain := append(append([]string(nil), w.path...), name)
		return errors.Newf(errors.ErrCycleDetected, "cycle detected: %s", name).
			WithDetail("target", name).
			WithDetail("path", strings.Join(chain, " -> "))
	}

	w.onPath[name] = true
	w.path = append(w.path, name)

	if target, ok := w.doc.Target(name); ok {
		for _, dep := range target.Deps {
			if err := w.visit(dep); err != nil {
				return err
			}
		}
	}

	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, name)
	return nil
}

// MissingDep is a dependency naming a target the tokefile does not declare.
type MissingDep struct {
	Target string
	Dep    string
}

// MissingDeps lists every undeclared dependency, ordered by target then
// declaration order.
func MissingDeps(doc *tokefile.Document) []MissingDep {
	var missing []MissingDep
	for _, name := range doc.Names() {
		target, _ := doc.Target(name)
		for _, dep := range target.Deps {
			if _, ok := doc.Target(dep); !ok {
				missing = append(missing, MissingDep{Target: name, Dep: dep})
			}
		}
	}
	return missing
}

// ValidateDeps returns a MISSING_DEPENDENCY error when any dependency is
// undeclared.
func ValidateDeps(doc *tokefile.Document) error {
	missing := MissingDeps(doc)
	if len(missing) == 0 {
		return nil
	}

	parts := make([]string, 0, len(missing))
	for _, m := range missing {
		parts = append(parts, "'"+m.Dep+"' (required by '"+m.Target+"')")
	}
	return errors.Newf(errors.ErrMissingDependency, "undeclared dependencies: %s", strings.Join(parts, ", ")).
		WithDetail("count", len(missing))
}

// Reachable returns the declared targets reachable from root through deps,
// root included, each once, in depth-first pre-order. The graph must be
// acyclic.
func Reachable(doc *tokefile.Document, root string) []string {
	seen := make(map[string]bool)
	var order []string

	var visit func(name string)
	visit = func(name string) {
		target, ok := doc.Target(name)
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		order = append(order, name)
		for _, dep := range target.Deps {
			visit(dep)
		}
	}
	visit(root)

	return order
}

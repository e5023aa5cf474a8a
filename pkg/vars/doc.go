// Package vars resolves ${name} placeholders in target commands.
//
// A target's variable mapping merges three tiers, lowest to highest
// precedence: the tokefile's global vars, the target's own vars, and
// KEY=VALUE arguments from the command line. A value beginning with "!" is
// a shell command; its output is substituted instead of the literal text.
//
// ResolveDocument rewrites every target of a Document in place: cmd strings
// are substituted, `!command` wildcard sources are run and replaced by the
// lines they print, and literal wildcard lists are substituted element by
// element.
package vars

// Package graph validates the dependency graph formed by target deps.
//
// DetectCycles walks every target depth-first with a path-scoped set: a name
// is added on entry and removed on exit, so a target shared by independent
// branches (a diamond) is not a cycle. Dependencies naming undeclared
// targets end their branch; MissingDeps reports them separately.
package graph

// Package runner executes targets of a resolved tokefile.
//
// Running a target first runs each of its dependencies, in declared order,
// by the same rule, then the target's own commands in row order. Nothing is
// memoized: a target reached through two paths runs twice. The first
// command exiting non-zero stops the whole run.
package runner

// Package testutil provides helpers for testing toke components.
//
// Key components:
//   - MustDocument: parse an inline TOML tokefile into a Document
//   - TargetBuilder: declarative construction of targets for table tests
//   - SetupTokefile: write a tokefile into a temp directory
//
// Usage guidelines:
//   - Define tokefiles inline, not in external files
//   - Use shell/testutil.FakeExecutor instead of spawning processes, except
//     in pkg/shell and the cmd integration tests
package testutil

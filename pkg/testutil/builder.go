package testutil

import "github.com/arthur-debert/toke/pkg/tokefile"

// TargetBuilder builds a tokefile.Target fluently.
type TargetBuilder struct {
	target *tokefile.Target
}

// NewTarget starts a target with the given name and command.
func NewTarget(name, cmd string) *TargetBuilder {
	return &TargetBuilder{target: &tokefile.Target{
		Name: name,
		Cmd:  cmd,
		Vars: make(map[string]string),
	}}
}

// Deps sets the dependencies.
func (b *TargetBuilder) Deps(deps ...string) *TargetBuilder {
	b.target.Deps = deps
	return b
}

// Var sets a local variable.
func (b *TargetBuilder) Var(name, value string) *TargetBuilder {
	b.target.Vars[name] = value
	return b
}

// List appends a literal wildcard list.
func (b *TargetBuilder) List(values ...string) *TargetBuilder {
	b.target.Wildcards = append(b.target.Wildcards, tokefile.Wildcard{Values: values, IsList: true})
	return b
}

// Command appends a command wildcard source.
func (b *TargetBuilder) Command(cmd string) *TargetBuilder {
	b.target.Wildcards = append(b.target.Wildcards, tokefile.Wildcard{Command: cmd})
	return b
}

// Build returns the target.
func (b *TargetBuilder) Build() *tokefile.Target {
	return b.target
}

// NewDocument assembles a Document from targets and global vars.
func NewDocument(vars map[string]string, targets ...*TargetBuilder) *tokefile.Document {
	doc := &tokefile.Document{
		Vars:    make(map[string]string),
		Targets: make(map[string]*tokefile.Target),
	}
	for k, v := range vars {
		doc.Vars[k] = v
	}
	for _, tb := range targets {
		t := tb.Build()
		doc.Targets[t.Name] = t
	}
	return doc
}

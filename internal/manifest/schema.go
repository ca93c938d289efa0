// Package manifest loads and verifies the declarative HCL description
// of the builtin surface.
//
// The compiled-in registry (builtin.ContextBuiltins) is the binding
// source of truth; the manifests are the public, introspectable copy of
// the same signatures. Verify checks the two are perfectly in sync at
// startup, so a manifest that drifts from the Go interface refuses the
// process rather than misleading a script author at run time.
package manifest

import "github.com/hashicorp/hcl/v2"

// Input is one declared argument of a method, in call order. The first
// is always self.
type Input struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
	Doc  string         `hcl:"doc,optional"`
}

// Method declares one builtin: its short op name, the Go method it
// binds to, its typed inputs, and its result type.
type Method struct {
	Name    string         `hcl:"name,label"`
	Binds   string         `hcl:"binds"`
	Doc     string         `hcl:"doc,optional"`
	Inputs  []*Input       `hcl:"input,block"`
	Returns hcl.Expression `hcl:"returns"`
}

// Object groups the methods registered under one namespace, e.g.
// attr_context.
type Object struct {
	Name    string    `hcl:"name,label"`
	Methods []*Method `hcl:"method,block"`
}

// File is the top-level structure of one manifest file.
type File struct {
	Objects []*Object `hcl:"object,block"`
}

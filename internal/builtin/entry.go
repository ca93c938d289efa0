package builtin

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Arg describes one declared argument (or the result) of a builtin: a
// name used for documentation and introspection, the runtime's type
// keyword, the equivalent cty type for the checker, and an optional doc
// string. Binding at call sites is positional; the name never matters
// for dispatch.
type Arg struct {
	Name     string
	TypeName string
	Type     cty.Type
	Doc      string
}

// Entry is one immutable builtin descriptor: the external name the
// compiler resolves (<object>.<op>), the Go method on attrctx.Context it
// binds to, and the fixed, typed argument list. Args always starts with
// the self argument carrying the context instance; NumInputs counts self
// too, so NumInputs == len(Args) holds for every valid entry.
//
// Entries are only constructed through the builder, which validates the
// declared signature against the bound method before handing one out.
type Entry struct {
	Name      string
	Object    string
	Op        string
	Method    string
	NumInputs int
	Args      []Arg
	Result    Arg
}

// Signature renders the entry in a human-readable form, e.g.
// "attr_context.get_int(self: attr_context, attr_name: bytes,
// default_value: int) -> int". Used by the registry dump and in error
// messages.
func (e *Entry) Signature() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = fmt.Sprintf("%s: %s", a.Name, a.TypeName)
	}
	return fmt.Sprintf("%s(%s) -> %s", e.Name, strings.Join(parts, ", "), e.Result.TypeName)
}

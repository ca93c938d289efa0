package builtin

import "sync"

var (
	contextOnce     sync.Once
	contextRegistry *Registry
)

// ContextBuiltins returns the registry exposing every attrctx.Context
// operation under the attr_context namespace. The table is built exactly
// once; any signature drift between it and the interface panics on first
// use, during startup, before any script code runs.
func ContextBuiltins() *Registry {
	contextOnce.Do(func() {
		contextRegistry = New()
		registerContextBuiltins(contextRegistry)
	})
	return contextRegistry
}

// registerContextBuiltins is the definitive declaration of the compiled
// builtin surface. One entry per interface operation; self is always the
// first argument. The shipped manifest (manifests/attr_context.hcl)
// declares the same table and is verified against this one at startup.
func registerContextBuiltins(r *Registry) {
	r.Register(Method("attr_context", "get_int", "GetInt").
		SetNumInputs(3).
		AddArgument("self", "attr_context", "").
		AddArgument("attr_name", "bytes", "").
		AddArgument("default_value", "int", "").
		Returns("int").
		MustBuild())

	r.Register(Method("attr_context", "get_double", "GetDouble").
		SetNumInputs(3).
		AddArgument("self", "attr_context", "").
		AddArgument("attr_name", "bytes", "").
		AddArgument("default_value", "float", "").
		Returns("float").
		MustBuild())

	r.Register(Method("attr_context", "get_string", "GetString").
		SetNumInputs(3).
		AddArgument("self", "attr_context", "").
		AddArgument("attr_name", "bytes", "").
		AddArgument("default_value", "bytes", "").
		Returns("bytes").
		MustBuild())

	r.Register(Method("attr_context", "get_int_list", "GetIntList").
		SetNumInputs(2).
		AddArgument("self", "attr_context", "").
		AddArgument("attr_name", "bytes", "").
		Returns("list(int)").
		MustBuild())

	r.Register(Method("attr_context", "get_double_list", "GetDoubleList").
		SetNumInputs(2).
		AddArgument("self", "attr_context", "").
		AddArgument("attr_name", "bytes", "").
		Returns("list(float)").
		MustBuild())

	r.Register(Method("attr_context", "get_string_list", "GetStringList").
		SetNumInputs(2).
		AddArgument("self", "attr_context", "").
		AddArgument("attr_name", "bytes", "").
		Returns("list(bytes)").
		MustBuild())

	r.Register(Method("attr_context", "get_item_count", "GetItemCount").
		SetNumInputs(1).
		AddArgument("self", "attr_context", "").
		Returns("int").
		MustBuild())

	r.Register(Method("attr_context", "get_item_attr_assigner", "GetItemAttrAssigner").
		SetNumInputs(2).
		AddArgument("self", "attr_context", "").
		AddArgument("index", "int", "").
		Returns("attr_assigner").
		MustBuild())

	r.Register(Method("attr_context", "set_int", "SetInt").
		SetNumInputs(3).
		AddArgument("self", "attr_context", "").
		AddArgument("attr_name", "bytes", "").
		AddArgument("value", "int", "").
		Returns("int").
		MustBuild())
}

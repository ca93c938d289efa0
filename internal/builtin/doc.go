// Package builtin is the central "glue" between the attribute-context
// interface and the embedding compiler's builtin-call mechanism.
//
// The Registry stores one immutable Entry per attrctx.Context operation:
// an external name (object.op), a fixed argument count, and an ordered
// list of typed argument descriptors the compiler uses to validate call
// sites. Entries are built with a fluent builder and validated at
// construction against the actual Go method signature via reflection, so
// any drift between what the compiler believes it can call and what the
// interface provides is a startup defect, never a script author's
// runtime surprise.
//
// Argument and result types are expressed twice, deliberately: as the
// runtime's short type keyword (bytes, int, float, list(int), ...) for
// introspection and manifests, and as the equivalent cty.Type for the
// type checker. The two opaque handle types, attr_context and
// attr_assigner, are cty capsule types.
//
// The registry is populated once during process-wide initialization
// (ContextBuiltins) and is safe for unsynchronized concurrent reads
// afterwards. Dispatch (Call) is a synchronous forward to the bound
// method on the concrete context carried in the first argument.
package builtin

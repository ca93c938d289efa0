// Package attrctx defines the attribute-access contract between the host
// embedding and the script runtime. A Context is one opaque record-like
// object (a request, a feature bundle) exposing named attributes of six
// fixed types; everything the compiled script can do to it goes through
// this interface.
//
// The package is a leaf: it owns no storage and performs no computation.
// Concrete providers (see memctx for the reference one) implement Context
// against a real data source; the builtin package exposes each operation
// to the compiler as a typed, arity-checked builtin.
//
// Absence is never an error here. Scalar getters resolve a missing
// attribute to the caller-supplied default, list getters to an empty
// sequence. Write operations report failure through a status code, never
// by panicking.
package attrctx

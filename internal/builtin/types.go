package builtin

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/attrbridge/internal/attrctx"
)

// ContextCty is the checker's type for the opaque attribute context
// handle. Capsule values wrap a live attrctx.Context.
var ContextCty = cty.Capsule("attr_context", reflect.TypeOf((*attrctx.Context)(nil)).Elem())

// AssignerCty is the checker's type for the deferred per-item write
// handle returned by get_item_attr_assigner.
var AssignerCty = cty.Capsule("attr_assigner", reflect.TypeOf((*attrctx.Assigner)(nil)).Elem())

// TypeFromKeyword resolves one of the runtime's short type keywords to
// its cty equivalent. The keyword set is closed: the host runtime only
// understands opaque handles, byte-strings, numbers, and homogeneous
// lists of those.
func TypeFromKeyword(keyword string) (cty.Type, error) {
	switch keyword {
	case "attr_context":
		return ContextCty, nil
	case "attr_assigner":
		return AssignerCty, nil
	case "bytes":
		return cty.String, nil
	case "int", "float":
		return cty.Number, nil
	case "list(int)", "list(float)":
		return cty.List(cty.Number), nil
	case "list(bytes)":
		return cty.List(cty.String), nil
	default:
		return cty.NilType, fmt.Errorf("unknown type keyword %q", keyword)
	}
}

// ContextVal wraps a concrete context as a cty capsule value, the form
// in which it travels through compiled call sites as the self argument.
func ContextVal(c attrctx.Context) cty.Value {
	return cty.CapsuleVal(ContextCty, &c)
}

// ContextFromVal unwraps a capsule value produced by ContextVal.
func ContextFromVal(v cty.Value) (attrctx.Context, error) {
	if !v.Type().Equals(ContextCty) {
		return nil, fmt.Errorf("value is %s, not attr_context", v.Type().FriendlyName())
	}
	return *(v.EncapsulatedValue().(*attrctx.Context)), nil
}

// AssignerVal wraps an item write handle as a cty capsule value so the
// runtime can store it and invoke it later.
func AssignerVal(a attrctx.Assigner) cty.Value {
	return cty.CapsuleVal(AssignerCty, &a)
}

// AssignerFromVal unwraps a capsule value produced by AssignerVal.
func AssignerFromVal(v cty.Value) (attrctx.Assigner, error) {
	if !v.Type().Equals(AssignerCty) {
		return nil, fmt.Errorf("value is %s, not attr_assigner", v.Type().FriendlyName())
	}
	return *(v.EncapsulatedValue().(*attrctx.Assigner)), nil
}

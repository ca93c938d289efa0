package builtin

import (
	"context"
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/attrbridge/internal/attrctx"
	"github.com/vk/attrbridge/internal/ctxlog"
)

// CallByName resolves a builtin in the registry and dispatches it. This
// is the path an embedding runtime takes when it has a name from a
// compiled call site and a slice of evaluated arguments.
func CallByName(ctx context.Context, r *Registry, name string, args []cty.Value) (cty.Value, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return cty.NilVal, fmt.Errorf("unknown builtin %q", name)
	}
	return Call(ctx, e, args)
}

// Call forwards one builtin invocation to the bound method on the
// concrete context carried in args[0]. Arity and argument types are
// re-checked against the declared signature; a well-typed compiler never
// trips these checks, but the dispatcher does not trust its caller.
//
// The call is synchronous and holds no locks; whatever concurrency the
// concrete context tolerates, the dispatch layer adds nothing to it.
func Call(ctx context.Context, e *Entry, args []cty.Value) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	if len(args) != e.NumInputs {
		return cty.NilVal, fmt.Errorf("%s: wrong number of arguments: got %d, want %d", e.Name, len(args), e.NumInputs)
	}
	recv, err := ContextFromVal(args[0])
	if err != nil {
		return cty.NilVal, fmt.Errorf("%s: self: %w", e.Name, err)
	}

	method := reflect.ValueOf(recv).MethodByName(e.Method)
	if !method.IsValid() {
		return cty.NilVal, fmt.Errorf("%s: context %T has no method %s", e.Name, recv, e.Method)
	}

	in := make([]reflect.Value, 0, len(args)-1)
	for i, a := range e.Args[1:] {
		gv, err := goArgument(a, args[i+1], method.Type().In(i))
		if err != nil {
			return cty.NilVal, fmt.Errorf("%s: argument %q: %w", e.Name, a.Name, err)
		}
		in = append(in, gv)
	}

	logger.Debug("Dispatching builtin.", "name", e.Name)
	out := method.Call(in)
	return ctyResult(e, out[0])
}

// goArgument converts one evaluated cty argument to the Go parameter the
// bound method expects.
func goArgument(a Arg, v cty.Value, goType reflect.Type) (reflect.Value, error) {
	switch a.TypeName {
	case "attr_assigner":
		as, err := AssignerFromVal(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(as), nil
	case "int":
		var n int64
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return reflect.Value{}, err
		}
		if goType.Kind() == reflect.Int {
			return reflect.ValueOf(int(n)), nil
		}
		return reflect.ValueOf(n), nil
	case "float":
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f), nil
	case "bytes":
		var s string
		if err := gocty.FromCtyValue(v, &s); err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s), nil
	default:
		return reflect.Value{}, fmt.Errorf("type %s is not accepted as a builtin argument", a.TypeName)
	}
}

// ctyResult converts the bound method's return value back into the cty
// value the runtime expects. Empty lists come back as zero-length cty
// lists, which is how list-typed absence crosses the boundary.
func ctyResult(e *Entry, out reflect.Value) (cty.Value, error) {
	switch e.Result.TypeName {
	case "int":
		return cty.NumberIntVal(out.Int()), nil
	case "float":
		return cty.NumberFloatVal(out.Float()), nil
	case "bytes":
		return cty.StringVal(out.String()), nil
	case "list(int)":
		vs := out.Interface().([]int64)
		if len(vs) == 0 {
			return cty.ListValEmpty(cty.Number), nil
		}
		elems := make([]cty.Value, len(vs))
		for i, n := range vs {
			elems[i] = cty.NumberIntVal(n)
		}
		return cty.ListVal(elems), nil
	case "list(float)":
		vs := out.Interface().([]float64)
		if len(vs) == 0 {
			return cty.ListValEmpty(cty.Number), nil
		}
		elems := make([]cty.Value, len(vs))
		for i, f := range vs {
			elems[i] = cty.NumberFloatVal(f)
		}
		return cty.ListVal(elems), nil
	case "list(bytes)":
		vs := out.Interface().([]string)
		if len(vs) == 0 {
			return cty.ListValEmpty(cty.String), nil
		}
		elems := make([]cty.Value, len(vs))
		for i, s := range vs {
			elems[i] = cty.StringVal(s)
		}
		return cty.ListVal(elems), nil
	case "attr_assigner":
		return AssignerVal(out.Interface().(attrctx.Assigner)), nil
	default:
		return cty.NilVal, fmt.Errorf("%s: result type %s is not convertible", e.Name, e.Result.TypeName)
	}
}

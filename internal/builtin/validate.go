package builtin

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/attrbridge/internal/attrctx"
)

var (
	contextIface  = reflect.TypeOf((*attrctx.Context)(nil)).Elem()
	assignerIface = reflect.TypeOf((*attrctx.Assigner)(nil)).Elem()
)

// validateEntry checks the declared signature against the Go method it
// binds to. The declared Args include self (the receiver), so the bound
// method must take exactly len(Args)-1 parameters.
func validateEntry(e *Entry) error {
	if e.NumInputs != len(e.Args) {
		return fmt.Errorf("declared num_inputs %d does not match %d declared arguments", e.NumInputs, len(e.Args))
	}
	if len(e.Args) == 0 {
		return fmt.Errorf("entry declares no arguments; the self argument is mandatory")
	}
	self := e.Args[0]
	if self.Name != "self" || self.TypeName != "attr_context" {
		return fmt.Errorf("first argument must be self of type attr_context, got %s of type %s", self.Name, self.TypeName)
	}

	method, ok := contextIface.MethodByName(e.Method)
	if !ok {
		return fmt.Errorf("attrctx.Context has no method %s", e.Method)
	}
	mt := method.Type

	if got, want := mt.NumIn(), len(e.Args)-1; got != want {
		return fmt.Errorf("method %s takes %d parameters but entry declares %d (plus self)", e.Method, got, want)
	}
	for i, a := range e.Args[1:] {
		if err := checkTypeParity(a, mt.In(i)); err != nil {
			return fmt.Errorf("argument %q: %w", a.Name, err)
		}
	}

	if mt.NumOut() != 1 {
		return fmt.Errorf("method %s returns %d values; builtins bind single-result methods only", e.Method, mt.NumOut())
	}
	if err := checkTypeParity(e.Result, mt.Out(0)); err != nil {
		return fmt.Errorf("result: %w", err)
	}
	return nil
}

// checkTypeParity verifies one declared Arg against the Go type in the
// bound signature. Opaque handles are matched by interface identity;
// everything else goes through gocty's implied-type mapping, with an
// extra kind check to keep the int/float keyword distinction that
// cty.Number alone would collapse.
func checkTypeParity(a Arg, goType reflect.Type) error {
	switch a.TypeName {
	case "attr_context":
		if goType != contextIface {
			return fmt.Errorf("declared attr_context but Go type is %s", goType)
		}
		return nil
	case "attr_assigner":
		if goType != assignerIface {
			return fmt.Errorf("declared attr_assigner but Go type is %s", goType)
		}
		return nil
	case "int":
		if k := goType.Kind(); k != reflect.Int && k != reflect.Int64 {
			return fmt.Errorf("declared int but Go type is %s", goType)
		}
	case "float":
		if goType.Kind() != reflect.Float64 {
			return fmt.Errorf("declared float but Go type is %s", goType)
		}
	case "bytes":
		if goType.Kind() != reflect.String {
			return fmt.Errorf("declared bytes but Go type is %s", goType)
		}
	}

	implied, err := gocty.ImpliedType(reflect.Zero(goType).Interface())
	if err != nil {
		return fmt.Errorf("could not imply cty type from Go type %s: %w", goType, err)
	}
	if !implied.Equals(a.Type) {
		return fmt.Errorf("declared %s (%s) but Go type %s implies %s",
			a.TypeName, a.Type.FriendlyName(), goType, implied.FriendlyName())
	}
	return nil
}

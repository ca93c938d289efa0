package manifest

import (
	"context"
	"fmt"

	"github.com/vk/attrbridge/internal/builtin"
	"github.com/vk/attrbridge/internal/ctxlog"
)

// Verify checks that the loaded manifests and the compiled-in registry
// declare the same builtin surface: same set of names, same bound
// methods, same arity, same argument names and types in the same order,
// same results. Any disagreement means either the manifest or the Go
// registration table is stale, and the process must not start with the
// two out of sync.
func Verify(ctx context.Context, objects []*Object, reg *builtin.Registry) error {
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]bool)
	for _, obj := range objects {
		for _, m := range obj.Methods {
			name := obj.Name + "." + m.Name
			if err := verifyMethod(obj, m, reg); err != nil {
				return fmt.Errorf("manifest method %s: %w", name, err)
			}
			seen[name] = true
		}
	}

	for _, e := range reg.All() {
		if !seen[e.Name] {
			return fmt.Errorf("builtin %s is registered but missing from the manifests", e.Name)
		}
	}

	logger.Debug("Manifest verification passed.", "methods", len(seen))
	return nil
}

func verifyMethod(obj *Object, m *Method, reg *builtin.Registry) error {
	entry, ok := reg.Lookup(obj.Name + "." + m.Name)
	if !ok {
		return fmt.Errorf("no such builtin is registered")
	}
	if m.Binds != entry.Method {
		return fmt.Errorf("binds %q but the registry binds %q", m.Binds, entry.Method)
	}
	if len(m.Inputs) != entry.NumInputs {
		return fmt.Errorf("declares %d inputs but the registry declares %d", len(m.Inputs), entry.NumInputs)
	}

	for i, in := range m.Inputs {
		arg := entry.Args[i]
		if in.Name != arg.Name {
			return fmt.Errorf("input %d is named %q but the registry names it %q", i, in.Name, arg.Name)
		}
		keyword, err := keywordFromExpr(in.Type)
		if err != nil {
			return fmt.Errorf("input %q: %w", in.Name, err)
		}
		if keyword != arg.TypeName {
			return fmt.Errorf("input %q is typed %s but the registry declares %s", in.Name, keyword, arg.TypeName)
		}
	}

	keyword, err := keywordFromExpr(m.Returns)
	if err != nil {
		return fmt.Errorf("returns: %w", err)
	}
	if keyword != entry.Result.TypeName {
		return fmt.Errorf("returns %s but the registry declares %s", keyword, entry.Result.TypeName)
	}
	return nil
}

// This file parses the type expressions used in manifests (e.g. `bytes`,
// `list(int)`, `attr_context`) into the runtime's canonical keywords.

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// keywordFromExpr reduces an HCL type expression to a canonical type
// keyword. The keyword set is the closed one the host runtime
// understands; anything else is a manifest authoring error.
func keywordFromExpr(expr hcl.Expression) (string, error) {
	if expr == nil {
		return "", fmt.Errorf("missing type expression")
	}

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return "", fmt.Errorf("invalid type keyword: not a single identifier")
		}
		name := v.Traversal.RootName()
		switch name {
		case "bytes", "int", "float", "attr_context", "attr_assigner":
			return name, nil
		default:
			return "", fmt.Errorf("unknown type keyword %q", name)
		}

	case *hclsyntax.FunctionCallExpr:
		if v.Name != "list" {
			return "", fmt.Errorf("unknown type constructor %q", v.Name)
		}
		if len(v.Args) != 1 {
			return "", fmt.Errorf("list() requires exactly one argument, got %d", len(v.Args))
		}
		elem, err := keywordFromExpr(v.Args[0])
		if err != nil {
			return "", err
		}
		switch elem {
		case "bytes", "int", "float":
			return "list(" + elem + ")", nil
		default:
			return "", fmt.Errorf("list element type must be a scalar, got %q", elem)
		}

	default:
		return "", fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

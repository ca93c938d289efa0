package builtin

import "fmt"

// Builder assembles one Entry through a fluent chain and validates it on
// Build. The chain mirrors how the registry table reads: declare the
// name and bound method, fix the arity, list the arguments in call
// order, declare the result.
type Builder struct {
	entry Entry
	errs  []error
}

// Method starts an entry for <object>.<op> bound to the named Go method
// on attrctx.Context.
func Method(object, op, goMethod string) *Builder {
	return &Builder{entry: Entry{
		Name:   object + "." + op,
		Object: object,
		Op:     op,
		Method: goMethod,
	}}
}

// SetNumInputs declares the fixed argument count, self included.
func (b *Builder) SetNumInputs(n int) *Builder {
	b.entry.NumInputs = n
	return b
}

// AddArgument appends one declared argument. Arguments are positional;
// the first must be the self argument carrying the context instance.
func (b *Builder) AddArgument(name, typeName, doc string) *Builder {
	t, err := TypeFromKeyword(typeName)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("argument %q: %w", name, err))
	}
	b.entry.Args = append(b.entry.Args, Arg{Name: name, TypeName: typeName, Type: t, Doc: doc})
	return b
}

// Returns declares the result type.
func (b *Builder) Returns(typeName string) *Builder {
	t, err := TypeFromKeyword(typeName)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("result: %w", err))
	}
	b.entry.Result = Arg{TypeName: typeName, Type: t}
	return b
}

// Build validates the declared signature against the bound Go method and
// returns the finished entry. Any mismatch between what was declared and
// what attrctx.Context actually provides is reported here, before the
// entry can ever reach a registry.
func (b *Builder) Build() (*Entry, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("builtin %s: %w", b.entry.Name, b.errs[0])
	}
	if err := validateEntry(&b.entry); err != nil {
		return nil, fmt.Errorf("builtin %s: %w", b.entry.Name, err)
	}
	e := b.entry
	return &e, nil
}

// MustBuild is Build for the static registration table, where a
// signature mismatch is a programmer error that must refuse startup.
func (b *Builder) MustBuild() *Entry {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

package serializable

// Context is the binding context supplied at instance construction: named
// domain objects and helpers that computations read from. It is never mutated
// by the engine.
type Context map[string]any

// Has reports whether the context carries a value for name.
func (c Context) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Computation produces a field value when first resolved. The engine invokes
// it at most once per instance; failures propagate unchanged to the render
// caller and are never retried.
type Computation func(Context) (any, error)

// StringComputation produces a string-valued field (id, type).
type StringComputation func(Context) (string, error)

// MetaComputation produces a meta object.
type MetaComputation func(Context) (map[string]any, error)

// DataComputation produces a relationship's related-resource value: nil, a
// single *Resource, or a []*Resource.
type DataComputation func(Context) (any, error)

// Identifier is the compact {type, id} linkage form of a resource.
type Identifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Fields is a sparse fieldset: the attribute and relationship names a render
// should emit. A nil Fields means "all declared fields".
type Fields map[string]struct{}

// NewFields builds a Fields set from names. NewFields() with no arguments
// yields an empty (exclude-everything) set; use nil for the default-all set.
func NewFields(names ...string) Fields {
	f := make(Fields, len(names))
	for _, n := range names {
		f[n] = struct{}{}
	}
	return f
}

// Has reports whether name is part of the fieldset. nil selects every field.
func (f Fields) Has(name string) bool {
	if f == nil {
		return true
	}
	_, ok := f[name]
	return ok
}

// Include is the set of relationship names whose linkage data should be
// expanded. A nil Include means "include nothing".
type Include map[string]struct{}

// NewInclude builds an Include set from relationship names.
func NewInclude(names ...string) Include {
	in := make(Include, len(names))
	for _, n := range names {
		in[n] = struct{}{}
	}
	return in
}

// Has reports whether name is included. nil includes nothing.
func (in Include) Has(name string) bool {
	_, ok := in[name]
	return ok
}

// memo caches a computation outcome so the computation runs at most once per
// instance, even when it failed.
type memo struct {
	value any
	err   error
	done  bool
}

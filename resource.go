package serializable

import "sort"

// ResourceDescriptor declares a resource type: how to derive id, type,
// attributes, relationships, links, and meta from a binding context. A
// descriptor plays the role of a schema: declared once, immutable after
// Build, shared by every instance of the type.
type ResourceDescriptor struct {
	// Type is the fixed JSON:API type name; it wins over TypeFunc when both
	// are set.
	Type     string
	TypeFunc StringComputation
	// ID derives the resource id. Required.
	ID StringComputation
	// Meta is the fixed meta object; it wins over MetaFunc when both are set.
	Meta          map[string]any
	MetaFunc      MetaComputation
	Attributes    map[string]Computation
	Relationships map[string]*RelationshipDescriptor
	Links         map[string]LinkFunc
}

// Validate reports declaration errors: a resource type with no way to derive
// id or type can never form valid linkage.
func (d *ResourceDescriptor) Validate() error {
	var iss Issues
	if d.ID == nil {
		iss = AppendIssues(iss, Issue{Field: "id", Code: CodeMissingID, Message: "resource declares no id computation"})
	}
	if d.Type == "" && d.TypeFunc == nil {
		iss = AppendIssues(iss, Issue{Field: "type", Code: CodeMissingType, Message: "resource declares neither a fixed type nor a type computation"})
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// sortedAttributeNames returns attribute names in ascending order for
// deterministic resolution without per-render sorting guarantees leaking into
// the contract.
func (d *ResourceDescriptor) sortedAttributeNames() []string {
	names := make([]string, 0, len(d.Attributes))
	for n := range d.Attributes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (d *ResourceDescriptor) sortedRelationshipNames() []string {
	names := make([]string, 0, len(d.Relationships))
	for n := range d.Relationships {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resource is one resolved occurrence of a resource type bound to a binding
// context. id, type, meta, links, and the relationship instances are resolved
// eagerly at construction; attributes resolve lazily and at most once each.
//
// A Resource is not safe for concurrent use; construct one per render.
type Resource struct {
	desc  *ResourceDescriptor
	ctx   Context
	id    string
	typ   string
	meta  map[string]any
	links map[string]any
	rels  map[string]*Relationship
	attrs map[string]*memo
}

// NewResource binds desc to ctx. Declaration errors (missing id/type) fail
// here; computation errors from the eager id/type/meta/link resolutions
// propagate unchanged.
func NewResource(desc *ResourceDescriptor, ctx Context) (*Resource, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	r := &Resource{desc: desc, ctx: ctx, attrs: map[string]*memo{}}

	id, err := desc.ID(ctx)
	if err != nil {
		return nil, err
	}
	r.id = id

	if desc.Type != "" {
		r.typ = desc.Type
	} else {
		typ, err := desc.TypeFunc(ctx)
		if err != nil {
			return nil, err
		}
		r.typ = typ
	}

	switch {
	case desc.Meta != nil:
		r.meta = desc.Meta
	case desc.MetaFunc != nil:
		meta, err := desc.MetaFunc(ctx)
		if err != nil {
			return nil, err
		}
		r.meta = meta
	}

	links, err := renderLinks(ctx, desc.Links)
	if err != nil {
		return nil, err
	}
	r.links = links

	if len(desc.Relationships) > 0 {
		r.rels = make(map[string]*Relationship, len(desc.Relationships))
		for name, rd := range desc.Relationships {
			rel, err := NewRelationship(rd, ctx)
			if err != nil {
				return nil, err
			}
			r.rels[name] = rel
		}
	}
	return r, nil
}

// TypeOf returns the resolved type without triggering any field resolution.
func (r *Resource) TypeOf() string { return r.typ }

// IDOf returns the resolved id without triggering any field resolution.
func (r *Resource) IDOf() string { return r.id }

// Identifier returns the compact linkage form of the resource.
func (r *Resource) Identifier() Identifier {
	return Identifier{Type: r.typ, ID: r.id}
}

// Attribute resolves one declared attribute, invoking its computation at most
// once per instance regardless of how many times it is requested.
func (r *Resource) Attribute(name string) (any, error) {
	fn, ok := r.desc.Attributes[name]
	if !ok {
		return nil, Issues{Issue{Field: name, Code: CodeUnknownField, Message: "attribute not declared"}}
	}
	m, ok := r.attrs[name]
	if !ok {
		m = &memo{}
		r.attrs[name] = m
	}
	if !m.done {
		m.done = true
		m.value, m.err = fn(r.ctx)
	}
	return m.value, m.err
}

// Relationship returns the relationship instance for name, nil when not
// declared.
func (r *Resource) Relationship(name string) *Relationship {
	return r.rels[name]
}

// Render produces the resource object honoring the sparse fieldset and the
// include set. fields nil means every declared attribute and relationship;
// include nil means none. Sections that would be empty are omitted entirely,
// as is any relationship entry that would render without links, meta, and
// data (a relationship object must hold at least one of them).
func (r *Resource) Render(fields Fields, include Include) (map[string]any, error) {
	out := map[string]any{"id": r.id, "type": r.typ}

	attrs := map[string]any{}
	for _, name := range r.desc.sortedAttributeNames() {
		if !fields.Has(name) {
			continue
		}
		v, err := r.Attribute(name)
		if err != nil {
			return nil, err
		}
		attrs[name] = v
	}
	if len(attrs) > 0 {
		out["attributes"] = attrs
	}

	rels := map[string]any{}
	for _, name := range r.desc.sortedRelationshipNames() {
		if !fields.Has(name) {
			continue
		}
		rendered, err := r.rels[name].Render(include.Has(name))
		if err != nil {
			return nil, err
		}
		if len(rendered) > 0 {
			rels[name] = rendered
		}
	}
	if len(rels) > 0 {
		out["relationships"] = rels
	}

	if len(r.links) > 0 {
		out["links"] = r.links
	}
	if len(r.meta) > 0 {
		out["meta"] = r.meta
	}
	return out, nil
}

// Related resolves the related resources of every declared relationship named
// in include, normalized to a flat sequence. This is the hook a document
// assembler uses to discover resources for the included array.
func (r *Resource) Related(include Include) ([]*Resource, error) {
	if len(include) == 0 {
		return nil, nil
	}
	var out []*Resource
	for _, name := range r.desc.sortedRelationshipNames() {
		if !include.Has(name) {
			continue
		}
		related, err := r.rels[name].Related()
		if err != nil {
			return nil, err
		}
		out = append(out, related...)
	}
	return out, nil
}

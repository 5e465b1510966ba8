package serializable

// RelationshipDescriptor declares one relationship of a resource type: how to
// resolve its related resources, optional explicit linkage, links, and meta.
// Descriptors are immutable after Build and shared across instances.
type RelationshipDescriptor struct {
	// Data resolves the related-resource value: nil, *Resource, or []*Resource.
	Data DataComputation
	// Linkage, when set, supplies linkage data directly so rendering never has
	// to materialize the full related resources.
	Linkage Computation
	// Meta is the fixed meta object; it wins over MetaFunc when both are set.
	Meta     map[string]any
	MetaFunc MetaComputation
	Links    map[string]LinkFunc
}

// Relationship is one resolved occurrence of a declared relationship, bound
// to the owning resource's context. Links are evaluated at construction;
// data, linkage, and meta resolve lazily and at most once.
type Relationship struct {
	desc    *RelationshipDescriptor
	ctx     Context
	links   map[string]any
	data    memo
	meta    memo
	linkage memo
}

// NewRelationship binds desc to ctx and evaluates the declared links.
func NewRelationship(desc *RelationshipDescriptor, ctx Context) (*Relationship, error) {
	links, err := renderLinks(ctx, desc.Links)
	if err != nil {
		return nil, err
	}
	return &Relationship{desc: desc, ctx: ctx, links: links}, nil
}

// Data returns the relationship's related-resource value, computed once and
// cached. It is nil when no data computation was declared.
func (r *Relationship) Data() (any, error) {
	if !r.data.done {
		r.data.done = true
		if r.desc.Data != nil {
			r.data.value, r.data.err = r.desc.Data(r.ctx)
		}
	}
	return r.data.value, r.data.err
}

// Meta returns the relationship's meta object, fixed value winning over the
// computation, evaluated once.
func (r *Relationship) Meta() (map[string]any, error) {
	if !r.meta.done {
		r.meta.done = true
		switch {
		case r.desc.Meta != nil:
			r.meta.value = r.desc.Meta
		case r.desc.MetaFunc != nil:
			r.meta.value, r.meta.err = r.desc.MetaFunc(r.ctx)
		}
	}
	m, _ := r.meta.value.(map[string]any)
	return m, r.meta.err
}

// linkageData resolves the compact {type, id} form: the explicit linkage
// computation when declared, otherwise derived from Data without re-resolving
// it on later calls.
func (r *Relationship) linkageData() (any, error) {
	if !r.linkage.done {
		r.linkage.done = true
		if r.desc.Linkage != nil {
			r.linkage.value, r.linkage.err = r.desc.Linkage(r.ctx)
		} else {
			r.linkage.value, r.linkage.err = r.deriveLinkage()
		}
	}
	return r.linkage.value, r.linkage.err
}

func (r *Relationship) deriveLinkage() (any, error) {
	v, err := r.Data()
	if err != nil {
		return nil, err
	}
	switch d := v.(type) {
	case nil:
		return nil, nil
	case *Resource:
		if d == nil {
			return nil, nil
		}
		return Identifier{Type: d.TypeOf(), ID: d.IDOf()}, nil
	case []*Resource:
		ids := make([]Identifier, 0, len(d))
		for _, res := range d {
			ids = append(ids, Identifier{Type: res.TypeOf(), ID: res.IDOf()})
		}
		return ids, nil
	default:
		return nil, Issues{Issue{Code: CodeInvalidRelationship, Message: "relationship data is neither nil, *Resource, nor []*Resource"}}
	}
}

// Render produces the relationship object. data is emitted only when included
// is true and the declaration carries a data or linkage computation.
func (r *Relationship) Render(included bool) (map[string]any, error) {
	out := map[string]any{}
	if len(r.links) > 0 {
		out["links"] = r.links
	}
	meta, err := r.Meta()
	if err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		out["meta"] = meta
	}
	if included && (r.desc.Data != nil || r.desc.Linkage != nil) {
		linkage, err := r.linkageData()
		if err != nil {
			return nil, err
		}
		out["data"] = linkage
	}
	return out, nil
}

// Related normalizes the resolved data to a sequence: empty for nil, a
// singleton for a single resource, the slice itself otherwise.
func (r *Relationship) Related() ([]*Resource, error) {
	v, err := r.Data()
	if err != nil {
		return nil, err
	}
	switch d := v.(type) {
	case nil:
		return nil, nil
	case *Resource:
		if d == nil {
			return nil, nil
		}
		return []*Resource{d}, nil
	case []*Resource:
		return d, nil
	default:
		return nil, Issues{Issue{Code: CodeInvalidRelationship, Message: "relationship data is neither nil, *Resource, nor []*Resource"}}
	}
}

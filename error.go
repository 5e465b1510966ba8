package serializable

// Error scalar member names, used both as descriptor keys and as the context
// keys that override them per instance.
const (
	ErrID     = "id"
	ErrStatus = "status"
	ErrCode   = "code"
	ErrTitle  = "title"
	ErrDetail = "detail"
)

var errScalarNames = []string{ErrID, ErrStatus, ErrCode, ErrTitle, ErrDetail}

// ScalarField declares one error scalar: an optional fixed value and an
// optional computation. The fixed value wins when both are set.
type ScalarField struct {
	Value any
	Func  Computation
}

func (f ScalarField) declared() bool { return f.Value != nil || f.Func != nil }

// ErrorDescriptor declares a JSON:API error type. Like ResourceDescriptor it
// is schema-shaped: declared once, shared by instances, merged for subtypes.
type ErrorDescriptor struct {
	Scalars  map[string]ScalarField // keyed by ErrID..ErrDetail
	Meta     map[string]any
	MetaFunc MetaComputation
	Links    map[string]LinkFunc
	Source   SourceFunc
}

// Error is one resolved error occurrence. Scalars resolve lazily with the
// precedence context-supplied value > fixed value > computation, each
// evaluated at most once. Links resolve eagerly at construction.
type Error struct {
	desc    *ErrorDescriptor
	ctx     Context
	links   map[string]any
	scalars map[string]*memo
	meta    memo
	source  memo
}

// NewError binds desc to ctx and evaluates the declared links.
func NewError(desc *ErrorDescriptor, ctx Context) (*Error, error) {
	links, err := renderLinks(ctx, desc.Links)
	if err != nil {
		return nil, err
	}
	return &Error{desc: desc, ctx: ctx, links: links, scalars: map[string]*memo{}}, nil
}

// Scalar resolves one scalar member by name. nil means the member is unset
// and will be omitted from the rendered object.
func (e *Error) Scalar(name string) (any, error) {
	m, ok := e.scalars[name]
	if !ok {
		m = &memo{}
		e.scalars[name] = m
	}
	if !m.done {
		m.done = true
		m.value, m.err = e.resolveScalar(name)
	}
	return m.value, m.err
}

func (e *Error) resolveScalar(name string) (any, error) {
	if e.ctx.Has(name) {
		return e.ctx[name], nil
	}
	f := e.desc.Scalars[name]
	if f.Value != nil {
		return f.Value, nil
	}
	if f.Func != nil {
		return f.Func(e.ctx)
	}
	return nil, nil
}

// Meta resolves the error's meta object, fixed value winning over the
// computation, evaluated once.
func (e *Error) Meta() (map[string]any, error) {
	if !e.meta.done {
		e.meta.done = true
		switch {
		case e.desc.Meta != nil:
			e.meta.value = e.desc.Meta
		case e.desc.MetaFunc != nil:
			e.meta.value, e.meta.err = e.desc.MetaFunc(e.ctx)
		}
	}
	m, _ := e.meta.value.(map[string]any)
	return m, e.meta.err
}

// Source runs the declared source computation once and returns the
// accumulated pairs, nil when nothing was set or declared.
func (e *Error) Source() (map[string]any, error) {
	if !e.source.done {
		e.source.done = true
		if e.desc.Source != nil {
			src := &ErrorSource{}
			if err := e.desc.Source(e.ctx, src); err != nil {
				e.source.err = err
			} else {
				e.source.value = src.Values()
			}
		}
	}
	m, _ := e.source.value.(map[string]any)
	return m, e.source.err
}

// Render produces the error object, omitting every member whose resolved
// value is nil.
func (e *Error) Render() (map[string]any, error) {
	out := map[string]any{}
	if len(e.links) > 0 {
		out["links"] = e.links
	}
	for _, name := range errScalarNames {
		v, err := e.Scalar(name)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out[name] = v
		}
	}
	meta, err := e.Meta()
	if err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		out["meta"] = meta
	}
	source, err := e.Source()
	if err != nil {
		return nil, err
	}
	if len(source) > 0 {
		out["source"] = source
	}
	return out, nil
}

package serializable

// Link accumulates the {href, meta} form of a link while a LinkFunc runs.
// A computation that never touches the builder keeps its direct return value.
type Link struct {
	href    string
	hrefSet bool
	meta    map[string]any
}

// Href sets the link's href and switches the result to the object form.
func (l *Link) Href(href string) *Link {
	l.href = href
	l.hrefSet = true
	return l
}

// Meta attaches a meta object to the link.
func (l *Link) Meta(meta map[string]any) *Link {
	l.meta = meta
	return l
}

// LinkFunc computes one link entry. It may call the builder's Href/Meta
// setters, in which case the rendered value is {href, meta?}; otherwise its
// return value (a string, a map, or nil) is used as-is.
type LinkFunc func(Context, *Link) (any, error)

// RenderLink evaluates fn under ctx and normalizes the result to a JSON:API
// link value. Meta without href is a declaration mistake and fails with
// CodeInvalidLink.
func RenderLink(ctx Context, fn LinkFunc) (any, error) {
	l := &Link{}
	v, err := fn(ctx, l)
	if err != nil {
		return nil, err
	}
	if l.hrefSet {
		out := map[string]any{"href": l.href}
		if len(l.meta) > 0 {
			out["meta"] = l.meta
		}
		return out, nil
	}
	if l.meta != nil {
		return nil, Issues{Issue{Code: CodeInvalidLink, Message: "link meta set without href"}}
	}
	return v, nil
}

// renderLinks evaluates every declared link eagerly under ctx.
func renderLinks(ctx Context, fns map[string]LinkFunc) (map[string]any, error) {
	if len(fns) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(fns))
	for name, fn := range fns {
		v, err := RenderLink(ctx, fn)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

package renderer

import (
	serializable "github.com/richmolj/jsonapi-serializable"
)

// Options configures one document render.
type Options struct {
	// Fields holds per-type sparse fieldsets keyed by JSON:API type name.
	// Types absent from the map render all declared fields.
	Fields map[string]serializable.Fields
	// Include lists dotted relationship paths ("author", "author.comments")
	// to expand into the included array.
	Include []string
	// Meta and Links are emitted at the top level of the document as-is.
	Meta  map[string]any
	Links map[string]any
}

func (o Options) fieldsFor(typ string) serializable.Fields {
	return o.Fields[typ]
}

// Render produces a collection document: data is the rendered resources in
// order, included is every resource reachable through the include paths,
// deduplicated by (type, id), primaries excluded.
func Render(resources []*serializable.Resource, opt Options) (*Document, error) {
	data, included, err := renderData(resources, opt)
	if err != nil {
		return nil, err
	}
	return &Document{Data: data, Included: included, Meta: opt.Meta, Links: opt.Links}, nil
}

// RenderOne produces a single-resource document.
func RenderOne(r *serializable.Resource, opt Options) (*Document, error) {
	doc, err := Render([]*serializable.Resource{r}, opt)
	if err != nil {
		return nil, err
	}
	data := doc.Data.([]map[string]any)
	doc.Data = data[0]
	return doc, nil
}

// RenderErrors produces an errors document. Error documents carry no data or
// included members.
func RenderErrors(errs []*serializable.Error, opt Options) (*Document, error) {
	out := make([]map[string]any, 0, len(errs))
	for _, e := range errs {
		rendered, err := e.Render()
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)
	}
	return &Document{Errors: out, Meta: opt.Meta, Links: opt.Links}, nil
}

func renderData(resources []*serializable.Resource, opt Options) ([]map[string]any, []map[string]any, error) {
	tree := parseInclude(opt.Include)

	c := &collector{
		primary: map[serializable.Identifier]struct{}{},
		found:   map[serializable.Identifier]*discovered{},
	}
	for _, r := range resources {
		c.primary[r.Identifier()] = struct{}{}
	}

	data := make([]map[string]any, 0, len(resources))
	for _, r := range resources {
		rendered, err := r.Render(opt.fieldsFor(r.TypeOf()), tree.names())
		if err != nil {
			return nil, nil, err
		}
		data = append(data, rendered)
	}

	for _, r := range resources {
		if err := c.walk(r, tree); err != nil {
			return nil, nil, err
		}
	}

	var included []map[string]any
	for _, id := range c.order {
		d := c.found[id]
		rendered, err := d.res.Render(opt.fieldsFor(d.res.TypeOf()), d.inc)
		if err != nil {
			return nil, nil, err
		}
		included = append(included, rendered)
	}
	return data, included, nil
}

// discovered is one resource reached by the include walk, together with the
// union of subtree names it must expand. Several include paths may reach the
// same (type, id); the unions accumulate before anything is rendered.
type discovered struct {
	res *serializable.Resource
	inc serializable.Include
}

// collector walks every include path from the primaries, recording each
// non-primary resource once in discovery order. The walk never stops at an
// already-discovered resource: a second path may carry a deeper subtree, so
// only membership is deduplicated, not traversal.
type collector struct {
	primary map[serializable.Identifier]struct{}
	found   map[serializable.Identifier]*discovered
	order   []serializable.Identifier
}

// walk descends one include-tree level per step, which bounds recursion on
// cyclic resource graphs by the longest include path.
func (c *collector) walk(r *serializable.Resource, tree includeTree) error {
	for _, name := range tree.sortedNames() {
		sub := tree[name]
		related, err := r.Related(serializable.NewInclude(name))
		if err != nil {
			return err
		}
		for _, res := range related {
			id := res.Identifier()
			if _, isPrimary := c.primary[id]; !isPrimary {
				d, ok := c.found[id]
				if !ok {
					d = &discovered{res: res}
					c.found[id] = d
					c.order = append(c.order, id)
				}
				d.inc = unionInclude(d.inc, sub.names())
			}
			if err := c.walk(res, sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// Package serializable provides:
//
//   - Declarative resource, relationship, and error descriptors resolved into
//     JSON:API resource-object, relationship-object, and error-object shapes
//   - Lazy, at-most-once evaluation of caller-supplied computations against an
//     explicit binding Context
//   - Sparse fieldsets and relationship inclusion gating at render time
//   - A stable error model via Issues (field path, code, message)
//
// Design policy:
//   - Keep only public APIs in the root package; builders live under dsl/ and
//     document assembly under renderer/.
//   - Descriptors are immutable after Build and shared across renders;
//     instances are constructed fresh per render and never shared across
//     goroutines.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	post := dsl.Resource().
//		Type("posts").
//		ID(func(c serializable.Context) (string, error) { return c["post"].(*Post).ID, nil }).
//		Attribute("title", func(c serializable.Context) (any, error) { return c["post"].(*Post).Title, nil }).
//		MustBuild()
//
//	r, err := serializable.NewResource(post, serializable.Context{"post": p})
//	out, err := r.Render(nil, nil)
package serializable

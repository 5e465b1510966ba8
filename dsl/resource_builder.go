package dsl

import (
	serializable "github.com/richmolj/jsonapi-serializable"
)

// ResourceBuilder accumulates a resource type declaration.
type ResourceBuilder struct {
	base *serializable.ResourceDescriptor
	d    serializable.ResourceDescriptor
}

// Resource creates a new resource builder.
func Resource() *ResourceBuilder {
	return &ResourceBuilder{}
}

// Extend creates a resource builder seeded from parent. Declarations made on
// the builder overlay the parent's; overriding a name replaces the parent's
// computation for that name.
func Extend(parent *serializable.ResourceDescriptor) *ResourceBuilder {
	return &ResourceBuilder{base: parent}
}

// Type sets the fixed JSON:API type name.
func (b *ResourceBuilder) Type(name string) *ResourceBuilder {
	b.d.Type = name
	return b
}

// TypeFunc sets a type computation, used when no fixed type is declared.
func (b *ResourceBuilder) TypeFunc(fn serializable.StringComputation) *ResourceBuilder {
	b.d.TypeFunc = fn
	return b
}

// ID sets the id computation. Required unless inherited via Extend.
func (b *ResourceBuilder) ID(fn serializable.StringComputation) *ResourceBuilder {
	b.d.ID = fn
	return b
}

// Attribute registers an attribute computation under name.
func (b *ResourceBuilder) Attribute(name string, fn serializable.Computation) *ResourceBuilder {
	if b.d.Attributes == nil {
		b.d.Attributes = map[string]serializable.Computation{}
	}
	b.d.Attributes[name] = fn
	return b
}

// Relationship registers a relationship declaration under name.
func (b *ResourceBuilder) Relationship(name string, rb *RelBuilder) *ResourceBuilder {
	if b.d.Relationships == nil {
		b.d.Relationships = map[string]*serializable.RelationshipDescriptor{}
	}
	b.d.Relationships[name] = rb.descriptor()
	return b
}

// Link registers a link computation under name.
func (b *ResourceBuilder) Link(name string, fn serializable.LinkFunc) *ResourceBuilder {
	if b.d.Links == nil {
		b.d.Links = map[string]serializable.LinkFunc{}
	}
	b.d.Links[name] = fn
	return b
}

// Meta sets the fixed meta object. It wins over MetaFunc when both are set.
func (b *ResourceBuilder) Meta(m map[string]any) *ResourceBuilder {
	b.d.Meta = m
	return b
}

// MetaFunc sets a meta computation.
func (b *ResourceBuilder) MetaFunc(fn serializable.MetaComputation) *ResourceBuilder {
	b.d.MetaFunc = fn
	return b
}

// Build validates the declaration and returns an independent descriptor.
func (b *ResourceBuilder) Build() (*serializable.ResourceDescriptor, error) {
	d := serializable.MergeResource(b.base, &b.d)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustBuild is like Build but panics on error.
func (b *ResourceBuilder) MustBuild() *serializable.ResourceDescriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// RelBuilder accumulates one relationship declaration.
type RelBuilder struct {
	d serializable.RelationshipDescriptor
}

// Rel creates a new relationship builder.
func Rel() *RelBuilder {
	return &RelBuilder{}
}

// Data sets the related-resource computation. Its result must be nil, a
// *serializable.Resource, or a []*serializable.Resource.
func (b *RelBuilder) Data(fn serializable.DataComputation) *RelBuilder {
	b.d.Data = fn
	return b
}

// Linkage sets an explicit linkage computation so rendering compact linkage
// never materializes the full related resources.
func (b *RelBuilder) Linkage(fn serializable.Computation) *RelBuilder {
	b.d.Linkage = fn
	return b
}

// Meta sets the fixed meta object.
func (b *RelBuilder) Meta(m map[string]any) *RelBuilder {
	b.d.Meta = m
	return b
}

// MetaFunc sets a meta computation.
func (b *RelBuilder) MetaFunc(fn serializable.MetaComputation) *RelBuilder {
	b.d.MetaFunc = fn
	return b
}

// Link registers a link computation under name.
func (b *RelBuilder) Link(name string, fn serializable.LinkFunc) *RelBuilder {
	if b.d.Links == nil {
		b.d.Links = map[string]serializable.LinkFunc{}
	}
	b.d.Links[name] = fn
	return b
}

// descriptor returns an independent copy of the declaration.
func (b *RelBuilder) descriptor() *serializable.RelationshipDescriptor {
	d := b.d
	if len(b.d.Links) > 0 {
		d.Links = make(map[string]serializable.LinkFunc, len(b.d.Links))
		for k, v := range b.d.Links {
			d.Links[k] = v
		}
	}
	return &d
}

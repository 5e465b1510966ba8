package dsl

import (
	serializable "github.com/richmolj/jsonapi-serializable"
)

// ErrorBuilder accumulates an error type declaration. Each scalar takes a
// fixed value, a computation, or both; the fixed value wins, and a context
// value supplied at instance construction wins over either.
type ErrorBuilder struct {
	base *serializable.ErrorDescriptor
	d    serializable.ErrorDescriptor
}

// Error creates a new error builder.
func Error() *ErrorBuilder {
	return &ErrorBuilder{}
}

// ExtendError creates an error builder seeded from parent.
func ExtendError(parent *serializable.ErrorDescriptor) *ErrorBuilder {
	return &ErrorBuilder{base: parent}
}

func (b *ErrorBuilder) setScalar(name string, mutate func(*serializable.ScalarField)) *ErrorBuilder {
	if b.d.Scalars == nil {
		b.d.Scalars = map[string]serializable.ScalarField{}
	}
	f := b.d.Scalars[name]
	mutate(&f)
	b.d.Scalars[name] = f
	return b
}

// ID sets the fixed error id.
func (b *ErrorBuilder) ID(v any) *ErrorBuilder {
	return b.setScalar(serializable.ErrID, func(f *serializable.ScalarField) { f.Value = v })
}

// IDFunc sets the id computation.
func (b *ErrorBuilder) IDFunc(fn serializable.Computation) *ErrorBuilder {
	return b.setScalar(serializable.ErrID, func(f *serializable.ScalarField) { f.Func = fn })
}

// Status sets the fixed status.
func (b *ErrorBuilder) Status(v any) *ErrorBuilder {
	return b.setScalar(serializable.ErrStatus, func(f *serializable.ScalarField) { f.Value = v })
}

// StatusFunc sets the status computation.
func (b *ErrorBuilder) StatusFunc(fn serializable.Computation) *ErrorBuilder {
	return b.setScalar(serializable.ErrStatus, func(f *serializable.ScalarField) { f.Func = fn })
}

// Code sets the fixed application code.
func (b *ErrorBuilder) Code(v any) *ErrorBuilder {
	return b.setScalar(serializable.ErrCode, func(f *serializable.ScalarField) { f.Value = v })
}

// CodeFunc sets the code computation.
func (b *ErrorBuilder) CodeFunc(fn serializable.Computation) *ErrorBuilder {
	return b.setScalar(serializable.ErrCode, func(f *serializable.ScalarField) { f.Func = fn })
}

// Title sets the fixed title.
func (b *ErrorBuilder) Title(v any) *ErrorBuilder {
	return b.setScalar(serializable.ErrTitle, func(f *serializable.ScalarField) { f.Value = v })
}

// TitleFunc sets the title computation.
func (b *ErrorBuilder) TitleFunc(fn serializable.Computation) *ErrorBuilder {
	return b.setScalar(serializable.ErrTitle, func(f *serializable.ScalarField) { f.Func = fn })
}

// Detail sets the fixed detail.
func (b *ErrorBuilder) Detail(v any) *ErrorBuilder {
	return b.setScalar(serializable.ErrDetail, func(f *serializable.ScalarField) { f.Value = v })
}

// DetailFunc sets the detail computation.
func (b *ErrorBuilder) DetailFunc(fn serializable.Computation) *ErrorBuilder {
	return b.setScalar(serializable.ErrDetail, func(f *serializable.ScalarField) { f.Func = fn })
}

// Meta sets the fixed meta object.
func (b *ErrorBuilder) Meta(m map[string]any) *ErrorBuilder {
	b.d.Meta = m
	return b
}

// MetaFunc sets a meta computation.
func (b *ErrorBuilder) MetaFunc(fn serializable.MetaComputation) *ErrorBuilder {
	b.d.MetaFunc = fn
	return b
}

// Link registers a link computation under name. Link declarations merge
// across subtypes the same way attribute maps do for resources.
func (b *ErrorBuilder) Link(name string, fn serializable.LinkFunc) *ErrorBuilder {
	if b.d.Links == nil {
		b.d.Links = map[string]serializable.LinkFunc{}
	}
	b.d.Links[name] = fn
	return b
}

// Source sets the source computation.
func (b *ErrorBuilder) Source(fn serializable.SourceFunc) *ErrorBuilder {
	b.d.Source = fn
	return b
}

// Build returns an independent descriptor.
func (b *ErrorBuilder) Build() (*serializable.ErrorDescriptor, error) {
	return serializable.MergeError(b.base, &b.d), nil
}

// MustBuild is like Build but panics on error.
func (b *ErrorBuilder) MustBuild() *serializable.ErrorDescriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

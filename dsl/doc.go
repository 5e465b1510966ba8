// Package dsl provides fluent builders for serializable descriptors.
//
// Builders validate at Build time (a resource with no id computation is a
// declaration error) and produce independent descriptors: reusing a builder
// after Build never mutates what was already built. Extend seeds a builder
// from a parent descriptor for subtype declarations.
package dsl

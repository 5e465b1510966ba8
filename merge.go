package serializable

// Descriptor merging implements subtype inheritance as a pure function: the
// child's declarations overlay the parent's, child wins on key collision, and
// every map is copied so mutating one descriptor never leaks into another.

// MergeResource composes parent and child resource descriptors into a new,
// independent descriptor. Either argument may be nil.
func MergeResource(parent, child *ResourceDescriptor) *ResourceDescriptor {
	if parent == nil {
		parent = &ResourceDescriptor{}
	}
	if child == nil {
		child = &ResourceDescriptor{}
	}
	out := &ResourceDescriptor{
		Type:          parent.Type,
		TypeFunc:      parent.TypeFunc,
		ID:            parent.ID,
		Meta:          copyMeta(parent.Meta),
		MetaFunc:      parent.MetaFunc,
		Attributes:    mergeMaps(parent.Attributes, child.Attributes),
		Relationships: mergeMaps(parent.Relationships, child.Relationships),
		Links:         mergeMaps(parent.Links, child.Links),
	}
	if child.Type != "" {
		out.Type = child.Type
	}
	if child.TypeFunc != nil {
		out.TypeFunc = child.TypeFunc
	}
	if child.ID != nil {
		out.ID = child.ID
	}
	if child.Meta != nil {
		out.Meta = copyMeta(child.Meta)
	}
	if child.MetaFunc != nil {
		out.MetaFunc = child.MetaFunc
	}
	return out
}

// MergeError composes parent and child error descriptors the same way.
func MergeError(parent, child *ErrorDescriptor) *ErrorDescriptor {
	if parent == nil {
		parent = &ErrorDescriptor{}
	}
	if child == nil {
		child = &ErrorDescriptor{}
	}
	out := &ErrorDescriptor{
		Scalars:  make(map[string]ScalarField, len(parent.Scalars)+len(child.Scalars)),
		Meta:     copyMeta(parent.Meta),
		MetaFunc: parent.MetaFunc,
		Links:    mergeMaps(parent.Links, child.Links),
		Source:   parent.Source,
	}
	for k, f := range parent.Scalars {
		out.Scalars[k] = f
	}
	for k, f := range child.Scalars {
		if f.declared() {
			out.Scalars[k] = f
		}
	}
	if child.Meta != nil {
		out.Meta = copyMeta(child.Meta)
	}
	if child.MetaFunc != nil {
		out.MetaFunc = child.MetaFunc
	}
	if child.Source != nil {
		out.Source = child.Source
	}
	return out
}

// copyMeta duplicates a fixed meta map, preserving nil.
func copyMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// mergeMaps overlays child onto parent into a fresh map. nil in, nil out when
// both sides are empty.
func mergeMaps[V any](parent, child map[string]V) map[string]V {
	if len(parent) == 0 && len(child) == 0 {
		return nil
	}
	out := make(map[string]V, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}
	return out
}

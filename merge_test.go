package serializable_test

import (
	"testing"

	serializable "github.com/richmolj/jsonapi-serializable"
)

func TestMergeResource_ChildAddsAndOverrides(t *testing.T) {
	parent := &serializable.ResourceDescriptor{
		Type: "posts",
		ID:   staticID("1"),
		Attributes: map[string]serializable.Computation{
			"title": staticAttr("parent title"),
			"body":  staticAttr("parent body"),
		},
	}
	child := &serializable.ResourceDescriptor{
		Attributes: map[string]serializable.Computation{
			"title":   staticAttr("child title"),
			"excerpt": staticAttr("child excerpt"),
		},
	}
	merged := serializable.MergeResource(parent, child)

	r, err := serializable.NewResource(merged, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := r.Render(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attrs := out["attributes"].(map[string]any)
	if len(attrs) != 3 {
		t.Fatalf("default fieldset must span parent and child attributes, got %v", attrs)
	}
	if attrs["title"] != "child title" {
		t.Fatalf("child must replace the parent's computation, got %v", attrs["title"])
	}
	if attrs["body"] != "parent body" || attrs["excerpt"] != "child excerpt" {
		t.Fatalf("unexpected merged attributes: %v", attrs)
	}
}

func TestMergeResource_IndependentOfParent(t *testing.T) {
	parent := &serializable.ResourceDescriptor{
		Type:       "posts",
		ID:         staticID("1"),
		Attributes: map[string]serializable.Computation{"title": staticAttr("t")},
	}
	merged := serializable.MergeResource(parent, &serializable.ResourceDescriptor{})
	merged.Attributes["extra"] = staticAttr("x")
	if _, ok := parent.Attributes["extra"]; ok {
		t.Fatalf("mutating the merged descriptor must not leak into the parent")
	}
}

func TestMerge_FixedMetaCopiedNotShared(t *testing.T) {
	parent := &serializable.ResourceDescriptor{
		Type: "posts",
		ID:   staticID("1"),
		Meta: map[string]any{"version": 1},
	}
	merged := serializable.MergeResource(parent, &serializable.ResourceDescriptor{})
	merged.Meta["extra"] = true
	if _, ok := parent.Meta["extra"]; ok {
		t.Fatalf("mutating the merged resource meta must not leak into the parent")
	}

	eparent := &serializable.ErrorDescriptor{Meta: map[string]any{"version": 1}}
	emerged := serializable.MergeError(eparent, &serializable.ErrorDescriptor{})
	emerged.Meta["extra"] = true
	if _, ok := eparent.Meta["extra"]; ok {
		t.Fatalf("mutating the merged error meta must not leak into the parent")
	}
}

func TestMergeResource_ChildInheritsIDAndType(t *testing.T) {
	parent := &serializable.ResourceDescriptor{Type: "posts", ID: staticID("1")}
	merged := serializable.MergeResource(parent, &serializable.ResourceDescriptor{Type: "featured-posts"})
	r, err := serializable.NewResource(merged, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TypeOf() != "featured-posts" || r.IDOf() != "1" {
		t.Fatalf("expected featured-posts/1, got %s/%s", r.TypeOf(), r.IDOf())
	}
}

func TestMergeError_ScalarAndLinkInheritance(t *testing.T) {
	parent := &serializable.ErrorDescriptor{
		Scalars: map[string]serializable.ScalarField{
			serializable.ErrStatus: {Value: "500"},
			serializable.ErrTitle:  {Value: "Internal Error"},
		},
		Links: map[string]serializable.LinkFunc{
			"about": func(serializable.Context, *serializable.Link) (any, error) { return "/about", nil },
		},
	}
	child := &serializable.ErrorDescriptor{
		Scalars: map[string]serializable.ScalarField{
			serializable.ErrStatus: {Value: "503"},
		},
		Links: map[string]serializable.LinkFunc{
			"type": func(serializable.Context, *serializable.Link) (any, error) { return "/errors/503", nil },
		},
	}
	merged := serializable.MergeError(parent, child)
	e, err := serializable.NewError(merged, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := e.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["status"] != "503" || out["title"] != "Internal Error" {
		t.Fatalf("unexpected scalars after merge: %v", out)
	}
	links := out["links"].(map[string]any)
	if links["about"] != "/about" || links["type"] != "/errors/503" {
		t.Fatalf("link declarations must merge across subtypes, got %v", links)
	}
}

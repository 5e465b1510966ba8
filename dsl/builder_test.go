package dsl_test

import (
	"testing"

	serializable "github.com/richmolj/jsonapi-serializable"
	"github.com/richmolj/jsonapi-serializable/dsl"
)

func TestResourceBuilder_BuildValidatesID(t *testing.T) {
	_, err := dsl.Resource().Type("posts").Build()
	iss, ok := serializable.AsIssues(err)
	if !ok || iss[0].Code != serializable.CodeMissingID {
		t.Fatalf("expected %s issue, got %v", serializable.CodeMissingID, err)
	}
}

func TestResourceBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustBuild to panic on an invalid declaration")
		}
	}()
	dsl.Resource().Type("posts").MustBuild()
}

func TestResourceBuilder_FullDeclaration(t *testing.T) {
	desc := dsl.Resource().
		Type("posts").
		ID(func(c serializable.Context) (string, error) { return c["id"].(string), nil }).
		Attribute("title", func(c serializable.Context) (any, error) { return c["title"], nil }).
		Relationship("author", dsl.Rel().
			Data(func(serializable.Context) (any, error) { return nil, nil }).
			Link("related", func(c serializable.Context, l *serializable.Link) (any, error) {
				return "/posts/" + c["id"].(string) + "/author", nil
			})).
		Link("self", func(c serializable.Context, l *serializable.Link) (any, error) {
			return "/posts/" + c["id"].(string), nil
		}).
		Meta(map[string]any{"v": 1}).
		MustBuild()

	r, err := serializable.NewResource(desc, serializable.Context{"id": "3", "title": "Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := r.Render(nil, serializable.NewInclude("author"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["id"] != "3" || out["type"] != "posts" {
		t.Fatalf("unexpected identity: %v", out)
	}
	if out["attributes"].(map[string]any)["title"] != "Go" {
		t.Fatalf("unexpected attributes: %v", out["attributes"])
	}
	rel := out["relationships"].(map[string]any)["author"].(map[string]any)
	if rel["links"].(map[string]any)["related"] != "/posts/3/author" {
		t.Fatalf("unexpected relationship links: %v", rel)
	}
	if v, ok := rel["data"]; !ok || v != nil {
		t.Fatalf("expected data: null for the included empty relationship, got %v", rel)
	}
	if out["links"].(map[string]any)["self"] != "/posts/3" {
		t.Fatalf("unexpected links: %v", out["links"])
	}
	if out["meta"].(map[string]any)["v"] != 1 {
		t.Fatalf("unexpected meta: %v", out["meta"])
	}
}

func TestExtend_SubtypeOverlaysParent(t *testing.T) {
	parent := dsl.Resource().
		Type("posts").
		ID(func(c serializable.Context) (string, error) { return c["id"].(string), nil }).
		Attribute("title", func(serializable.Context) (any, error) { return "parent", nil }).
		MustBuild()

	childDesc := dsl.Extend(parent).
		Type("featured-posts").
		Attribute("title", func(serializable.Context) (any, error) { return "child", nil }).
		Attribute("rank", func(serializable.Context) (any, error) { return 1, nil }).
		MustBuild()

	r, err := serializable.NewResource(childDesc, serializable.Context{"id": "8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := r.Render(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["type"] != "featured-posts" {
		t.Fatalf("child type must win, got %v", out["type"])
	}
	attrs := out["attributes"].(map[string]any)
	if attrs["title"] != "child" || attrs["rank"] != 1 {
		t.Fatalf("unexpected subtype attributes: %v", attrs)
	}

	// The parent declaration stays untouched.
	pr, err := serializable.NewResource(parent, serializable.Context{"id": "8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pout, err := pr.Render(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pattrs := pout["attributes"].(map[string]any)
	if pattrs["title"] != "parent" || len(pattrs) != 1 {
		t.Fatalf("extending must not mutate the parent, got %v", pattrs)
	}
}

func TestErrorBuilder_PrecedenceChain(t *testing.T) {
	desc := dsl.Error().
		Status("500").
		TitleFunc(func(serializable.Context) (any, error) { return "Computed Title", nil }).
		MustBuild()

	e, err := serializable.NewError(desc, serializable.Context{"status": "404"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := e.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["status"] != "404" {
		t.Fatalf("instance value must win, got %v", out["status"])
	}
	if out["title"] != "Computed Title" {
		t.Fatalf("computation must apply when no fixed value or override exists, got %v", out["title"])
	}
}

func TestExtendError_SubtypeOverlaysParent(t *testing.T) {
	parent := dsl.Error().Status("500").Title("Internal Error").MustBuild()
	child := dsl.ExtendError(parent).Status("502").MustBuild()

	e, err := serializable.NewError(child, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := e.Render()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["status"] != "502" || out["title"] != "Internal Error" {
		t.Fatalf("unexpected subtype error: %v", out)
	}
}

func TestResourceBuilder_ReuseAfterBuildIsIndependent(t *testing.T) {
	b := dsl.Resource().
		Type("posts").
		ID(func(serializable.Context) (string, error) { return "1", nil }).
		Attribute("title", func(serializable.Context) (any, error) { return "t", nil })
	first := b.MustBuild()
	b.Attribute("body", func(serializable.Context) (any, error) { return "b", nil })
	if _, ok := first.Attributes["body"]; ok {
		t.Fatalf("building must snapshot the declaration; later builder use leaked in")
	}
}

package serializable_test

import (
	"testing"

	serializable "github.com/richmolj/jsonapi-serializable"
)

func TestContext_Has(t *testing.T) {
	ctx := serializable.Context{"status": "404", "hint": nil}
	if !ctx.Has("status") {
		t.Fatalf("expected Has to report a present key")
	}
	if !ctx.Has("hint") {
		t.Fatalf("a key bound to nil is still present")
	}
	if ctx.Has("detail") {
		t.Fatalf("expected Has to reject an absent key")
	}
}

func TestFields_NilSelectsAllEmptySelectsNone(t *testing.T) {
	var all serializable.Fields
	if !all.Has("anything") {
		t.Fatalf("nil fieldset must select every field")
	}
	none := serializable.NewFields()
	if none.Has("anything") {
		t.Fatalf("empty fieldset must select nothing")
	}
	some := serializable.NewFields("a")
	if !some.Has("a") || some.Has("b") {
		t.Fatalf("unexpected fieldset membership")
	}
}

func TestInclude_NilIncludesNothing(t *testing.T) {
	var none serializable.Include
	if none.Has("author") {
		t.Fatalf("nil include must expand nothing")
	}
	if !serializable.NewInclude("author").Has("author") {
		t.Fatalf("unexpected include membership")
	}
}

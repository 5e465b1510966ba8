// Package renderer assembles top-level JSON:API documents from serializable
// resources and errors: it renders primary data, walks relationships to
// collect the included array (deduplicated by type and id), and marshals the
// result.
package renderer

import (
	gojson "github.com/goccy/go-json"
)

// Document is a top-level JSON:API document.
type Document struct {
	Data     any              `json:"data,omitempty"`
	Included []map[string]any `json:"included,omitempty"`
	Errors   []map[string]any `json:"errors,omitempty"`
	Meta     map[string]any   `json:"meta,omitempty"`
	Links    map[string]any   `json:"links,omitempty"`
}

// JSON marshals the document.
func (d *Document) JSON() ([]byte, error) {
	return gojson.Marshal(d)
}

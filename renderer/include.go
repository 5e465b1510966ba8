package renderer

import (
	"sort"
	"strings"

	serializable "github.com/richmolj/jsonapi-serializable"
)

// includeTree is the parsed form of dotted include paths: each level maps a
// relationship name to the subtree below it.
type includeTree map[string]includeTree

// parseInclude turns paths like "author" and "author.comments" into a tree.
// Empty segments are ignored.
func parseInclude(paths []string) includeTree {
	tree := includeTree{}
	for _, p := range paths {
		node := tree
		for _, seg := range strings.Split(p, ".") {
			if seg == "" {
				continue
			}
			child, ok := node[seg]
			if !ok {
				child = includeTree{}
				node[seg] = child
			}
			node = child
		}
	}
	return tree
}

// names returns the tree's top-level relationship names as an Include set.
func (t includeTree) names() serializable.Include {
	if len(t) == 0 {
		return nil
	}
	in := make(serializable.Include, len(t))
	for name := range t {
		in[name] = struct{}{}
	}
	return in
}

// sortedNames returns top-level names in ascending order for deterministic
// traversal.
func (t includeTree) sortedNames() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// unionInclude merges two include sets, reusing one side when the other adds
// nothing.
func unionInclude(a, b serializable.Include) serializable.Include {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	out := make(serializable.Include, len(a)+len(b))
	for n := range a {
		out[n] = struct{}{}
	}
	for n := range b {
		out[n] = struct{}{}
	}
	return out
}

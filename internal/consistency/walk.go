// Package consistency runs heuristic cross-document checks over a set of page
// content documents: styling sprawl, title length bands, missing sections and
// mixed key naming conventions.
package consistency

import "strconv"

// Visitor observes one node of a parsed-JSON tree. key is the object key the
// node sits under ("" for the root and for array elements), path is the
// dotted route from the document root.
type Visitor func(path, key string, value any)

// Walk visits every node of a parsed-JSON value depth-first, invoking each
// visitor at each node. The three consistency passes share one traversal
// instead of re-walking the tree per concern. Non-container values are
// visited but not descended into; malformed inputs simply yield no matches.
func Walk(doc any, visitors ...Visitor) {
	walk("", "", doc, visitors)
}

func walk(path, key string, value any, visitors []Visitor) {
	for _, visit := range visitors {
		visit(path, key, value)
	}

	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			walk(joinPath(path, k), k, child, visitors)
		}
	case []any:
		for i, child := range v {
			walk(joinPath(path, strconv.Itoa(i)), "", child, visitors)
		}
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

// Package schema defines the declarative shape definitions for page content
// documents and the registry that maps page types to them.
package schema

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FieldType represents the expected type of a shape field.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeNumber FieldType = "number"
	TypeBool   FieldType = "bool"
	TypeArray  FieldType = "array"
	TypeObject FieldType = "object"
)

// Format identifies a well-known string format with its own validation rule.
type Format string

const (
	FormatNone     Format = ""
	FormatURL      Format = "url"
	FormatEmail    Format = "email"
	FormatSlug     Format = "slug"
	FormatHexColor Format = "hex_color"
	FormatDate     Format = "date"
	FormatDateTime Format = "datetime"
)

// Field defines one field in a shape.
type Field struct {
	Name        string    // Field name as it appears in the document
	Type        FieldType // Expected type
	Required    bool      // Whether the field must be present
	MinLen      int       // Minimum string length or array size (0 = unset)
	MaxLen      int       // Maximum string length or array size (0 = unset)
	Min         *float64  // Minimum numeric value (nil = unset)
	Max         *float64  // Maximum numeric value (nil = unset)
	Enum        []string  // Valid values for enum fields
	Format      Format    // Well-known string format
	Pattern     string    // Regex pattern for string validation
	Ref         string    // Name of a registered sub-shape (object fields)
	Children    []Field   // Inline nested fields for object types
	Elem        *Field    // Element definition for array types
	Description string    // Human-readable description
}

// Shape represents the complete expected structure for one document kind.
type Shape struct {
	Name        string
	Description string
	Strict      bool // Closed shape: unknown keys invalidate the document
	Fields      []Field
}

// FieldNamed returns the top-level field with the given name, if any.
func (s *Shape) FieldNamed(name string) (*Field, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], true
		}
	}
	return nil, false
}

// ShapeFor returns the registered shape for a page type or sub-shape key.
func ShapeFor(key string) (*Shape, bool) {
	s, ok := registry[key]
	return s, ok
}

// PageTypes returns the sorted list of registered page types.
func PageTypes() []string {
	types := make([]string, 0, len(pageTypes))
	for t := range pageTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// IsPageType reports whether key names a full page shape (as opposed to a
// shared sub-shape).
func IsPageType(key string) bool {
	return pageTypes[key]
}

// InferPageTypeFromFilename infers the page type from a content filename.
// It accepts .json, .yaml and .yml extensions (home.json, contact.yaml, ...).
func InferPageTypeFromFilename(filename string) (string, error) {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return "", fmt.Errorf("unrecognized content file extension: %s", base)
	}

	stem := strings.TrimSuffix(base, ext)
	if !pageTypes[stem] {
		return "", fmt.Errorf("unrecognized page type %q (valid types: %s)",
			stem, strings.Join(PageTypes(), ", "))
	}
	return stem, nil
}

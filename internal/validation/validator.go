package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/brightpath-digital/pagecheck/internal/schema"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Validate checks document against the named shape. It never panics for
// malformed input: every failure, including "unknown shape" and "document is
// not an object", is reported inside the Result.
func Validate(document any, shapeName string) *Result {
	shape, ok := schema.ShapeFor(shapeName)
	if !ok {
		return invalidResult("pageId",
			fmt.Sprintf("Unknown page type %q. Valid types: %s", shapeName, strings.Join(schema.PageTypes(), ", ")),
			CodeInvalidEnumValue)
	}

	if document == nil {
		return invalidResult("general", "Document is null or undefined", CodeInvalidType)
	}

	obj, ok := document.(map[string]any)
	if !ok {
		return invalidResult("general",
			fmt.Sprintf("Expected an object, got %s", typeName(document)),
			CodeInvalidType)
	}

	v := &run{}
	data := v.validateShape("", shape, obj)
	res := &Result{Valid: v.invalidating == 0, Errors: v.errors}
	if res.Valid {
		res.Data = data
	}
	if res.Errors == nil {
		res.Errors = []*FieldError{}
	}
	return res
}

// ValidateSection validates only the sub-shape addressed by sectionKey within
// the page shape for pageType.
func ValidateSection(pageType, sectionKey string, sectionData any) *Result {
	shape, ok := schema.ShapeFor(pageType)
	if !ok || !schema.IsPageType(pageType) {
		return invalidResult("pageId",
			fmt.Sprintf("Unknown page type %q. Valid types: %s", pageType, strings.Join(schema.PageTypes(), ", ")),
			CodeInvalidEnumValue)
	}

	field, ok := shape.FieldNamed(sectionKey)
	if !ok {
		return invalidResult("sectionKey",
			fmt.Sprintf("%q is not a section of the %s page", sectionKey, pageType),
			CodeInvalidEnumValue)
	}

	v := &run{}
	data := v.validateValue(sectionKey, field, sectionData)
	res := &Result{Valid: v.invalidating == 0, Errors: v.errors}
	if res.Valid {
		res.Data = data
	}
	if res.Errors == nil {
		res.Errors = []*FieldError{}
	}
	return res
}

// PageValidator returns an ItemValidator bound to a page shape, for use with
// ValidateBatch.
func PageValidator(shapeName string) ItemValidator {
	return func(item any) *Result {
		return Validate(item, shapeName)
	}
}

// run carries the state of one validation traversal. Errors accumulate in
// depth-first shape order; advisory findings (unrecognized keys on open
// shapes) are recorded but do not count against validity.
type run struct {
	errors       []*FieldError
	invalidating int
}

func (v *run) addError(field, message string, code Code) {
	v.errors = append(v.errors, &FieldError{Field: field, Message: message, Code: code})
	v.invalidating++
}

func (v *run) addAdvisory(field, message string, code Code) {
	v.errors = append(v.errors, &FieldError{Field: field, Message: message, Code: code})
}

// validateShape validates an object against a shape and returns the
// shape-narrowed copy of it.
func (v *run) validateShape(path string, shape *schema.Shape, obj map[string]any) map[string]any {
	sanitized := make(map[string]any, len(shape.Fields))

	for i := range shape.Fields {
		field := &shape.Fields[i]
		fieldPath := joinPath(path, field.Name)

		value, present := obj[field.Name]
		if !present {
			if field.Required {
				v.addError(fieldPath, "Required", CodeRequired)
			}
			continue
		}

		sanitized[field.Name] = v.validateValue(fieldPath, field, value)
	}

	v.checkUnrecognizedKeys(path, shape.Fields, shape.Strict, obj)
	return sanitized
}

// checkUnrecognizedKeys reports keys not declared by the surrounding shape.
// On open shapes the finding is advisory; on strict shapes it invalidates.
func (v *run) checkUnrecognizedKeys(path string, fields []schema.Field, strict bool, obj map[string]any) {
	known := make(map[string]bool, len(fields))
	for i := range fields {
		known[fields[i].Name] = true
	}

	var extras []string
	for key := range obj {
		if !known[key] {
			extras = append(extras, key)
		}
	}
	if len(extras) == 0 {
		return
	}
	sort.Strings(extras)

	field := path
	if field == "" {
		field = "general"
	}
	message := fmt.Sprintf("Unrecognized keys: %s", strings.Join(extras, ", "))
	if strict {
		v.addError(field, message, CodeUnrecognizedKeys)
	} else {
		v.addAdvisory(field, message, CodeUnrecognizedKeys)
	}
}

// validateValue validates one value against its field definition and returns
// the sanitized copy.
func (v *run) validateValue(path string, field *schema.Field, value any) any {
	switch field.Type {
	case schema.TypeString:
		return v.validateString(path, field, value)
	case schema.TypeNumber:
		return v.validateNumber(path, field, value)
	case schema.TypeBool:
		b, ok := value.(bool)
		if !ok {
			v.addError(path, fmt.Sprintf("Expected a boolean, got %s", typeName(value)), CodeInvalidType)
			return nil
		}
		return b
	case schema.TypeArray:
		return v.validateArray(path, field, value)
	case schema.TypeObject:
		return v.validateObject(path, field, value)
	default:
		v.addError(path, fmt.Sprintf("Unsupported field type %q", field.Type), CodeCustom)
		return nil
	}
}

func (v *run) validateString(path string, field *schema.Field, value any) any {
	s, ok := value.(string)
	if !ok {
		v.addError(path, fmt.Sprintf("Expected a string, got %s", typeName(value)), CodeInvalidType)
		return nil
	}

	if field.MinLen > 0 && len(s) < field.MinLen {
		v.addError(path, fmt.Sprintf("Must be at least %d character(s)", field.MinLen), CodeTooSmall)
	}
	if field.MaxLen > 0 && len(s) > field.MaxLen {
		v.addError(path, fmt.Sprintf("Must be at most %d character(s)", field.MaxLen), CodeTooBig)
	}

	if len(field.Enum) > 0 && !contains(field.Enum, s) {
		v.addError(path,
			fmt.Sprintf("Invalid value %q. Expected one of: %s", s, strings.Join(field.Enum, ", ")),
			CodeInvalidEnumValue)
	}

	if field.Pattern != "" {
		re, err := regexp.Compile(field.Pattern)
		if err != nil {
			v.addError(path, fmt.Sprintf("Invalid shape pattern: %v", err), CodeCustom)
		} else if !re.MatchString(s) {
			v.addError(path, fmt.Sprintf("Does not match expected pattern %s", field.Pattern), CodeInvalidString)
		}
	}

	v.validateFormat(path, field.Format, s)
	return s
}

func (v *run) validateFormat(path string, format schema.Format, s string) {
	switch format {
	case schema.FormatNone:
	case schema.FormatURL:
		if !isURL(s) {
			v.addError(path, "Invalid URL", CodeInvalidURL)
		}
	case schema.FormatEmail:
		if !emailPattern.MatchString(s) {
			v.addError(path, "Invalid email address", CodeInvalidEmail)
		}
	case schema.FormatSlug:
		if !slugPattern.MatchString(s) {
			v.addError(path, "Must be a slug (lowercase letters, digits, hyphens)", CodeInvalidSlug)
		}
	case schema.FormatHexColor:
		if !hexPattern.MatchString(s) {
			v.addError(path, "Invalid hex color (expected #RGB or #RRGGBB)", CodeInvalidHexColor)
		}
	case schema.FormatDate:
		if _, err := time.Parse("2006-01-02", s); err != nil {
			v.addError(path, "Invalid date (expected YYYY-MM-DD)", CodeInvalidDate)
		}
	case schema.FormatDateTime:
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			v.addError(path, "Invalid datetime (expected RFC 3339)", CodeInvalidDatetime)
		}
	}
}

func (v *run) validateNumber(path string, field *schema.Field, value any) any {
	n, ok := toNumber(value)
	if !ok {
		v.addError(path, fmt.Sprintf("Expected a number, got %s", typeName(value)), CodeInvalidType)
		return nil
	}

	if field.Min != nil && n < *field.Min {
		v.addError(path, fmt.Sprintf("Must be at least %v", *field.Min), CodeInvalidNumber)
	}
	if field.Max != nil && n > *field.Max {
		v.addError(path, fmt.Sprintf("Must be at most %v", *field.Max), CodeInvalidNumber)
	}
	return n
}

func (v *run) validateArray(path string, field *schema.Field, value any) any {
	arr, ok := value.([]any)
	if !ok {
		// No descent into a mistyped container: one error, no cascades.
		v.addError(path, fmt.Sprintf("Expected an array, got %s", typeName(value)), CodeInvalidType)
		return nil
	}

	if field.MinLen > 0 && len(arr) < field.MinLen {
		v.addError(path, fmt.Sprintf("Must contain at least %d item(s)", field.MinLen), CodeTooSmall)
	}
	if field.MaxLen > 0 && len(arr) > field.MaxLen {
		v.addError(path, fmt.Sprintf("Must contain at most %d item(s)", field.MaxLen), CodeTooBig)
	}

	sanitized := make([]any, 0, len(arr))
	for i, item := range arr {
		itemPath := joinPath(path, strconv.Itoa(i))
		if field.Elem == nil {
			sanitized = append(sanitized, deepCopy(item))
			continue
		}
		sanitized = append(sanitized, v.validateValue(itemPath, field.Elem, item))
	}
	return sanitized
}

func (v *run) validateObject(path string, field *schema.Field, value any) any {
	obj, ok := value.(map[string]any)
	if !ok {
		v.addError(path, fmt.Sprintf("Expected an object, got %s", typeName(value)), CodeInvalidType)
		return nil
	}

	if field.Ref != "" {
		sub, ok := schema.ShapeFor(field.Ref)
		if !ok {
			v.addError(path, fmt.Sprintf("Unknown shape reference %q", field.Ref), CodeCustom)
			return nil
		}
		return v.validateShape(path, sub, obj)
	}

	if len(field.Children) > 0 {
		inline := &schema.Shape{Name: field.Name, Fields: field.Children}
		return v.validateShape(path, inline, obj)
	}

	// Free-form object: accepted as-is.
	return deepCopy(obj)
}

// joinPath appends a segment to a dotted path.
func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "." + segment
}

// typeName names a parsed-JSON value's kind for error messages.
func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// toNumber normalizes the numeric kinds produced by JSON and YAML decoding.
func toNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// deepCopy copies a parsed-JSON value so the sanitized result never aliases
// the caller's document.
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}

// Package errfmt turns raw validation errors into user-facing text: friendly
// field names, grouped summaries, severity buckets and fix suggestions. Every
// function here is pure: no I/O, and defined for empty inputs.
package errfmt

import (
	"fmt"
	"strings"

	"github.com/brightpath-digital/pagecheck/internal/validation"
)

// friendlyNames maps known field paths (and common last segments) to the
// labels the admin UI shows next to form inputs.
var friendlyNames = map[string]string{
	"general":      "Document",
	"pageId":       "Page ID",
	"title":        "Title",
	"subtitle":     "Subtitle",
	"description":  "Description",
	"lastModified": "Last Modified",
	"published":    "Published",

	"hero":            "Hero Section",
	"hero.title":      "Hero Title",
	"hero.subtitle":   "Hero Subtitle",
	"hero.ctaText":    "Button Text",
	"hero.ctaLink":    "Button Link",
	"hero.statistics": "Hero Statistics",

	"contactInfo":         "Contact Information",
	"contactInfo.email":   "Contact Email",
	"contactInfo.phone":   "Phone Number",
	"contactInfo.address": "Address",
	"form":                "Contact Form",
	"form.fields":         "Form Fields",

	"ctaText":         "Button Text",
	"ctaLink":         "Button Link",
	"email":           "Email Address",
	"phone":           "Phone Number",
	"backgroundColor": "Background Color",
	"textColor":       "Text Color",
	"accentColor":     "Accent Color",
	"buttonStyle":     "Button Style",
	"styling":         "Styling",
	"src":             "Image Source",
	"alt":             "Alt Text",
	"applyLink":       "Application Link",
}

// genericMessages maps error codes to display messages used in place of the
// validator's raw message. Unmapped codes keep the original message.
var genericMessages = map[validation.Code]string{
	validation.CodeRequired:         "This field is required",
	validation.CodeInvalidType:      "Has the wrong value type",
	validation.CodeTooSmall:         "Is too short",
	validation.CodeTooBig:           "Is too long",
	validation.CodeInvalidString:    "Has an invalid format",
	validation.CodeInvalidNumber:    "Must be a number in the allowed range",
	validation.CodeInvalidURL:       "Must be a valid URL including https://",
	validation.CodeInvalidEmail:     "Must be a valid email address",
	validation.CodeInvalidEnumValue: "Is not one of the allowed values",
	validation.CodeInvalidDate:      "Must be a valid date (YYYY-MM-DD)",
	validation.CodeInvalidDatetime:  "Must be a valid date and time",
	validation.CodeInvalidHexColor:  "Must be a hex color like #1A2B3C",
	validation.CodeInvalidSlug:      "Must use lowercase letters, digits and hyphens only",
	validation.CodeUnrecognizedKeys: "Contains keys that are not part of the page structure",
}

// FriendlyFieldName maps a dotted field path to a human label. Known paths
// use the lookup table; anything else falls back to converting the last path
// segment from camelCase or snake_case to Title Case.
func FriendlyFieldName(path string) string {
	if name, ok := friendlyNames[path]; ok {
		return name
	}

	segment := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		segment = path[i+1:]
	}
	if name, ok := friendlyNames[segment]; ok {
		return name
	}
	return titleCase(segment)
}

// FriendlyMessage renders one error as "<Field Name>: <message>".
func FriendlyMessage(err *validation.FieldError) string {
	message := err.Message
	if generic, ok := genericMessages[err.Code]; ok {
		message = generic
	}
	return fmt.Sprintf("%s: %s", FriendlyFieldName(err.Field), message)
}

// Formatted is a display-ready rendering of a set of validation errors.
type Formatted struct {
	Summary     string              // Banner sentence with error/field counts
	Details     []string            // One friendly message per error, in order
	FieldErrors map[string][]string // Friendly messages grouped by raw field path
}

// FormatErrors builds the banner summary, detail lines and per-field grouping
// for a list of validation errors.
func FormatErrors(errs []*validation.FieldError) Formatted {
	formatted := Formatted{
		Details:     make([]string, 0, len(errs)),
		FieldErrors: make(map[string][]string),
	}

	fields := make(map[string]bool)
	for _, err := range errs {
		msg := FriendlyMessage(err)
		formatted.Details = append(formatted.Details, msg)
		formatted.FieldErrors[err.Field] = append(formatted.FieldErrors[err.Field], msg)
		fields[err.Field] = true
	}

	formatted.Summary = summarize(len(errs), len(fields))
	return formatted
}

// summarize produces the grammatically correct banner sentence.
func summarize(errorCount, fieldCount int) string {
	switch {
	case errorCount == 0:
		return "No validation errors found."
	case errorCount == 1:
		return "There is 1 validation error that needs to be fixed."
	case fieldCount == 1:
		return fmt.Sprintf("There are %d validation errors in 1 field that need to be fixed.", errorCount)
	default:
		return fmt.Sprintf("There are %d validation errors in %d fields that need to be fixed.", errorCount, fieldCount)
	}
}

// Context names where a batch of errors came from. ItemIndex is the zero-based
// position within a section's item list; it renders one-based.
type Context struct {
	PageID     string
	SectionKey string
	ItemIndex  *int
}

// AddContext returns a new error list whose field paths are prefixed with the
// context segments in fixed order: item index, then section key, then page id
// (innermost first, so the rendered chain reads outermost first, e.g.
// "about Page: hero: Item 2: title"). The input is never mutated, and
// repeated application composes predictably.
func AddContext(errs []*validation.FieldError, ctx Context) []*validation.FieldError {
	out := make([]*validation.FieldError, len(errs))
	for i, err := range errs {
		field := err.Field
		if ctx.ItemIndex != nil {
			field = fmt.Sprintf("Item %d: %s", *ctx.ItemIndex+1, field)
		}
		if ctx.SectionKey != "" {
			field = fmt.Sprintf("%s: %s", ctx.SectionKey, field)
		}
		if ctx.PageID != "" {
			field = fmt.Sprintf("%s Page: %s", ctx.PageID, field)
		}
		out[i] = &validation.FieldError{Field: field, Message: err.Message, Code: err.Code}
	}
	return out
}

// Severity classifies an error for display purposes.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// SeverityOf applies the fixed classification table: missing fields, type
// mismatches and broken URLs block publishing; length violations warn;
// everything else is informational.
func SeverityOf(code validation.Code) Severity {
	switch code {
	case validation.CodeRequired, validation.CodeInvalidType, validation.CodeInvalidURL:
		return SeverityCritical
	case validation.CodeTooSmall, validation.CodeTooBig:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// SeverityBuckets holds a complete partition of errors by severity.
type SeverityBuckets struct {
	Critical []*validation.FieldError
	Warning  []*validation.FieldError
	Info     []*validation.FieldError
}

// BySeverity partitions errors into severity buckets. Every input error lands
// in exactly one bucket.
func BySeverity(errs []*validation.FieldError) SeverityBuckets {
	buckets := SeverityBuckets{
		Critical: []*validation.FieldError{},
		Warning:  []*validation.FieldError{},
		Info:     []*validation.FieldError{},
	}
	for _, err := range errs {
		switch SeverityOf(err.Code) {
		case SeverityCritical:
			buckets.Critical = append(buckets.Critical, err)
		case SeverityWarning:
			buckets.Warning = append(buckets.Warning, err)
		default:
			buckets.Info = append(buckets.Info, err)
		}
	}
	return buckets
}

// titleCase converts a camelCase, snake_case or kebab-case identifier into
// Title Case words.
func titleCase(segment string) string {
	if segment == "" {
		return ""
	}

	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range segment {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case r >= 'A' && r <= 'Z':
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Package validation checks untyped page content documents against the
// registered shape definitions and reports structured, field-addressed errors.
package validation

import "fmt"

// Code is the symbolic kind of a validation error.
type Code string

const (
	CodeRequired         Code = "required"
	CodeInvalidType      Code = "invalid_type"
	CodeTooSmall         Code = "too_small"
	CodeTooBig           Code = "too_big"
	CodeInvalidString    Code = "invalid_string"
	CodeInvalidNumber    Code = "invalid_number"
	CodeInvalidURL       Code = "invalid_url"
	CodeInvalidEmail     Code = "invalid_email"
	CodeInvalidEnumValue Code = "invalid_enum_value"
	CodeInvalidDate      Code = "invalid_date"
	CodeInvalidDatetime  Code = "invalid_datetime"
	CodeInvalidHexColor  Code = "invalid_hex_color"
	CodeInvalidSlug      Code = "invalid_slug"
	CodeUnrecognizedKeys Code = "unrecognized_keys"
	CodeCustom           Code = "custom"

	// CodeInvalidTailwindClass survives from the legacy content format where
	// styling values were raw Tailwind class lists. Nothing emits it anymore,
	// but stored error reports may still carry it.
	CodeInvalidTailwindClass Code = "invalid_tailwind_class"
)

// FieldError is a single structural complaint about a document, addressed by
// a dotted field path (array elements use numeric segments, e.g.
// "hero.statistics.1.number").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the complete outcome of validating one document. Data is the
// sanitized (shape-narrowed, deep-copied) document and is non-nil exactly
// when Valid is true. Errors may contain advisory unrecognized_keys entries
// even on valid documents when the shape is open.
type Result struct {
	Valid  bool          `json:"isValid"`
	Errors []*FieldError `json:"errors"`
	Data   any           `json:"data"`
}

// HasErrors returns true if any errors were recorded, advisory or not.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorsByCode returns the subset of errors carrying the given code.
func (r *Result) ErrorsByCode(code Code) []*FieldError {
	var out []*FieldError
	for _, e := range r.Errors {
		if e.Code == code {
			out = append(out, e)
		}
	}
	return out
}

// invalidResult builds a failed Result from a single error.
func invalidResult(field, message string, code Code) *Result {
	return &Result{
		Valid:  false,
		Errors: []*FieldError{{Field: field, Message: message, Code: code}},
	}
}

// BatchError pairs a failed item's original index with its errors.
type BatchError struct {
	Index  int           `json:"index"`
	Errors []*FieldError `json:"errors"`
}

// BatchResult partitions a batch into accepted items and per-index failures.
type BatchResult struct {
	ValidItems []any        `json:"validItems"`
	Errors     []BatchError `json:"errors"`
}

// ItemValidator validates a single batch item.
type ItemValidator func(item any) *Result

// ValidateBatch applies validate across items, collecting every failure
// rather than halting on the first. Accepted items carry their sanitized
// form; failures keep their original index.
func ValidateBatch(items []any, validate ItemValidator) *BatchResult {
	batch := &BatchResult{ValidItems: []any{}, Errors: []BatchError{}}
	for i, item := range items {
		res := validate(item)
		if res.Valid {
			batch.ValidItems = append(batch.ValidItems, res.Data)
			continue
		}
		batch.Errors = append(batch.Errors, BatchError{Index: i, Errors: res.Errors})
	}
	return batch
}

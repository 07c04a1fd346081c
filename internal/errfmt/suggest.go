package errfmt

import (
	"fmt"
	"strings"

	"github.com/brightpath-digital/pagecheck/internal/validation"
)

// suggestionTable maps error codes to actionable suggestion lines shown under
// the field in the admin editor.
var suggestionTable = map[validation.Code][]string{
	validation.CodeRequired: {
		"Add a value for this field before saving",
	},
	validation.CodeInvalidType: {
		"Check the value against the page structure; the stored type does not match",
	},
	validation.CodeTooSmall: {
		"Provide a longer value",
	},
	validation.CodeTooBig: {
		"Shorten the value to fit the limit",
	},
	validation.CodeInvalidURL: {
		"Include the protocol, e.g. https://example.com",
		"Check the domain name for typos",
	},
	validation.CodeInvalidEmail: {
		"Use the format name@company.com",
	},
	validation.CodeInvalidSlug: {
		"Use lowercase letters, digits and hyphens only",
		"Replace spaces with hyphens",
	},
	validation.CodeInvalidHexColor: {
		"Use a hex color like #0F172A",
	},
	validation.CodeInvalidEnumValue: {
		"Pick one of the allowed options",
	},
	validation.CodeInvalidDate: {
		"Use the YYYY-MM-DD format",
	},
	validation.CodeInvalidDatetime: {
		"Use an RFC 3339 timestamp, e.g. 2026-01-15T09:00:00Z",
	},
	validation.CodeUnrecognizedKeys: {
		"Remove the unknown keys or add them to the page structure",
	},
}

// Suggestions returns suggestion lines for an error's code. Unknown codes get
// no suggestions.
func Suggestions(err *validation.FieldError) []string {
	return suggestionTable[err.Code]
}

// AutoFixProposal is a proposed corrected value for a specific error. It is
// never applied by this package; the caller must present it for confirmation.
type AutoFixProposal struct {
	CanAutoFix     bool   `json:"canAutoFix"`
	SuggestedValue string `json:"suggestedValue,omitempty"`
	Description    string `json:"description,omitempty"`
}

// AutoFix proposes a corrected value for the known-safe subset of error
// kinds: slug normalization and URLs missing their scheme. Everything else
// reports CanAutoFix false.
func AutoFix(err *validation.FieldError, currentValue string) AutoFixProposal {
	switch err.Code {
	case validation.CodeInvalidSlug:
		fixed := slugify(currentValue)
		if fixed == "" || fixed == currentValue {
			return AutoFixProposal{}
		}
		return AutoFixProposal{
			CanAutoFix:     true,
			SuggestedValue: fixed,
			Description:    fmt.Sprintf("Normalize to %q", fixed),
		}
	case validation.CodeInvalidURL:
		trimmed := strings.TrimSpace(currentValue)
		if trimmed == "" || strings.Contains(trimmed, "://") {
			return AutoFixProposal{}
		}
		fixed := "https://" + trimmed
		return AutoFixProposal{
			CanAutoFix:     true,
			SuggestedValue: fixed,
			Description:    fmt.Sprintf("Prepend https:// to make %q", fixed),
		}
	default:
		return AutoFixProposal{}
	}
}

// slugify lowercases the value and collapses every non-alphanumeric run into
// a single hyphen.
func slugify(value string) string {
	var sb strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(value) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			sb.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

package consistency

import (
	"sort"

	"github.com/brightpath-digital/pagecheck/internal/validation"
)

// WarningType categorizes a cross-document finding.
type WarningType string

const (
	WarningStyling   WarningType = "styling"
	WarningStructure WarningType = "structure"
	WarningNaming    WarningType = "naming"
	WarningContent   WarningType = "content"
)

// Severity ranks a warning's weight in the consistency score.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Warning is a heuristic cross-document finding, distinct from a hard
// validation error.
type Warning struct {
	Type     WarningType `json:"type"`
	Message  string      `json:"message"`
	Files    []string    `json:"files"`
	Severity Severity    `json:"severity"`
}

// SuggestionType categorizes a remediation suggestion.
type SuggestionType string

const (
	SuggestStandardize SuggestionType = "standardize"
	SuggestOptimize    SuggestionType = "optimize"
	SuggestImprove     SuggestionType = "improve"
)

// Suggestion bundles a remediation action for one warning category.
type Suggestion struct {
	Type    SuggestionType `json:"type"`
	Message string         `json:"message"`
	Action  string         `json:"action"`
	Files   []string       `json:"files"`
}

// Summary carries the aggregate counts and overall score of one check run.
type Summary struct {
	TotalFiles        int `json:"totalFiles"`
	ValidFiles        int `json:"validFiles"`
	FilesWithErrors   int `json:"filesWithErrors"`
	FilesWithWarnings int `json:"filesWithWarnings"`
	OverallScore      int `json:"overallScore"`
}

// Report is the full outcome of a consistency check. It is built fresh per
// call and never persisted.
type Report struct {
	IsConsistent bool                     `json:"isConsistent"`
	Errors       []*validation.FieldError `json:"errors"`
	Warnings     []Warning                `json:"warnings"`
	Suggestions  []Suggestion             `json:"suggestions"`
	Summary      Summary                  `json:"summary"`
}

// Per-finding score weights. Validation errors weigh heaviest; advisory
// warnings deduct by severity.
const (
	errorWeight         = 10
	highWarningWeight   = 5
	mediumWarningWeight = 3
	lowWarningWeight    = 1
)

// score computes the overall consistency score, clamped to [0,100].
func score(errorCount int, warnings []Warning) int {
	s := 100 - errorWeight*errorCount
	for _, w := range warnings {
		switch w.Severity {
		case SeverityHigh:
			s -= highWarningWeight
		case SeverityMedium:
			s -= mediumWarningWeight
		case SeverityLow:
			s -= lowWarningWeight
		}
	}
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// labelSet is a set of document labels with sorted extraction.
type labelSet map[string]bool

func (s labelSet) add(label string) { s[label] = true }

func (s labelSet) sorted() []string {
	out := make([]string, 0, len(s))
	for label := range s {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

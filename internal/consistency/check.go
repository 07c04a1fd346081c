package consistency

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/brightpath-digital/pagecheck/internal/schema"
	"github.com/brightpath-digital/pagecheck/internal/validation"
)

// baseFields are the fields every page document must carry at the top level.
var baseFields = []string{"pageId", "title", "description", "lastModified", "published"}

// contentDataLabel is the catch-all label for free-form content blobs; it is
// skipped by the structural pass.
const contentDataLabel = "contentData"

var (
	camelPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:[A-Z][a-zA-Z0-9]*)+$`)
	snakePattern = regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)+$`)
	kebabPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)+$`)
)

// Title length band; out-of-band titles get flagged by category.
const (
	titleMinLen = 10
	titleMaxLen = 100
)

// Check runs the full consistency audit over a set of documents keyed by
// label. The work is purely computational; ctx exists so callers can slot the
// check into request pipelines and cancel between passes. Malformed documents
// never cause a failure; they simply contribute nothing to the heuristic
// passes, while the validator sub-call still reports them as hard errors.
func Check(ctx context.Context, docsByLabel map[string]any) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(docsByLabel))
	for label := range docsByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	report := &Report{
		Errors:      []*validation.FieldError{},
		Warnings:    []Warning{},
		Suggestions: []Suggestion{},
	}

	// Validator pass: hard errors for every label with a known page shape.
	errorLabels := labelSet{}
	for _, label := range labels {
		if !schema.IsPageType(label) {
			continue
		}
		res := validation.Validate(docsByLabel[label], label)
		if res.Valid {
			continue
		}
		errorLabels.add(label)
		for _, e := range res.Errors {
			report.Errors = append(report.Errors, &validation.FieldError{
				Field:   fmt.Sprintf("%s: %s", label, e.Field),
				Message: e.Message,
				Code:    e.Code,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Warnings = append(report.Warnings, structuralPass(labels, docsByLabel)...)

	// Every label participates in the heuristic passes, including the
	// catch-all contentData blob excluded from the structural pass above.
	agg := newAggregate()
	for _, label := range labels {
		agg.collect(label, docsByLabel[label])
	}

	report.Warnings = append(report.Warnings, agg.stylingWarnings()...)
	report.Warnings = append(report.Warnings, agg.contentWarnings()...)
	report.Warnings = append(report.Warnings, agg.namingWarnings()...)

	report.Suggestions = buildSuggestions(report.Warnings)

	warningLabels := labelSet{}
	for _, w := range report.Warnings {
		for _, f := range w.Files {
			warningLabels.add(f)
		}
	}

	report.Summary = Summary{
		TotalFiles:        len(labels),
		ValidFiles:        len(labels) - len(errorLabels),
		FilesWithErrors:   len(errorLabels),
		FilesWithWarnings: len(warningLabels),
		OverallScore:      score(len(report.Errors), report.Warnings),
	}
	report.IsConsistent = len(report.Errors) == 0 && len(report.Warnings) == 0

	return report, nil
}

// structuralPass confirms the base fields and the hero section on every page
// document. Documents that are not objects are skipped here; the validator
// pass already reported them.
func structuralPass(labels []string, docs map[string]any) []Warning {
	var warnings []Warning
	heroMissing := labelSet{}

	for _, label := range labels {
		if !schema.IsPageType(label) || label == contentDataLabel {
			continue
		}
		obj, ok := docs[label].(map[string]any)
		if !ok {
			continue
		}

		var missing []string
		for _, f := range baseFields {
			if _, present := obj[f]; !present {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			warnings = append(warnings, Warning{
				Type:     WarningStructure,
				Message:  fmt.Sprintf("Missing base fields: %s", strings.Join(missing, ", ")),
				Files:    []string{label},
				Severity: SeverityHigh,
			})
		}

		if _, present := obj["hero"]; !present {
			heroMissing.add(label)
		}
	}

	if len(heroMissing) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningStructure,
			Message:  "Pages without a hero section",
			Files:    heroMissing.sorted(),
			Severity: SeverityMedium,
		})
	}

	return warnings
}

// aggregate accumulates the styling, content and naming observations from a
// single shared traversal of every document.
type aggregate struct {
	variantFiles  labelSet            // labels that contributed any button variant
	variants      map[string]bool     // distinct buttonStyle.variant values
	sizes         map[string]bool     // distinct buttonStyle.size values
	sizeFiles     labelSet            // labels that contributed any button size
	bgColors      map[string]bool     // distinct backgroundColor values
	bgFiles       labelSet            // labels that contributed any backgroundColor
	shortTitles   labelSet            // labels with a too-short title
	longTitles    labelSet            // labels with a too-long title
	bareSections  labelSet            // labels with title-only sections
	namingByStyle map[string]labelSet // naming convention -> labels using it
}

func newAggregate() *aggregate {
	return &aggregate{
		variantFiles:  labelSet{},
		variants:      map[string]bool{},
		sizes:         map[string]bool{},
		sizeFiles:     labelSet{},
		bgColors:      map[string]bool{},
		bgFiles:       labelSet{},
		shortTitles:   labelSet{},
		longTitles:    labelSet{},
		bareSections:  labelSet{},
		namingByStyle: map[string]labelSet{},
	}
}

// collect walks one document with the three pass visitors sharing the
// traversal.
func (a *aggregate) collect(label string, doc any) {
	styling := func(path, key string, value any) {
		obj, ok := value.(map[string]any)
		if !ok || key != "styling" {
			return
		}
		a.collectStyling(label, obj)
	}

	titles := func(path, key string, value any) {
		s, ok := value.(string)
		if !ok || key != "title" {
			return
		}
		if len(s) < titleMinLen {
			a.shortTitles.add(label)
		}
		if len(s) > titleMaxLen {
			a.longTitles.add(label)
		}
	}

	sections := func(path, key string, value any) {
		obj, ok := value.(map[string]any)
		if !ok || path == "" {
			return
		}
		if _, hasTitle := obj["title"].(string); !hasTitle {
			return
		}
		_, hasDesc := obj["description"].(string)
		_, hasSub := obj["subtitle"].(string)
		if !hasDesc && !hasSub {
			a.bareSections.add(label)
		}
	}

	keys := func(path, key string, value any) {
		if key == "" {
			return
		}
		style := classifyKey(key)
		if style == "" {
			return
		}
		if a.namingByStyle[style] == nil {
			a.namingByStyle[style] = labelSet{}
		}
		a.namingByStyle[style].add(label)
	}

	Walk(doc, styling, titles, sections, keys)
}

func (a *aggregate) collectStyling(label string, styling map[string]any) {
	if bs, ok := styling["buttonStyle"].(map[string]any); ok {
		if variant, ok := bs["variant"].(string); ok {
			a.variants[variant] = true
			a.variantFiles.add(label)
		}
		if size, ok := bs["size"].(string); ok {
			a.sizes[size] = true
			a.sizeFiles.add(label)
		}
	}
	if bg, ok := styling["backgroundColor"].(string); ok {
		a.bgColors[bg] = true
		a.bgFiles.add(label)
	}
}

func (a *aggregate) stylingWarnings() []Warning {
	var warnings []Warning

	if len(a.variants) > 3 {
		warnings = append(warnings, Warning{
			Type:     WarningStyling,
			Message:  fmt.Sprintf("%d distinct button variants in use; consolidate to at most 3", len(a.variants)),
			Files:    a.variantFiles.sorted(),
			Severity: SeverityMedium,
		})
	}
	if len(a.sizes) > 3 {
		warnings = append(warnings, Warning{
			Type:     WarningStyling,
			Message:  fmt.Sprintf("%d distinct button sizes in use; consolidate to at most 3", len(a.sizes)),
			Files:    a.sizeFiles.sorted(),
			Severity: SeverityLow,
		})
	}
	if len(a.bgColors) > 10 {
		warnings = append(warnings, Warning{
			Type:     WarningStyling,
			Message:  fmt.Sprintf("%d distinct background colors in use; use a consistent palette", len(a.bgColors)),
			Files:    a.bgFiles.sorted(),
			Severity: SeverityMedium,
		})
	}

	return warnings
}

func (a *aggregate) contentWarnings() []Warning {
	var warnings []Warning

	if len(a.shortTitles) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningContent,
			Message:  fmt.Sprintf("Titles shorter than %d characters", titleMinLen),
			Files:    a.shortTitles.sorted(),
			Severity: SeverityLow,
		})
	}
	if len(a.longTitles) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningContent,
			Message:  fmt.Sprintf("Titles longer than %d characters", titleMaxLen),
			Files:    a.longTitles.sorted(),
			Severity: SeverityMedium,
		})
	}
	if len(a.bareSections) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningContent,
			Message:  "Sections with a title but neither description nor subtitle",
			Files:    a.bareSections.sorted(),
			Severity: SeverityMedium,
		})
	}

	return warnings
}

func (a *aggregate) namingWarnings() []Warning {
	var warnings []Warning

	camel := a.namingByStyle["camelCase"]
	snake := a.namingByStyle["snake_case"]
	kebab := a.namingByStyle["kebab-case"]

	if len(camel) > 0 && len(snake) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningNaming,
			Message:  "Both camelCase and snake_case keys in use",
			Files:    union(camel, snake).sorted(),
			Severity: SeverityMedium,
		})
	}
	if len(camel) > 0 && len(kebab) > 0 {
		warnings = append(warnings, Warning{
			Type:     WarningNaming,
			Message:  "Both camelCase and kebab-case keys in use",
			Files:    union(camel, kebab).sorted(),
			Severity: SeverityMedium,
		})
	}

	return warnings
}

// classifyKey reports the naming convention of an object key, or "" when the
// key fits none (single lowercase words match every convention and are
// ignored). Only keys are scanned, so URL-like values never misfire.
func classifyKey(key string) string {
	switch {
	case camelPattern.MatchString(key):
		return "camelCase"
	case snakePattern.MatchString(key):
		return "snake_case"
	case kebabPattern.MatchString(key):
		return "kebab-case"
	default:
		return ""
	}
}

// buildSuggestions emits one suggestion per distinct warning category present
// among styling, content and naming, bundling the union of affected labels.
func buildSuggestions(warnings []Warning) []Suggestion {
	files := map[WarningType]labelSet{}
	for _, w := range warnings {
		if files[w.Type] == nil {
			files[w.Type] = labelSet{}
		}
		for _, f := range w.Files {
			files[w.Type].add(f)
		}
	}

	var suggestions []Suggestion
	if set, ok := files[WarningStyling]; ok {
		suggestions = append(suggestions, Suggestion{
			Type:    SuggestStandardize,
			Message: "Styling drifts across pages",
			Action:  "Adopt a shared styling preset for sections and reference it from every page",
			Files:   set.sorted(),
		})
	}
	if set, ok := files[WarningContent]; ok {
		suggestions = append(suggestions, Suggestion{
			Type:    SuggestImprove,
			Message: "Section copy needs attention",
			Action:  "Review titles against the 10-100 character band and give every section a description or subtitle",
			Files:   set.sorted(),
		})
	}
	if set, ok := files[WarningNaming]; ok {
		suggestions = append(suggestions, Suggestion{
			Type:    SuggestStandardize,
			Message: "Mixed key naming conventions",
			Action:  "Rename keys to camelCase across all content documents",
			Files:   set.sorted(),
		})
	}

	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	return suggestions
}

func union(a, b labelSet) labelSet {
	out := labelSet{}
	for l := range a {
		out.add(l)
	}
	for l := range b {
		out.add(l)
	}
	return out
}

// Package consistency_test tests the cross-document audit passes and the overall score.
// Related: internal/consistency/check.go
// Tags: consistency, audit, styling, naming, content, structure, score
package consistency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath-digital/pagecheck/internal/validation"
)

// consistentContactDoc builds a contact page document that trips none of the
// audit passes.
func consistentContactDoc() map[string]any {
	return map[string]any{
		"pageId":       "contact",
		"title":        "Contact Us",
		"description":  "Get in touch with the team",
		"lastModified": "2026-01-15T10:30:00Z",
		"published":    true,
		"hero": map[string]any{
			"title":    "Talk to our team today",
			"subtitle": "We usually reply within one business day",
		},
		"contactInfo": map[string]any{
			"email": "hello@brightpath.example",
		},
		"form": map[string]any{
			"fields": []any{
				map[string]any{
					"name":  "email",
					"label": "Email",
					"type":  "email",
				},
			},
		},
	}
}

func TestCheck_ConsistentSet(t *testing.T) {
	t.Parallel()

	report, err := Check(context.Background(), map[string]any{
		"contact": consistentContactDoc(),
	})

	require.NoError(t, err)
	assert.True(t, report.IsConsistent)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Suggestions)
	assert.Equal(t, Summary{
		TotalFiles:        1,
		ValidFiles:        1,
		FilesWithErrors:   0,
		FilesWithWarnings: 0,
		OverallScore:      100,
	}, report.Summary)
}

func TestCheck_EmptySet(t *testing.T) {
	t.Parallel()

	report, err := Check(context.Background(), map[string]any{})

	require.NoError(t, err)
	assert.True(t, report.IsConsistent)
	assert.Equal(t, 100, report.Summary.OverallScore)
	assert.Equal(t, 0, report.Summary.TotalFiles)
}

// TestCheck_InvalidPageDocument checks the validator pass: hard errors get the
// label prefixed to the field path, and both structural warnings fire.
func TestCheck_InvalidPageDocument(t *testing.T) {
	t.Parallel()

	report, err := Check(context.Background(), map[string]any{
		"home": map[string]any{},
	})

	require.NoError(t, err)
	assert.False(t, report.IsConsistent)

	// Six required fields on the home shape.
	require.Len(t, report.Errors, 6)
	assert.Equal(t, "home: pageId", report.Errors[0].Field)
	assert.Equal(t, validation.CodeRequired, report.Errors[0].Code)
	assert.Equal(t, "home: hero", report.Errors[5].Field)

	// One high warning for missing base fields, one medium for the missing hero.
	require.Len(t, report.Warnings, 2)
	assert.Equal(t, WarningStructure, report.Warnings[0].Type)
	assert.Equal(t, SeverityHigh, report.Warnings[0].Severity)
	assert.Equal(t, []string{"home"}, report.Warnings[0].Files)
	assert.Equal(t, SeverityMedium, report.Warnings[1].Severity)

	assert.Equal(t, Summary{
		TotalFiles:        1,
		ValidFiles:        0,
		FilesWithErrors:   1,
		FilesWithWarnings: 1,
		OverallScore:      32, // 100 - 6*10 - 5 - 3
	}, report.Summary)
}

// TestCheck_ButtonVariantSprawl checks that four distinct button variants
// across the set produce exactly one medium styling warning.
func TestCheck_ButtonVariantSprawl(t *testing.T) {
	t.Parallel()

	docs := map[string]any{
		"banners": map[string]any{
			"sectionOne": map[string]any{
				"styling": map[string]any{"buttonStyle": map[string]any{"variant": "primary"}},
			},
			"sectionTwo": map[string]any{
				"styling": map[string]any{"buttonStyle": map[string]any{"variant": "secondary"}},
			},
		},
		"promos": map[string]any{
			"sectionOne": map[string]any{
				"styling": map[string]any{"buttonStyle": map[string]any{"variant": "outline"}},
			},
			"sectionTwo": map[string]any{
				"styling": map[string]any{"buttonStyle": map[string]any{"variant": "ghost"}},
			},
		},
	}

	report, err := Check(context.Background(), docs)

	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	w := report.Warnings[0]
	assert.Equal(t, WarningStyling, w.Type)
	assert.Equal(t, SeverityMedium, w.Severity)
	assert.Contains(t, w.Message, "4 distinct button variants")
	assert.Equal(t, []string{"banners", "promos"}, w.Files)

	require.Len(t, report.Suggestions, 1)
	assert.Equal(t, SuggestStandardize, report.Suggestions[0].Type)
	assert.Equal(t, 97, report.Summary.OverallScore)
}

// TestCheck_ThreeVariantsAllowed checks the sprawl threshold is strictly
// greater than three.
func TestCheck_ThreeVariantsAllowed(t *testing.T) {
	t.Parallel()

	docs := map[string]any{
		"banners": map[string]any{
			"one":   map[string]any{"styling": map[string]any{"buttonStyle": map[string]any{"variant": "primary"}}},
			"two":   map[string]any{"styling": map[string]any{"buttonStyle": map[string]any{"variant": "secondary"}}},
			"three": map[string]any{"styling": map[string]any{"buttonStyle": map[string]any{"variant": "outline"}}},
		},
	}

	report, err := Check(context.Background(), docs)

	require.NoError(t, err)
	assert.Empty(t, report.Warnings)
	assert.True(t, report.IsConsistent)
}

func TestCheck_BackgroundColorSprawl(t *testing.T) {
	t.Parallel()

	sections := map[string]any{}
	colors := []string{
		"#111111", "#222222", "#333333", "#444444", "#555555", "#666666",
		"#777777", "#888888", "#999999", "#aaaaaa", "#bbbbbb",
	}
	for i, c := range colors {
		sections["section"+string(rune('a'+i))] = map[string]any{
			"styling": map[string]any{"backgroundColor": c},
		}
	}

	report, err := Check(context.Background(), map[string]any{"palette": sections})

	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, WarningStyling, report.Warnings[0].Type)
	assert.Equal(t, SeverityMedium, report.Warnings[0].Severity)
	assert.Contains(t, report.Warnings[0].Message, "11 distinct background colors")
}

// TestCheck_MixedNamingConventions checks that camelCase and snake_case keys
// across two documents produce exactly one medium naming warning naming both.
func TestCheck_MixedNamingConventions(t *testing.T) {
	t.Parallel()

	docs := map[string]any{
		"alpha": map[string]any{"jobTitle": "Engineer"},
		"beta":  map[string]any{"job_title": "Designer"},
	}

	report, err := Check(context.Background(), docs)

	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	w := report.Warnings[0]
	assert.Equal(t, WarningNaming, w.Type)
	assert.Equal(t, SeverityMedium, w.Severity)
	assert.Contains(t, w.Message, "camelCase and snake_case")
	assert.Equal(t, []string{"alpha", "beta"}, w.Files)

	require.Len(t, report.Suggestions, 1)
	assert.Equal(t, SuggestStandardize, report.Suggestions[0].Type)
	assert.Equal(t, 97, report.Summary.OverallScore)
}

func TestCheck_SingleConventionIsFine(t *testing.T) {
	t.Parallel()

	docs := map[string]any{
		"alpha": map[string]any{"jobTitle": "Engineer", "applyLink": "https://example.com"},
		"beta":  map[string]any{"pageTitle": "Hiring"},
	}

	report, err := Check(context.Background(), docs)

	require.NoError(t, err)
	assert.Empty(t, report.Warnings)
}

func TestCheck_TitleLengthBands(t *testing.T) {
	t.Parallel()

	longTitle := make([]byte, 101)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	docs := map[string]any{
		"brief": map[string]any{
			"banner": map[string]any{"title": "Hi", "subtitle": "A short greeting"},
		},
		"rambling": map[string]any{
			"banner": map[string]any{"title": string(longTitle), "subtitle": "Way too much"},
		},
	}

	report, err := Check(context.Background(), docs)

	require.NoError(t, err)
	require.Len(t, report.Warnings, 2)
	assert.Equal(t, WarningContent, report.Warnings[0].Type)
	assert.Equal(t, SeverityLow, report.Warnings[0].Severity)
	assert.Equal(t, []string{"brief"}, report.Warnings[0].Files)
	assert.Equal(t, SeverityMedium, report.Warnings[1].Severity)
	assert.Equal(t, []string{"rambling"}, report.Warnings[1].Files)

	require.Len(t, report.Suggestions, 1)
	assert.Equal(t, SuggestImprove, report.Suggestions[0].Type)
}

func TestCheck_BareSections(t *testing.T) {
	t.Parallel()

	docs := map[string]any{
		"landing": map[string]any{
			"banner": map[string]any{"title": "A headline with no copy"},
		},
	}

	report, err := Check(context.Background(), docs)

	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, WarningContent, report.Warnings[0].Type)
	assert.Contains(t, report.Warnings[0].Message, "neither description nor subtitle")
	assert.Equal(t, []string{"landing"}, report.Warnings[0].Files)
}

// TestCheck_ContentDataParticipatesInHeuristics checks that the catch-all
// contentData blob is skipped by the structural pass but still contributes to
// the content pass.
func TestCheck_ContentDataParticipatesInHeuristics(t *testing.T) {
	t.Parallel()

	docs := map[string]any{
		"contentData": map[string]any{
			"banner": map[string]any{"title": "Hey", "subtitle": "Short title above"},
		},
	}

	report, err := Check(context.Background(), docs)

	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, WarningContent, report.Warnings[0].Type)
	assert.Equal(t, []string{"contentData"}, report.Warnings[0].Files)
	// No structural warnings despite the missing base fields.
	for _, w := range report.Warnings {
		assert.NotEqual(t, WarningStructure, w.Type)
	}
}

func TestCheck_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Check(ctx, map[string]any{"contact": consistentContactDoc()})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		errorCount int
		warnings   []Warning
		want       int
	}{
		"clean": {
			errorCount: 0,
			want:       100,
		},
		"weights per severity": {
			errorCount: 2,
			warnings: []Warning{
				{Severity: SeverityHigh},
				{Severity: SeverityMedium},
				{Severity: SeverityLow},
			},
			want: 71, // 100 - 20 - 5 - 3 - 1
		},
		"clamped at zero": {
			errorCount: 50,
			want:       0,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, score(tc.errorCount, tc.warnings))
		})
	}
}

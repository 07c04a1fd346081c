// Package cli_test tests the audit command end to end against temp content directories.
// Related: internal/cli/audit.go
// Tags: cli, audit, score, min-score, rendering, exit-codes
package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunAuditCommand_CleanDirectory checks a fully consistent content set
// passes with a perfect score. NO t.Parallel() due to HOME isolation.
func TestRunAuditCommand_CleanDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	writeContentFile(t, tmpDir, "contact.json", `{
		"pageId": "contact",
		"title": "Contact Us",
		"description": "Get in touch",
		"lastModified": "2026-01-15T10:30:00Z",
		"published": true,
		"hero": {"title": "Talk to our team today", "subtitle": "We reply fast"},
		"contactInfo": {"email": "hello@brightpath.example"},
		"form": {"fields": [{"name": "email", "label": "Email", "type": "email"}]}
	}`)

	var out, errOut bytes.Buffer
	err := runAuditCommand(context.Background(), []string{tmpDir}, "", &out, &errOut)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "100/100")
	assert.Contains(t, out.String(), "Content is consistent")
}

func TestRunAuditCommand_FailsBelowMinScore(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	// An empty home document costs 60 points of errors plus structure warnings.
	writeContentFile(t, tmpDir, "home.json", `{}`)

	auditMinScoreFlag = 90
	defer func() { auditMinScoreFlag = -1 }()

	var out, errOut bytes.Buffer
	err := runAuditCommand(context.Background(), []string{tmpDir}, "", &out, &errOut)

	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, errOut.String(), "below the minimum of 90")
	assert.Contains(t, out.String(), "Warnings")
}

func TestRunAuditCommand_MinScoreZeroAlwaysPasses(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	writeContentFile(t, tmpDir, "home.json", `{}`)

	auditMinScoreFlag = 0
	defer func() { auditMinScoreFlag = -1 }()

	var out, errOut bytes.Buffer
	err := runAuditCommand(context.Background(), []string{tmpDir}, "", &out, &errOut)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Errors")
}

func TestRunAuditCommand_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	var out, errOut bytes.Buffer
	err := runAuditCommand(context.Background(), []string{tmpDir}, "", &out, &errOut)

	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, errOut.String(), "no content documents found")
}

func TestRunAuditCommand_MissingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	var out, errOut bytes.Buffer
	err := runAuditCommand(context.Background(), []string{tmpDir + "/nope"}, "", &out, &errOut)

	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

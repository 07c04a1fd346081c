package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brightpath-digital/pagecheck/internal/config"
	"github.com/brightpath-digital/pagecheck/internal/consistency"
	"github.com/brightpath-digital/pagecheck/internal/content"
	"github.com/brightpath-digital/pagecheck/internal/progress"
)

var auditMinScoreFlag int

var auditCmd = &cobra.Command{
	Use:   "audit [content-dir]",
	Short: "Audit a content directory for cross-page consistency",
	Long: `Audit a content directory for cross-page consistency.

Loads every page document in the directory, validates each against its page
structure, and runs cross-page checks:

  - Styling: button variant sprawl, size sprawl, background color palette
  - Content: very short or very long page titles, sections missing copy
  - Structure: missing base fields, sites with no hero sections
  - Naming: mixed camelCase / snake_case / kebab-case keys

The audit produces an overall score out of 100. Validation errors cost 10
points each; warnings cost 5, 3 or 1 depending on severity.

Exit codes:
  0 - Success (score at or above the minimum)
  1 - Audit failed (score below the minimum)
  3 - Invalid arguments (missing or empty directory)`,
	Example: `  # Audit the configured content directory
  pagecheck audit

  # Audit a specific directory
  pagecheck audit content/

  # Fail the build below a score of 90
  pagecheck audit content/ --min-score 90`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		return runAuditCommand(cmd.Context(), args, configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().IntVar(&auditMinScoreFlag, "min-score", -1, "Minimum acceptable score (overrides config)")
}

// runAuditCommand executes the audit command.
func runAuditCommand(ctx context.Context, args []string, configPath string, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	dir := cfg.ContentDir
	if len(args) == 1 {
		dir = args[0]
	}
	minScore := cfg.MinScore
	if auditMinScoreFlag >= 0 {
		minScore = auditMinScoreFlag
	}

	var spin *progress.AuditSpinner
	if cfg.ShowProgress {
		spin = progress.NewAuditSpinner(progress.DetectTerminalCapabilities())
		spin.Start(fmt.Sprintf("Auditing %s...", dir))
	}

	docs, err := content.LoadDir(dir)
	if err != nil {
		if spin != nil {
			spin.Stop()
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	report, err := consistency.Check(ctx, docs)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitValidationFailed)
	}

	if cfg.Output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		renderReport(report, out)
	}

	if report.Summary.OverallScore < minScore {
		fmt.Fprintf(errOut, "Score %d is below the minimum of %d\n",
			report.Summary.OverallScore, minScore)
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// renderReport formats and displays a consistency report as text.
func renderReport(report *consistency.Report, out io.Writer) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(out, "%s\n", bold("Content Audit"))
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))

	s := report.Summary
	scoreStr := fmt.Sprintf("%d/100", s.OverallScore)
	switch {
	case s.OverallScore >= 90:
		scoreStr = green(scoreStr)
	case s.OverallScore >= 70:
		scoreStr = yellow(scoreStr)
	default:
		scoreStr = red(scoreStr)
	}

	fmt.Fprintf(out, "Score:   %s\n", scoreStr)
	fmt.Fprintf(out, "Files:   %d total, %d valid, %d with errors, %d with warnings\n\n",
		s.TotalFiles, s.ValidFiles, s.FilesWithErrors, s.FilesWithWarnings)

	if len(report.Errors) > 0 {
		fmt.Fprintf(out, "%s\n", bold("Errors"))
		for _, e := range report.Errors {
			fmt.Fprintf(out, "  %s %s: %s\n", red("✗"), e.Field, e.Message)
		}
		fmt.Fprintf(out, "\n")
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(out, "%s\n", bold("Warnings"))
		for _, w := range report.Warnings {
			marker := yellow("!")
			if w.Severity == consistency.SeverityHigh {
				marker = red("!")
			}
			fmt.Fprintf(out, "  %s [%s/%s] %s\n", marker, w.Type, w.Severity, w.Message)
			if len(w.Files) > 0 {
				fmt.Fprintf(out, "      files: %s\n", strings.Join(w.Files, ", "))
			}
		}
		fmt.Fprintf(out, "\n")
	}

	if len(report.Suggestions) > 0 {
		fmt.Fprintf(out, "%s\n", bold("Suggestions"))
		for _, sg := range report.Suggestions {
			fmt.Fprintf(out, "  - [%s] %s\n", sg.Type, sg.Message)
			fmt.Fprintf(out, "    %s\n", sg.Action)
		}
		fmt.Fprintf(out, "\n")
	}

	if report.IsConsistent {
		fmt.Fprintf(out, "%s Content is consistent\n", green("✓"))
	}
}

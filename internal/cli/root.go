// Package cli provides the Cobra-based commands of the pagecheck tool:
// validating single page documents, auditing a content directory for
// cross-page consistency, and printing the expected page structures.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagecheck",
	Short: "Validate and audit marketing-site page content",
	Long: `pagecheck validates page content documents (JSON or YAML) against the
site's page structures and audits a content set for cross-page consistency:
styling sprawl, title length, missing sections and mixed key naming.`,
	Example: `  # Validate one page document (type inferred from filename)
  pagecheck validate content/home.json

  # Validate a single section of a page
  pagecheck validate contact content/contact.json --section form

  # Print the expected structure for a page type
  pagecheck validate about --schema

  # Audit the whole content directory, failing below a score of 80
  pagecheck audit content/ --min-score 80`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".pagecheck/config.json", "Path to config file")
}

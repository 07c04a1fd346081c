package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brightpath-digital/pagecheck/internal/config"
	"github.com/brightpath-digital/pagecheck/internal/content"
	"github.com/brightpath-digital/pagecheck/internal/errfmt"
	"github.com/brightpath-digital/pagecheck/internal/schema"
	"github.com/brightpath-digital/pagecheck/internal/validation"
)

var (
	validateSchemaFlag  bool
	validateSectionFlag string
	validateFixesFlag   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <page-type|path> [path]",
	Short: "Validate a page content document against its page structure",
	Long: `Validate a page content document against its page structure.

Smart detection:
  - Path only: pagecheck validate content/home.json → infers type from filename
  - Type + path: pagecheck validate home content/homepage.json
  - Type only: pagecheck validate home → looks for <content-dir>/home.json

Page types:
  home, about, services, contact, jobs

Validates:
  - Required fields and sections present
  - Field types correct (strings, numbers, arrays, objects)
  - String formats (URLs, emails, slugs, hex colors, timestamps)
  - Enumerated values (button variants, form field types, ...)

Exit codes:
  0 - Success (document is valid)
  1 - Validation failed (document has errors)
  3 - Invalid arguments (unknown page type or missing file)`,
	Example: `  # Path only - type inferred from filename
  pagecheck validate content/home.json
  pagecheck validate content/contact.yaml

  # Explicit type and path
  pagecheck validate jobs drafts/jobs-rework.json

  # Validate a single section
  pagecheck validate contact content/contact.json --section form

  # Show the expected structure for a page type
  pagecheck validate services --schema

  # Print proposed fixes for fixable errors (never applied automatically)
  pagecheck validate content/about.json --suggest-fixes`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		return runValidateCommand(args, configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateSchemaFlag, "schema", false, "Print the expected structure for the page type")
	validateCmd.Flags().StringVar(&validateSectionFlag, "section", "", "Validate only the named section of the document")
	validateCmd.Flags().BoolVar(&validateFixesFlag, "suggest-fixes", false, "Print proposed fixes for fixable errors")
}

// validateArgs represents parsed validate command arguments.
type validateArgs struct {
	pageType string
	filePath string
}

// parseValidateArgs determines the page type and document path from the
// command arguments.
func parseValidateArgs(args []string, contentDir string) (*validateArgs, error) {
	first := args[0]
	ext := filepath.Ext(first)
	isPath := ext == ".json" || ext == ".yaml" || ext == ".yml"

	if isPath {
		pageType, err := schema.InferPageTypeFromFilename(first)
		if err != nil {
			return nil, err
		}
		return &validateArgs{pageType: pageType, filePath: first}, nil
	}

	if !schema.IsPageType(first) {
		return nil, fmt.Errorf("unknown page type %q (valid types: %s)",
			first, strings.Join(schema.PageTypes(), ", "))
	}

	if len(args) == 2 {
		return &validateArgs{pageType: first, filePath: args[1]}, nil
	}

	// Type only: look for the document in the configured content directory.
	for _, candidate := range []string{first + ".json", first + ".yaml", first + ".yml"} {
		path := filepath.Join(contentDir, candidate)
		if _, err := os.Stat(path); err == nil {
			return &validateArgs{pageType: first, filePath: path}, nil
		}
	}
	return nil, fmt.Errorf("no %s document found in %s", first, contentDir)
}

// runValidateCommand executes the validate command.
func runValidateCommand(args []string, configPath string, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	parsed, err := parseValidateArgs(args, cfg.ContentDir)
	if err != nil {
		// --schema needs only a page type, not a resolvable document.
		if validateSchemaFlag && len(args) >= 1 && schema.IsPageType(args[0]) {
			return printShape(args[0], out)
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	if validateSchemaFlag {
		return printShape(parsed.pageType, out)
	}

	doc, err := content.LoadFile(parsed.filePath)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	var result *validation.Result
	if validateSectionFlag != "" {
		sectionData := sectionOf(doc, validateSectionFlag)
		result = validation.ValidateSection(parsed.pageType, validateSectionFlag, sectionData)
	} else {
		result = validation.Validate(doc, parsed.pageType)
	}

	if cfg.Output == "json" {
		return renderResultJSON(result, out)
	}
	return renderResult(result, parsed.filePath, doc, out, errOut)
}

// sectionOf extracts the named section from a document, or nil when the
// document is not an object or the section is absent. The validator reports
// the absence as an error.
func sectionOf(doc any, sectionKey string) any {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	return obj[sectionKey]
}

// printShape prints the expected structure for a page type.
func printShape(pageType string, out io.Writer) error {
	shape, ok := schema.ShapeFor(pageType)
	if !ok {
		return fmt.Errorf("unknown page type: %s", pageType)
	}

	fmt.Fprintf(out, "Structure of %s page documents\n", pageType)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", shape.Description)

	fmt.Fprintf(out, "Fields:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))
	for _, field := range shape.Fields {
		printShapeField(field, "", out)
	}
	return nil
}

// printShapeField prints a single shape field with indentation, resolving
// sub-shape references inline.
func printShapeField(field schema.Field, indent string, out io.Writer) {
	required := ""
	if field.Required {
		required = " (required)"
	}

	typeStr := string(field.Type)
	switch {
	case len(field.Enum) > 0:
		typeStr = fmt.Sprintf("enum[%s]", strings.Join(field.Enum, ", "))
	case field.Format != schema.FormatNone:
		typeStr = fmt.Sprintf("%s (%s)", field.Type, field.Format)
	case field.Ref != "":
		typeStr = fmt.Sprintf("%s (%s)", field.Type, field.Ref)
	}

	fmt.Fprintf(out, "%s%s: %s%s\n", indent, field.Name, typeStr, required)
	if field.Description != "" {
		fmt.Fprintf(out, "%s  # %s\n", indent, field.Description)
	}

	for _, child := range field.Children {
		printShapeField(child, indent+"  ", out)
	}
	if field.Elem != nil {
		printShapeField(*field.Elem, indent+"  ", out)
	}
	if field.Ref != "" {
		if sub, ok := schema.ShapeFor(field.Ref); ok {
			for _, child := range sub.Fields {
				printShapeField(child, indent+"  ", out)
			}
		}
	}
}

// renderResultJSON writes the raw validation result as JSON, the same body an
// admin API route would return.
func renderResultJSON(result *validation.Result, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	if !result.Valid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// renderResult formats and displays a validation result as text.
func renderResult(result *validation.Result, filePath string, doc any, out, errOut io.Writer) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if result.Valid {
		fmt.Fprintf(out, "%s %s is valid\n", green("✓"), filePath)
		// Advisory findings (unknown keys on open shapes) still get shown.
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  %s %s\n", yellow("note:"), errfmt.FriendlyMessage(e))
		}
		return nil
	}

	formatted := errfmt.FormatErrors(result.Errors)
	buckets := errfmt.BySeverity(result.Errors)

	fmt.Fprintf(errOut, "%s %s\n\n", red("✗"), formatted.Summary)
	fmt.Fprintf(errOut, "  %d critical, %d warning, %d info\n\n",
		len(buckets.Critical), len(buckets.Warning), len(buckets.Info))

	for i, e := range result.Errors {
		fmt.Fprintf(errOut, "Error %d (%s):\n", i+1, errfmt.SeverityOf(e.Code))
		fmt.Fprintf(errOut, "  Field: %s\n", e.Field)
		fmt.Fprintf(errOut, "  Message: %s\n", errfmt.FriendlyMessage(e))

		for _, s := range errfmt.Suggestions(e) {
			fmt.Fprintf(errOut, "  %s %s\n", yellow("Hint:"), s)
		}

		if validateFixesFlag {
			if current, ok := stringValueAt(doc, e.Field); ok {
				if fix := errfmt.AutoFix(e, current); fix.CanAutoFix {
					fmt.Fprintf(errOut, "  %s %s\n", yellow("Fix:"), fix.Description)
				}
			}
		}

		fmt.Fprintf(errOut, "\n")
	}

	return NewExitError(ExitValidationFailed)
}

// stringValueAt resolves a dotted field path inside a document and returns
// the string value there, if any.
func stringValueAt(doc any, path string) (string, bool) {
	current := doc
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return "", false
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return "", false
			}
			current = node[idx]
		default:
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}

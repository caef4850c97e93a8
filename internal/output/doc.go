// Package output provides formatters for displaying kubeportal command results.
//
// The package supports multiple output formats (table, JSON, YAML) and provides
// a unified interface for rendering resource listings and overview sections.
//
// # Features
//
//   - Multiple output formats: table (kubectl-style), JSON, and YAML
//   - Color support with automatic TTY detection
//   - Configurable options (no-color, no-headers, wide mode)
//   - Overview section aggregation with summary statistics
//   - Automatic indentation and formatting
//
// # Basic Usage
//
//	// Create a table formatter
//	formatter := output.NewFormatter(output.FormatTable)
//
//	// Render a resource listing
//	list := output.List{
//	    Headers: []string{"NAME", "NAMESPACE", "STATUS"},
//	    Rows:    [][]string{{"web-1", "default", "Running"}},
//	}
//	formatter.FormatList(os.Stdout, list)
//
//	// Render collected overview sections
//	results := []executor.Result{...}
//	formatter.FormatSections(os.Stdout, results)
//
// # Options
//
// Formatters can be configured with functional options:
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	)
//
// # Formatters
//
// Table Formatter (kubectl-style):
//   - Borderless tables with tab-separated columns
//   - Optional color highlighting for status, errors, and names
//   - Summary statistics for overview sections
//   - Wide mode for additional data columns
//
// JSON Formatter:
//   - Clean, indented JSON output
//   - Suitable for scripting and automation
//   - Encodes the raw listing items when available
//
// YAML Formatter:
//   - Human-readable YAML output
//   - Proper indentation and formatting
//   - Compatible with kubectl-style workflows
//
// # Color Support
//
// Colors are automatically enabled for TTY outputs and can be disabled with:
//   - WithNoColor(true) option
//   - Non-TTY output (pipes, redirects)
//
// Color scheme:
//   - Resource and section names: Cyan, Bold
//   - Success status: Green
//   - Error messages: Red, Bold
//   - Warnings: Yellow
//   - Headers: White, Bold
//   - Durations: Blue
package output

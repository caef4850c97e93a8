package output

import (
	"io"
	"strings"

	"github.com/avikram/kubeportal/internal/executor"
)

// Format represents the output format type
type Format string

const (
	// FormatTable outputs data in a table format (kubectl-style)
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// List is a pre-rendered listing of resources. Headers and Rows drive the
// table output; Items carries the raw objects for structured formats.
// When Items is nil, structured formats derive objects from the rows.
type List struct {
	Headers []string
	Rows    [][]string
	Items   interface{}
}

// Formatter defines the interface for output formatting
type Formatter interface {
	// Format outputs a single data item to the writer
	Format(w io.Writer, data interface{}) error

	// FormatList outputs a resource listing to the writer
	FormatList(w io.Writer, list List) error

	// FormatSections outputs the collected overview sections to the writer
	FormatSections(w io.Writer, results []executor.Result) error
}

// headerKey converts a table header to a field key, e.g. "POD COUNT"
// becomes "pod_count".
func headerKey(header string) string {
	return strings.ReplaceAll(strings.ToLower(header), " ", "_")
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// Wide enables wide output with additional columns
	Wide bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithWide enables wide output
func WithWide(wide bool) Option {
	return func(o *Options) {
		o.Wide = wide
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}

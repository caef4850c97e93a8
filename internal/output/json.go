package output

import (
	"encoding/json"
	"io"

	"github.com/avikram/kubeportal/internal/executor"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single data item as JSON
func (f *JSONFormatter) Format(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatList outputs a resource listing as JSON
func (f *JSONFormatter) FormatList(w io.Writer, list List) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(listItems(list))
}

// FormatSections outputs the collected overview sections as JSON
func (f *JSONFormatter) FormatSections(w io.Writer, results []executor.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sectionItems(results))
}

// listItems returns the objects to encode for a listing. The raw items win
// when present; otherwise objects are derived from the headers and rows.
func listItems(list List) interface{} {
	if list.Items != nil {
		return list.Items
	}

	items := make([]map[string]string, len(list.Rows))
	for i, row := range list.Rows {
		item := make(map[string]string, len(row))
		for j, cell := range row {
			if j < len(list.Headers) {
				item[headerKey(list.Headers[j])] = cell
			}
		}
		items[i] = item
	}
	return items
}

// sectionItems converts section results to an encoding-friendly structure
func sectionItems(results []executor.Result) []map[string]interface{} {
	output := make([]map[string]interface{}, len(results))

	for i, result := range results {
		item := map[string]interface{}{
			"section":  result.Section,
			"duration": result.Duration.String(),
		}

		if result.Error != nil {
			item["status"] = "failed"
			item["error"] = result.Error.Error()
		} else {
			item["status"] = "success"
			item["data"] = result.Data
		}

		output[i] = item
	}

	return output
}

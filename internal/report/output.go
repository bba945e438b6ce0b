package report

import "fmt"

// OutputFormat selects how results are written
type OutputFormat string

const (
	// OutputFormatDefault is the colored human-readable report
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSON is pretty-printed JSON of the result
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatJSONL is one compact JSON object per line, including the query
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat validates a --output flag value
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSON, OutputFormatJSONL:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

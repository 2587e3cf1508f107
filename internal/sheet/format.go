package sheet

import (
	"bytes"
	"fmt"
	"strings"
)

// Format is the export flavor requested from the spreadsheet host.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// ParseFormat normalizes a user-supplied format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatHTML, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'csv', 'html' or 'xlsx')", s)
	}
}

// Decode converts a raw export body into records.
func Decode(format Format, data []byte) ([]Record, error) {
	switch format {
	case FormatCSV, "":
		return Tokenize(string(data)), nil
	case FormatHTML:
		return HTMLRecords(bytes.NewReader(data))
	case FormatXLSX:
		return XLSXRecords(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

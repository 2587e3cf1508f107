package sheet

import "strings"

// Record is one row of the export. Field positions are significant.
type Record []string

// Field returns the field at i, or "" when the record is shorter than i+1.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Index returns the position of the first field equal to value, or -1.
func (r Record) Index(value string) int {
	for i, f := range r {
		if f == value {
			return i
		}
	}
	return -1
}

// Tokenize splits CSV text into records.
//
// Blank lines are dropped. A double quote toggles quoted mode and is never kept as data;
// a comma only separates fields outside quoted mode. Unbalanced quotes are not an error,
// the scan just carries on with whatever state it is in.
func Tokenize(text string) []Record {
	records := make([]Record, 0)

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, tokenizeLine(line))
	}

	return records
}

func tokenizeLine(line string) Record {
	var (
		record   Record
		current  strings.Builder
		inQuotes bool
	)

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			record = append(record, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	record = append(record, strings.TrimSpace(current.String()))

	return record
}

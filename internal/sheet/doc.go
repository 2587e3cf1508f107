// Package sheet turns a published spreadsheet export into an ordered list of records.
//
// The primary input is the CSV export of the league sheet. The tokenizer is deliberately
// small: it splits lines, honors double-quote escaping and trims every field, and never
// fails on malformed quoting. The HTML and XLSX decoders produce the same record shape
// from the other two export formats Google Sheets publishes, so the extractor does not
// care which one was fetched.
package sheet

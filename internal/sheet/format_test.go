package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatCSV, false},
		{"csv", FormatCSV, false},
		{" HTML ", FormatHTML, false},
		{"xlsx", FormatXLSX, false},
		{"ods", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTMLRecords(t *testing.T) {
	html := `
		<html><body>
		<table class="waffle">
			<thead><tr>
				<th class="row-header freezebar-origin-ltr"></th>
				<th class="column-headers-background">A</th>
				<th class="column-headers-background">B</th>
				<th class="column-headers-background">C</th>
			</tr></thead>
			<tbody>
			<tr><th class="row-headers-background">1</th><td>Group A</td><td></td><td></td></tr>
			<tr><th class="row-headers-background">2</th><td></td><td></td><td></td></tr>
			<tr><th class="row-headers-background">3</th><td> 1 </td><td>Chad &amp; Co</td><td>12</td></tr>
			</tbody>
		</table>
		<table><tr><td>ignored</td></tr></table>
		</body></html>`

	got, err := HTMLRecords(strings.NewReader(html))
	if err != nil {
		t.Fatalf("HTMLRecords() error: %v", err)
	}

	want := []Record{
		{"Group A", "", ""},
		{"1", "Chad & Co", "12"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HTMLRecords() mismatch (-want +got):\n%s", diff)
	}
}

func TestHTMLRecords_NoTable(t *testing.T) {
	got, err := HTMLRecords(strings.NewReader("<p>nothing published</p>"))
	if err != nil {
		t.Fatalf("HTMLRecords() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("HTMLRecords() returned %d records, want 0", len(got))
	}
}

func TestXLSXRecords(t *testing.T) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	rows := [][]interface{}{
		{"", "Rank", "Name", "Total"},
		{},
		{"", "1", " Chad ", "12"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	got, err := XLSXRecords(&buf)
	if err != nil {
		t.Fatalf("XLSXRecords() error: %v", err)
	}

	want := []Record{
		{"", "Rank", "Name", "Total"},
		{"", "1", "Chad", "12"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("XLSXRecords() mismatch (-want +got):\n%s", diff)
	}
}

func TestXLSXRecords_Invalid(t *testing.T) {
	if _, err := XLSXRecords(strings.NewReader("not a zip")); err == nil {
		t.Error("XLSXRecords() expected error for non-xlsx input")
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode(FormatCSV, []byte("a,b\n\nc"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if diff := cmp.Diff([]Record{{"a", "b"}, {"c"}}, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Decode(Format("pdf"), nil); err == nil {
		t.Error("Decode() expected error for unknown format")
	}
}

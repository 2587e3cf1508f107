package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLRecords reads the first table of a published "output=html" export.
// Each <tr> becomes a record of its trimmed td/th texts; rows with only blank cells are
// dropped, matching how Tokenize drops blank lines.
func HTMLRecords(r io.Reader) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	records := make([]Record, 0)

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return records, nil
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		var rec Record
		row.Children().Each(func(j int, cell *goquery.Selection) {
			if chromeCell(cell) {
				return
			}
			rec = append(rec, strings.TrimSpace(cell.Text()))
		})
		if !blank(rec) {
			records = append(records, rec)
		}
	})

	return records, nil
}

func blank(rec Record) bool {
	for _, f := range rec {
		if f != "" {
			return false
		}
	}
	return true
}

// chromeCells are the classes Sheets puts on row numbers, column letters and freeze
// bars. They are not part of the data and would shift every column by one.
var chromeCells = []string{
	"row-headers-background",
	"column-headers-background",
	"freezebar-cell",
}

func chromeCell(cell *goquery.Selection) bool {
	for _, class := range chromeCells {
		if cell.HasClass(class) {
			return true
		}
	}
	return false
}

// Package export turns job listings into Google Sheets documents and XLSX
// workbooks. Both paths write the same header and one row per listing.
package export

import "github.com/jonathan/job-listings/internal/types"

// header is the first row of every export, in column order.
var header = []string{"Title", "Link", "Description", "Source"}

// rows maps listings to spreadsheet rows, header first.
func rows(listings []types.Listing) [][]any {
	out := make([][]any, 0, len(listings)+1)

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	out = append(out, headerRow)

	for _, l := range listings {
		out = append(out, []any{l.Title, l.Link, l.Snippet, l.Source})
	}
	return out
}

package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/job-listings/internal/types"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// listingSheet is the worksheet the rows are written into.
const listingSheet = "Listings"

// SheetResult identifies a created spreadsheet.
type SheetResult struct {
	SpreadsheetID  string
	SpreadsheetURL string
}

// SheetsExporter writes listings into newly created Google Sheets documents
// using a service-account credential.
type SheetsExporter struct {
	credentialsJSON string
	opts            []option.ClientOption
}

// NewSheetsExporter creates an exporter from the service-account JSON payload.
// Extra client options are appended after the credential options, which lets
// tests point the clients at stub endpoints.
func NewSheetsExporter(credentialsJSON string, opts ...option.ClientOption) *SheetsExporter {
	return &SheetsExporter{
		credentialsJSON: credentialsJSON,
		opts:            opts,
	}
}

// Export creates a spreadsheet named title, writes the header row plus one row
// per listing in a single bulk update, and opens the document to anyone with
// the link. There is no rollback: a document created before a later step
// fails is left in place and the error is surfaced.
func (e *SheetsExporter) Export(ctx context.Context, title string, listings []types.Listing) (*SheetResult, error) {
	if e.credentialsJSON == "" {
		return nil, &CredentialError{Name: "GOOGLE_SHEETS_CREDENTIALS"}
	}
	if !json.Valid([]byte(e.credentialsJSON)) {
		return nil, &CredentialError{Name: "GOOGLE_SHEETS_CREDENTIALS", Reason: "not valid JSON"}
	}

	opts := append([]option.ClientOption{
		option.WithCredentialsJSON([]byte(e.credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveScope),
	}, e.opts...)

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, &CredentialError{Name: "GOOGLE_SHEETS_CREDENTIALS", Reason: err.Error()}
	}

	created, err := sheetsSvc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
		Sheets: []*sheets.Sheet{{
			Properties: &sheets.SheetProperties{
				Title: listingSheet,
				GridProperties: &sheets.GridProperties{
					RowCount:    int64(len(listings) + 1),
					ColumnCount: int64(len(header)),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, &UpstreamError{Op: "create spreadsheet", Err: err}
	}

	_, err = sheetsSvc.Spreadsheets.Values.
		Update(created.SpreadsheetId, listingSheet+"!A1", &sheets.ValueRange{Values: rows(listings)}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return nil, &UpstreamError{Op: "write listing rows", Err: err}
	}

	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, &CredentialError{Name: "GOOGLE_SHEETS_CREDENTIALS", Reason: err.Error()}
	}

	_, err = driveSvc.Permissions.Create(created.SpreadsheetId, &drive.Permission{
		Type: "anyone",
		Role: "writer",
	}).Context(ctx).Do()
	if err != nil {
		return nil, &UpstreamError{Op: "share spreadsheet", Err: err}
	}

	shareURL := created.SpreadsheetUrl
	if shareURL == "" {
		shareURL = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", created.SpreadsheetId)
	}
	return &SheetResult{
		SpreadsheetID:  created.SpreadsheetId,
		SpreadsheetURL: shareURL,
	}, nil
}

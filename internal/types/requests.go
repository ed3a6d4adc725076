package types

// SearchRequest is the request body shared by all search endpoints.
type SearchRequest struct {
	JobTitle   string `json:"jobTitle" validate:"required"`
	Location   string `json:"location"`
	MaxResults int    `json:"maxResults" validate:"omitempty,min=1,max=100"`
}

// Params converts the request into executor search parameters.
func (r *SearchRequest) Params() SearchParams {
	return SearchParams{
		JobTitle:   r.JobTitle,
		Location:   r.Location,
		MaxResults: r.MaxResults,
	}
}

// SpreadsheetSearchRequest is the body for the search-to-spreadsheet endpoint.
type SpreadsheetSearchRequest struct {
	SearchRequest
	SpreadsheetTitle string `json:"spreadsheetTitle"`
}

// ExcelSearchRequest is the body for the search-to-excel endpoint.
type ExcelSearchRequest struct {
	SearchRequest
	Filename string `json:"filename"`
}

package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequest_Validation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		req     SearchRequest
		wantErr bool
	}{
		{"valid", SearchRequest{JobTitle: "Go Developer"}, false},
		{"valid with all fields", SearchRequest{JobTitle: "Go Developer", Location: "Berlin", MaxResults: 50}, false},
		{"missing job title", SearchRequest{Location: "Berlin"}, true},
		{"max results too small", SearchRequest{JobTitle: "Go Developer", MaxResults: -1}, true},
		{"max results too large", SearchRequest{JobTitle: "Go Developer", MaxResults: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSpreadsheetSearchRequest_FlattenedJSON(t *testing.T) {
	var req SpreadsheetSearchRequest
	body := `{"jobTitle": "Go Developer", "location": "Berlin", "maxResults": 20, "spreadsheetTitle": "My Hunt"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "Go Developer", req.JobTitle)
	assert.Equal(t, "Berlin", req.Location)
	assert.Equal(t, 20, req.MaxResults)
	assert.Equal(t, "My Hunt", req.SpreadsheetTitle)
}

func TestExcelSearchRequest_FlattenedJSON(t *testing.T) {
	var req ExcelSearchRequest
	body := `{"jobTitle": "Go Developer", "filename": "hunt.xlsx"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "Go Developer", req.JobTitle)
	assert.Equal(t, "hunt.xlsx", req.Filename)
}

func TestSearchRequest_Params(t *testing.T) {
	req := &SearchRequest{JobTitle: "Go Developer", Location: "Berlin", MaxResults: 10}
	assert.Equal(t, SearchParams{JobTitle: "Go Developer", Location: "Berlin", MaxResults: 10}, req.Params())
}

func TestListing_JSONFieldNames(t *testing.T) {
	l := Listing{Title: "A", Link: "http://x.com/1", Snippet: "s", Source: "x.com"}
	b, err := json.Marshal(l)
	require.NoError(t, err)

	assert.JSONEq(t, `{"title": "A", "link": "http://x.com/1", "snippet": "s", "source": "x.com"}`, string(b))
}

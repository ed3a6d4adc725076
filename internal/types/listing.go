// Package types provides type definitions for structured data used throughout the job listings service.
package types

// Listing is one job-posting search result. It lives only for the duration of
// a single request/response cycle; both export paths consume it identically.
type Listing struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// SearchParams captures the normalized search inputs for the listings executor.
type SearchParams struct {
	JobTitle   string
	Location   string
	MaxResults int
}

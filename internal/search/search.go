// Package search executes paginated job-listing queries against the Google
// Custom Search API, restricted to job-board domains.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/job-listings/internal/types"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const (
	// pageSize is the fixed number of results per Custom Search call.
	pageSize = 10

	// DefaultMaxResults is used when a request doesn't ask for a count.
	DefaultMaxResults = 50
)

// jobBoards are the domains the site filter restricts results to.
var jobBoards = []string{
	"linkedin.com/jobs",
	"indeed.com",
	"glassdoor.com",
	"ziprecruiter.com",
	"monster.com",
}

// Service executes job-listing searches.
type Service struct {
	apiKey string
	cx     string
	opts   []option.ClientOption
}

// New creates a search Service. Extra client options are appended after the
// API key option, which lets tests point the client at a stub endpoint.
func New(apiKey, cx string, opts ...option.ClientOption) *Service {
	return &Service{
		apiKey: apiKey,
		cx:     cx,
		opts:   opts,
	}
}

// BuildQuery assembles the Custom Search query: an OR-ed site filter over the
// job boards, the quoted job title, and the quoted location when present.
func BuildQuery(jobTitle, location string) string {
	sites := make([]string, len(jobBoards))
	for i, domain := range jobBoards {
		sites[i] = "site:" + domain
	}

	var sb strings.Builder
	sb.WriteString("(" + strings.Join(sites, " OR ") + ")")
	fmt.Fprintf(&sb, " %q", jobTitle)
	if location != "" {
		fmt.Fprintf(&sb, " %q", location)
	}
	return sb.String()
}

// Run executes the paginated search and returns up to MaxResults listings.
// Pages of pageSize results are requested with an increasing start offset
// until the requested count is reached or the API runs out of results.
// Upstream calls are sequential; each request's data stays local to it.
func (s *Service) Run(ctx context.Context, p types.SearchParams) ([]types.Listing, error) {
	if s.apiKey == "" {
		return nil, &CredentialError{Name: "GOOGLE_API_KEY"}
	}
	if s.cx == "" {
		return nil, &CredentialError{Name: "GOOGLE_CX"}
	}

	maxResults := p.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	opts := append([]option.ClientOption{option.WithAPIKey(s.apiKey)}, s.opts...)
	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, &UpstreamError{Op: "create custom search client", Err: err}
	}

	query := BuildQuery(p.JobTitle, p.Location)
	listings := make([]types.Listing, 0, maxResults)

	for start := int64(1); len(listings) < maxResults; start += pageSize {
		page, err := svc.Cse.List().Context(ctx).
			Cx(s.cx).
			Q(query).
			Num(pageSize).
			Start(start).
			Do()
		if err != nil {
			return nil, &UpstreamError{Op: "custom search request", Err: err}
		}
		if len(page.Items) == 0 {
			break
		}

		for _, item := range page.Items {
			listings = append(listings, types.Listing{
				Title:   item.Title,
				Link:    item.Link,
				Snippet: item.Snippet,
				Source:  hostname(item.Link),
			})
		}

		// A short page means the API ran out of results.
		if len(page.Items) < pageSize {
			break
		}
	}

	if len(listings) > maxResults {
		listings = listings[:maxResults]
	}
	return listings, nil
}

// hostname extracts the host part of a result link for the Source column.
func hostname(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

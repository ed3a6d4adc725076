package search

import "fmt"

// CredentialError indicates required search API configuration is absent.
type CredentialError struct {
	Name string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("missing required credential: %s", e.Name)
}

// UpstreamError indicates a Custom Search API call failed. The upstream
// message is passed through untouched.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

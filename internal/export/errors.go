package export

import "fmt"

// ValidationError indicates the export input was malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CredentialError indicates the spreadsheet credential is missing or
// unparseable.
type CredentialError struct {
	Name   string
	Reason string
}

func (e *CredentialError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid credential %s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("missing required credential: %s", e.Name)
}

// UpstreamError indicates a Google API call failed during export.
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

package source

import "fmt"

// FetchError reports a failed URL acquisition: network error, timeout, or a
// non-success HTTP status. It aborts the submission.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractError reports an unreadable or undecodable document, e.g. a scanned
// PDF with no text layer.
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

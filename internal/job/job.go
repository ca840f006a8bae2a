package job

import "strings"

// Sentinel values used when extraction cannot determine a required field.
// Downstream consumers may assume Title and Company are always populated.
const (
	UnknownTitle   = "Unknown Title"
	UnknownCompany = "Unknown Company"
	NoDescription  = "No description found"
)

// MaxDescriptionChars bounds the description of every draft, regardless of
// which extraction path produced it.
const MaxDescriptionChars = 500

// DateFormat is the fixed month/day/year layout used for record dates.
const DateFormat = "01/02/2006"

// Status tracks where an application stands. The set is fixed but open to
// extension by callers; values are stored verbatim.
type Status string

const (
	StatusApplied            Status = "Applied"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewed        Status = "Interviewed"
	StatusWaiting            Status = "Waiting for Response"
	StatusRejected           Status = "Rejected"
	StatusHired              Status = "Hired"
	StatusGhosted            Status = "Ghosted"
	StatusWithdrawn          Status = "Withdrawn"
)

// OptionalKeys lists the recognized keys of Draft.OtherInfo. Anything else
// returned by an extractor is dropped during normalization.
var OptionalKeys = []string{"location", "salary", "requirements", "job_type"}

// Draft is an extracted-but-unpersisted candidate record. It is produced by
// exactly one extraction path and immutable once produced.
type Draft struct {
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Description string            `json:"description"`
	OtherInfo   map[string]string `json:"other_info,omitempty"`
}

// Key is the normalized identity used for duplicate detection. No two
// accepted records may share a key.
type Key struct {
	Title   string
	Company string
}

// Key returns the draft's duplicate-detection identity.
func (d Draft) Key() Key {
	return KeyOf(d.Title, d.Company)
}

// KeyOf normalizes a (title, company) pair into a Key.
func KeyOf(title, company string) Key {
	return Key{
		Title:   strings.ToLower(strings.TrimSpace(title)),
		Company: strings.ToLower(strings.TrimSpace(company)),
	}
}

// Record is a Draft plus provenance and tracking state, ready for storage.
// After creation only the status-tracking fields change.
type Record struct {
	ID string `json:"id"`
	Draft
	Source     string `json:"source"`
	SourceType string `json:"source_type"`
	DateAdded  string `json:"date_added"`
	Status     Status `json:"status"`
	LastUpdate string `json:"last_update"`
}

// Truncate limits s to at most max characters (runes, not bytes).
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

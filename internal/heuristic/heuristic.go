// Package heuristic is the deterministic, pattern-based fallback extractor.
// It is pure and total: for any input text it produces a usable draft, which
// is what guarantees the intake pipeline always terminates with a result.
package heuristic

import (
	"context"
	"regexp"
	"strings"

	"github.com/jobsift/jobsift/internal/job"
)

// Pattern order is a deliberate specificity policy: explicit labels win over
// generic phrase heuristics. First match takes the field.

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:job\s+title|position|role)[\s:]+([^\n]{10,100})`),
	regexp.MustCompile(`(?:^|\n)([A-Z][^.\n]{10,80}(?i:engineer|developer|manager|analyst|specialist|coordinator))`),
	regexp.MustCompile(`(?:^|\n)([A-Z][^.\n]{10,80}(?i:intern|associate|director|lead))`),
}

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:company|employer|organization)[\s:]+([^\n]{2,50})`),
	regexp.MustCompile(`(?:\b[aA]t|@)\s+([A-Z][A-Za-z\s&.,]{2,40})`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&.,]{2,40})\s+(?i:is\s+(?:hiring|looking|seeking))`),
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$[\d,]+(?:\s*-\s*\$[\d,]+)?`),
	regexp.MustCompile(`(?i)[\d,]+k?(?:\s*-\s*[\d,]+k?)?\s*(?:per\s+year|annually|/year)`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:location|based\s+in|located\s+in)[\s:]+([^\n]{5,50})`),
	regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2}(?:\s+\d{5})?)`),
	regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z][a-z]+)`),
}

var jobTypeRe = regexp.MustCompile(`(?i)(full[\s_-]?time|part[\s_-]?time|contract|temporary|intern)`)

// Extract derives a draft from plain text. Required fields fall back to the
// package sentinels; optional fields are omitted when no pattern matches.
func Extract(text string) job.Draft {
	d := job.Draft{
		Title:       firstMatch(titlePatterns, text, 5, 200, job.UnknownTitle),
		Company:     firstMatch(companyPatterns, text, 1, 100, job.UnknownCompany),
		Description: description(text),
	}

	other := map[string]string{}
	for _, re := range salaryPatterns {
		if m := re.FindString(text); m != "" {
			other["salary"] = m
			break
		}
	}
	if loc := firstMatch(locationPatterns, text, 2, 100, ""); loc != "" {
		other["location"] = loc
	}
	if m := jobTypeRe.FindStringSubmatch(text); m != nil {
		other["job_type"] = m[1]
	}
	if len(other) > 0 {
		d.OtherInfo = other
	}
	return d
}

// firstMatch tries patterns in order and returns the first capture whose
// trimmed length falls strictly between min and max, else the sentinel.
func firstMatch(patterns []*regexp.Regexp, text string, min, max int, sentinel string) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len(candidate) > min && len(candidate) < max {
			return candidate
		}
	}
	return sentinel
}

// description takes the leading slice of the input, ellipsis-appended when
// truncated, and never empty.
func description(text string) string {
	r := []rune(strings.TrimSpace(text))
	if len(r) == 0 {
		return job.NoDescription
	}
	if len(r) > job.MaxDescriptionChars {
		return string(r[:job.MaxDescriptionChars-3]) + "..."
	}
	return string(r)
}

// Strategy adapts Extract to the intake pipeline's extractor seam. It never
// returns an error.
type Strategy struct{}

func (Strategy) Extract(_ context.Context, text string) (job.Draft, error) {
	return Extract(text), nil
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/job"
)

// ErrUnavailable reports that every model in every attempt failed. It
// triggers the heuristic fallback upstream and is never user-visible as a
// pipeline failure.
var ErrUnavailable = errors.New("extraction unavailable: all models exhausted")

const (
	// MaxContentChars bounds the text handed to extraction.
	MaxContentChars = 8000
	// promptExcerptChars bounds the excerpt embedded in the prompt.
	promptExcerptChars = 4000

	// DefaultAttempts is the number of top-level passes over the model list.
	DefaultAttempts = 2
	// DefaultCallTimeout bounds one inference call.
	DefaultCallTimeout = 120 * time.Second
)

// attemptBackoffs[i] is slept after attempt i when further attempts remain.
var attemptBackoffs = []time.Duration{5 * time.Second, 3 * time.Second}

const promptHeader = `Extract job information from this content. Return ONLY a valid JSON object:
{
  "title": "job title here",
  "company": "company name here",
  "description": "brief description (max 400 chars)",
  "location": "location if found",
  "salary": "salary if found",
  "requirements": "key requirements if found",
  "job_type": "full-time/part-time/contract if found"
}

Content:
`

// Extractor turns unstructured text into a normalized draft by iterating a
// fixed-priority model list. Candidate order is policy, not incidental:
// models are always tried in the same sequence, strictly one at a time.
type Extractor struct {
	Provider Provider
	// Models is the ordered candidate list. Immutable after startup.
	Models []string
	// Attempts is the number of passes over the list. Zero means DefaultAttempts.
	Attempts int
	// CallTimeout bounds each model call. Zero means DefaultCallTimeout.
	CallTimeout time.Duration
	// Sleep replaces the inter-attempt backoff; nil means time.Sleep.
	// The delay is blocking, which is intended.
	Sleep func(time.Duration)
}

// Extract prompts each model in order until one yields a parseable JSON
// object. Connection errors, timeouts, bad statuses, and unparseable output
// are all non-fatal per model; the loop advances instead of aborting. When an
// attempt exhausts the whole list it backs off before the next one, and when
// all attempts are spent the result is ErrUnavailable.
func (e *Extractor) Extract(ctx context.Context, text string) (job.Draft, error) {
	if e.Provider == nil || len(e.Models) == 0 {
		return job.Draft{}, ErrUnavailable
	}
	prompt := promptHeader + job.Truncate(text, promptExcerptChars)

	attempts := e.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	for attempt := 0; attempt < attempts; attempt++ {
		for _, model := range e.Models {
			out, err := e.callOnce(ctx, model, prompt)
			if err != nil {
				log.Debug().Err(err).Str("model", model).Int("attempt", attempt+1).Msg("model call failed")
				continue
			}
			draft, err := parseDraft(out)
			if err != nil {
				log.Debug().Err(err).Str("model", model).Msg("unparseable model output")
				continue
			}
			log.Debug().Str("model", model).Msg("model extraction succeeded")
			return draft, nil
		}
		if attempt < attempts-1 {
			e.backoff(attempt)
		}
	}
	return job.Draft{}, ErrUnavailable
}

func (e *Extractor) callOnce(ctx context.Context, model, prompt string) (string, error) {
	timeout := e.CallTimeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return e.Provider.Generate(ctx, model, prompt)
}

func (e *Extractor) backoff(attempt int) {
	d := attemptBackoffs[len(attemptBackoffs)-1]
	if attempt < len(attemptBackoffs) {
		d = attemptBackoffs[attempt]
	}
	log.Debug().Dur("backoff", d).Msg("all models failed, waiting before retry")
	if e.Sleep != nil {
		e.Sleep(d)
		return
	}
	time.Sleep(d)
}

// parseDraft locates the first '{' and last '}' in the response, parses the
// enclosed substring as JSON, and normalizes the result.
func parseDraft(out string) (job.Draft, error) {
	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	if start < 0 || end <= start {
		return job.Draft{}, errors.New("no JSON object in response")
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(out[start:end+1]), &obj); err != nil {
		return job.Draft{}, err
	}
	return normalize(obj), nil
}

// normalize coerces missing required fields to sentinels, clamps the
// description, and copies only recognized, non-empty optional keys.
func normalize(obj map[string]any) job.Draft {
	d := job.Draft{
		Title:       stringField(obj, "title", job.UnknownTitle),
		Company:     stringField(obj, "company", job.UnknownCompany),
		Description: job.Truncate(stringField(obj, "description", job.NoDescription), job.MaxDescriptionChars),
	}
	other := map[string]string{}
	for _, k := range job.OptionalKeys {
		if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
			other[k] = s
		}
	}
	if len(other) > 0 {
		d.OtherInfo = other
	}
	return d
}

func stringField(obj map[string]any, key, sentinel string) string {
	if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return sentinel
}

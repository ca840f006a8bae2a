// Package intake orchestrates extraction and duplicate detection: raw
// content in, an accepted and persisted record (or a typed rejection) out.
package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/job"
	"github.com/jobsift/jobsift/internal/llm"
	"github.com/jobsift/jobsift/internal/source"
)

// ErrDuplicate reports that a draft matched an existing record's identity
// key. It is a normal negative outcome, not an error condition; the store is
// left untouched.
var ErrDuplicate = errors.New("duplicate job")

// Store is the persisted record collaborator. Append must persist before
// returning so that insertion is atomic from the caller's perspective.
type Store interface {
	Load() ([]job.Record, error)
	Append(job.Record) error
}

// Extractor is one extraction strategy. The pipeline tries its strategies in
// order; the heuristic strategy goes last because it cannot fail.
type Extractor interface {
	Extract(ctx context.Context, text string) (job.Draft, error)
}

// Pipeline runs one submission at a time: extract, attach provenance,
// dedupe, persist. Submissions are strictly sequential per instance.
type Pipeline struct {
	store      Store
	strategies []Extractor
	// now is injectable for tests; nil means time.Now.
	now func() time.Time
}

// New builds a pipeline over the given store and ordered extraction
// strategies.
func New(st Store, strategies ...Extractor) *Pipeline {
	return &Pipeline{store: st, strategies: strategies}
}

// WithClock overrides the pipeline's clock. Intended for tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Submit converts raw content into a stored record. Extraction cannot fail
// overall: strategy failures fall through to the next strategy, and the
// final heuristic one always produces a draft. The submission fails only on
// a store error or a duplicate.
func (p *Pipeline) Submit(ctx context.Context, raw source.RawContent) (job.Record, error) {
	text := job.Truncate(raw.Text, llm.MaxContentChars)

	draft, err := p.extract(ctx, text)
	if err != nil {
		return job.Record{}, err
	}

	now := time.Now
	if p.now != nil {
		now = p.now
	}
	today := now().Format(job.DateFormat)
	rec := job.Record{
		ID:         uuid.NewString(),
		Draft:      draft,
		Source:     raw.Source,
		SourceType: string(raw.Type),
		DateAdded:  today,
		Status:     job.StatusApplied,
		LastUpdate: today,
	}

	existing, err := p.store.Load()
	if err != nil {
		return job.Record{}, fmt.Errorf("load records: %w", err)
	}
	key := draft.Key()
	for _, r := range existing {
		if r.Key() == key {
			return job.Record{}, ErrDuplicate
		}
	}
	if err := p.store.Append(rec); err != nil {
		return job.Record{}, fmt.Errorf("append record: %w", err)
	}
	log.Info().Str("title", rec.Title).Str("company", rec.Company).Str("source_type", rec.SourceType).Msg("job added")
	return rec, nil
}

func (p *Pipeline) extract(ctx context.Context, text string) (job.Draft, error) {
	var lastErr error
	for i, s := range p.strategies {
		draft, err := s.Extract(ctx, text)
		if err == nil {
			return draft, nil
		}
		lastErr = err
		if i < len(p.strategies)-1 {
			log.Warn().Err(err).Msg("extraction strategy failed, falling back")
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no extraction strategies configured")
	}
	return job.Draft{}, lastErr
}

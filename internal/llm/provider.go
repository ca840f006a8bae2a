// Package llm extracts structured job drafts from text using an external
// inference service, iterating a fixed-priority model list with bounded
// retries. All failures here are absorbed by the intake pipeline's fallback;
// nothing in this package is fatal to a submission.
package llm

import "context"

// Provider is the minimal seam to an inference backend: one prompt in, one
// textual completion out. Implementations exist for the native generate API
// and for OpenAI-compatible servers, and tests substitute doubles.
type Provider interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Sampling parameters are fixed process-wide: extraction wants near-greedy,
// length-bounded output.
const (
	samplingTemperature = 0.1
	samplingTopP        = 0.9
	samplingMaxTokens   = 300
)

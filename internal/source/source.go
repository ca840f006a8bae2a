// Package source acquires raw job-posting text from heterogeneous inputs:
// web pages, PDF documents, plain-text files, and pasted text. Every path
// normalizes to plain text; nothing here writes to network or disk.
package source

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// Type identifies where raw content came from.
type Type string

const (
	TypeURL      Type = "url"
	TypePDF      Type = "pdf"
	TypeTextFile Type = "text_file"
	TypeText     Type = "text"
)

// MinLiteralChars is the minimum length of pasted text accepted for
// extraction. Shorter inputs are rejected with ErrInsufficientContent.
const MinLiteralChars = 50

// literalSource labels records whose content was pasted directly.
const literalSource = "Direct Input"

// RawContent is the normalized output of acquisition. Produced once,
// consumed once by the intake pipeline.
type RawContent struct {
	Text   string
	Type   Type
	Source string
}

// ErrInsufficientContent signals pasted input too short to extract from.
// It is a normal rejection, not a crash.
var ErrInsufficientContent = errors.New("insufficient content")

// Acquirer dispatches an input string to the appropriate acquisition path.
type Acquirer struct {
	Fetch *FetchClient
}

// Acquire classifies input and runs the matching acquisition path:
// http(s) prefix means URL, an existing .pdf or .txt path means file,
// anything else is treated as pasted text.
func (a *Acquirer) Acquire(ctx context.Context, input string) (RawContent, error) {
	in := strings.TrimSpace(input)
	lower := strings.ToLower(in)
	switch {
	case strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://"):
		return a.FromURL(ctx, in)
	case strings.HasSuffix(lower, ".pdf") && fileExists(in):
		return FromPDF(in)
	case strings.HasSuffix(lower, ".txt") && fileExists(in):
		return FromTextFile(in)
	default:
		return FromLiteral(in)
	}
}

// FromURL fetches a page and flattens it to plain text.
func (a *Acquirer) FromURL(ctx context.Context, url string) (RawContent, error) {
	c := a.Fetch
	if c == nil {
		c = &FetchClient{}
	}
	text, err := c.FetchText(ctx, url)
	if err != nil {
		return RawContent{}, err
	}
	return RawContent{Text: text, Type: TypeURL, Source: url}, nil
}

// FromTextFile reads a file as text, decoding legacy charsets where a BOM or
// byte heuristic identifies one.
func FromTextFile(path string) (RawContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return RawContent{}, &ExtractError{Path: path, Err: err}
	}
	defer f.Close()

	r, err := charset.NewReader(f, "text/plain")
	if err != nil {
		return RawContent{}, &ExtractError{Path: path, Err: err}
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return RawContent{}, &ExtractError{Path: path, Err: err}
	}
	text := string(b)
	if !utf8.ValidString(text) {
		return RawContent{}, &ExtractError{Path: path, Err: errors.New("undecodable text")}
	}
	return RawContent{Text: text, Type: TypeTextFile, Source: path}, nil
}

// FromLiteral passes pasted text through verbatim. Inputs under
// MinLiteralChars are rejected with ErrInsufficientContent.
func FromLiteral(text string) (RawContent, error) {
	t := strings.TrimSpace(text)
	if utf8.RuneCountInString(t) < MinLiteralChars {
		return RawContent{}, ErrInsufficientContent
	}
	return RawContent{Text: t, Type: TypeText, Source: literalSource}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

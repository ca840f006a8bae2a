package source

import (
	"errors"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts text from a PDF page by page and concatenates the result.
// Unreadable files and documents with no text layer (e.g. scanned images)
// yield an *ExtractError.
func FromPDF(path string) (RawContent, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return RawContent{}, &ExtractError{Path: path, Err: err}
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page is tolerable as long as others have text.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return RawContent{}, &ExtractError{Path: path, Err: errors.New("no text layer")}
	}
	return RawContent{Text: text, Type: TypePDF, Source: path}, nil
}

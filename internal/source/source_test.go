package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromLiteral_RejectsShortInput(t *testing.T) {
	_, err := FromLiteral("only thirty characters here...")
	if !errors.Is(err, ErrInsufficientContent) {
		t.Fatalf("expected ErrInsufficientContent, got %v", err)
	}
}

func TestFromLiteral_PassesTextThrough(t *testing.T) {
	text := "We are hiring a backend engineer for our platform team in Austin."
	raw, err := FromLiteral("  " + text + "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Text != text {
		t.Fatalf("text = %q", raw.Text)
	}
	if raw.Type != TypeText || raw.Source != "Direct Input" {
		t.Fatalf("raw = %+v", raw)
	}
}

func TestFetchText_StripsMarkup(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Jobs</title><script>var tracked = true;</script><style>.x{color:red}</style></head><body><h1>Backend Engineer</h1><p>Join   Acme Corp today.</p></body></html>`))
	}))
	defer srv.Close()

	c := &FetchClient{}
	text, err := c.FetchText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Backend Engineer") || !strings.Contains(text, "Join Acme Corp today.") {
		t.Fatalf("text = %q", text)
	}
	if strings.Contains(text, "tracked") || strings.Contains(text, "color:red") {
		t.Fatalf("script/style leaked into text: %q", text)
	}
	if gotUA != DefaultUserAgent {
		t.Fatalf("user agent = %q", gotUA)
	}
}

func TestFetchText_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := &FetchClient{}
	_, err := c.FetchText(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Status != http.StatusNotFound {
		t.Fatalf("expected FetchError with 404, got %v", err)
	}
}

func TestFetchText_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := &FetchClient{Timeout: 50 * time.Millisecond}
	_, err := c.FetchText(context.Background(), srv.URL)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError on timeout, got %v", err)
	}
}

func TestFromTextFile_ReadsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	content := "Job Title: QA Engineer\nCompany: Acme Corp\nManual and automated testing."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	raw, err := FromTextFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Text != content || raw.Type != TypeTextFile || raw.Source != path {
		t.Fatalf("raw = %+v", raw)
	}
}

func TestFromTextFile_MissingFile(t *testing.T) {
	_, err := FromTextFile(filepath.Join(t.TempDir(), "nope.txt"))
	var ee *ExtractError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExtractError, got %v", err)
	}
}

func TestFromPDF_GarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := FromPDF(path)
	var ee *ExtractError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExtractError, got %v", err)
	}
}

func TestAcquire_Dispatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<body><p>Backend Engineer wanted at Acme Corp, apply now.</p></body>"))
	}))
	defer srv.Close()

	txtPath := filepath.Join(t.TempDir(), "j.txt")
	if err := os.WriteFile(txtPath, []byte("file content about an engineer role somewhere nice"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := &Acquirer{}
	cases := []struct {
		input string
		want  Type
	}{
		{srv.URL, TypeURL},
		{txtPath, TypeTextFile},
		{"Pasted description of a role with plenty of detail to pass the size gate.", TypeText},
	}
	for _, tc := range cases {
		raw, err := a.Acquire(context.Background(), tc.input)
		if err != nil {
			t.Fatalf("acquire %q: %v", tc.input, err)
		}
		if raw.Type != tc.want {
			t.Fatalf("type for %q = %q, want %q", tc.input, raw.Type, tc.want)
		}
	}
}

func TestAcquire_MissingTxtPathTreatedAsLiteral(t *testing.T) {
	// A .txt suffix without a file behind it falls through to pasted text,
	// which is then too short to accept.
	_, err := (&Acquirer{}).Acquire(context.Background(), "missing.txt")
	if !errors.Is(err, ErrInsufficientContent) {
		t.Fatalf("expected ErrInsufficientContent, got %v", err)
	}
}

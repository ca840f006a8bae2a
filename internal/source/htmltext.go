package source

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// htmlToText flattens HTML to plain text. Script, style, and noscript
// subtrees are dropped entirely; block elements become line breaks; runs of
// whitespace collapse to single spaces. Inputs that are not actually HTML
// pass through as their text content.
func htmlToText(input []byte) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return normalizeWhitespace(string(input))
	}
	var b strings.Builder
	collectText(&b, node)
	return normalizeWhitespace(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "iframe":
			return
		case "br", "hr", "p", "div", "li", "tr",
			"h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}

// normalizeWhitespace collapses internal whitespace runs to single spaces
// and drops repeated blank lines.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			if len(out) > 0 {
				out = append(out, "")
			}
			continue
		}
		out = append(out, strings.Join(strings.Fields(trimmed), " "))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

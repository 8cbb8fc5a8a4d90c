package hig

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// Cleanup patterns for converted HTML content.
var (
	reAnchorLinks       = regexp.MustCompile(`\s*\[#\]\(#[\w-]*\)`)
	reExcessiveNewlines = regexp.MustCompile(`\n{4,}`)
)

// fallbackPage is the synthetic page mirror written when a page's data
// JSON endpoint fails but its human HTML page can still be fetched. The
// content sits under a "text" field so full-text extraction picks it up
// like any native page.
type fallbackPage struct {
	RetrievedVia string          `json:"retrieved_via"`
	SourceURL    string          `json:"source_url"`
	Content      fallbackSection `json:"content"`
}

type fallbackSection struct {
	Text string `json:"text"`
}

// FetchHTMLFallback fetches a page's HTML and converts its article body to
// markdown, returning a synthetic page JSON document for the local mirror.
func (c *Client) FetchHTMLFallback(ctx context.Context, sourceURL string) ([]byte, error) {
	body, err := c.GetHTML(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse HTML %s: %w", sourceURL, err)
	}

	content := findElement(doc, "article")
	if content == nil {
		content = findElement(doc, "main")
	}
	if content == nil {
		return nil, fmt.Errorf("no article content in %s", sourceURL)
	}

	markdown, err := htmltomarkdown.ConvertString(renderNode(content))
	if err != nil {
		return nil, fmt.Errorf("convert %s to markdown: %w", sourceURL, err)
	}

	markdown = cleanConvertedMarkdown(markdown)
	if markdown == "" {
		return nil, fmt.Errorf("no extractable text in %s", sourceURL)
	}

	page := fallbackPage{
		RetrievedVia: "html-fallback",
		SourceURL:    sourceURL,
		Content:      fallbackSection{Text: markdown},
	}
	return json.MarshalIndent(page, "", "  ")
}

// cleanConvertedMarkdown strips in-page anchor links and collapses long
// newline runs left over from the conversion.
func cleanConvertedMarkdown(content string) string {
	content = reAnchorLinks.ReplaceAllString(content, "")
	content = reExcessiveNewlines.ReplaceAllString(content, "\n\n\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// renderNode renders an HTML node back to a string.
func renderNode(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

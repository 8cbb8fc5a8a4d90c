package speclint

import (
	"fmt"
	"os"
	"strings"
)

// Document is a markdown design spec parsed into heading sections.
type Document struct {
	Path     string
	Lines    []string
	Sections []Section
}

// Section is one heading and the lines beneath it, up to the next
// heading of any level.
type Section struct {
	Title string // heading text without the marker
	Level int    // number of leading '#'
	Line  int    // 1-based line of the heading
	Body  []string
}

// ParseDocument parses markdown content into a Document. Headings inside
// fenced code blocks are ignored.
func ParseDocument(path string, content []byte) *Document {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	doc := &Document{Path: path, Lines: lines}

	inFence := false
	var current *Section
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}

		if !inFence && strings.HasPrefix(trimmed, "#") {
			level := 0
			for level < len(trimmed) && trimmed[level] == '#' {
				level++
			}
			title := strings.TrimSpace(trimmed[level:])
			if title != "" {
				doc.Sections = append(doc.Sections, Section{
					Title: title,
					Level: level,
					Line:  i + 1,
				})
				current = &doc.Sections[len(doc.Sections)-1]
				continue
			}
		}

		if current != nil {
			current.Body = append(current.Body, line)
		}
	}

	return doc
}

// LoadDocument reads and parses a markdown file.
func LoadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ParseDocument(path, content), nil
}

// SectionMatching returns the first section whose title contains any of
// the keywords, case-insensitively. Duplicate matches after the first are
// deliberately ignored so one missing-section finding maps to one rule.
func (d *Document) SectionMatching(keywords ...string) *Section {
	for i := range d.Sections {
		title := strings.ToLower(d.Sections[i].Title)
		for _, kw := range keywords {
			if strings.Contains(title, strings.ToLower(kw)) {
				return &d.Sections[i]
			}
		}
	}
	return nil
}

// FindText returns the 1-based line of the first occurrence of any
// keyword in the document body, case-insensitively, or 0 when absent.
func (d *Document) FindText(keywords ...string) int {
	for i, line := range d.Lines {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return i + 1
			}
		}
	}
	return 0
}

// IsEmpty reports whether a section has no content other than blank
// lines.
func (s *Section) IsEmpty() bool {
	for _, line := range s.Body {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

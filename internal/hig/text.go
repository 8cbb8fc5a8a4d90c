package hig

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NormalizeSpace collapses all runs of whitespace to single spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractAbstract returns the page abstract. Apple serves abstracts either
// as a plain string or as a list of inline fragments ({"text": ...} or
// bare strings); anything else yields an empty abstract.
func ExtractAbstract(pageJSON []byte) string {
	var page struct {
		Abstract json.RawMessage `json:"abstract"`
	}
	if err := json.Unmarshal(pageJSON, &page); err != nil || len(page.Abstract) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(page.Abstract, &asString); err == nil {
		return NormalizeSpace(asString)
	}

	var asList []json.RawMessage
	if err := json.Unmarshal(page.Abstract, &asList); err != nil {
		return ""
	}

	var parts []string
	for _, item := range asList {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			parts = append(parts, s)
			continue
		}
		var frag struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(item, &frag); err == nil && frag.Text != "" {
			parts = append(parts, frag.Text)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return NormalizeSpace(strings.Join(parts, " "))
}

// ExtractFullText collects every "text" field in the page JSON in document
// order, collapses adjacent duplicates, and joins the fragments with blank
// lines. Apple repeats fragments across metadata and render sections, so
// the dedup keeps dumps readable without reordering anything.
func ExtractFullText(pageJSON []byte) string {
	fragments := collectTextFragments(pageJSON)

	var compact []string
	last := ""
	for _, f := range fragments {
		if f != last {
			compact = append(compact, f)
		}
		last = f
	}

	return strings.Join(compact, "\n\n")
}

// collectTextFragments streams the JSON token-by-token so fragment order
// matches the document, which a map-based decode would not preserve.
func collectTextFragments(pageJSON []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(pageJSON))
	dec.UseNumber()

	var fragments []string

	// walkValue consumes one JSON value. key is the object key the value
	// sits under, or "" inside arrays and at the top level.
	var walkValue func(key string) error
	walkValue = func(key string) error {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				for dec.More() {
					keyTok, err := dec.Token()
					if err != nil {
						return err
					}
					k, _ := keyTok.(string)
					if err := walkValue(k); err != nil {
						return err
					}
				}
				_, err = dec.Token() // closing brace
				return err
			case '[':
				for dec.More() {
					if err := walkValue(""); err != nil {
						return err
					}
				}
				_, err = dec.Token() // closing bracket
				return err
			}
		case string:
			if key == "text" {
				if text := NormalizeSpace(t); text != "" {
					fragments = append(fragments, text)
				}
			}
		}
		return nil
	}

	if err := walkValue(""); err != nil {
		return nil
	}
	return fragments
}

package hig

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Source endpoints for the Apple HIG corpus.
const (
	IndexURL   = "https://developer.apple.com/tutorials/data/index/design--human-interface-guidelines"
	DataBase   = "https://developer.apple.com/tutorials/data"
	SourceBase = "https://developer.apple.com"
	PagePrefix = "/design/human-interface-guidelines"
)

// IndexFileName is the local name for the mirrored index JSON.
const IndexFileName = "design--human-interface-guidelines.json"

// Node is a single page entry discovered in the HIG index tree.
type Node struct {
	Path       string
	Title      string
	Kind       string
	ParentPath string
}

// indexDocument mirrors the shape of the Apple index endpoint. Only the
// fields the walk needs are decoded.
type indexDocument struct {
	InterfaceLanguages struct {
		Swift []indexNode `json:"swift"`
	} `json:"interfaceLanguages"`
}

type indexNode struct {
	Path     string      `json:"path"`
	Title    string      `json:"title"`
	Type     string      `json:"type"`
	Children []indexNode `json:"children"`
}

// CollectNodes extracts all HIG page nodes from raw index JSON. Nodes
// outside PagePrefix are skipped, duplicates are collapsed (last wins),
// and the result is sorted by path.
func CollectNodes(indexJSON []byte) ([]Node, error) {
	var doc indexDocument
	if err := json.Unmarshal(indexJSON, &doc); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}

	var nodes []Node
	for _, root := range doc.InterfaceLanguages.Swift {
		walkIndex(root, "", &nodes)
	}

	dedup := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		dedup[n.Path] = n
	}

	out := make([]Node, 0, len(dedup))
	for _, n := range dedup {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out, nil
}

// walkIndex recursively collects nodes under PagePrefix. A collected node
// becomes the parent for its subtree; nodes outside the prefix pass their
// own parent through unchanged.
func walkIndex(n indexNode, parentPath string, out *[]Node) {
	currentParent := parentPath

	if strings.HasPrefix(n.Path, PagePrefix) {
		title := n.Title
		if title == "" {
			title = n.Path[strings.LastIndex(n.Path, "/")+1:]
		}
		kind := n.Type
		if kind == "" {
			kind = "unknown"
		}
		*out = append(*out, Node{
			Path:       n.Path,
			Title:      title,
			Kind:       kind,
			ParentPath: parentPath,
		})
		currentParent = n.Path
	}

	for _, child := range n.Children {
		walkIndex(child, currentParent, out)
	}
}


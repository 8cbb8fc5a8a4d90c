// Package hig syncs Apple Human Interface Guidelines sources into a
// skill's references directory.
//
// The engine fetches the HIG index JSON from Apple's tutorials data
// endpoint, walks its node tree, downloads each page's data JSON, and
// writes a local mirror plus consolidated markdown builds:
//
//	references/
//	  raw/index/design--human-interface-guidelines.json
//	  raw/pages/<url path>.json
//	  raw/catalog.json
//	  apple-hig-ios-raw.md
//	  apple-hig-ios-fulltext.md
//	  apple-hig-ios-curated.md
//
// The catalog records per-page download status; failed pages are reported
// and skipped by the markdown builds rather than failing the run.
package hig

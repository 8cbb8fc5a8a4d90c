package commands

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed all:templates
var templateFS embed.FS

// renderTemplate renders an embedded .tmpl file with the given data.
func renderTemplate(path string, data any) ([]byte, error) {
	raw, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	tmpl, err := template.New(filepath.Base(path)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// copyTemplate copies an embedded template directory to the target path.
// Files ending in .tmpl are rendered with data; everything else is
// copied as-is.
func copyTemplate(templateName, targetDir string, data any, force bool) ([]string, error) {
	root := "templates/" + templateName
	var created []string

	err := fs.WalkDir(templateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(targetDir, strings.TrimSuffix(relPath, ".tmpl"))

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0750)
		}

		if !force {
			if _, err := os.Stat(targetPath); err == nil {
				return nil // Skip existing files
			}
		}

		var content []byte
		if strings.HasSuffix(path, ".tmpl") {
			content, err = renderTemplate(path, data)
		} else {
			content, err = templateFS.ReadFile(path)
		}
		if err != nil {
			return err
		}

		if err := os.WriteFile(targetPath, content, 0600); err != nil {
			return err
		}
		created = append(created, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})

	return created, err
}

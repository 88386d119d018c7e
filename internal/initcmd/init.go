// Package initcmd scaffolds a new pagesmith project.
package initcmd

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

//go:embed starter
var starterFS embed.FS

const templateSuffix = ".tmpl"

type Printer interface {
	PrintHeader(msg string)
	PrintFile(path string)
	PrintDone(msg string)
	PrintStep(emoji, msg string, args ...any)
}

type TemplateData struct {
	Name string
}

// Run copies the starter project into projectDir, which must be missing or
// empty. Files ending in .tmpl are rendered with data and lose the suffix.
func Run(projectDir string, data TemplateData, out Printer) error {
	out.PrintHeader("pagesmith init")

	if entries, err := os.ReadDir(projectDir); err == nil && len(entries) > 0 {
		return fmt.Errorf("directory '%s' already exists and is not empty", projectDir)
	}
	if data.Name == "" {
		data.Name = "Example Taco Shop"
	}

	starter, err := fs.Sub(starterFS, "starter")
	if err != nil {
		return err
	}

	created := 0
	err = fs.WalkDir(starter, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(projectDir, path), 0o755)
		}

		content, err := fs.ReadFile(starter, path)
		if err != nil {
			return fmt.Errorf("failed to read starter file %s: %w", path, err)
		}

		target := filepath.Join(projectDir, filepath.FromSlash(path))
		if strings.HasSuffix(path, templateSuffix) {
			target = strings.TrimSuffix(target, templateSuffix)
			if content, err = render(path, content, data); err != nil {
				return err
			}
		}

		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
		out.PrintFile(target)
		created++
		return nil
	})
	if err != nil {
		return err
	}

	out.PrintDone(fmt.Sprintf("Created %d files", created))
	out.PrintStep("→", "Next: cd %s && pagesmith build", projectDir)
	return nil
}

func render(name string, content []byte, data TemplateData) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse starter file %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render starter file %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

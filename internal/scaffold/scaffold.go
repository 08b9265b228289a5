package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

const (
	baseTemplateDir = "templates/base"
	tmplSuffix      = ".tmpl"
)

// ProjectData holds all template variables available to base templates.
type ProjectData struct {
	Name          string // e.g., "order-api"
	PackageName   string // Derived: Python-safe identifier, hyphens become underscores
	Description   string // Human-readable description
	Version       string // Initial project version, e.g., "0.1.0"
	PythonVersion string // Minimum Python version for pyproject.toml
	Year          int    // Current year
}

// Result holds the outcome of a project generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewProjectData creates a ProjectData with derived fields populated.
func NewProjectData(name string) *ProjectData {
	return &ProjectData{
		Name:          name,
		PackageName:   strings.ReplaceAll(strings.ToLower(name), "-", "_"),
		Description:   fmt.Sprintf("%s: a FastAPI service", name),
		Version:       "0.1.0",
		PythonVersion: "3.9",
		Year:          time.Now().Year(),
	}
}

// Generate creates a new project from the embedded base templates. The output
// directory must not exist or must be empty; on failure a directory created
// by this call is removed again.
func Generate(data *ProjectData, outputDir string) (*Result, error) {
	created, err := prepareOutputDir(outputDir)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: outputDir}

	err = fs.WalkDir(templateFS, baseTemplateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(baseTemplateDir, path)
		if err != nil {
			return err
		}

		outName := strings.TrimSuffix(rel, tmplSuffix)
		outPath := filepath.Join(outputDir, outName)

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outName, err)
		}

		raw, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		out := raw
		if strings.HasSuffix(rel, tmplSuffix) {
			out, err = render(rel, raw, data)
			if err != nil {
				return err
			}
		}

		if err := os.WriteFile(outPath, out, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
		return nil
	})
	if err != nil {
		// Leave a pre-existing directory alone; only undo what we created.
		if created {
			os.RemoveAll(outputDir)
		}
		return nil, err
	}

	if err := seedEnvFile(outputDir, result); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not create .env: %v", err))
	}

	return result, nil
}

// render parses and executes a single .tmpl file against the project data.
func render(name string, raw []byte, data *ProjectData) ([]byte, error) {
	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// prepareOutputDir creates the output directory and reports whether this call
// created it. An existing directory with content is a terminal user error.
func prepareOutputDir(outputDir string) (bool, error) {
	created := false
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		created = true
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err == nil && len(entries) > 0 {
		return false, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	return created, nil
}

// seedEnvFile copies .env.example to .env so the project runs out of the box.
func seedEnvFile(outputDir string, result *Result) error {
	example := filepath.Join(outputDir, ".env.example")
	data, err := os.ReadFile(example)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	envPath := filepath.Join(outputDir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return nil
	}

	if err := os.WriteFile(envPath, data, 0644); err != nil {
		return err
	}
	result.Files = append(result.Files, ".env")
	return nil
}

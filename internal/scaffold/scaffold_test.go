package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewProjectData(t *testing.T) {
	d := NewProjectData("order-api")
	if d.Name != "order-api" {
		t.Errorf("Name = %q, want %q", d.Name, "order-api")
	}
	if d.PackageName != "order_api" {
		t.Errorf("PackageName = %q, want %q", d.PackageName, "order_api")
	}
	if d.Version != "0.1.0" {
		t.Errorf("Version = %q, want %q", d.Version, "0.1.0")
	}
	if d.Year == 0 {
		t.Error("Year should not be zero")
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "order-api")

	data := NewProjectData("order-api")
	result, err := Generate(data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Templated suffixes are stripped from output names.
	for _, f := range result.Files {
		if strings.HasSuffix(f, ".tmpl") {
			t.Errorf("output file %s kept its .tmpl suffix", f)
		}
	}

	expected := []string{
		"pyproject.toml",
		"requirements.txt",
		"README.md",
		"Makefile",
		".env.example",
		".env",
		".gitignore",
		filepath.Join("src", "index.py"),
		filepath.Join("src", "core", "config.py"),
		filepath.Join("src", "api", "v1", "router.py"),
		filepath.Join("tests", "test_main.py"),
	}
	for _, f := range expected {
		if _, err := os.Stat(filepath.Join(outDir, f)); err != nil {
			t.Errorf("expected file %s missing: %v", f, err)
		}
	}

	// Project name substituted into templated files.
	pyproject := readGenerated(t, outDir, "pyproject.toml")
	assertContains(t, pyproject, `name = "order-api"`)
	assertNotContains(t, pyproject, "{{")

	index := readGenerated(t, outDir, filepath.Join("src", "index.py"))
	assertContains(t, index, `title="order-api"`)
	assertContains(t, index, "# fastgen: services")

	readme := readGenerated(t, outDir, "README.md")
	assertContains(t, readme, "# order-api")
}

func TestGenerateSeedsEnvFromExample(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "svc")

	if _, err := Generate(NewProjectData("svc"), outDir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	example := readGenerated(t, outDir, ".env.example")
	env := readGenerated(t, outDir, ".env")
	if env != example {
		t.Errorf(".env should be seeded from .env.example\nenv: %q\nexample: %q", env, example)
	}
}

func TestGenerateNonEmptyTarget(t *testing.T) {
	outDir := t.TempDir()
	existing := filepath.Join(outDir, "existing.txt")
	if err := os.WriteFile(existing, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(NewProjectData("svc"), outDir)
	if err == nil {
		t.Fatal("expected error for non-empty target directory")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("error should mention non-empty dir, got: %v", err)
	}

	// The pre-existing content must be untouched.
	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("pre-existing file was removed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("pre-existing file was modified: %q", data)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("target gained files despite failed create: %d entries", len(entries))
	}
}

func TestGenerateCreatesNestedTarget(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "nested", "deeper", "svc")

	result, err := Generate(NewProjectData("svc"), outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if result.OutputDir != outDir {
		t.Errorf("OutputDir = %q, want %q", result.OutputDir, outDir)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}

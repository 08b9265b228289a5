package patch

import (
	"fmt"
	"os"
	"strings"
)

// EntryFile is the application entry point services hook into.
const EntryFile = "src/index.py"

// Anchor is the fixed comment in the entry file after which service snippets
// are inserted.
const Anchor = "# fastgen: services"

func startMarker(name string) string { return "# fastgen: " + name + " (start)" }
func endMarker(name string) string   { return "# fastgen: " + name + " (end)" }

// InsertSnippet inserts a named snippet after the anchor line of the entry
// file. The snippet is wrapped in start/end markers so it can be removed
// later. Inserting an already-present snippet is a no-op; a missing anchor
// is an error.
func InsertSnippet(path, name, code string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	start := startMarker(name)

	anchorIdx := -1
	for i, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed == start {
			return false, nil // already inserted
		}
		if trimmed == Anchor {
			anchorIdx = i
		}
	}
	if anchorIdx == -1 {
		return false, fmt.Errorf("anchor %q not found in %s", Anchor, path)
	}

	block := []string{start}
	block = append(block, strings.Split(strings.TrimRight(code, "\n"), "\n")...)
	block = append(block, endMarker(name))

	var out []string
	out = append(out, lines[:anchorIdx+1]...)
	out = append(out, block...)
	out = append(out, lines[anchorIdx+1:]...)

	if err := os.WriteFile(path, []byte(strings.Join(out, "\n")), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}

// RemoveSnippet deletes the marker-delimited block for the named snippet,
// markers included. An absent block is a no-op.
func RemoveSnippet(path, name string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	start := startMarker(name)
	end := endMarker(name)

	var kept []string
	inBlock := false
	found := false

	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		switch {
		case trimmed == start:
			inBlock = true
			found = true
		case trimmed == end:
			inBlock = false
		case !inBlock:
			kept = append(kept, l)
		}
	}

	if !found {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}

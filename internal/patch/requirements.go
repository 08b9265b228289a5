package patch

import (
	"fmt"
	"os"
	"strings"
)

// RequirementsFile is the dependency list services add their lines to.
const RequirementsFile = "requirements.txt"

// RequirementName extracts the distribution name from a requirement line,
// e.g. "python-jose[cryptography]>=3.3.0" → "python-jose". Comments and
// blank lines yield an empty name.
func RequirementName(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	if i := strings.IndexAny(line, "[<>=!~; "); i >= 0 {
		line = line[:i]
	}
	return strings.ToLower(line)
}

// AddRequirements appends the given requirement lines to the file, skipping
// any whose distribution name is already listed. It returns the lines that
// were actually added. The file is created if missing.
func AddRequirements(path string, reqs []string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	present := make(map[string]bool)
	for _, l := range strings.Split(string(content), "\n") {
		if name := RequirementName(l); name != "" {
			present[name] = true
		}
	}

	var added []string
	for _, req := range reqs {
		name := RequirementName(req)
		if name == "" || present[name] {
			continue
		}
		present[name] = true
		added = append(added, req)
	}

	if len(added) == 0 {
		return nil, nil
	}

	suffix := strings.Join(added, "\n") + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		suffix = "\n" + suffix
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(suffix); err != nil {
		return nil, fmt.Errorf("writing to %s: %w", path, err)
	}

	return added, nil
}

// RemoveRequirements deletes all lines whose distribution name matches one of
// the given requirement lines. It returns the names that were removed. A
// missing file is a no-op.
func RemoveRequirements(path string, reqs []string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	targets := make(map[string]bool)
	for _, req := range reqs {
		if name := RequirementName(req); name != "" {
			targets[name] = true
		}
	}

	lines := strings.Split(string(content), "\n")
	var kept []string
	var removed []string

	for _, l := range lines {
		name := RequirementName(l)
		if name != "" && targets[name] {
			removed = append(removed, name)
			continue
		}
		kept = append(kept, l)
	}

	if len(removed) == 0 {
		return nil, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	return removed, nil
}

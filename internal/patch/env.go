package patch

import (
	"fmt"
	"os"
	"strings"
)

// EnvFile is the environment file services append their configuration to.
const EnvFile = ".env"

// AppendEnvBlock appends the given block to the env file unless the sentinel
// variable is already present. The file is created if missing. Returns true
// if the block was written.
func AppendEnvBlock(path, sentinel, block string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	if sentinel != "" && strings.Contains(string(content), sentinel) {
		return false, nil
	}

	suffix := strings.TrimRight(block, "\n") + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		suffix = "\n" + suffix
	}
	if len(content) > 0 {
		suffix = "\n" + suffix
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("opening %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(suffix); err != nil {
		return false, fmt.Errorf("writing to %s: %w", path, err)
	}

	return true, nil
}

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ConfigFile is the project-level state file written into the project root.
const ConfigFile = "fastgen.yaml"

// Config represents the fastgen.yaml structure.
type Config struct {
	Services []string `yaml:"services"`
}

// ConfigPath returns the full path to fastgen.yaml for a project.
func ConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ConfigFile)
}

// Load reads and parses fastgen.yaml from the given project directory.
// A missing file yields an empty config.
func Load(projectDir string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(projectDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}

	return &config, nil
}

// Save writes the project config to fastgen.yaml.
func Save(projectDir string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(projectDir), data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}

	return nil
}

// AddService records a service in the config. Returns false if it was
// already recorded.
func (c *Config) AddService(name string) bool {
	for _, s := range c.Services {
		if s == name {
			return false
		}
	}
	c.Services = append(c.Services, name)
	return true
}

// RemoveService de-records a service. Returns false if it was not recorded.
func (c *Config) RemoveService(name string) bool {
	for i, s := range c.Services {
		if s == name {
			c.Services = append(c.Services[:i], c.Services[i+1:]...)
			return true
		}
	}
	return false
}

// Detect validates that dir contains a fastgen-shaped project: a
// pyproject.toml file and a src/ directory.
func Detect(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("project directory %s not found", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err != nil {
		return fmt.Errorf("%s does not look like a fastgen project: pyproject.toml missing", dir)
	}

	srcInfo, err := os.Stat(filepath.Join(dir, "src"))
	if err != nil || !srcInfo.IsDir() {
		return fmt.Errorf("%s does not look like a fastgen project: src/ missing", dir)
	}

	return nil
}

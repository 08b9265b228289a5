package service

// FileMapping maps an embedded template path (relative to the service's
// template directory) to a destination path relative to the project root.
type FileMapping struct {
	Source string `yaml:"source" json:"source"`
	Dest   string `yaml:"dest" json:"dest"`
}

// Definition describes one addable/removable service. Definitions are static
// data loaded from embedded YAML at build time and never mutated at runtime.
type Definition struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description" json:"description"`
	Files        []FileMapping `yaml:"files,omitempty" json:"files,omitempty"`
	Requirements []string      `yaml:"requirements,omitempty" json:"requirements,omitempty"`
	EnvSentinel  string        `yaml:"env_sentinel,omitempty" json:"env_sentinel,omitempty"`
	Env          string        `yaml:"env,omitempty" json:"env,omitempty"`
	Snippet      string        `yaml:"snippet,omitempty" json:"snippet,omitempty"`
	Notes        []string      `yaml:"notes,omitempty" json:"notes,omitempty"`
}

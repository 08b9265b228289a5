// Package config manages user-level settings stored at ~/.fastgen/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default output directory used by the create command.
package config

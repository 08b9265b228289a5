package service

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed defs/*.yaml
var defsFS embed.FS

//go:embed all:templates
var templatesFS embed.FS

var (
	loadOnce sync.Once
	registry map[string]*Definition
	loadErr  error
)

// load parses and validates every embedded service definition once. A
// definition that fails schema validation or references a missing template
// file is a build defect, surfaced as an error from List/Lookup.
func load() {
	loadOnce.Do(func() {
		registry = make(map[string]*Definition)

		entries, err := fs.ReadDir(defsFS, "defs")
		if err != nil {
			loadErr = fmt.Errorf("reading service definitions: %w", err)
			return
		}

		for _, entry := range entries {
			defPath := path.Join("defs", entry.Name())
			data, err := fs.ReadFile(defsFS, defPath)
			if err != nil {
				loadErr = fmt.Errorf("reading %s: %w", defPath, err)
				return
			}

			result, err := Validate(data)
			if err != nil {
				loadErr = fmt.Errorf("validating %s: %w", defPath, err)
				return
			}
			if !result.Valid {
				var msgs []string
				for _, issue := range result.Issues {
					msg := issue.Message
					if issue.Path != "" {
						msg = issue.Path + ": " + msg
					}
					msgs = append(msgs, msg)
				}
				loadErr = fmt.Errorf("invalid service definition %s: %s", defPath, strings.Join(msgs, "; "))
				return
			}

			var def Definition
			if err := yaml.Unmarshal(data, &def); err != nil {
				loadErr = fmt.Errorf("parsing %s: %w", defPath, err)
				return
			}

			// Every declared template must exist in the embedded tree.
			for _, f := range def.Files {
				src := path.Join("templates", def.Name, f.Source)
				if _, err := fs.Stat(templatesFS, src); err != nil {
					loadErr = fmt.Errorf("service %s references missing template %s", def.Name, f.Source)
					return
				}
			}

			registry[def.Name] = &def
		}
	})
}

// List returns all registered services sorted by name.
func List() ([]*Definition, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}

	defs := make([]*Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// Lookup returns the definition for a service name. An unknown name is a
// user error.
func Lookup(name string) (*Definition, error) {
	load()
	if loadErr != nil {
		return nil, loadErr
	}

	def, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown service %q (run `fastgen list-services` to see available services)", name)
	}
	return def, nil
}

// readTemplate returns the embedded template contents for a service file.
func readTemplate(serviceName, source string) ([]byte, error) {
	data, err := fs.ReadFile(templatesFS, path.Join("templates", serviceName, source))
	if err != nil {
		return nil, fmt.Errorf("reading template %s for service %s: %w", source, serviceName, err)
	}
	return data, nil
}

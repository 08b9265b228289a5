package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fastgen-labs/fastgen/internal/patch"
	"github.com/fastgen-labs/fastgen/internal/project"
)

// AddResult reports what an Add actually changed. Re-adding a service yields
// an empty result rather than an error.
type AddResult struct {
	Files           []string
	Requirements    []string
	SnippetInserted bool
	EnvAppended     bool
	Warnings        []string
}

// Add applies a service to a project: copies its template files, appends its
// dependency lines and env block, inserts its entry-file snippet, and records
// it in fastgen.yaml. Each step is idempotent; there is no rollback on
// partial failure.
func Add(def *Definition, projectDir string) (*AddResult, error) {
	if err := project.Detect(projectDir); err != nil {
		return nil, err
	}

	result := &AddResult{}

	for _, f := range def.Files {
		data, err := readTemplate(def.Name, f.Source)
		if err != nil {
			return nil, err
		}

		dest := filepath.Join(projectDir, filepath.FromSlash(f.Dest))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", f.Dest, err)
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Dest, err)
		}
		result.Files = append(result.Files, f.Dest)
	}

	if len(def.Requirements) > 0 {
		added, err := patch.AddRequirements(filepath.Join(projectDir, patch.RequirementsFile), def.Requirements)
		if err != nil {
			return nil, err
		}
		result.Requirements = added
	}

	if def.Snippet != "" {
		inserted, err := patch.InsertSnippet(filepath.Join(projectDir, filepath.FromSlash(patch.EntryFile)), def.Name, def.Snippet)
		if err != nil {
			// The entry file may have been hand-edited; the service is still
			// usable without the wiring, so report rather than fail.
			result.Warnings = append(result.Warnings, err.Error())
		} else {
			result.SnippetInserted = inserted
		}
	}

	if def.Env != "" {
		appended, err := patch.AppendEnvBlock(filepath.Join(projectDir, patch.EnvFile), def.EnvSentinel, def.Env)
		if err != nil {
			return nil, err
		}
		result.EnvAppended = appended
	}

	config, err := project.Load(projectDir)
	if err != nil {
		return nil, err
	}
	if config.AddService(def.Name) {
		if err := project.Save(projectDir, config); err != nil {
			return nil, err
		}
	}

	return result, nil
}

package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fastgen-labs/fastgen/internal/patch"
	"github.com/fastgen-labs/fastgen/internal/project"
)

// RemoveResult reports what a Remove actually changed. Files that were
// already gone are listed in Missing rather than failing the operation.
type RemoveResult struct {
	Removed        []string
	Missing        []string
	Requirements   []string
	SnippetRemoved bool
}

// Remove strips a service from a project: deletes its files, removes its
// dependency lines and entry-file snippet, and de-records it in fastgen.yaml.
// Env entries are left in place; callers should tell the user to clean them
// up manually if desired.
func Remove(def *Definition, projectDir string) (*RemoveResult, error) {
	if err := project.Detect(projectDir); err != nil {
		return nil, err
	}

	result := &RemoveResult{}

	for _, f := range def.Files {
		dest := filepath.Join(projectDir, filepath.FromSlash(f.Dest))
		if err := os.Remove(dest); err != nil {
			if os.IsNotExist(err) {
				result.Missing = append(result.Missing, f.Dest)
				continue
			}
			return nil, fmt.Errorf("removing %s: %w", f.Dest, err)
		}
		result.Removed = append(result.Removed, f.Dest)
	}

	if len(def.Requirements) > 0 {
		removed, err := patch.RemoveRequirements(filepath.Join(projectDir, patch.RequirementsFile), def.Requirements)
		if err != nil {
			return nil, err
		}
		result.Requirements = removed
	}

	if def.Snippet != "" {
		removed, err := patch.RemoveSnippet(filepath.Join(projectDir, filepath.FromSlash(patch.EntryFile)), def.Name)
		if err != nil {
			return nil, err
		}
		result.SnippetRemoved = removed
	}

	config, err := project.Load(projectDir)
	if err != nil {
		return nil, err
	}
	if config.RemoveService(def.Name) {
		if err := project.Save(projectDir, config); err != nil {
			return nil, err
		}
	}

	return result, nil
}

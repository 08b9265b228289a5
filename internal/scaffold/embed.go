package scaffold

import "embed"

// The all: prefix is required so dotfiles (.env.example, .gitignore) are
// included in the embedded tree.
//
//go:embed all:templates
var templateFS embed.FS

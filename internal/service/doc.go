// Package service holds the static registry of optional integrations
// (message queue, cache, OAuth, deployment config) that can be added to or
// removed from a generated project. Each service is defined by an embedded
// YAML file validated against a JSON Schema at load time, bundling template
// files, dependency lines, an entry-file snippet, and an env block.
package service

// Package project handles the per-project fastgen.yaml file, which records
// the services enabled in a generated project, and validates that a directory
// looks like a fastgen project before any service operation touches it.
package project

// Package patch performs the text edits services make to a generated project:
// idempotent dependency-line insertion and removal in requirements.txt,
// marker-delimited snippet insertion and removal in the entry file, and
// env-block appends keyed on a sentinel variable. All edits are plain line
// operations; no structural parsing is attempted.
package patch

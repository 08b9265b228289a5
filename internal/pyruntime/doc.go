// Package pyruntime probes the external tools a generated project depends on
// (python3, pip3, uvicorn, git). It reports availability and compares parsed
// versions against minimum requirements. The probes power "fastgen doctor".
package pyruntime

// Package scaffold generates new FastAPI projects from the embedded base
// template tree. It powers the "fastgen create" command, producing the full
// project skeleton (pyproject.toml, requirements.txt, src/ layout, tests)
// with the project name substituted into every templated file.
package scaffold

package pyruntime

import (
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Probe describes one external tool check.
type Probe struct {
	Name       string   // display name, e.g. "Python"
	Command    string   // binary looked up on PATH
	Args       []string // args that print the version
	MinVersion string   // empty means any version is fine
	Required   bool     // false for nice-to-have tools
}

// Report is the outcome of running a probe.
type Report struct {
	Probe     Probe
	Found     bool
	Path      string
	Version   string // parsed version, empty if unparseable
	Satisfied bool   // found and meets MinVersion (if any)
}

// DefaultProbes returns the checks run by doctor, in display order.
func DefaultProbes() []Probe {
	return []Probe{
		{Name: "Python", Command: "python3", Args: []string{"--version"}, MinVersion: "3.9.0", Required: true},
		{Name: "pip", Command: "pip3", Args: []string{"--version"}, Required: true},
		{Name: "uvicorn", Command: "uvicorn", Args: []string{"--version"}},
		{Name: "git", Command: "git", Args: []string{"--version"}, MinVersion: "2.20.0"},
	}
}

// Run executes a single probe.
func Run(p Probe) Report {
	report := Report{Probe: p}

	path, err := exec.LookPath(p.Command)
	if err != nil {
		return report
	}
	report.Found = true
	report.Path = path

	out, err := exec.Command(path, p.Args...).CombinedOutput()
	if err == nil {
		report.Version = ParseVersion(string(out))
	}

	report.Satisfied = report.Found
	if p.MinVersion != "" {
		ok, err := meetsMinimum(report.Version, p.MinVersion)
		report.Satisfied = err == nil && ok
	}

	return report
}

// RunAll executes every probe and returns the reports in order.
func RunAll(probes []Probe) []Report {
	reports := make([]Report, 0, len(probes))
	for _, p := range probes {
		reports = append(reports, Run(p))
	}
	return reports
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ParseVersion extracts the first dotted version number from tool output,
// so "Python 3.11.4" yields "3.11.4".
func ParseVersion(output string) string {
	return versionPattern.FindString(output)
}

// meetsMinimum reports whether version is at least min, using semver
// comparison. A two-part version like "3.11" parses as "3.11.0".
func meetsMinimum(version, min string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return false, err
	}
	m, err := semver.NewVersion(min)
	if err != nil {
		return false, err
	}
	return v.Compare(m) >= 0, nil
}

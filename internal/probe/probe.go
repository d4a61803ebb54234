// Package probe checks install status and versions of external dependencies
// by running commands and parsing their text output. Probes never return
// errors: a failed command yields a structured not-installed status so the
// health check orchestrator always receives a complete result.
package probe

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Status describes one probed dependency
type Status struct {
	Name         string
	Installed    bool
	Version      string
	MajorVersion int  // 0 when unknown
	Valid        bool // installed and at or above the configured floor
	Error        string
}

// SetStatus describes a probed set of plugins or packages
type SetStatus struct {
	Name         string
	Installed    []string
	Missing      []string
	AllInstalled bool
	Error        string
}

var semverPattern = regexp.MustCompile(`v?(\d+\.\d+\.\d+(?:[-+][0-9A-Za-z.-]+)?)`)

// extractVersion pulls the first semver-looking token out of command output.
// When the output shape has drifted and nothing matches, it reports
// "unknown" with major 0 rather than failing, to avoid false negatives.
func extractVersion(output string) (string, int) {
	m := semverPattern.FindStringSubmatch(output)
	if m == nil {
		return "unknown", 0
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return "unknown", 0
	}
	return v.String(), int(v.Major())
}

// javaMajor maps a Java version string to its major version.
// Legacy "1.x" strings (Java 8 and older) map to x.
func javaMajor(version string) int {
	parts := strings.FieldsFunc(version, func(r rune) bool {
		return r == '.' || r == '_' || r == '+' || r == '-'
	})
	if len(parts) == 0 {
		return 0
	}
	idx := 0
	if parts[0] == "1" && len(parts) > 1 {
		idx = 1
	}
	major, err := strconv.Atoi(parts[idx])
	if err != nil {
		return 0
	}
	return major
}

// containsEntry reports whether raw probe output mentions the identifier.
// This is plain substring containment, not token matching: an identifier that
// happens to be a substring of an unrelated installed entry registers as
// present. Inherited approximation, kept deliberately.
func containsEntry(output, identifier string) bool {
	return strings.Contains(output, identifier)
}

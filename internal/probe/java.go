package probe

import (
	"context"
	"regexp"

	"github.com/Avinava/sf-preflight/internal/runner"
)

// JavaCommand is the version query for the Java runtime.
// Java prints its version banner on stderr.
const JavaCommand = "java -version"

var javaVersionPattern = regexp.MustCompile(`version "([^"]+)"`)

// Java probes the Java runtime against a minimum major version
type Java struct {
	Runner   runner.Runner
	MinMajor int
}

// Check runs the Java probe
func (p *Java) Check(ctx context.Context) Status {
	status := Status{Name: "Java"}

	out := p.Runner.RunFull(ctx, JavaCommand)
	banner := out.Stderr
	if banner == "" {
		banner = out.Stdout
	}

	m := javaVersionPattern.FindStringSubmatch(banner)
	if m == nil {
		// A failed command prints the shell's not-found message on stderr, so
		// a non-empty banner alone does not prove an installation. Only a
		// successful command with an unrecognized banner counts as installed.
		if out.Err != nil {
			status.Error = out.Err.Error()
			return status
		}
		if banner == "" {
			status.Error = "java not found on PATH"
			return status
		}
		status.Installed = true
		status.Version = "unknown"
		return status
	}

	status.Installed = true
	status.Version = m[1]
	status.MajorVersion = javaMajor(m[1])
	status.Valid = status.MajorVersion >= p.MinMajor && status.MajorVersion > 0
	return status
}

package probe

import (
	"context"
	"regexp"

	"github.com/Avinava/sf-preflight/internal/runner"
)

// SFCommand is the version query for the Salesforce CLI
const SFCommand = "sf --version"

// SFInstallCommand installs the Salesforce CLI as a global npm package
const SFInstallCommand = "npm install --global @salesforce/cli"

var sfVersionPattern = regexp.MustCompile(`@salesforce/cli/(\d+\.\d+\.\d+)`)

// SFCLI probes the Salesforce CLI. It has no version floor: valid collapses
// to installed.
type SFCLI struct {
	Runner runner.Runner
}

// Check runs the Salesforce CLI probe
func (p *SFCLI) Check(ctx context.Context) Status {
	status := Status{Name: "Salesforce CLI"}

	out, err := p.Runner.Run(ctx, SFCommand)
	if err != nil {
		status.Error = err.Error()
		return status
	}

	status.Installed = true
	status.Valid = true
	if m := sfVersionPattern.FindStringSubmatch(out); m != nil {
		status.Version, status.MajorVersion = extractVersion(m[1])
	} else {
		status.Version, status.MajorVersion = extractVersion(out)
	}
	return status
}

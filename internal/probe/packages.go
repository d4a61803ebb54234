package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/Avinava/sf-preflight/internal/derrors"
	"github.com/Avinava/sf-preflight/internal/runner"
)

// PackageListCommand lists globally installed npm packages
const PackageListCommand = "npm list -g --depth=0"

// PackageInstallCommand returns the install command for a global npm package
func PackageInstallCommand(name string) string {
	return fmt.Sprintf("npm install --global %s", name)
}

// packageAliases maps a required package to an alternate package that
// satisfies the same requirement. Exactly one pair exists: the legacy
// sfdx-cli was renamed to @salesforce/cli.
var packageAliases = map[string]string{
	"sfdx-cli": "@salesforce/cli",
}

// Packages probes the set of required global npm packages
type Packages struct {
	Runner   runner.Runner
	Required []string
}

// Check runs the package set probe
func (p *Packages) Check(ctx context.Context) SetStatus {
	status := SetStatus{Name: "Global Packages"}

	out, err := p.Runner.Run(ctx, PackageListCommand)
	if err != nil {
		// npm list exits non-zero on unmet peer dependencies while still
		// printing the tree; scan whatever output was captured.
		var cmdErr *derrors.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Output != "" {
			out = cmdErr.Output
		} else {
			status.Missing = append(status.Missing, p.Required...)
			status.AllInstalled = len(status.Missing) == 0
			status.Error = err.Error()
			return status
		}
	}

	for _, required := range p.Required {
		switch {
		case containsEntry(out, required):
			status.Installed = append(status.Installed, required)
		case packageAliases[required] != "" && containsEntry(out, packageAliases[required]):
			status.Installed = append(status.Installed, required+" (alternative)")
		default:
			status.Missing = append(status.Missing, required)
		}
	}
	status.AllInstalled = len(status.Missing) == 0
	return status
}

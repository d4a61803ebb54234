package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/Avinava/sf-preflight/internal/derrors"
	"github.com/Avinava/sf-preflight/internal/runner"
)

// PluginListCommand lists installed Salesforce CLI plugins
const PluginListCommand = "sf plugins"

// PluginInstallCommand returns the install command for a CLI plugin
func PluginInstallCommand(name string) string {
	return fmt.Sprintf("sf plugins install %s", name)
}

// Plugins probes the set of required Salesforce CLI plugins
type Plugins struct {
	Runner   runner.Runner
	Required []string
}

// Check runs the plugin set probe
func (p *Plugins) Check(ctx context.Context) SetStatus {
	status := SetStatus{Name: "CLI Plugins"}

	out, err := p.Runner.Run(ctx, PluginListCommand)
	if err != nil {
		// "sf plugins" exits non-zero in some broken installs but still
		// prints the list; scan whatever output was captured.
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
		if containsEntry(out, required) {
			status.Installed = append(status.Installed, required)
		} else {
			status.Missing = append(status.Missing, required)
		}
	}
	status.AllInstalled = len(status.Missing) == 0
	return status
}

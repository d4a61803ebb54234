package cli

import (
	"fmt"
	"strings"

	"github.com/Avinava/sf-preflight/internal/provision"
)

// ProvisionParams contains parameters for the Provision command
type ProvisionParams struct {
	CommonParams
	Force bool
}

// Provision runs the provisioning orchestrator: startup mode creates missing
// files only; force mode asks for confirmation and overwrites everything.
func Provision(params ProvisionParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	orchestrator := a.buildOrchestrator()

	if params.Force {
		changed, confirmed := orchestrator.RunForce(func() bool {
			return a.ui.Confirm("Overwrite existing configuration files with defaults?", false)
		})
		if !confirmed {
			fmt.Fprintln(a.out, "Cancelled")
			return nil
		}
		if len(changed) == 0 {
			fmt.Fprintln(a.out, "All configuration files already up to date")
			return nil
		}
		fmt.Fprintf(a.out, "Rewrote %d file(s):\n  %s\n", len(changed), strings.Join(changed, "\n  "))
		return nil
	}

	changed := orchestrator.RunStartup()
	if len(changed) > 0 {
		fmt.Fprintf(a.out, "Created %d file(s):\n  %s\n", len(changed), strings.Join(changed, "\n  "))
	}
	return nil
}

// buildOrchestrator wires the standard provisioner set against the detected
// project root ("" when no root holds a descriptor, in which case every
// provisioner is a no-op)
func (a *app) buildOrchestrator() *provision.Orchestrator {
	root, _ := a.detector.Root()
	info, _ := a.detector.Info()

	orchestrator := provision.NewOrchestrator(a.log)
	provision.Defaults(orchestrator, a.settings, root, info)
	return orchestrator
}

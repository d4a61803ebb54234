package health

import (
	"context"
	"fmt"
	"io"

	"github.com/Avinava/sf-preflight/internal/derrors"
	"github.com/Avinava/sf-preflight/internal/logger"
	"github.com/Avinava/sf-preflight/internal/probe"
	"github.com/Avinava/sf-preflight/internal/runner"
	"github.com/Avinava/sf-preflight/internal/ui"
)

// Fixer chains the per-dependency remediation prompts of a health check
// result. Installations are explicit user-confirmed actions, so install
// failures propagate (wrapped) instead of being swallowed.
type Fixer struct {
	Runner runner.Runner
	UI     *ui.UI
	Log    *logger.Logger
	Out    io.Writer
}

// FixAll walks the result's issues in severity order, prompting before each
// install. Declining a prompt skips that dependency and is not an error.
func (f *Fixer) FixAll(ctx context.Context, r *Result) error {
	if !r.CLI.Installed {
		if f.UI.Confirm("Install the Salesforce CLI? ("+probe.SFInstallCommand+")", true) {
			if err := f.InstallPackage(ctx, "@salesforce/cli"); err != nil {
				return err
			}
		}
	}

	for _, name := range r.Plugins.Missing {
		if f.UI.Confirm("Install CLI plugin "+name+"?", true) {
			if err := f.InstallPlugin(ctx, name); err != nil {
				return err
			}
		}
	}

	for _, name := range r.Packages.Missing {
		if f.UI.Confirm("Install global package "+name+"?", true) {
			if err := f.InstallPackage(ctx, name); err != nil {
				return err
			}
		}
	}

	// Runtimes cannot be installed on the user's behalf.
	if !r.Node.Installed || !r.Node.Valid {
		fmt.Fprintln(f.Out, "Node.js must be installed manually: https://nodejs.org")
	}
	if !r.Java.Installed || !r.Java.Valid {
		fmt.Fprintln(f.Out, "Java must be installed manually, e.g. https://adoptium.net")
	}

	return nil
}

// InstallPlugin installs a Salesforce CLI plugin
func (f *Fixer) InstallPlugin(ctx context.Context, name string) error {
	command := probe.PluginInstallCommand(name)
	f.Log.Info().Str("plugin", name).Msg("Installing CLI plugin")

	if _, err := f.Runner.Run(ctx, command); err != nil {
		return derrors.NewInstallError(name, "failed to install CLI plugin "+name, err)
	}
	fmt.Fprintf(f.Out, "Installed CLI plugin %s\n", name)
	return nil
}

// InstallPackage installs a global npm package
func (f *Fixer) InstallPackage(ctx context.Context, name string) error {
	command := probe.PackageInstallCommand(name)
	f.Log.Info().Str("package", name).Msg("Installing global package")

	if _, err := f.Runner.Run(ctx, command); err != nil {
		return derrors.NewInstallError(name, "failed to install package "+name, err)
	}
	fmt.Fprintf(f.Out, "Installed %s\n", name)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Avinava/sf-preflight/internal/health"
	"github.com/Avinava/sf-preflight/internal/startup"
)

// StartupParams contains parameters for the Startup command
type StartupParams struct {
	CommonParams
}

// Startup is the activation entry point: detect the project, run startup
// provisioning, apply the startup check policy, and print the status line.
func Startup(ctx context.Context, params StartupParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	if !a.detector.IsProject() {
		a.log.Debug().Msg("No project descriptor found, skipping startup preflight")
		return nil
	}

	if a.settings.Provision.RunOnStartup {
		changed := a.buildOrchestrator().RunStartup()
		if len(changed) > 0 {
			fmt.Fprintf(a.out, "Created %d file(s):\n  %s\n", len(changed), strings.Join(changed, "\n  "))
		}
	}

	if !a.settings.CheckOnStartup {
		a.log.Debug().Msg("Startup health check disabled by configuration")
		return nil
	}

	policy := &startup.Policy{
		Checker:     a.checker(),
		Store:       a.store,
		Settings:    a.settings,
		UI:          a.ui,
		Log:         a.log,
		Out:         a.out,
		Interactive: a.runInteractiveCheck,
	}

	result, err := policy.Run(ctx)
	if err != nil {
		return err
	}

	if a.settings.StatusLine {
		fmt.Fprintln(a.out, health.RenderStatusLine(health.Classify(result)))
	}
	return nil
}

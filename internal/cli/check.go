package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Avinava/sf-preflight/internal/health"
	"github.com/Avinava/sf-preflight/internal/probe"
	"github.com/Avinava/sf-preflight/internal/startup"
)

// CheckParams contains parameters for the Check command
type CheckParams struct {
	CommonParams
	Quiet bool
}

// Check runs the full health check. With Quiet it probes and persists
// silently; otherwise it renders the summary and offers remediation.
func Check(ctx context.Context, params CheckParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	if params.Quiet {
		result, err := a.checker().Run(ctx)
		if err != nil {
			return err
		}
		a.persistOutcome(result)
		return nil
	}

	_, err = a.runInteractiveCheck(ctx)
	return err
}

// checker builds the health checker from the app wiring
func (a *app) checker() *health.Checker {
	return health.NewChecker(a.runner, a.detector, a.settings, a.log)
}

// runInteractiveCheck renders the summary, offers to fix issues, and re-runs
// the check once after remediation to confirm resolution.
func (a *app) runInteractiveCheck(ctx context.Context) (*health.Result, error) {
	checker := a.checker()

	result, err := checker.Run(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(a.out, health.Render(result, a.settings))

	if health.Classify(result) != health.VerdictOK {
		if a.ui.Confirm("Fix issues now?", false) {
			fixer := &health.Fixer{Runner: a.runner, UI: a.ui, Log: a.log, Out: a.out}
			if err := fixer.FixAll(ctx, result); err != nil {
				return nil, err
			}

			result, err = checker.Run(ctx)
			if err != nil {
				return nil, err
			}
			fmt.Fprintln(a.out, health.Render(result, a.settings))
		}
	}

	a.persistOutcome(result)
	return result, nil
}

// persistOutcome records a completed check in the preflight state
func (a *app) persistOutcome(result *health.Result) {
	startup.PersistOutcome(a.store, result, time.Now(), a.log)
}

// CheckSingleParams contains parameters for single-dependency checks
type CheckSingleParams struct {
	CommonParams
	Dependency string // node, java or cli
}

// CheckSingle probes one dependency and prints its line plus a remediation
// hint when unhealthy
func CheckSingle(ctx context.Context, params CheckSingleParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	var status probe.Status
	remedy := ""

	switch params.Dependency {
	case "node":
		p := probe.Node{Runner: a.runner, MinMajor: a.settings.Node.MinMajor}
		status = p.Check(ctx)
		remedy = fmt.Sprintf("Install Node.js %d or newer from https://nodejs.org", a.settings.Node.MinMajor)
	case "java":
		p := probe.Java{Runner: a.runner, MinMajor: a.settings.Java.MinMajor}
		status = p.Check(ctx)
		remedy = fmt.Sprintf("Install a Java %d+ runtime, e.g. from https://adoptium.net", a.settings.Java.MinMajor)
	case "cli":
		p := probe.SFCLI{Runner: a.runner}
		status = p.Check(ctx)
		remedy = probe.SFInstallCommand
	default:
		return fmt.Errorf("unknown dependency: %s", params.Dependency)
	}

	switch {
	case !status.Installed:
		fmt.Fprintf(a.out, "%s is not installed\n", status.Name)
	case !status.Valid:
		fmt.Fprintf(a.out, "%s %s is below the required version\n", status.Name, status.Version)
	default:
		fmt.Fprintf(a.out, "%s %s\n", status.Name, status.Version)
		return nil
	}

	if params.Dependency == "cli" {
		if a.ui.Confirm("Install the Salesforce CLI now?", true) {
			fixer := &health.Fixer{Runner: a.runner, UI: a.ui, Log: a.log, Out: a.out}
			return fixer.InstallPackage(ctx, "@salesforce/cli")
		}
		return nil
	}

	fmt.Fprintln(a.out, remedy)
	return nil
}

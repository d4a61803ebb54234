// Package health runs the full dependency health check and classifies its
// outcome.
package health

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/logger"
	"github.com/Avinava/sf-preflight/internal/probe"
	"github.com/Avinava/sf-preflight/internal/project"
	"github.com/Avinava/sf-preflight/internal/runner"
)

// ErrCheckInFlight is returned when a second check is started while one is
// still running. Nothing in the UI flow produces overlapping runs, but
// programmatic invocation can.
var ErrCheckInFlight = errors.New("a health check is already in flight")

// Result aggregates one status per probed dependency plus project detection.
// Every field is populated before the result is returned; a partial result
// is never handed to callers.
type Result struct {
	Node     probe.Status
	Java     probe.Status
	CLI      probe.Status
	Plugins  probe.SetStatus
	Packages probe.SetStatus

	IsProject bool
	Project   *project.Info

	// Cached marks a result obtained on the startup fast path, where probing
	// still happened but interactive UI was suppressed.
	Cached bool
}

// Checker owns one health check run at a time
type Checker struct {
	Runner   runner.Runner
	Detector *project.Detector
	Settings *config.Settings
	Log      *logger.Logger

	inFlight atomic.Bool
}

// NewChecker wires a checker from its collaborators
func NewChecker(r runner.Runner, d *project.Detector, cfg *config.Settings, log *logger.Logger) *Checker {
	return &Checker{Runner: r, Detector: d, Settings: cfg, Log: log}
}

// Run executes every dependency probe and the project detector as a
// sequence of discrete steps. Probes never fail; the returned error is only
// ErrCheckInFlight or a context error.
func (c *Checker) Run(ctx context.Context) (*Result, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckInFlight
	}
	defer c.inFlight.Store(false)

	result := &Result{}

	steps := []struct {
		label string
		run   func()
	}{
		{"Node.js", func() {
			node := probe.Node{Runner: c.Runner, MinMajor: c.Settings.Node.MinMajor}
			result.Node = node.Check(ctx)
		}},
		{"Java", func() {
			java := probe.Java{Runner: c.Runner, MinMajor: c.Settings.Java.MinMajor}
			result.Java = java.Check(ctx)
		}},
		{"Salesforce CLI", func() {
			cli := probe.SFCLI{Runner: c.Runner}
			result.CLI = cli.Check(ctx)
		}},
		{"CLI plugins", func() {
			plugins := probe.Plugins{Runner: c.Runner, Required: c.Settings.RequiredPlugins}
			result.Plugins = plugins.Check(ctx)
		}},
		{"Global packages", func() {
			packages := probe.Packages{Runner: c.Runner, Required: c.Settings.RequiredPackages}
			result.Packages = packages.Check(ctx)
		}},
		{"Project", func() {
			result.IsProject = c.Detector.IsProject()
			if result.IsProject {
				result.Project, _ = c.Detector.Info()
			}
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		step.run()
		c.Log.Debug().Str("step", step.label).Dur("took", time.Since(start)).Msg("Health check step completed")
	}

	return result, nil
}

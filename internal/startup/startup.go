// Package startup decides how much of the health check to surface when
// sf-preflight runs on editor or shell activation.
package startup

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/health"
	"github.com/Avinava/sf-preflight/internal/logger"
	"github.com/Avinava/sf-preflight/internal/state"
	"github.com/Avinava/sf-preflight/internal/ui"
)

// Policy runs the startup health check with freshness-window caching.
// Within the window after a fully passed check, probing still happens but
// every interactive prompt is suppressed; the cache only saves the user from
// re-remediation noise, not the probe cost.
type Policy struct {
	Checker  *health.Checker
	Store    *state.Store
	Settings *config.Settings
	UI       *ui.UI
	Log      *logger.Logger
	Out      io.Writer

	// Interactive runs the full interactive check (summary, fix offer,
	// confirmation re-run). Injected by the command layer.
	Interactive func(ctx context.Context) (*health.Result, error)

	// Now is injected for tests; defaults to time.Now
	Now func() time.Time
}

func (p *Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Run executes the startup check and returns the final result
func (p *Policy) Run(ctx context.Context) (*health.Result, error) {
	window := time.Duration(p.Settings.FreshnessWindowHours()) * time.Hour
	fresh := p.Store.IsFresh(p.now(), window)
	prior := p.Store.Get()

	result, err := p.Checker.Run(ctx)
	if err != nil {
		return nil, err
	}

	if fresh {
		result.Cached = true
		p.Log.Debug().Msg("Previous check passed within freshness window, suppressing interactive output")
		p.persist(result)
		return result, nil
	}

	switch {
	case health.HasCriticalIssues(result):
		if !prior.EnvCheckCompletedOnce {
			// First ever completed check: show the whole picture.
			final, err := p.Interactive(ctx)
			if err != nil {
				return nil, err
			}
			result = final
		} else if p.UI.Confirm("Environment issues detected. Run the full health check?", true) {
			final, err := p.Interactive(ctx)
			if err != nil {
				return nil, err
			}
			result = final
		} else {
			fmt.Fprintln(p.Out, health.RenderStatusLine(health.VerdictError))
		}
	case health.HasWarnings(result):
		fmt.Fprintln(p.Out, health.RenderStatusLine(health.VerdictWarning))
	}

	p.persist(result)
	return result, nil
}

// persist records the outcome; only a fully clean result counts as passed
func (p *Policy) persist(result *health.Result) {
	PersistOutcome(p.Store, result, p.now(), p.Log)
}

// PersistOutcome records a completed check in the preflight state. It is the
// single write path for check outcomes, shared by the startup policy and the
// on-demand check commands.
func PersistOutcome(store *state.Store, result *health.Result, now time.Time, log *logger.Logger) {
	var err error
	if health.Classify(result) == health.VerdictOK {
		err = store.MarkPassed(now)
	} else {
		err = store.MarkFailed(now)
	}
	if err != nil {
		log.Warn().Err(err).Msg("Failed to persist check outcome")
		return
	}

	err = store.Update(func(s *state.State) {
		s.PluginsChecked = result.Plugins.AllInstalled
		s.PackagesChecked = result.Packages.AllInstalled
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to persist set-check flags")
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/Avinava/sf-preflight/internal/health"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	CommonParams
}

// Status prints the one-line environment indicator. The probes run silently;
// only the classified verdict is shown. Disabled entirely by the status_line
// setting.
func Status(ctx context.Context, params StatusParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	if !a.settings.StatusLine {
		a.log.Debug().Msg("Status line disabled by configuration")
		return nil
	}

	result, err := a.checker().Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, health.RenderStatusLine(health.Classify(result)))
	return nil
}

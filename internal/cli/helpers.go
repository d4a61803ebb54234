// Package cli contains the command implementations behind the sf-preflight
// command surface.
package cli

import (
	"io"
	"os"

	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/logger"
	"github.com/Avinava/sf-preflight/internal/project"
	"github.com/Avinava/sf-preflight/internal/runner"
	"github.com/Avinava/sf-preflight/internal/state"
	"github.com/Avinava/sf-preflight/internal/ui"
)

// CommonParams carries the wiring every command shares
type CommonParams struct {
	LogLevel  string
	Roots     []string
	StatePath string
}

// app holds the initialized collaborators for one command invocation
type app struct {
	log      *logger.Logger
	settings *config.Settings
	detector *project.Detector
	runner   runner.Runner
	store    *state.Store
	ui       *ui.UI
	out      io.Writer
}

// newApp initializes components shared by all commands
func newApp(params CommonParams) (*app, error) {
	roots := params.Roots
	if len(roots) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		roots = []string{cwd}
	}

	settings, err := config.Load(roots)
	if err != nil {
		return nil, err
	}

	store, err := state.New(params.StatePath)
	if err != nil {
		return nil, err
	}

	return &app{
		log:      logger.New(params.LogLevel, os.Stderr),
		settings: settings,
		detector: project.NewDetector(roots),
		runner:   runner.New(),
		store:    store,
		ui:       ui.New(),
		out:      os.Stdout,
	}, nil
}

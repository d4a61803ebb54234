package cli

import (
	"context"
)

// MenuParams contains parameters for the Menu command
type MenuParams struct {
	CommonParams
}

// Menu presents the action menu and dispatches to the chosen command
func Menu(ctx context.Context, params MenuParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	choice, ok := a.ui.Select("sf-preflight", []string{
		"Run health check",
		"Force re-provision configuration files",
		"Show project info",
	})
	if !ok {
		return nil
	}

	switch choice {
	case 0:
		return Check(ctx, CheckParams{CommonParams: params.CommonParams})
	case 1:
		return Provision(ProvisionParams{CommonParams: params.CommonParams, Force: true})
	case 2:
		return Project(ProjectParams{CommonParams: params.CommonParams})
	}
	return nil
}

// Package main is the entry point for the sf-preflight CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	sfcli "github.com/Avinava/sf-preflight/internal/cli"
	"github.com/Avinava/sf-preflight/pkg/version"
)

func main() {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, _ := os.UserHomeDir()
		cacheHome = filepath.Join(home, ".cache")
	}
	statePath := filepath.Join(cacheHome, "sf-preflight", "state.json")

	common := func(cmd *cli.Command) sfcli.CommonParams {
		return sfcli.CommonParams{
			LogLevel:  cmd.String("log-level"),
			Roots:     cmd.StringSlice("root"),
			StatePath: statePath,
		}
	}

	app := &cli.Command{
		Name:                  "sf-preflight",
		Usage:                 "Preflight checks and config provisioning for Salesforce DX projects",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("SF_PREFLIGHT_LOG_LEVEL"),
			},
			&cli.StringSliceFlag{
				Name:  "root",
				Usage: "Workspace root to scan (repeatable, defaults to the current directory)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Run the full environment health check",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "Probe and record the outcome without interactive output",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return sfcli.Check(ctx, sfcli.CheckParams{
						CommonParams: common(cmd),
						Quiet:        cmd.Bool("quiet"),
					})
				},
				Commands: []*cli.Command{
					{
						Name:  "node",
						Usage: "Check the Node.js installation",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return sfcli.CheckSingle(ctx, sfcli.CheckSingleParams{
								CommonParams: common(cmd),
								Dependency:   "node",
							})
						},
					},
					{
						Name:  "java",
						Usage: "Check the Java installation",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return sfcli.CheckSingle(ctx, sfcli.CheckSingleParams{
								CommonParams: common(cmd),
								Dependency:   "java",
							})
						},
					},
					{
						Name:  "cli",
						Usage: "Check the Salesforce CLI installation",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return sfcli.CheckSingle(ctx, sfcli.CheckSingleParams{
								CommonParams: common(cmd),
								Dependency:   "cli",
							})
						},
					},
				},
			},
			{
				Name:  "provision",
				Usage: "Create missing configuration files in the project root",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite existing files with defaults (asks for confirmation)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sfcli.Provision(sfcli.ProvisionParams{
						CommonParams: common(cmd),
						Force:        cmd.Bool("force"),
					})
				},
			},
			{
				Name:  "project",
				Usage: "Show information from the project descriptor",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sfcli.Project(sfcli.ProjectParams{CommonParams: common(cmd)})
				},
			},
			{
				Name:  "startup",
				Usage: "Run the activation preflight (provisioning + cached health check)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return sfcli.Startup(ctx, sfcli.StartupParams{CommonParams: common(cmd)})
				},
			},
			{
				Name:  "status",
				Usage: "Print the one-line environment status indicator",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return sfcli.Status(ctx, sfcli.StatusParams{CommonParams: common(cmd)})
				},
			},
			{
				Name:  "menu",
				Usage: "Open the interactive action menu",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return sfcli.Menu(ctx, sfcli.MenuParams{CommonParams: common(cmd)})
				},
			},
			{
				Name:  "config",
				Usage: "Print the effective settings",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return sfcli.Config(sfcli.ConfigParams{CommonParams: common(cmd)})
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

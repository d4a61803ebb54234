package health

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/logger"
	"github.com/Avinava/sf-preflight/internal/probe"
	"github.com/Avinava/sf-preflight/internal/project"
	"github.com/Avinava/sf-preflight/internal/runner"
)

// healthyEnvRunner answers every probe command as a fully healthy machine.
func healthyEnvRunner() *runner.MockRunner {
	return &runner.MockRunner{
		RunFunc: func(_ context.Context, command string) (string, error) {
			switch {
			case strings.HasPrefix(command, "node"):
				return "v20.15.1", nil
			case strings.HasPrefix(command, "sf --version"):
				return "@salesforce/cli/2.56.7 linux-x64 node-v20.15.1", nil
			case strings.HasPrefix(command, "sf plugins"):
				return "sfdx-git-delta 5.44.0", nil
			case strings.HasPrefix(command, "npm list"):
				return "├── prettier@3.3.3\n├── prettier-plugin-apex@2.1.4\n└── @salesforce/cli@2.56.7", nil
			default:
				return "", errors.New("unexpected command: " + command)
			}
		},
		RunFullFunc: func(_ context.Context, _ string) runner.Output {
			return runner.Output{Stderr: `openjdk version "17.0.9" 2023-10-17`}
		},
	}
}

func newTestChecker(t *testing.T, r runner.Runner, root string) *Checker {
	t.Helper()
	return NewChecker(r, project.NewDetector([]string{root}), config.Default(), logger.New("error", io.Discard))
}

func TestChecker_HealthyEnvironment(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, project.DescriptorName),
		[]byte(`{"name": "acme", "packageDirectories": []}`), 0644))

	c := newTestChecker(t, healthyEnvRunner(), root)
	result, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Node.Valid)
	assert.True(t, result.Java.Valid)
	assert.True(t, result.CLI.Installed)
	assert.True(t, result.Plugins.AllInstalled)
	assert.True(t, result.Packages.AllInstalled)
	assert.True(t, result.IsProject)
	require.NotNil(t, result.Project)
	assert.Equal(t, "acme", result.Project.Name)
	assert.Equal(t, VerdictOK, Classify(result))
}

func TestChecker_BrokenEnvironmentStillCompletes(t *testing.T) {
	r := &runner.MockRunner{
		RunFunc: func(_ context.Context, command string) (string, error) {
			return "", errors.New("command not found")
		},
		RunFullFunc: func(_ context.Context, _ string) runner.Output {
			return runner.Output{}
		},
	}

	c := newTestChecker(t, r, t.TempDir())
	result, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Node.Installed)
	assert.False(t, result.Java.Installed)
	assert.False(t, result.CLI.Installed)
	assert.False(t, result.Plugins.AllInstalled)
	assert.False(t, result.Packages.AllInstalled)
	assert.False(t, result.IsProject)
	assert.Equal(t, VerdictError, Classify(result))
}

func TestChecker_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestChecker(t, healthyEnvRunner(), t.TempDir())
	_, err := c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChecker_RejectsOverlappingRuns(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	r := &runner.MockRunner{
		RunFunc: func(_ context.Context, _ string) (string, error) {
			once.Do(func() {
				close(started)
				<-release
			})
			return "v20.15.1", nil
		},
		RunFullFunc: func(_ context.Context, _ string) runner.Output {
			return runner.Output{Stderr: `openjdk version "17.0.9"`}
		},
	}

	c := newTestChecker(t, r, t.TempDir())

	done := make(chan error, 1)
	go func() {
		_, err := c.Run(context.Background())
		done <- err
	}()

	<-started
	_, err := c.Run(context.Background())
	assert.ErrorIs(t, err, ErrCheckInFlight)

	close(release)
	require.NoError(t, <-done)

	// Once the first run finishes the checker accepts new runs.
	_, err = c.Run(context.Background())
	assert.NoError(t, err)
}

func TestRender_ListsIssuesBeforeOK(t *testing.T) {
	r := healthyResult()
	r.CLI = probe.Status{Name: "Salesforce CLI"}
	r.Plugins = probe.SetStatus{Name: "CLI plugins", Missing: []string{"sfdx-git-delta"}}

	out := Render(r, config.Default())
	assert.Contains(t, out, "Salesforce CLI is not installed")
	assert.Contains(t, out, "sfdx-git-delta is missing")
	assert.Contains(t, out, probe.PluginInstallCommand("sfdx-git-delta"))

	missingIdx := strings.Index(out, "Salesforce CLI is not installed")
	okIdx := strings.Index(out, "Node.js 20.15.1")
	assert.Less(t, missingIdx, okIdx)
}

func TestRender_ProjectLine(t *testing.T) {
	r := healthyResult()
	out := Render(r, config.Default())
	assert.Contains(t, out, "Not a Salesforce DX project")

	r.IsProject = true
	r.Project = &project.Info{Name: "acme-crm"}
	out = Render(r, config.Default())
	assert.Contains(t, out, "Salesforce DX project: acme-crm")
}

func TestRender_BelowFloorWarning(t *testing.T) {
	r := healthyResult()
	r.Node.Valid = false
	r.Node.Version = "16.20.0"

	out := Render(r, config.Default())
	assert.Contains(t, out, "below the required major version 18")
}

func TestRenderStatusLine(t *testing.T) {
	assert.Contains(t, RenderStatusLine(VerdictOK), "healthy")
	assert.Contains(t, RenderStatusLine(VerdictWarning), "warnings")
	assert.Contains(t, RenderStatusLine(VerdictError), "issues")
}

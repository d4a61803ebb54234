package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Avinava/sf-preflight/internal/runner"
)

func javaRunner(stdout, stderr string) *runner.MockRunner {
	return &runner.MockRunner{
		RunFullFunc: func(_ context.Context, _ string) runner.Output {
			return runner.Output{Stdout: stdout, Stderr: stderr}
		},
	}
}

func failingJavaRunner(stderr string, err error) *runner.MockRunner {
	return &runner.MockRunner{
		RunFullFunc: func(_ context.Context, _ string) runner.Output {
			return runner.Output{Stderr: stderr, Err: err}
		},
	}
}

func TestJava_ModernVersionOnStderr(t *testing.T) {
	p := Java{Runner: javaRunner("", `openjdk version "17.0.9" 2023-10-17`), MinMajor: 11}

	status := p.Check(context.Background())
	assert.True(t, status.Installed)
	assert.True(t, status.Valid)
	assert.Equal(t, "17.0.9", status.Version)
	assert.Equal(t, 17, status.MajorVersion)
}

func TestJava_LegacyVersionString(t *testing.T) {
	p := Java{Runner: javaRunner("", `java version "1.8.0_371"`), MinMajor: 11}

	status := p.Check(context.Background())
	assert.True(t, status.Installed)
	assert.Equal(t, 8, status.MajorVersion)
	assert.False(t, status.Valid)
}

func TestJava_NotInstalled(t *testing.T) {
	p := Java{Runner: javaRunner("", ""), MinMajor: 11}

	status := p.Check(context.Background())
	assert.False(t, status.Installed)
	assert.False(t, status.Valid)
	assert.NotEmpty(t, status.Error)
}

func TestJava_NotOnPATH(t *testing.T) {
	// The shell's not-found message lands on stderr; it must not be mistaken
	// for a version banner.
	p := Java{
		Runner:   failingJavaRunner("sh: 1: java: not found", errors.New("exit status 127")),
		MinMajor: 11,
	}

	status := p.Check(context.Background())
	assert.False(t, status.Installed)
	assert.False(t, status.Valid)
	assert.Equal(t, "exit status 127", status.Error)
}

func TestJava_NonZeroExitWithValidBannerStillCounts(t *testing.T) {
	p := Java{
		Runner:   failingJavaRunner(`openjdk version "17.0.9" 2023-10-17`, errors.New("exit status 1")),
		MinMajor: 11,
	}

	status := p.Check(context.Background())
	assert.True(t, status.Installed)
	assert.Equal(t, "17.0.9", status.Version)
}

func TestJava_UnrecognizedBanner(t *testing.T) {
	p := Java{Runner: javaRunner("", "Java(TM) runtime, build something"), MinMajor: 11}

	status := p.Check(context.Background())
	assert.True(t, status.Installed)
	assert.Equal(t, "unknown", status.Version)
	assert.False(t, status.Valid)
}

package provision

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avinava/sf-preflight/internal/logger"
)

type fakeProvisioner struct {
	name    string
	enabled bool
	written []string
	err     error
	calls   int
}

func (f *fakeProvisioner) Name() string      { return f.name }
func (f *fakeProvisioner) ConfigKey() string { return "provision." + f.name }
func (f *fakeProvisioner) Enabled() bool     { return f.enabled }
func (f *fakeProvisioner) Execute(bool) ([]string, error) {
	f.calls++
	return f.written, f.err
}

func testLogger() *logger.Logger {
	return logger.New("error", io.Discard)
}

func TestOrchestrator_FailureDoesNotAbortRemaining(t *testing.T) {
	first := &fakeProvisioner{name: "first", enabled: true, written: []string{"a"}}
	broken := &fakeProvisioner{name: "broken", enabled: true, err: errors.New("disk full")}
	last := &fakeProvisioner{name: "last", enabled: true, written: []string{"c"}}

	o := NewOrchestrator(testLogger())
	o.Register(first)
	o.Register(broken)
	o.Register(last)

	changed := o.RunStartup()
	assert.Equal(t, []string{"a", "c"}, changed)
	assert.Equal(t, 1, last.calls)
}

func TestOrchestrator_SkipsDisabled(t *testing.T) {
	off := &fakeProvisioner{name: "off", enabled: false, written: []string{"x"}}
	on := &fakeProvisioner{name: "on", enabled: true, written: []string{"y"}}

	o := NewOrchestrator(testLogger())
	o.Register(off)
	o.Register(on)

	changed := o.RunStartup()
	assert.Equal(t, []string{"y"}, changed)
	assert.Zero(t, off.calls)
}

func TestOrchestrator_ForceDeclinedRunsNothing(t *testing.T) {
	p := &fakeProvisioner{name: "p", enabled: true, written: []string{"x"}}

	o := NewOrchestrator(testLogger())
	o.Register(p)

	changed, confirmed := o.RunForce(func() bool { return false })
	assert.False(t, confirmed)
	assert.Empty(t, changed)
	assert.Zero(t, p.calls)
}

func TestOrchestrator_ForceConfirmedRuns(t *testing.T) {
	p := &fakeProvisioner{name: "p", enabled: true, written: []string{"x"}}

	o := NewOrchestrator(testLogger())
	o.Register(p)

	changed, confirmed := o.RunForce(func() bool { return true })
	assert.True(t, confirmed)
	assert.Equal(t, []string{"x"}, changed)
}

func TestDefaults_FullStartupRun(t *testing.T) {
	root := t.TempDir()

	o := NewOrchestrator(testLogger())
	Defaults(o, testSettings(), root, nil)

	changed := o.RunStartup()
	assert.ElementsMatch(t, []string{
		".prettierrc",
		".prettierignore",
		".editorconfig",
		".gitignore",
		".vscode/settings.json",
		"cspell.json",
		".cspell/salesforce-terms.txt",
	}, changed)

	for _, rel := range changed {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
	}

	// A second startup run changes nothing.
	assert.Empty(t, o.RunStartup())
}

package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Avinava/sf-preflight/internal/probe"
)

func healthyResult() *Result {
	return &Result{
		Node:     probe.Status{Name: "Node.js", Installed: true, Valid: true, Version: "20.15.1", MajorVersion: 20},
		Java:     probe.Status{Name: "Java", Installed: true, Valid: true, Version: "17.0.9", MajorVersion: 17},
		CLI:      probe.Status{Name: "Salesforce CLI", Installed: true, Valid: true, Version: "2.56.7"},
		Plugins:  probe.SetStatus{Name: "CLI plugins", AllInstalled: true, Installed: []string{"sfdx-git-delta"}},
		Packages: probe.SetStatus{Name: "Global packages", AllInstalled: true, Installed: []string{"prettier"}},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Result)
		want   Verdict
	}{
		{"everything healthy", func(*Result) {}, VerdictOK},
		{"cli missing", func(r *Result) { r.CLI.Installed = false }, VerdictError},
		{"node missing", func(r *Result) { r.Node.Installed = false }, VerdictError},
		{"plugins incomplete", func(r *Result) { r.Plugins.AllInstalled = false }, VerdictError},
		{"packages incomplete", func(r *Result) { r.Packages.AllInstalled = false }, VerdictError},
		{"node below floor", func(r *Result) { r.Node.Valid = false }, VerdictWarning},
		{"java missing", func(r *Result) { r.Java.Installed, r.Java.Valid = false, false }, VerdictWarning},
		{"java below floor", func(r *Result) { r.Java.Valid = false }, VerdictWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := healthyResult()
			tt.mutate(r)
			assert.Equal(t, tt.want, Classify(r))
		})
	}
}

func TestClassify_ErrorDominatesWarnings(t *testing.T) {
	r := healthyResult()
	r.CLI.Installed = false
	r.Java.Installed = false
	r.Node.Valid = false

	assert.Equal(t, VerdictError, Classify(r))
}

func TestClassify_IsPure(t *testing.T) {
	r := healthyResult()
	r.Java.Valid = false

	first := Classify(r)
	second := Classify(r)
	assert.Equal(t, first, second)
	assert.Equal(t, VerdictWarning, first)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "ok", VerdictOK.String())
	assert.Equal(t, "warning", VerdictWarning.String())
	assert.Equal(t, "error", VerdictError.String())
}

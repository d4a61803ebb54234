package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, DescriptorName), []byte(content), 0644))
}

func TestDetector_NoDescriptor(t *testing.T) {
	d := NewDetector([]string{t.TempDir()})

	assert.False(t, d.IsProject())
	_, ok := d.Root()
	assert.False(t, ok)
	_, ok = d.Info()
	assert.False(t, ok)
}

func TestDetector_FirstRootWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeDescriptor(t, first, `{"name": "alpha", "packageDirectories": []}`)
	writeDescriptor(t, second, `{"name": "beta", "packageDirectories": []}`)

	d := NewDetector([]string{first, second})
	assert.True(t, d.IsProject())

	root, ok := d.Root()
	require.True(t, ok)
	assert.Equal(t, first, root)

	info, ok := d.Info()
	require.True(t, ok)
	assert.Equal(t, "alpha", info.Name)
}

func TestDetector_FullDescriptor(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, `{
  "name": "acme-crm",
  "namespace": "acme",
  "sourceApiVersion": "61.0",
  "packageDirectories": [
    {"path": "force-app", "default": true},
    {"path": "unpackaged"}
  ]
}`)

	info, ok := NewDetector([]string{root}).Info()
	require.True(t, ok)
	assert.Equal(t, "acme-crm", info.Name)
	assert.Equal(t, "acme", info.Namespace)
	assert.Equal(t, "61.0", info.APIVersion)
	require.Len(t, info.PackageDirectories, 2)
	assert.Equal(t, PackageDirectory{Path: "force-app", Default: true}, info.PackageDirectories[0])
	assert.Equal(t, PackageDirectory{Path: "unpackaged", Default: false}, info.PackageDirectories[1])
}

func TestDetector_MissingFieldsDegradeToDefaults(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, `{"packageDirectories": [{"path": "force-app"}]}`)

	info, ok := NewDetector([]string{root}).Info()
	require.True(t, ok)
	assert.Equal(t, UnnamedProject, info.Name)
	assert.Empty(t, info.Namespace)
	assert.Equal(t, "unknown", info.APIVersion)
}

func TestDetector_MalformedDescriptorStillDetected(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, `{not valid json`)

	d := NewDetector([]string{root})
	assert.True(t, d.IsProject())

	info, ok := d.Info()
	require.True(t, ok)
	assert.Equal(t, UnnamedProject, info.Name)
	assert.Equal(t, "unknown", info.APIVersion)
	assert.Empty(t, info.PackageDirectories)
}

func TestValidateDescriptor_Valid(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, `{
  "name": "acme-crm",
  "sourceApiVersion": "61.0",
  "packageDirectories": [{"path": "force-app", "default": true}]
}`)

	warnings, err := ValidateDescriptor(root)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateDescriptor_SchemaViolations(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, `{"sourceApiVersion": "sixty-one"}`)

	warnings, err := ValidateDescriptor(root)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
}

func TestValidateDescriptor_InvalidJSONIsWarningNotError(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, `{broken`)

	warnings, err := ValidateDescriptor(root)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not valid JSON")
}

func TestValidateDescriptor_MissingDescriptor(t *testing.T) {
	_, err := ValidateDescriptor(t.TempDir())
	assert.Error(t, err)
}

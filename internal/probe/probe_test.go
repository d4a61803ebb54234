package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		major  int
	}{
		{"node style", "v20.11.1", "20.11.1", 20},
		{"bare semver", "18.17.0", "18.17.0", 18},
		{"embedded", "@salesforce/cli/2.56.7 darwin-arm64 node-v20.15.1", "2.56.7", 2},
		{"no match", "something unexpected", "unknown", 0},
		{"empty", "", "unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, major := extractVersion(tt.output)
			assert.Equal(t, tt.want, version)
			assert.Equal(t, tt.major, major)
		})
	}
}

func TestJavaMajor(t *testing.T) {
	tests := []struct {
		version string
		want    int
	}{
		{"17.0.9", 17},
		{"21", 21},
		{"1.8.0_371", 8},
		{"11.0.2", 11},
		{"garbage", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, javaMajor(tt.version))
		})
	}
}

func TestContainsEntry_SubstringSemantics(t *testing.T) {
	output := "sfdx-git-delta 5.44.0\nsfdx-hardis 4.2.1"

	assert.True(t, containsEntry(output, "sfdx-git-delta"))
	assert.False(t, containsEntry(output, "texei-sfdx-plugin"))
	// Substring containment is deliberate: a required identifier that is a
	// prefix of another entry still matches.
	assert.True(t, containsEntry(output, "sfdx-git"))
}

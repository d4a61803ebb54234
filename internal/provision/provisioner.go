// Package provision lazily creates standard configuration artifacts in a
// detected Salesforce DX project root.
package provision

import (
	"os"
	"path/filepath"

	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/derrors"
)

// Provisioner ensures one configuration artifact kind exists in the project
// root, optionally overwriting it when forced.
type Provisioner interface {
	// Name returns the display name
	Name() string
	// ConfigKey returns the settings key gating this provisioner
	ConfigKey() string
	// Enabled reports whether the master provisioning switch and this
	// provisioner's own switch are both on
	Enabled() bool
	// Execute writes the managed files and returns the relative paths it
	// created or overwrote in this call. Non-force mode never touches an
	// existing file (the spell checker migration being the one exception).
	Execute(force bool) ([]string, error)
}

// base carries what every provisioner needs: the effective settings, the
// resolved project root ("" when no root could be resolved) and the template
// data derived from the project descriptor.
type base struct {
	cfg  *config.Settings
	root string
	data TemplateData
}

// writeManaged applies the uniform provisioning policy for a single file:
// in force mode always (re)write, otherwise write only when the file does
// not exist. Returns the relative path written, or "" when nothing changed.
func (b *base) writeManaged(rel, kind, fallback string, force bool) (string, error) {
	target := filepath.Join(b.root, rel)

	if !force {
		if _, err := os.Stat(target); err == nil {
			return "", nil
		}
	}

	content := b.resolveTemplate(kind, fallback)

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", derrors.NewProvisionError(target, "failed to create parent directory", err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return "", derrors.NewProvisionError(target, "failed to write "+rel, err)
	}
	return rel, nil
}

// resolveTemplate picks the configured override for the kind when present
// and well-formed, else the built-in default, and renders it with the
// project template data.
func (b *base) resolveTemplate(kind, fallback string) string {
	text := fallback
	if override, ok := b.cfg.Template(kind); ok {
		text = override
	}

	rendered := render(text, b.data)

	if jsonKinds[kind] && !isWellFormedJSON(rendered) {
		// A broken override must not corrupt the target file; fall back to
		// the built-in default.
		rendered = render(fallback, b.data)
	}
	return rendered
}

package provision

import "github.com/Avinava/sf-preflight/internal/config"

// PrettierProvisioner manages .prettierrc and .prettierignore as two
// independent idempotent writes
type PrettierProvisioner struct {
	base
}

// NewPrettier creates the formatter config provisioner
func NewPrettier(cfg *config.Settings, root string, data TemplateData) *PrettierProvisioner {
	return &PrettierProvisioner{base: base{cfg: cfg, root: root, data: data}}
}

// Name returns the display name
func (p *PrettierProvisioner) Name() string { return "Prettier config" }

// ConfigKey returns the settings key gating this provisioner
func (p *PrettierProvisioner) ConfigKey() string { return "provision.prettier" }

// Enabled reports whether this provisioner should run
func (p *PrettierProvisioner) Enabled() bool {
	return p.cfg.Provision.RunOnStartup && p.cfg.Provision.Prettier
}

// Execute writes the formatter config files
func (p *PrettierProvisioner) Execute(force bool) ([]string, error) {
	if p.root == "" {
		return nil, nil
	}

	var written []string
	for _, file := range []struct {
		rel, kind, tpl string
	}{
		{".prettierrc", KindPrettier, prettierTemplate},
		{".prettierignore", KindPrettierIgnore, prettierIgnoreTemplate},
	} {
		rel, err := p.writeManaged(file.rel, file.kind, file.tpl, force)
		if err != nil {
			return written, err
		}
		if rel != "" {
			written = append(written, rel)
		}
	}
	return written, nil
}

package provision

import "github.com/Avinava/sf-preflight/internal/config"

// EditorConfigProvisioner manages .editorconfig
type EditorConfigProvisioner struct {
	base
}

// NewEditorConfig creates the editor config provisioner
func NewEditorConfig(cfg *config.Settings, root string, data TemplateData) *EditorConfigProvisioner {
	return &EditorConfigProvisioner{base: base{cfg: cfg, root: root, data: data}}
}

// Name returns the display name
func (p *EditorConfigProvisioner) Name() string { return "EditorConfig" }

// ConfigKey returns the settings key gating this provisioner
func (p *EditorConfigProvisioner) ConfigKey() string { return "provision.editorconfig" }

// Enabled reports whether this provisioner should run
func (p *EditorConfigProvisioner) Enabled() bool {
	return p.cfg.Provision.RunOnStartup && p.cfg.Provision.EditorConfig
}

// Execute writes .editorconfig
func (p *EditorConfigProvisioner) Execute(force bool) ([]string, error) {
	if p.root == "" {
		return nil, nil
	}
	rel, err := p.writeManaged(".editorconfig", KindEditorConfig, editorConfigTemplate, force)
	if err != nil {
		return nil, err
	}
	if rel == "" {
		return nil, nil
	}
	return []string{rel}, nil
}

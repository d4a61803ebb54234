package provision

import "github.com/Avinava/sf-preflight/internal/config"

// VSCodeSettingsProvisioner manages .vscode/settings.json, creating the
// .vscode directory first
type VSCodeSettingsProvisioner struct {
	base
}

// NewVSCodeSettings creates the workspace settings provisioner
func NewVSCodeSettings(cfg *config.Settings, root string, data TemplateData) *VSCodeSettingsProvisioner {
	return &VSCodeSettingsProvisioner{base: base{cfg: cfg, root: root, data: data}}
}

// Name returns the display name
func (p *VSCodeSettingsProvisioner) Name() string { return "VS Code settings" }

// ConfigKey returns the settings key gating this provisioner
func (p *VSCodeSettingsProvisioner) ConfigKey() string { return "provision.vscode_settings" }

// Enabled reports whether this provisioner should run
func (p *VSCodeSettingsProvisioner) Enabled() bool {
	return p.cfg.Provision.RunOnStartup && p.cfg.Provision.VSCodeSettings
}

// Execute writes .vscode/settings.json
func (p *VSCodeSettingsProvisioner) Execute(force bool) ([]string, error) {
	if p.root == "" {
		return nil, nil
	}
	rel, err := p.writeManaged(".vscode/settings.json", KindVSCodeSettings, vscodeSettingsTemplate, force)
	if err != nil {
		return nil, err
	}
	if rel == "" {
		return nil, nil
	}
	return []string{rel}, nil
}

package provision

import "github.com/Avinava/sf-preflight/internal/config"

// GitIgnoreProvisioner manages .gitignore. It skips silently when no
// workspace root is resolvable.
type GitIgnoreProvisioner struct {
	base
}

// NewGitIgnore creates the ignore file provisioner
func NewGitIgnore(cfg *config.Settings, root string, data TemplateData) *GitIgnoreProvisioner {
	return &GitIgnoreProvisioner{base: base{cfg: cfg, root: root, data: data}}
}

// Name returns the display name
func (p *GitIgnoreProvisioner) Name() string { return "Git ignore" }

// ConfigKey returns the settings key gating this provisioner
func (p *GitIgnoreProvisioner) ConfigKey() string { return "provision.gitignore" }

// Enabled reports whether this provisioner should run
func (p *GitIgnoreProvisioner) Enabled() bool {
	return p.cfg.Provision.RunOnStartup && p.cfg.Provision.GitIgnore
}

// Execute writes .gitignore
func (p *GitIgnoreProvisioner) Execute(force bool) ([]string, error) {
	if p.root == "" {
		return nil, nil
	}
	rel, err := p.writeManaged(".gitignore", KindGitIgnore, gitIgnoreTemplate, force)
	if err != nil {
		return nil, err
	}
	if rel == "" {
		return nil, nil
	}
	return []string{rel}, nil
}
